// Package analyzer turns one command segment plus resolved knowledge
// into human-readable explanation lines and warnings.
//
// A generic cursor-based classification loop handles flags, flag values,
// redirections and positional arguments; per-command strategies layered
// on top handle the commands whose argument conventions deserve better
// output (sudo, find, grep, chmod, chown, echo, kill, killall).
//
// Explanation lines follow a strict indentation convention: the command
// line itself carries the segment's base indent, its flags and arguments
// two extra spaces, and a sub-invocation (the command wrapped by sudo)
// shifts everything one level deeper. Consumers rely on the prefixes.
package analyzer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/user/shexplain/internal/knowledge"
	"github.com/user/shexplain/internal/tokenizer"
)

// Resolver is the knowledge lookup the analyzer needs to explain
// sub-invocations such as the command wrapped by sudo.
type Resolver interface {
	Resolve(ctx context.Context, name string) knowledge.Resolution
}

// Analyzer explains command segments.
type Analyzer struct {
	kb Resolver
}

// New creates an Analyzer using kb for nested command resolution.
func New(kb Resolver) *Analyzer {
	return &Analyzer{kb: kb}
}

// Analyze explains one command segment against its resolved knowledge.
// It returns explanation lines and warnings; both may be empty, neither
// is ever an error.
func (a *Analyzer) Analyze(ctx context.Context, seg tokenizer.Segment, res knowledge.Resolution) ([]string, []string) {
	if seg.Kind == tokenizer.KindOperator {
		return []string{fmt.Sprintf("%s: %s", seg.Op, tokenizer.OperatorText(seg.Op))}, nil
	}
	if len(seg.Tokens) == 0 {
		return nil, nil
	}
	return a.analyze(ctx, seg.Tokens, res, 0)
}

// analyze explains a token run at the given nesting depth.
func (a *Analyzer) analyze(ctx context.Context, tokens []string, res knowledge.Resolution, depth int) ([]string, []string) {
	st := newState(depth)
	command := tokens[0]
	args := tokens[1:]

	st.header(command, res)

	if command == "sudo" {
		a.explainSudo(ctx, st, args, depth)
		return st.lines, st.warnings
	}
	if command == "find" {
		explainFind(st, args, res)
		return st.lines, st.warnings
	}

	cls := st.classify(args, res)

	if strategy, ok := strategies[command]; ok {
		strategy(st, cls, res)
	} else if len(cls.positionals) > 0 {
		st.addLine("%sArguments: %s", st.indent, strings.Join(cls.positionals, ", "))
	}

	return st.lines, st.warnings
}

// explainSudo explains sudo itself, then the wrapped command exactly as
// if it were its own segment, indented one level deeper.
func (a *Analyzer) explainSudo(ctx context.Context, st *state, args []string, depth int) {
	if len(args) == 0 {
		return
	}
	sub := a.kb.Resolve(ctx, args[0])
	lines, warnings := a.analyze(ctx, args, sub, depth+1)
	st.lines = append(st.lines, lines...)
	st.warnings = append(st.warnings, warnings...)
}

// state accumulates one segment's output.
type state struct {
	// indent prefixes the command line; flags add two more spaces.
	indent   string
	lines    []string
	warnings []string
}

func newState(depth int) *state {
	return &state{indent: strings.Repeat("  ", depth)}
}

// flagIndent is the prefix for flag/argument lines of this command.
func (s *state) flagIndent() string {
	return s.indent + "  "
}

func (s *state) addLine(format string, args ...interface{}) {
	s.lines = append(s.lines, fmt.Sprintf(format, args...))
}

func (s *state) addWarning(format string, args ...interface{}) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// header emits the command's own line and its danger warning.
func (s *state) header(command string, res knowledge.Resolution) {
	switch {
	case res.Description != "":
		s.addLine("%s%s: %s", s.indent, command, res.Description)
	default:
		s.addLine("%s%s", s.indent, command)
	}
	if res.Known && res.Danger.Warnable() {
		s.addWarning("The command '%s' is considered %s risk.", command, res.Danger)
	}
}

// classified is the outcome of the generic token classification loop.
type classified struct {
	// raw is the untouched argument list, for strategies that make an
	// independent pass (the kill/killall signal check).
	raw []string
	// positionals are tokens that are not flags, flag values,
	// redirection operators/targets, or recognized subcommands.
	positionals []string
}

// redirectRegex matches the digit-prefixed redirection operators.
var redirectRegex = regexp.MustCompile(`^[12]>{1,2}$`)

// isRedirect reports whether token is an output redirection operator.
func isRedirect(token string) bool {
	return token == ">" || token == ">>" || redirectRegex.MatchString(token)
}

// classify runs the generic left-to-right token loop. The cursor moves
// past tokens consumed as flag values or redirection targets.
func (s *state) classify(args []string, res knowledge.Resolution) *classified {
	cls := &classified{raw: args}

	for i := 0; i < len(args); i++ {
		token := args[i]

		if isRedirect(token) {
			target := ""
			if i+1 < len(args) {
				target = args[i+1]
				i++
			}
			s.explainRedirect(token, target)
			continue
		}

		if strings.HasPrefix(token, "--") {
			i += s.explainLongFlag(token, next(args, i), res)
			continue
		}

		if desc, ok := res.Flags[token]; ok {
			i += s.explainExactFlag(token, desc, next(args, i), res)
			continue
		}

		if strings.HasPrefix(token, "-") && len(token) > 2 {
			s.explainCombinedFlag(token, res)
			continue
		}

		if strings.HasPrefix(token, "-") {
			// Unknown flag: neither explainable nor positional.
			continue
		}

		if desc, ok := res.Subcommands[token]; ok {
			s.addLine("%s%s: %s", s.flagIndent(), token, desc)
			continue
		}

		cls.positionals = append(cls.positionals, token)
	}

	return cls
}

// next returns args[i+1] or "".
func next(args []string, i int) string {
	if i+1 < len(args) {
		return args[i+1]
	}
	return ""
}

// explainLongFlag handles --name and --name=value tokens. The return
// value is how many following tokens were consumed (0 or 1).
func (s *state) explainLongFlag(token, following string, res knowledge.Resolution) int {
	name := token
	value := ""
	if eq := strings.Index(token, "="); eq >= 0 {
		name = token[:eq]
		value = token[eq+1:]
	}

	desc, ok := res.Flags[name]
	if !ok {
		return 0
	}

	consumed := 0
	if value == "" && following != "" && !strings.HasPrefix(following, "-") {
		value = following
		consumed = 1
	}

	if value != "" {
		s.addLine("%s%s: %s (value: %s)", s.flagIndent(), name, desc, value)
	} else {
		s.addLine("%s%s: %s", s.flagIndent(), name, desc)
	}
	return consumed
}

// explainExactFlag handles a token that is itself a known flag key. A
// following token is consumed as the flag's value only when the flag is
// in the value-taking table for this command.
func (s *state) explainExactFlag(token, desc, following string, res knowledge.Resolution) int {
	if takesValue(res.Name, token) && following != "" && !strings.HasPrefix(following, "-") {
		s.addLine("%s%s: %s (value: %s)", s.flagIndent(), token, desc, following)
		return 1
	}
	s.addLine("%s%s: %s", s.flagIndent(), token, desc)
	return 0
}

// explainCombinedFlag handles single-dash tokens longer than two
// characters: whole-token flags (-sV), repeated flags (-vvv), and
// combined short flags (-la).
func (s *state) explainCombinedFlag(token string, res knowledge.Resolution) {
	// Covered by the exact-match branch normally, but combined parsing
	// may still find the whole token when flags arrive dynamically.
	if desc, ok := res.Flags[token]; ok {
		s.addLine("%s%s: %s", s.flagIndent(), token, desc)
		return
	}

	letters := token[1:]
	if repeated(letters) {
		base := "-" + letters[:1]
		if desc, ok := res.Flags[base]; ok {
			s.addLine("%s%s: %s (repeated %d times)", s.flagIndent(), base, desc, len(letters))
			return
		}
	}

	for _, ch := range letters {
		flag := "-" + string(ch)
		if desc, ok := res.Flags[flag]; ok {
			s.addLine("%s%s: %s", s.flagIndent(), flag, desc)
		}
	}
}

// repeated reports whether s is one character repeated at least twice.
func repeated(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// explainRedirect emits the explanation line for a redirection and a
// warning for the overwrite-style operators.
func (s *state) explainRedirect(op, target string) {
	stream := "output"
	if strings.HasPrefix(op, "2") {
		stream = "error output"
	}

	if strings.HasSuffix(op, ">>") {
		s.addLine("%s%s %s: appends %s to '%s'", s.flagIndent(), op, target, stream, target)
		return
	}
	s.addLine("%s%s %s: redirects %s to '%s', overwriting it", s.flagIndent(), op, target, stream, target)
	if target != "" {
		s.addWarning("The redirection '%s %s' will overwrite '%s' if it exists.", op, target, target)
	}
}
