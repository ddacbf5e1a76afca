package analyzer

import (
	"regexp"
	"strings"

	"github.com/user/shexplain/internal/knowledge"
	"github.com/user/shexplain/internal/regexplain"
	"github.com/user/shexplain/internal/signals"
)

// strategy supplements the generic classification output for one command
// family. Strategies receive the positional-argument set the generic loop
// produced and may emit further lines and warnings.
type strategy func(st *state, cls *classified, res knowledge.Resolution)

// strategies keys per-command specializations by command name. sudo and
// find are handled before generic classification and are not listed.
var strategies = map[string]strategy{
	"grep":    explainGrep,
	"chmod":   explainChmod,
	"chown":   explainChown,
	"echo":    explainEcho,
	"kill":    explainKill,
	"killall": explainKill,
}

// valueFlags lists, per command, the known short flags that consume the
// following token as their value. Flags absent here never consume a
// token, which keeps patterns and file arguments out of flag values.
var valueFlags = map[string]map[string]bool{
	"kill":    {"-s": true},
	"killall": {"-s": true, "-u": true},
	"awk":     {"-F": true},
	"curl":    {"-o": true},
	"wget":    {"-O": true},
	"bash":    {"-c": true},
	"sh":      {"-c": true},
	"tar":     {"-f": true},
}

// takesValue reports whether flag consumes a value token for command.
func takesValue(command, flag string) bool {
	return valueFlags[command][flag]
}

// explainGrep explains the pattern (with a regex description when the
// pattern looks like one) and lists the remaining positionals as files.
func explainGrep(st *state, cls *classified, _ knowledge.Resolution) {
	if len(cls.positionals) == 0 {
		return
	}

	pattern := cls.positionals[0]
	if regexplain.LooksLikeRegex(pattern) {
		st.addLine("%spattern: \"%s\" (regular expression: %s)", st.flagIndent(), pattern, regexplain.Explain(pattern))
	} else {
		st.addLine("%spattern: \"%s\"", st.flagIndent(), pattern)
	}

	if len(cls.positionals) > 1 {
		st.addLine("%sfiles: %s", st.flagIndent(), strings.Join(cls.positionals[1:], ", "))
	}
}

// octalModeRegex matches a numeric chmod mode of one to four digits.
var octalModeRegex = regexp.MustCompile(`^[0-7]{1,4}$`)

// permissionBits renders one octal digit's rwx bits.
func permissionBits(digit byte) string {
	n := digit - '0'
	var parts []string
	if n&4 != 0 {
		parts = append(parts, "read")
	}
	if n&2 != 0 {
		parts = append(parts, "write")
	}
	if n&1 != 0 {
		parts = append(parts, "execute")
	}
	if len(parts) == 0 {
		return "no permissions"
	}
	return strings.Join(parts, ", ")
}

// specialBits renders the leading digit of a four-digit mode.
func specialBits(digit byte) string {
	n := digit - '0'
	var parts []string
	if n&4 != 0 {
		parts = append(parts, "setuid")
	}
	if n&2 != 0 {
		parts = append(parts, "setgid")
	}
	if n&1 != 0 {
		parts = append(parts, "sticky bit")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// explainChmod decomposes a numeric mode into per-audience permission
// bits, or passes a symbolic mode through verbatim.
func explainChmod(st *state, cls *classified, _ knowledge.Resolution) {
	if len(cls.positionals) == 0 {
		return
	}

	mode := cls.positionals[0]
	if octalModeRegex.MatchString(mode) {
		digits := mode
		if len(digits) == 4 {
			st.addLine("%sspecial: %s (%c)", st.flagIndent(), specialBits(digits[0]), digits[0])
			digits = digits[1:]
		}
		for len(digits) < 3 {
			digits = "0" + digits
		}
		st.addLine("%sowner: %s (%c)", st.flagIndent(), permissionBits(digits[0]), digits[0])
		st.addLine("%sgroup: %s (%c)", st.flagIndent(), permissionBits(digits[1]), digits[1])
		st.addLine("%sothers: %s (%c)", st.flagIndent(), permissionBits(digits[2]), digits[2])
	} else {
		st.addLine("%smode: %s (symbolic permission change)", st.flagIndent(), mode)
	}

	if len(cls.positionals) > 1 {
		st.addLine("%stargets: %s", st.flagIndent(), strings.Join(cls.positionals[1:], ", "))
	}
}

// allDigits reports whether s is non-empty and numeric.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// explainChown splits owner[:group] and labels numeric ids.
func explainChown(st *state, cls *classified, _ knowledge.Resolution) {
	if len(cls.positionals) == 0 {
		return
	}

	owner := cls.positionals[0]
	group := ""
	if colon := strings.Index(owner, ":"); colon >= 0 {
		group = owner[colon+1:]
		owner = owner[:colon]
	}

	if owner != "" {
		st.addLine("%sowner: %s%s", st.flagIndent(), owner, numericSuffix(owner))
	}
	if group != "" {
		st.addLine("%sgroup: %s%s", st.flagIndent(), group, numericSuffix(group))
	}

	if len(cls.positionals) > 1 {
		st.addLine("%stargets: %s", st.flagIndent(), strings.Join(cls.positionals[1:], ", "))
	}
}

func numericSuffix(s string) string {
	if allDigits(s) {
		return " (numeric id)"
	}
	return ""
}

// explainEcho renders a fixed descriptive line plus the quoted text,
// replacing the generic Arguments list.
func explainEcho(st *state, cls *classified, _ knowledge.Resolution) {
	st.addLine("%sPrints the given text to standard output.", st.flagIndent())
	if len(cls.positionals) > 0 {
		st.addLine("%stext: \"%s\"", st.flagIndent(), cls.positionals[0])
	}
}

// explainKill runs the signal-flag explainer over every argument,
// independently of the generic flag loop, and lists the remaining
// positionals as targets.
func explainKill(st *state, cls *classified, _ knowledge.Resolution) {
	args := cls.raw
	for i := 0; i < len(args); i++ {
		following := next(args, i)
		if line := signals.ExplainFlag(args[i], following); line != "" {
			st.addLine("%s%s", st.indent, line)
			if args[i] == "-s" {
				i++
			}
		}
	}

	if len(cls.positionals) > 0 {
		st.addLine("%stargets: %s", st.flagIndent(), strings.Join(cls.positionals, ", "))
	}
}
