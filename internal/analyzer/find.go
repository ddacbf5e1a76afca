package analyzer

import (
	"fmt"
	"strings"

	"github.com/user/shexplain/internal/knowledge"
)

// find gets its own cursor walk instead of the generic loop: its
// predicates are single-dash words that take values, which the generic
// flag rules would misread.

// findValueRenderers render each value-taking predicate with its value.
var findValueRenderers = map[string]func(value string) string{
	"-name":  func(v string) string { return fmt.Sprintf("searches for files matching name '%s'", v) },
	"-type":  renderFindType,
	"-mtime": func(v string) string { return renderFindTime(v, "modified", "days") },
	"-mmin":  func(v string) string { return renderFindTime(v, "modified", "minutes") },
	"-size":  func(v string) string { return fmt.Sprintf("matches files of size %s", v) },
	"-user":  func(v string) string { return fmt.Sprintf("matches files owned by user '%s'", v) },
	"-group": func(v string) string { return fmt.Sprintf("matches files owned by group '%s'", v) },
	"-perm":  func(v string) string { return fmt.Sprintf("matches files with permissions %s", v) },
	"-exec":  func(v string) string { return fmt.Sprintf("executes command '%s' on each result", v) },
}

// findFlagPredicates are predicates that take no value.
var findFlagPredicates = map[string]string{
	"-delete":     "deletes every file that matches",
	"-print":      "prints the matched paths",
	"-ls":         "lists matched files in long format",
	"-executable": "matches files the current user can execute",
	"-readable":   "matches files the current user can read",
	"-writable":   "matches files the current user can write",
}

// findTypeNames maps -type codes to their meaning.
var findTypeNames = map[string]string{
	"f": "regular file",
	"d": "directory",
	"l": "symbolic link",
}

func renderFindType(value string) string {
	if name, ok := findTypeNames[value]; ok {
		return fmt.Sprintf("limits results to entries of type '%s' (%s)", value, name)
	}
	return fmt.Sprintf("limits results to entries of type '%s'", value)
}

// renderFindTime renders time predicates qualitatively: +N is more than
// N, -N is less than N, bare N is exactly N.
func renderFindTime(value, verb, unit string) string {
	switch {
	case strings.HasPrefix(value, "+"):
		return fmt.Sprintf("matches files %s more than %s %s ago", verb, value[1:], unit)
	case strings.HasPrefix(value, "-"):
		return fmt.Sprintf("matches files %s less than %s %s ago", verb, value[1:], unit)
	default:
		return fmt.Sprintf("matches files %s exactly %s %s ago", verb, value, unit)
	}
}

// findTakesValue judges whether the token following a value predicate is
// its value rather than another predicate. Negative numbers, +-prefixed
// values, and the -exec terminators {} and ; count as values.
func findTakesValue(following string) bool {
	if following == "" {
		return false
	}
	if following == "{}" || following == ";" {
		return true
	}
	if !strings.HasPrefix(following, "-") {
		return true
	}
	return allDigits(following[1:])
}

// explainFind walks find's arguments: the first positional is the search
// path, the rest are predicates.
func explainFind(st *state, args []string, res knowledge.Resolution) {
	i := 0
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		st.addLine("%spath: %s (where the search starts)", st.flagIndent(), args[0])
		i = 1
	}

	for ; i < len(args); i++ {
		token := args[i]

		if render, ok := findValueRenderers[token]; ok {
			if following := next(args, i); findTakesValue(following) {
				st.addLine("%s%s %s: %s", st.flagIndent(), token, following, render(following))
				i++
			} else if desc, known := res.Flags[token]; known {
				st.addLine("%s%s: %s", st.flagIndent(), token, desc)
			} else {
				st.addLine("%s%s", st.flagIndent(), token)
			}
			continue
		}

		if desc, ok := findFlagPredicates[token]; ok {
			st.addLine("%s%s: %s", st.flagIndent(), token, desc)
			if token == "-delete" {
				st.addWarning("The '-delete' predicate permanently deletes every file find matches, without confirmation.")
			}
			continue
		}

		st.addLine("%sargument: %s", st.flagIndent(), token)
	}
}
