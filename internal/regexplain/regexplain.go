// Package regexplain decides whether an argument is probably a regular
// expression and renders a short plain-English description of it.
package regexplain

import (
	"fmt"
	"regexp"
	"strings"
)

// ipv4Regex matches a pure dotted-quad numeric literal. IPv4 addresses
// contain unescaped dots but are almost never meant as patterns.
var ipv4Regex = regexp.MustCompile(`^\d+(?:\.\d+){3}$`)

// specialMeaning maps regex metacharacters to their plain-English meaning.
var specialMeaning = map[byte]string{
	'^': "start of line",
	'$': "end of line",
	'.': "any single character",
	'*': "zero or more of previous",
	'+': "one or more of previous",
	'?': "zero or one (optional)",
	'|': "alternation (or)",
}

// LooksLikeRegex reports whether text is probably a regular expression.
//
// The heuristic rejects empty strings, the bare pipe, flag-like tokens,
// anything path-like, and IPv4 literals, then accepts on anchors, grouping
// or class characters, and unescaped quantifiers or dots. It is
// deliberately over-eager: false positives are accepted.
func LooksLikeRegex(text string) bool {
	if text == "" {
		return false
	}
	if text == "|" || strings.HasPrefix(text, "-") {
		return false
	}
	// Paths and URLs are not patterns.
	if strings.Contains(text, "/") {
		return false
	}
	if ipv4Regex.MatchString(text) {
		return false
	}
	if strings.HasPrefix(text, "^") || strings.HasSuffix(text, "$") {
		return true
	}
	if strings.ContainsAny(text, "[]()|{}") {
		return true
	}
	if containsUnescaped(text, "*+?") {
		return true
	}
	if containsUnescaped(text, ".") {
		return true
	}
	return false
}

// containsUnescaped reports whether any byte from set appears in text
// without a preceding backslash.
func containsUnescaped(text, set string) bool {
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(set, text[i]) < 0 {
			continue
		}
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		return true
	}
	return false
}

// Explain returns a concise human explanation for a simple regex pattern.
// It never fails: anything it cannot decompose is described generically as
// "regular expression pattern".
func Explain(pattern string) string {
	var anchors []string
	if strings.HasPrefix(pattern, "^") {
		anchors = append(anchors, specialMeaning['^'])
		pattern = pattern[1:]
	}
	if strings.HasSuffix(pattern, "$") {
		anchors = append(anchors, specialMeaning['$'])
		pattern = pattern[:len(pattern)-1]
	}

	desc := describeBody(pattern)

	if desc != "" {
		if len(anchors) > 0 {
			return fmt.Sprintf("%s, then %s", strings.Join(anchors, ", "), desc)
		}
		return desc
	}
	if len(anchors) > 0 {
		return strings.Join(anchors, ", ")
	}
	return "regular expression pattern"
}

// describeBody explains a pattern with its anchors already stripped.
func describeBody(pattern string) string {
	if pattern == "" {
		return ""
	}

	// A single bracket expression.
	if strings.HasPrefix(pattern, "[") && strings.HasSuffix(pattern, "]") && strings.Count(pattern, "[") == 1 {
		return describeClass(pattern[1 : len(pattern)-1])
	}

	// A lone escaped character.
	if len(pattern) == 2 && pattern[0] == '\\' {
		return fmt.Sprintf("literal '%c'", pattern[1])
	}

	var parts []string
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]

		if ch == '[' {
			if j := strings.IndexByte(pattern[i+1:], ']'); j >= 0 {
				parts = append(parts, describeClass(pattern[i+1:i+1+j]))
				i += j + 1
				continue
			}
		}

		if meaning, ok := specialMeaning[ch]; ok {
			parts = append(parts, meaning)
			continue
		}
		if ch == '\\' && i+1 < len(pattern) {
			parts = append(parts, fmt.Sprintf("literal '%c'", pattern[i+1]))
			i++
			continue
		}
		parts = append(parts, fmt.Sprintf("'%c'", ch))
	}

	return strings.Join(parts, ", ")
}

// describeClass explains the contents of a bracket expression.
func describeClass(content string) string {
	if strings.HasPrefix(content, "^") {
		return fmt.Sprintf("not any of '%s'", content[1:])
	}
	return fmt.Sprintf("one of '%s'", content)
}
