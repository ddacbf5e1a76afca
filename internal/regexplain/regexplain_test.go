package regexplain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeRegex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"anchored class", "^[a-z]+$", true},
		{"leading anchor", "^error", true},
		{"trailing anchor", "error$", true},
		{"character class", "[0-9]", true},
		{"grouping", "(foo|bar)", true},
		{"braces", "a{2,3}", true},
		{"unescaped star", "fo*", true},
		{"unescaped plus", "ab+", true},
		{"unescaped question", "colou?r", true},
		{"unescaped dot", "a.c", true},
		{"escaped dot only", `a\.c`, false},
		{"escaped star only", `a\*b`, false},
		{"plain word", "hello", false},
		{"empty", "", false},
		{"bare pipe", "|", false},
		{"flag-like", "-v", false},
		{"path", "/usr/bin/foo", false},
		{"relative path with star", "src/*.go", false},
		{"ipv4 literal", "192.168.1.1", false},
		{"version-like dotted", "1.2.3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeRegex(tt.input))
		})
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{
			name:     "anchored class with quantifier",
			pattern:  "^[a-z]+$",
			expected: "start of line, end of line, then one of 'a-z', one or more of previous",
		},
		{
			name:     "single class",
			pattern:  "[abc]",
			expected: "one of 'abc'",
		},
		{
			name:     "negated class",
			pattern:  "[^abc]",
			expected: "not any of 'abc'",
		},
		{
			name:     "escaped single character",
			pattern:  `\.`,
			expected: "literal '.'",
		},
		{
			name:     "plain word",
			pattern:  "abc",
			expected: "'a', 'b', 'c'",
		},
		{
			name:     "dot star",
			pattern:  "a.*",
			expected: "'a', any single character, zero or more of previous",
		},
		{
			name:     "alternation",
			pattern:  "a|b",
			expected: "'a', alternation (or), 'b'",
		},
		{
			name:     "class inside longer pattern",
			pattern:  "x[0-9]y",
			expected: "'x', one of '0-9', 'y'",
		},
		{
			name:     "escape inside longer pattern",
			pattern:  `a\+b`,
			expected: "'a', literal '+', 'b'",
		},
		{
			name:     "leading anchor only",
			pattern:  "^foo",
			expected: "start of line, then 'f', 'o', 'o'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Explain(tt.pattern))
		})
	}
}
