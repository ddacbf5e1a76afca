// Package tokenizer splits raw shell command strings into tokens and
// groups tokens into command segments.
package tokenizer

import (
	"fmt"
	"regexp"
	"strings"
)

// fieldRefRegex matches interpreter field references like $1, $2, $10.
// These must survive tokenization as part of their surrounding token even
// though $ is not quoted (awk programs are the common case).
var fieldRefRegex = regexp.MustCompile(`\$\d+`)

// Tokenize splits a raw command string into shell tokens.
//
// Quoting rules follow POSIX-ish shell splitting: single quotes group
// literally, double quotes group with backslash escapes, and an unquoted
// backslash escapes the next character. Field references ($1, $2, ...) are
// protected with placeholders before splitting and restored afterwards so
// they are never torn apart.
//
// Malformed quoting (an unterminated quote) degrades to plain whitespace
// splitting. Empty or whitespace-only input yields no tokens.
func Tokenize(raw string) []string {
	placeholders := map[string]string{}
	counter := 0

	protected := fieldRefRegex.ReplaceAllStringFunc(raw, func(match string) string {
		placeholder := fmt.Sprintf("__FIELD_REF_%d__", counter)
		placeholders[placeholder] = match
		counter++
		return placeholder
	})

	tokens, err := splitQuoted(protected)
	if err != nil {
		tokens = strings.Fields(protected)
	}

	restored := make([]string, 0, len(tokens))
	for _, token := range tokens {
		for placeholder, original := range placeholders {
			token = strings.ReplaceAll(token, placeholder, original)
		}
		restored = append(restored, token)
	}

	return restored
}

// splitQuoted performs quote-aware whitespace splitting. It returns an
// error on an unterminated quote so the caller can fall back.
func splitQuoted(s string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	inToken := false

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\\' && i+1 < len(runes):
			// Unquoted escape: take the next character literally.
			current.WriteRune(runes[i+1])
			inToken = true
			i++

		case ch == '\'':
			end := indexRuneFrom(runes, i+1, '\'')
			if end < 0 {
				return nil, fmt.Errorf("unterminated single quote")
			}
			current.WriteString(string(runes[i+1 : end]))
			inToken = true
			i = end

		case ch == '"':
			closed := false
			for j := i + 1; j < len(runes); j++ {
				if runes[j] == '\\' && j+1 < len(runes) {
					current.WriteRune(runes[j+1])
					j++
					continue
				}
				if runes[j] == '"' {
					i = j
					closed = true
					break
				}
				current.WriteRune(runes[j])
			}
			if !closed {
				return nil, fmt.Errorf("unterminated double quote")
			}
			inToken = true

		case ch == ' ' || ch == '\t' || ch == '\n':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}

		default:
			current.WriteRune(ch)
			inToken = true
		}
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// indexRuneFrom returns the index of the first occurrence of target in
// runes at or after start, or -1 if absent.
func indexRuneFrom(runes []rune, start int, target rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
