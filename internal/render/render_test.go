package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shexplain/internal/explain"
)

func sampleResult() *explain.Result {
	return &explain.Result{
		Command: "ls -la",
		Explanation: []string{
			"ls: Lists directory contents.",
			"  -l: Uses a long listing format.",
			"  -a: Shows all files, including hidden files (starting with '.').",
		},
		Warnings: []string{},
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"", ModeText, false},
		{"text", ModeText, false},
		{"json", ModeJSON, false},
		{"yaml", ModeText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestRenderTextPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ModeText, false)

	require.NoError(t, r.Render(sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Command: ls -la\n")
	assert.Contains(t, out, "Explanation:\n")
	// Indentation of explanation lines is preserved exactly.
	assert.Contains(t, out, "\n  -l: Uses a long listing format.\n")
	assert.NotContains(t, out, "Warnings:")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes without color")
}

func TestRenderTextWarnings(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ModeText, false)

	result := sampleResult()
	result.Warnings = []string{"The command 'sudo' is considered high risk."}
	require.NoError(t, r.Render(result))

	assert.Contains(t, buf.String(), "Warnings:\n")
	assert.Contains(t, buf.String(), "The command 'sudo' is considered high risk.\n")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ModeJSON, false)

	require.NoError(t, r.Render(sampleResult()))

	var decoded explain.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ls -la", decoded.Command)
	assert.Len(t, decoded.Explanation, 3)
	assert.NotNil(t, decoded.Warnings)
}

func TestRenderEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, ModeText, false)

	require.NoError(t, r.Render(&explain.Result{Command: "   "}))

	assert.Contains(t, buf.String(), "Command:")
	assert.NotContains(t, buf.String(), "Explanation:")
}
