package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"kill", "SIGKILL"},
		{"KILL", "SIGKILL"},
		{"SIGKILL", "SIGKILL"},
		{"sigterm", "SIGTERM"},
		{"hup", "SIGHUP"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestExplainFlag(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		next     string
		expected string
	}{
		{
			name:     "numeric signal",
			arg:      "-9",
			expected: "  -9: send SIGKILL (Kill signal (cannot be caught or ignored))",
		},
		{
			name:     "named signal without prefix",
			arg:      "-KILL",
			expected: "  -KILL: send SIGKILL (Kill signal (cannot be caught or ignored))",
		},
		{
			name:     "named signal with prefix",
			arg:      "-SIGTERM",
			expected: "  -SIGTERM: send SIGTERM (Termination signal)",
		},
		{
			name:     "dash s with name",
			arg:      "-s",
			next:     "HUP",
			expected: "  -s HUP: send SIGHUP (Hangup detected on controlling terminal or death of controlling process)",
		},
		{
			name:     "dash s with number",
			arg:      "-s",
			next:     "15",
			expected: "  -s 15: send SIGTERM (Termination signal)",
		},
		{
			name:     "unknown number",
			arg:      "-99",
			expected: "",
		},
		{
			name:     "unknown name",
			arg:      "-NOTASIGNAL",
			expected: "",
		},
		{
			name:     "dash s without value",
			arg:      "-s",
			expected: "",
		},
		{
			name:     "not a flag",
			arg:      "1234",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExplainFlag(tt.arg, tt.next))
		})
	}
}
