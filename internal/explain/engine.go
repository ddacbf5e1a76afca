// Package explain wires the analysis pipeline together: tokenize,
// segment, resolve knowledge, analyze each segment, and run the danger
// detector over the whole command.
package explain

import (
	"context"

	"github.com/user/shexplain/internal/analyzer"
	"github.com/user/shexplain/internal/danger"
	"github.com/user/shexplain/internal/helpdoc"
	"github.com/user/shexplain/internal/knowledge"
	"github.com/user/shexplain/internal/tokenizer"
)

// Result is the full outcome of explaining one command line. The
// explanation lines carry the indentation convention of the analyzer;
// renderers must not re-indent them.
type Result struct {
	Command     string   `json:"command"`
	Explanation []string `json:"explanation"`
	Warnings    []string `json:"warnings"`
}

// Engine runs the analysis pipeline over raw command strings. It holds
// read-only knowledge for the duration of its life: build one per
// invocation or per server request.
type Engine struct {
	resolver *knowledge.Resolver
	analyzer *analyzer.Analyzer
}

// New creates an Engine over the given command table and dynamic help
// source. docs may be nil to disable dynamic extraction.
func New(table knowledge.Table, docs helpdoc.Source) *Engine {
	resolver := knowledge.NewResolver(table, docs)
	return &Engine{
		resolver: resolver,
		analyzer: analyzer.New(resolver),
	}
}

// Explain analyzes one raw command line. It always returns a Result;
// empty input produces empty explanation and warning lists.
func (e *Engine) Explain(ctx context.Context, raw string) *Result {
	result := &Result{
		Command:     raw,
		Explanation: []string{},
		Warnings:    []string{},
	}

	tokens := tokenizer.Tokenize(raw)
	if len(tokens) == 0 {
		return result
	}

	for _, seg := range tokenizer.Split(tokens) {
		res := knowledge.Resolution{}
		if seg.Kind == tokenizer.KindCommand {
			res = e.resolver.Resolve(ctx, seg.Command())
		}
		lines, warnings := e.analyzer.Analyze(ctx, seg, res)
		result.Explanation = append(result.Explanation, lines...)
		result.Warnings = append(result.Warnings, warnings...)
	}

	result.Warnings = append(result.Warnings, danger.Detect(raw, tokens)...)

	return result
}
