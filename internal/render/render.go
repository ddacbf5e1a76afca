// Package render formats analysis results for terminals and machines.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/shexplain/internal/explain"
)

// ErrInvalidMode is returned when an invalid output mode string is provided.
var ErrInvalidMode = errors.New("invalid output mode")

// Mode selects the output format.
type Mode int

const (
	// ModeText prints a human-readable report, optionally colored.
	ModeText Mode = iota
	// ModeJSON prints the result as a single JSON object.
	ModeJSON
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseMode parses an output mode string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "text":
		return ModeText, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeText, fmt.Errorf("%w: %s", ErrInvalidMode, s)
	}
}

// styles holds the lipgloss styles for colored text output.
type styles struct {
	header  lipgloss.Style
	section lipgloss.Style
	line    lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:  lipgloss.NewStyle().Bold(true),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		line:    lipgloss.NewStyle(),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

// Renderer writes results to an output stream. Color is an explicit
// option threaded from configuration and flags, not global state.
type Renderer struct {
	out    io.Writer
	mode   Mode
	color  bool
	styles styles
}

// New creates a Renderer writing to out.
func New(out io.Writer, mode Mode, color bool) *Renderer {
	return &Renderer{out: out, mode: mode, color: color, styles: newStyles()}
}

// Render writes one result in the configured mode.
func (r *Renderer) Render(result *explain.Result) error {
	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return r.renderText(result)
}

// renderText writes the human-readable report. Explanation lines carry
// semantic indentation already; they are styled but never re-indented.
func (r *Renderer) renderText(result *explain.Result) error {
	var b strings.Builder

	b.WriteString(r.paint(r.styles.header, fmt.Sprintf("Command: %s", result.Command)))
	b.WriteString("\n")

	if len(result.Explanation) > 0 {
		b.WriteString("\n")
		b.WriteString(r.paint(r.styles.section, "Explanation:"))
		b.WriteString("\n")
		for _, line := range result.Explanation {
			b.WriteString(r.paint(r.styles.line, line))
			b.WriteString("\n")
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(r.paint(r.styles.section, "Warnings:"))
		b.WriteString("\n")
		for _, warning := range result.Warnings {
			b.WriteString(r.paint(r.styles.warning, warning))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// paint applies a style when color is enabled.
func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
