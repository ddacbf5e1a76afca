// Package helpdoc acquires and parses a command's own help or man text.
//
// It is the dynamic knowledge source behind the resolver: given a command
// name it produces a summary line, a flag mapping, and a subcommand
// mapping by running `<command> --help` (falling back to `man <command>`)
// under a short timeout. Lookups degrade to "not found" sentinels and
// empty mappings; they never return errors.
package helpdoc

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTimeout bounds each external help/man invocation.
	DefaultTimeout = 5 * time.Second

	// UnsupportedPlatformSummary is returned on non-Linux hosts where
	// --help/man scraping is not attempted.
	UnsupportedPlatformSummary = "This tool is designed for Linux. Cannot fetch command help on other platforms."

	// summaryLines is how many leading lines of --help output form the
	// summary.
	summaryLines = 10
)

// Source provides dynamically extracted knowledge for a command name.
// Implementations must degrade to sentinels/empty maps instead of failing.
type Source interface {
	// Summary returns a short free-form description, or a human-readable
	// "not found" sentinel.
	Summary(ctx context.Context, command string) string

	// Flags returns a flag -> description mapping. Empty when nothing
	// could be extracted.
	Flags(ctx context.Context, command string) map[string]string

	// Subcommands returns a subcommand -> description mapping. Empty
	// when nothing could be extracted.
	Subcommands(ctx context.Context, command string) map[string]string
}

// Runner executes an external program and returns its stdout. Injectable
// for tests.
type Runner func(ctx context.Context, name string, args ...string) (string, error)

// origin records which mechanism produced a command's help text.
type origin int

const (
	originNone origin = iota
	originMissing
	originHelp
	originMan
	originUnsupported
)

// fetched is one command's cached acquisition result.
type fetched struct {
	text   string
	origin origin
}

// ExecSource implements Source by shelling out to --help and man.
type ExecSource struct {
	timeout time.Duration
	run     Runner
	goos    string

	mu    sync.Mutex
	cache map[string]fetched
}

// Option is a functional option for configuring ExecSource.
type Option func(*ExecSource)

// WithTimeout sets the per-invocation timeout for help/man calls.
func WithTimeout(d time.Duration) Option {
	return func(s *ExecSource) {
		s.timeout = d
	}
}

// WithRunner sets a custom process runner (useful for testing).
func WithRunner(run Runner) Option {
	return func(s *ExecSource) {
		s.run = run
	}
}

// WithGOOS overrides the detected operating system (useful for testing).
func WithGOOS(goos string) Option {
	return func(s *ExecSource) {
		s.goos = goos
	}
}

// NewExecSource creates an ExecSource with the default runner and timeout.
func NewExecSource(opts ...Option) *ExecSource {
	s := &ExecSource{
		timeout: DefaultTimeout,
		run:     runCommand,
		goos:    runtime.GOOS,
		cache:   map[string]fetched{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary implements Source.
func (s *ExecSource) Summary(ctx context.Context, command string) string {
	f := s.fetch(ctx, command)
	switch f.origin {
	case originUnsupported:
		return UnsupportedPlatformSummary
	case originMissing:
		return fmt.Sprintf("Command not found: %s", command)
	case originHelp:
		return helpSummary(f.text)
	case originMan:
		return manSummary(f.text)
	default:
		return fmt.Sprintf("Could not find help for command: %s", command)
	}
}

// Flags implements Source.
func (s *ExecSource) Flags(ctx context.Context, command string) map[string]string {
	f := s.fetch(ctx, command)
	if f.origin != originHelp && f.origin != originMan {
		return map[string]string{}
	}
	return parseFlags(f.text)
}

// Subcommands implements Source.
func (s *ExecSource) Subcommands(ctx context.Context, command string) map[string]string {
	f := s.fetch(ctx, command)
	if f.origin != originHelp && f.origin != originMan {
		return map[string]string{}
	}
	return parseSubcommands(f.text)
}

// fetch acquires help text for a command, caching the result so the
// summary/flags/subcommands triple costs one acquisition.
func (s *ExecSource) fetch(ctx context.Context, command string) fetched {
	s.mu.Lock()
	if f, ok := s.cache[command]; ok {
		s.mu.Unlock()
		return f
	}
	s.mu.Unlock()

	f := s.acquire(ctx, command)

	s.mu.Lock()
	s.cache[command] = f
	s.mu.Unlock()
	return f
}

// acquire runs the which/--help/man chain for one command.
func (s *ExecSource) acquire(ctx context.Context, command string) fetched {
	if s.goos != "linux" {
		return fetched{origin: originUnsupported}
	}

	if _, err := s.runBounded(ctx, "which", command); err != nil {
		return fetched{origin: originMissing}
	}

	if out, err := s.runBounded(ctx, command, "--help"); err == nil && strings.TrimSpace(out) != "" {
		return fetched{text: out, origin: originHelp}
	}

	if out, err := s.runBounded(ctx, "man", command); err == nil && strings.TrimSpace(out) != "" {
		return fetched{text: out, origin: originMan}
	}

	return fetched{origin: originNone}
}

// runBounded runs one external program under the configured timeout.
func (s *ExecSource) runBounded(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.run(ctx, name, args...)
}

// runCommand is the default Runner backed by os/exec.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
