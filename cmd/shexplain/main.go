// Package main is the entry point for the shexplain CLI tool.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/shexplain/internal/config"
	"github.com/user/shexplain/internal/explain"
	"github.com/user/shexplain/internal/helpdoc"
	"github.com/user/shexplain/internal/knowledge"
	"github.com/user/shexplain/internal/render"
)

// version is set at build time via ldflags: -X main.version=...
var version = "dev"

const maxCommandLength = 10000

// rootFlags holds flags shared by all subcommands.
type rootFlags struct {
	configPath string
	verbose    bool
	noColor    bool
	jsonOut    bool
	noDynamic  bool
}

// app carries the loaded configuration and logger through command
// execution, so subcommands do not reach for globals.
type app struct {
	flags rootFlags
	cfg   *config.Config
	log   *zap.Logger
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "shexplain: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shexplain \"<command>\"",
		Short:   "Explain shell commands and flag the dangerous ones",
		Version: version,
		Example: `  shexplain "ls -la"
  shexplain "sudo rm -rf /"
  shexplain --json "find /tmp -mtime +7 -delete"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.explainCommand(cmd.Context(), args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "config file path")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose logging to stderr")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&a.flags.jsonOut, "json", false, "print the result as JSON")
	pf.BoolVar(&a.flags.noDynamic, "no-dynamic", false, "never query --help or man pages")

	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// setup loads and validates configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(&config.LoadOptions{ConfigPath: a.flags.configPath})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	if a.flags.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		a.log = log
	} else {
		a.log = zap.NewNop()
	}
	return nil
}

// explainCommand runs the pipeline over the joined positional args and
// renders the result.
func (a *app) explainCommand(ctx context.Context, args []string) error {
	raw := joinArgs(args)
	if err := validateInput(raw); err != nil {
		return err
	}

	engine := explain.New(a.knowledgeTable(), a.docSource())
	result := engine.Explain(ctx, raw)

	mode := render.ModeText
	if a.flags.jsonOut {
		mode = render.ModeJSON
	}
	return render.New(os.Stdout, mode, a.colorEnabled()).Render(result)
}

// knowledgeTable merges the built-in table with the user's custom
// commands. Custom entries win.
func (a *app) knowledgeTable() knowledge.Table {
	table := knowledge.Builtin()
	store, err := a.store()
	if err != nil {
		a.log.Warn("custom command store unavailable", zap.Error(err))
		return table
	}
	return table.Merge(store.Load())
}

func (a *app) store() (*knowledge.Store, error) {
	path := a.cfg.Knowledge.CustomPath
	if path == "" {
		p, err := knowledge.DefaultStorePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return knowledge.NewStore(path), nil
}

// docSource returns the dynamic help source, or nil when dynamic
// extraction is disabled by flag or config.
func (a *app) docSource() helpdoc.Source {
	if a.flags.noDynamic || !a.cfg.Knowledge.DynamicLookup {
		return nil
	}
	return helpdoc.NewExecSource(helpdoc.WithTimeout(a.cfg.HelpTimeout()))
}

// colorEnabled resolves the color setting against the terminal.
func (a *app) colorEnabled() bool {
	if a.flags.noColor {
		return false
	}
	switch a.cfg.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}

// joinArgs accepts either one quoted command string or the command as
// separate words.
func joinArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	raw := args[0]
	for _, arg := range args[1:] {
		raw += " " + arg
	}
	return raw
}

// validateInput rejects input the pipeline should never see.
func validateInput(raw string) error {
	if len(raw) > maxCommandLength {
		return fmt.Errorf("command too long (max %d bytes)", maxCommandLength)
	}
	for _, r := range raw {
		if r == 0 {
			return fmt.Errorf("invalid input: contains null bytes")
		}
	}
	return nil
}
