package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/shexplain/internal/knowledge"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <command> <description> <danger_level> [<flags>]",
		Short: "Add a custom command to the knowledge store",
		Long: `Add a custom command to the persistent knowledge store.

danger_level is one of: low, medium, high, critical.

The optional flags argument describes flags as comma-separated
"flag:description" pairs, for example:

  shexplain add deploy "Deploys the app." medium "-f:force,-n:dry run"`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addCommand(args)
		},
	}
	// Flag specs like "-f:force" are positional arguments; stop cobra
	// from parsing them as flags once positionals begin.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) addCommand(args []string) error {
	name := strings.TrimSpace(args[0])
	description := strings.TrimSpace(args[1])
	if name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if description == "" {
		return fmt.Errorf("description must not be empty")
	}

	danger, err := knowledge.ParseDangerLevel(args[2])
	if err != nil {
		return err
	}

	entry := knowledge.Entry{
		Description: description,
		Danger:      danger,
	}
	if len(args) == 4 {
		flags, err := parseFlagSpec(args[3])
		if err != nil {
			return err
		}
		entry.Flags = flags
	}

	store, err := a.store()
	if err != nil {
		return err
	}
	if err := store.Add(name, entry); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Added command: %s\n", name)
	return nil
}

// parseFlagSpec parses "-f:desc,-g:desc" into a flag map.
func parseFlagSpec(spec string) (map[string]string, error) {
	flags := make(map[string]string)
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("invalid flag spec %q (expected flag:description)", pair)
		}
		flags[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return flags, nil
}
