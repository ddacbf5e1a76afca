package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/shexplain/internal/config"
	"github.com/user/shexplain/internal/knowledge"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showConfig()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	})

	return cmd
}

func (a *app) showConfig() error {
	cfg := a.cfg

	storePath := cfg.Knowledge.CustomPath
	if storePath == "" {
		if p, err := knowledge.DefaultStorePath(); err == nil {
			storePath = p
		}
	}

	fmt.Fprintln(os.Stderr, "Current configuration:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "  Color:           %s\n", cfg.Color)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "  [knowledge]")
	fmt.Fprintf(os.Stderr, "    Custom Path:   %s\n", storePath)
	fmt.Fprintf(os.Stderr, "    Dynamic:       %t\n", cfg.Knowledge.DynamicLookup)
	fmt.Fprintf(os.Stderr, "    Help Timeout:  %ds\n", cfg.Knowledge.HelpTimeoutSeconds)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "  [server]")
	fmt.Fprintf(os.Stderr, "    Addr:          %s\n", cfg.Server.Addr)

	return nil
}

func (a *app) initConfig() error {
	path, err := config.InitConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created config file: %s\n", path)
	return nil
}
