package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/shexplain/internal/explain"
	"github.com/user/shexplain/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the explanation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			return a.serve(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (a *app) serve(cmd *cobra.Command, addr string) error {
	log := a.log
	if !a.flags.verbose {
		// The server always logs requests; verbose only changes format.
		prod, err := zap.NewProduction()
		if err != nil {
			return err
		}
		log = prod
	}
	defer func() { _ = log.Sync() }()

	engine := func() *explain.Engine {
		return explain.New(a.knowledgeTable(), a.docSource())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(addr, engine, log).Run(ctx)
}
