package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vyevs/wordbrain/internal/metrics"
	"github.com/vyevs/wordbrain/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Requests may ask for any length, so keep the whole word list.
			dict, err := a.loadDictionary(ctx, nil)
			if err != nil {
				return err
			}

			var m *metrics.Solver
			if a.cfg.Server.Metrics {
				m = metrics.NewSolver()
			}

			srv := server.New(dict, m, a.log, server.Options{
				Timeout: a.cfg.Solver.Timeout,
				Workers: a.cfg.Solver.Workers,
				Mode:    a.cfg.Server.Mode,
			})
			return srv.Run(ctx, a.cfg.Server.Addr)
		},
	}

	cmd.Flags().String("addr", "", "listen address")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
