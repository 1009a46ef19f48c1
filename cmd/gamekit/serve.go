// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gamekit/internal/api"
)

func newServeCmd(load func(*cobra.Command) (*app, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []api.Option{api.WithLogger(a.logger)}
			if a.metrics != nil {
				opts = append(opts, api.WithMetrics(a.metrics))
			}

			return api.NewServer(a.solver, a.engine, opts...).Run(ctx, a.cfg.HTTP.Addr)
		},
	}
}
