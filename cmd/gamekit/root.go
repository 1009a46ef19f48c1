// SPDX-License-Identifier: MIT

package main

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gamekit/analysis"
	"github.com/katalvlaran/gamekit/internal/config"
	"github.com/katalvlaran/gamekit/internal/logging"
	"github.com/katalvlaran/gamekit/internal/metrics"
	"github.com/katalvlaran/gamekit/solver"
)

// app is the wired runtime shared by subcommands.
type app struct {
	cfg     config.Config
	logger  logr.Logger
	metrics *metrics.Recorder
	solver  *solver.Solver
	engine  *analysis.Engine
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "gamekit",
		Short:         "Equilibrium solver for two-player games",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	config.BindFlags(root.PersistentFlags())

	load := func(cmd *cobra.Command) (*app, error) {
		return newApp(cfgPath, cmd)
	}
	root.AddCommand(newSolveCmd(load), newServeCmd(load))

	return root
}

// newApp loads configuration from path and the command's flags and wires the
// solver stack.
func newApp(path string, cmd *cobra.Command) (*app, error) {
	fs := cmd.Flags()
	fs.AddFlagSet(cmd.PersistentFlags())
	fs.AddFlagSet(cmd.InheritedFlags())
	cfg, err := config.Load(path, fs)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	opts := []solver.Option{solver.WithLogger(logger)}
	if cfg.Metrics.Enabled {
		a.metrics = metrics.NewRecorder()
		opts = append(opts, solver.WithMetrics(a.metrics))
	}
	a.solver = solver.New(opts...)
	a.engine = analysis.NewEngine(
		analysis.WithSolver(a.solver),
		analysis.WithMaxStrategies(cfg.Analysis.MaxStrategies),
		analysis.WithLogger(logger),
	)

	return a, nil
}
