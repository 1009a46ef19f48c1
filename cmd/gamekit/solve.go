// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gamekit/internal/logging"
	"github.com/katalvlaran/gamekit/payoff"
)

// Solve operations.
const (
	opAll       = "all"
	opNash      = "nash"
	opMinimax   = "minimax"
	opDominance = "dominance"
)

func newSolveCmd(load func(*cobra.Command) (*app, error)) *cobra.Command {
	var (
		file string
		op   string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a game document and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			m, doc, err := payoff.Load(file)
			if err != nil {
				return err
			}
			a.logger.V(logging.DEBUG).Info("game loaded", "name", doc.Name, "rows", m.Rows(), "cols", m.Cols())

			out, err := a.solve(m, op)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "game document (YAML or JSON)")
	cmd.Flags().StringVar(&op, "op", opAll, "operation: all, nash, minimax, dominance")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// solve runs op over m and returns the value to print.
func (a *app) solve(m *payoff.Matrix, op string) (any, error) {
	switch op {
	case opAll:
		return a.solver.Analyze(m)
	case opNash:
		eq, err := a.solver.SolveNash(m)
		if err != nil {
			return nil, err
		}
		return map[string]any{"equilibria": eq}, nil
	case opMinimax:
		return a.solver.SolveMinimax(m)
	case opDominance:
		return a.solver.FindDominantStrategies(m)
	default:
		return nil, fmt.Errorf("solve: unknown --op %q", op)
	}
}
