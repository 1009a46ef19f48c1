// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gamekit/dominance"
	"github.com/katalvlaran/gamekit/internal/logging"
	"github.com/katalvlaran/gamekit/internal/metrics"
	"github.com/katalvlaran/gamekit/minimax"
	"github.com/katalvlaran/gamekit/nash"
	"github.com/katalvlaran/gamekit/payoff"
)

// Solver runs the equilibrium algorithms over payoff matrices.
type Solver struct {
	logger  logr.Logger
	metrics *metrics.Recorder
}

// Report bundles every analysis of one game.
type Report struct {
	Equilibria []nash.StrategyProfile `json:"equilibria"`
	Dominance  dominance.Result       `json:"dominance"`
	Minimax    minimax.Result         `json:"minimax"`
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	s := &Solver{logger: logging.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SolveNash returns the pure equilibria of m in row-major order followed by
// the 2×2 mixed equilibrium, if any.
func (s *Solver) SolveNash(m *payoff.Matrix) ([]nash.StrategyProfile, error) {
	start := time.Now()
	p1, p2, err := sides(m)
	if err != nil {
		s.metrics.ObserveCall(metrics.OpNash, start, err)
		return nil, fmt.Errorf("Solver.SolveNash: %w", err)
	}

	eq := nash.Solve(m.Rows(), m.Cols(), p1, p2)
	s.metrics.ObserveCall(metrics.OpNash, start, nil)
	pure, mixed := countKinds(eq)
	s.metrics.AddEquilibria(pure, mixed)
	s.logger.V(logging.DEBUG).Info("nash solved",
		"rows", m.Rows(), "cols", m.Cols(), "pure", pure, "mixed", mixed)

	return eq, nil
}

// SolveMinimax treats player 1's payoffs as a zero-sum game and returns the
// maximin value with the maximin row and minimax column.
func (s *Solver) SolveMinimax(m *payoff.Matrix) (minimax.Result, error) {
	start := time.Now()
	res, err := solveMinimax(m)
	s.metrics.ObserveCall(metrics.OpMinimax, start, err)
	if err != nil {
		return minimax.Result{}, fmt.Errorf("Solver.SolveMinimax: %w", err)
	}
	s.logger.V(logging.DEBUG).Info("minimax solved",
		"value", res.Value, "row", res.Row, "col", res.Col)

	return res, nil
}

func solveMinimax(m *payoff.Matrix) (minimax.Result, error) {
	p1, _, err := sides(m)
	if err != nil {
		return minimax.Result{}, err
	}

	return minimax.Solve(m.Rows(), m.Cols(), p1)
}

// FindDominantStrategies returns each player's strictly dominant action.
func (s *Solver) FindDominantStrategies(m *payoff.Matrix) (dominance.Result, error) {
	start := time.Now()
	p1, p2, err := sides(m)
	if err != nil {
		s.metrics.ObserveCall(metrics.OpDominance, start, err)
		return dominance.Result{P1: dominance.None, P2: dominance.None},
			fmt.Errorf("Solver.FindDominantStrategies: %w", err)
	}

	res := dominance.Find(m.Rows(), m.Cols(), p1, p2)
	s.metrics.ObserveCall(metrics.OpDominance, start, nil)
	s.logger.V(logging.DEBUG).Info("dominance solved", "p1", res.P1, "p2", res.P2)

	return res, nil
}

// Analyze runs all three operations over m.
func (s *Solver) Analyze(m *payoff.Matrix) (Report, error) {
	start := time.Now()
	report, err := s.analyze(m)
	s.metrics.ObserveCall(metrics.OpAnalyze, start, err)
	if err != nil {
		return Report{}, fmt.Errorf("Solver.Analyze: %w", err)
	}
	s.logger.Info("game analyzed",
		"rows", m.Rows(), "cols", m.Cols(),
		"equilibria", len(report.Equilibria), "value", report.Minimax.Value)

	return report, nil
}

func (s *Solver) analyze(m *payoff.Matrix) (Report, error) {
	eq, err := s.SolveNash(m)
	if err != nil {
		return Report{}, err
	}
	dom, err := s.FindDominantStrategies(m)
	if err != nil {
		return Report{}, err
	}
	mm, err := s.SolveMinimax(m)
	if err != nil {
		return Report{}, err
	}

	return Report{Equilibria: eq, Dominance: dom, Minimax: mm}, nil
}

// sides returns both payoff arrays of m; a nil matrix is invalid input.
func sides(m *payoff.Matrix) ([]float64, []float64, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("nil matrix: %w", payoff.ErrInvalidInput)
	}
	p1, err := m.Payoffs(payoff.Player1)
	if err != nil {
		return nil, nil, err
	}
	p2, err := m.Payoffs(payoff.Player2)
	if err != nil {
		return nil, nil, err
	}

	return p1, p2, nil
}

// countKinds splits equilibria into pure and mixed counts.
func countKinds(eq []nash.StrategyProfile) (pure, mixed int) {
	for _, e := range eq {
		if e.IsPure() {
			pure++
		} else {
			mixed++
		}
	}

	return pure, mixed
}
