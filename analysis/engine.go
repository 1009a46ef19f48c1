// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"sort"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/gamekit/dominance"
	"github.com/katalvlaran/gamekit/internal/logging"
	"github.com/katalvlaran/gamekit/nash"
	"github.com/katalvlaran/gamekit/payoff"
	"github.com/katalvlaran/gamekit/solver"
)

const (
	// DefaultMaxStrategies caps how many predictions enter the game.
	DefaultMaxStrategies = 10

	// SupportTolerance is the probability above which an action is reported.
	SupportTolerance = 1e-10
)

// Option configures an Engine.
type Option func(*Engine)

// WithMaxStrategies caps the number of predictions analyzed. Values < 1 keep
// the default.
func WithMaxStrategies(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxStrategies = n
		}
	}
}

// WithSolver sets the solver façade used for the game.
func WithSolver(s *solver.Solver) Option {
	return func(e *Engine) { e.solver = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(e *Engine) { e.logger = l.WithName("analysis") }
}

// Engine ranks predictions by game-theoretic reasoning. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	maxStrategies int
	solver        *solver.Solver
	logger        logr.Logger
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxStrategies: DefaultMaxStrategies,
		logger:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.solver == nil {
		e.solver = solver.New()
	}

	return e
}

// MaxStrategies reports the prediction cap.
func (e *Engine) MaxStrategies() int { return e.maxStrategies }

// Analyze solves the game built from the first MaxStrategies predictions.
// An empty prediction set yields an empty Result and no error.
func (e *Engine) Analyze(preds []Prediction) (Result, error) {
	if len(preds) > e.maxStrategies {
		e.logger.V(logging.DEBUG).Info("truncating predictions",
			"given", len(preds), "max", e.maxStrategies)
		preds = preds[:e.maxStrategies]
	}
	if len(preds) == 0 {
		return emptyResult(), nil
	}

	m, err := BuildPayoffMatrix(preds)
	if err != nil {
		return Result{}, fmt.Errorf("Engine.Analyze: %w", err)
	}
	report, err := e.solver.Analyze(m)
	if err != nil {
		return Result{}, fmt.Errorf("Engine.Analyze: %w", err)
	}

	equilibria, err := nameEquilibria(m, report.Equilibria, preds)
	if err != nil {
		return Result{}, fmt.Errorf("Engine.Analyze: %w", err)
	}
	value := report.Minimax.Value
	res := Result{
		Equilibria:         equilibria,
		DominantStrategies: nameDominant(report.Dominance, preds),
		MinimaxValue:       &value,
		RankedPredictions:  rank(preds, report.Equilibria),
	}
	e.logger.Info("predictions analyzed",
		"predictions", len(preds), "equilibria", len(res.Equilibria), "minimax", value)

	return res, nil
}

func emptyResult() Result {
	return Result{
		Equilibria:        []Equilibrium{},
		RankedPredictions: []Prediction{},
	}
}

// nameEquilibria converts index profiles into per-player strategies named by
// prediction id, with the expected payoff of each profile.
func nameEquilibria(m *payoff.Matrix, eq []nash.StrategyProfile, preds []Prediction) ([]Equilibrium, error) {
	out := make([]Equilibrium, 0, len(eq))
	for _, e := range eq {
		u1, u2, err := m.ExpectedPayoffs(e.Player1, e.Player2)
		if err != nil {
			return nil, err
		}
		out = append(out, Equilibrium{
			Profiles: []PlayerStrategy{
				named(Nature, e.Player1, preds),
				named(Agent, e.Player2, preds),
			},
			Payoff: [2]float64{u1, u2},
		})
	}

	return out, nil
}

func named(player string, dist []float64, preds []Prediction) PlayerStrategy {
	support := nash.Support(dist, SupportTolerance)
	ps := PlayerStrategy{Player: player, Strategies: make([]Strategy, 0, len(support))}
	for _, i := range support {
		ps.Strategies = append(ps.Strategies, Strategy{
			Name:         preds[i].ID,
			Probability:  dist[i],
			PredictionID: preds[i].ID,
		})
	}

	return ps
}

func nameDominant(d dominance.Result, preds []Prediction) DominantStrategies {
	var out DominantStrategies
	if i, ok := d.Player1(); ok {
		id := preds[i].ID
		out.Nature = &id
	}
	if j, ok := d.Player2(); ok {
		id := preds[j].ID
		out.Agent = &id
	}

	return out
}

// rank orders predictions by total probability across all equilibria, both
// players summed. Ties keep input order.
func rank(preds []Prediction, eq []nash.StrategyProfile) []Prediction {
	scores := make([]float64, len(preds))
	for _, e := range eq {
		for i, p := range e.Player1 {
			scores[i] += p
		}
		for j, q := range e.Player2 {
			scores[j] += q
		}
	}

	idx := make([]int, len(preds))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	out := make([]Prediction, len(preds))
	for k, i := range idx {
		out[k] = preds[i]
	}

	return out
}
