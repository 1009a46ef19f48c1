// SPDX-License-Identifier: MIT

package analysis

import "errors"

// Player names used in results.
const (
	Nature = "nature"
	Agent  = "agent"
)

var (
	// ErrNoPredictions indicates an empty prediction set where a game is required.
	ErrNoPredictions = errors.New("analysis: no predictions")

	// ErrInvalidPrediction indicates a prediction with an empty id or a
	// confidence outside [0, 1].
	ErrInvalidPrediction = errors.New("analysis: invalid prediction")
)

// Prediction is one candidate outcome with a confidence in [0, 1].
type Prediction struct {
	ID           string   `json:"id" yaml:"id"`
	Description  string   `json:"description" yaml:"description"`
	Confidence   float64  `json:"confidence" yaml:"confidence"`
	Reasoning    string   `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
	SourceSeries []string `json:"source_series,omitempty" yaml:"source_series,omitempty"`
}

// Strategy is one action of a player with its probability.
type Strategy struct {
	Name         string  `json:"name"`
	Probability  float64 `json:"probability"`
	PredictionID string  `json:"prediction_id"`
}

// PlayerStrategy lists a player's actions played with positive probability.
type PlayerStrategy struct {
	Player     string     `json:"player"`
	Strategies []Strategy `json:"strategies"`
}

// Equilibrium is a Nash equilibrium expressed over predictions, with the
// expected payoff of (nature, agent).
type Equilibrium struct {
	Profiles []PlayerStrategy `json:"profiles"`
	Payoff   [2]float64       `json:"payoff"`
}

// DominantStrategies names each player's strictly dominant prediction, if any.
type DominantStrategies struct {
	Nature *string `json:"nature"`
	Agent  *string `json:"agent"`
}

// Result is the game-theoretic view of a prediction set.
type Result struct {
	Equilibria         []Equilibrium      `json:"equilibria"`
	DominantStrategies DominantStrategies `json:"dominant_strategies"`
	MinimaxValue       *float64           `json:"minimax_value"`
	RankedPredictions  []Prediction       `json:"ranked_predictions"`
}
