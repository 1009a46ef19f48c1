// SPDX-License-Identifier: MIT

package api

import (
	"github.com/katalvlaran/gamekit/analysis"
	"github.com/katalvlaran/gamekit/nash"
	"github.com/katalvlaran/gamekit/store"
)

// APIError is the JSON body of every error response.
type APIError struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// Error implements the error interface.
func (e APIError) Error() string { return e.Message }

// Error types.
const (
	ErrTypeInvalidInput = "invalid_input"
	ErrTypeInvalidJSON  = "invalid_json"
	ErrTypeNotFound     = "not_found"
	ErrTypeInternal     = "internal_error"
)

// GameRequest describes a bimatrix game in row-major order. When P2 is
// omitted the game is zero-sum and player 2 receives -P1.
type GameRequest struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	P1   []float64 `json:"p1"`
	P2   []float64 `json:"p2,omitempty"`
}

// NashResponse lists the equilibria of a game.
type NashResponse struct {
	Equilibria []nash.StrategyProfile `json:"equilibria"`
}

// AnalysisRequest submits predictions for analysis.
type AnalysisRequest struct {
	Predictions []analysis.Prediction `json:"predictions"`
}

// AnalysisResponse is a stored analysis.
type AnalysisResponse struct {
	ID     store.Handle    `json:"id"`
	Result analysis.Result `json:"result"`
}

// AnalysisListResponse lists stored analysis handles.
type AnalysisListResponse struct {
	IDs []store.Handle `json:"ids"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Uptime   string `json:"uptime"`
	Analyses int    `json:"analyses"`
}
