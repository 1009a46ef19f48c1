// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/gamekit/analysis"
	"github.com/katalvlaran/gamekit/payoff"
	"github.com/katalvlaran/gamekit/store"
)

// classify maps a domain error onto an HTTP status and error type.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, payoff.ErrInvalidInput),
		errors.Is(err, analysis.ErrInvalidPrediction),
		errors.Is(err, analysis.ErrNoPredictions):
		return http.StatusBadRequest, ErrTypeInvalidInput
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, ErrTypeNotFound
	default:
		return http.StatusInternalServerError, ErrTypeInternal
	}
}

// writeDomainError classifies err and writes it.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error, context map[string]any) {
	status, errType := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(err, "request failed", "path", r.URL.Path)
	}
	s.writeError(w, r, status, errType, err.Error(), context)
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string, context map[string]any) {
	s.writeJSON(w, status, APIError{
		Type:      errType,
		Message:   message,
		Context:   context,
		RequestID: middleware.GetReqID(r.Context()),
	})
}
