// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/gamekit/internal/metrics"
)

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(s *Solver) { s.logger = l.WithName("solver") }
}

// WithMetrics sets the metrics recorder. The default (nil) records nothing.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Solver) { s.metrics = r }
}
