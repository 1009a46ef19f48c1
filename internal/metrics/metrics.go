// SPDX-License-Identifier: MIT

// Package metrics exposes prometheus collectors for solver activity.
//
// A nil *Recorder is valid and records nothing, so library users that do not
// care about metrics can leave it unset.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation labels.
const (
	OpNash      = "nash"
	OpMinimax   = "minimax"
	OpDominance = "dominance"
	OpAnalyze   = "analyze"
)

// Equilibrium kind labels.
const (
	KindPure  = "pure"
	KindMixed = "mixed"
)

const namespace = "gamekit"

// Recorder owns a private registry and the solver collectors.
type Recorder struct {
	registry   *prometheus.Registry
	calls      *prometheus.CounterVec
	failures   *prometheus.CounterVec
	equilibria *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewRecorder registers all collectors on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "calls_total",
			Help:      "Solver operations invoked, by operation.",
		}, []string{"op"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "failures_total",
			Help:      "Solver operations rejected by validation, by operation.",
		}, []string{"op"}),
		equilibria: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "equilibria_total",
			Help:      "Nash equilibria reported, by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solver",
			Name:      "duration_seconds",
			Help:      "Solver operation latency.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),
	}
	r.registry.MustRegister(r.calls, r.failures, r.equilibria, r.duration)

	return r
}

// ObserveCall counts one call of op and its latency since start; a non-nil err
// also counts a failure.
func (r *Recorder) ObserveCall(op string, start time.Time, err error) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(op).Inc()
	r.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		r.failures.WithLabelValues(op).Inc()
	}
}

// AddEquilibria counts reported equilibria by kind.
func (r *Recorder) AddEquilibria(pure, mixed int) {
	if r == nil {
		return
	}
	r.equilibria.WithLabelValues(KindPure).Add(float64(pure))
	r.equilibria.WithLabelValues(KindMixed).Add(float64(mixed))
}

// Registry returns the registry holding the solver collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
