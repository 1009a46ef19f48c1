// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveCall(t *testing.T) {
	r := NewRecorder()
	r.ObserveCall(OpNash, time.Now(), nil)
	r.ObserveCall(OpNash, time.Now(), nil)
	r.ObserveCall(OpMinimax, time.Now(), errors.New("bad shape"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.calls.WithLabelValues(OpNash)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.calls.WithLabelValues(OpMinimax)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues(OpMinimax)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.failures.WithLabelValues(OpNash)))
}

func TestRecorder_AddEquilibria(t *testing.T) {
	r := NewRecorder()
	r.AddEquilibria(2, 1)
	r.AddEquilibria(1, 0)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.equilibria.WithLabelValues(KindPure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.equilibria.WithLabelValues(KindMixed)))
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveCall(OpNash, time.Now(), nil)
	r.AddEquilibria(1, 1)
	assert.Nil(t, r.Registry())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveCall(OpDominance, time.Now(), nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `gamekit_solver_calls_total{op="dominance"} 1`))
}
