// SPDX-License-Identifier: MIT

// Package api serves the solver and the prediction engine over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/gamekit/analysis"
	"github.com/katalvlaran/gamekit/internal/logging"
	"github.com/katalvlaran/gamekit/internal/metrics"
	"github.com/katalvlaran/gamekit/payoff"
	"github.com/katalvlaran/gamekit/solver"
	"github.com/katalvlaran/gamekit/store"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Timeouts.
const (
	RequestTimeout  = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
)

// Server handles HTTP requests.
type Server struct {
	solver    *solver.Solver
	engine    *analysis.Engine
	analyses  *store.Store[analysis.Result]
	metrics   *metrics.Recorder
	logger    logr.Logger
	startTime time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logr.Logger) Option {
	return func(s *Server) { s.logger = l.WithName("api") }
}

// WithMetrics exposes rec on /metrics.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Server) { s.metrics = rec }
}

// NewServer returns a Server over sv and engine.
func NewServer(sv *solver.Solver, engine *analysis.Engine, opts ...Option) *Server {
	s := &Server{
		solver:    sv,
		engine:    engine,
		analyses:  store.New[analysis.Result](),
		logger:    logging.Discard(),
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Post("/nash", s.handleNash)
			r.Post("/minimax", s.handleMinimax)
			r.Post("/dominance", s.handleDominance)
			r.Post("/analyze", s.handleAnalyzeGame)
		})
		r.Route("/analyses", func(r chi.Router) {
			r.Get("/", s.handleListAnalyses)
			r.Post("/", s.handleCreateAnalysis)
			r.Get("/{id}", s.handleGetAnalysis)
			r.Delete("/{id}", s.handleDeleteAnalysis)
		})
	})

	return r
}

// logRequests logs each request at debug verbosity.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.V(logging.DEBUG).Info("request",
			"method", r.Method, "path", r.URL.Path, "status", ww.Status(),
			"duration", time.Since(start), "request_id", middleware.GetReqID(r.Context()))
	})
}

// writeJSON writes data as a JSON response. The body is encoded before the
// header is sent, so an encoding failure becomes a 500 with an error body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		s.logger.Error(err, "encode response")
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(APIError{Type: ErrTypeInternal, Message: "failed to encode response"})
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.V(logging.DEBUG).Info("write response", "error", err.Error())
	}
}

// decode reads a JSON body into dst, writing the error response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidJSON, "malformed JSON body",
			map[string]any{"cause": err.Error()})
		return false
	}

	return true
}

// game decodes a GameRequest into a payoff matrix.
func (s *Server) game(w http.ResponseWriter, r *http.Request) (*payoff.Matrix, bool) {
	var req GameRequest
	if !s.decode(w, r, &req) {
		return nil, false
	}

	var (
		m   *payoff.Matrix
		err error
	)
	if req.P2 == nil {
		m, err = payoff.NewZeroSum(req.Rows, req.Cols, req.P1)
	} else {
		m, err = payoff.New(req.Rows, req.Cols, req.P1, req.P2)
	}
	if err != nil {
		s.writeDomainError(w, r, err, map[string]any{"rows": req.Rows, "cols": req.Cols})
		return nil, false
	}

	return m, true
}

// handle parses the {id} path parameter.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) (store.Handle, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeInvalidInput, "invalid analysis id",
			map[string]any{"id": raw})
		return 0, false
	}

	return store.Handle(id), true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		Analyses: s.analyses.Len(),
	})
}

func (s *Server) handleNash(w http.ResponseWriter, r *http.Request) {
	m, ok := s.game(w, r)
	if !ok {
		return
	}
	eq, err := s.solver.SolveNash(m)
	if err != nil {
		s.writeDomainError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, NashResponse{Equilibria: eq})
}

func (s *Server) handleMinimax(w http.ResponseWriter, r *http.Request) {
	m, ok := s.game(w, r)
	if !ok {
		return
	}
	res, err := s.solver.SolveMinimax(m)
	if err != nil {
		s.writeDomainError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDominance(w http.ResponseWriter, r *http.Request) {
	m, ok := s.game(w, r)
	if !ok {
		return
	}
	res, err := s.solver.FindDominantStrategies(m)
	if err != nil {
		s.writeDomainError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleAnalyzeGame(w http.ResponseWriter, r *http.Request) {
	m, ok := s.game(w, r)
	if !ok {
		return
	}
	report, err := s.solver.Analyze(m)
	if err != nil {
		s.writeDomainError(w, r, err, nil)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, AnalysisListResponse{IDs: s.analyses.Handles()})
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.engine.Analyze(req.Predictions)
	if err != nil {
		s.writeDomainError(w, r, err, map[string]any{"predictions": len(req.Predictions)})
		return
	}
	id := s.analyses.Insert(res)
	s.logger.Info("analysis stored", "id", id, "predictions", len(req.Predictions))
	s.writeJSON(w, http.StatusCreated, AnalysisResponse{ID: id, Result: res})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.handle(w, r)
	if !ok {
		return
	}
	var resp AnalysisResponse
	err := s.analyses.With(id, func(res analysis.Result) {
		resp = AnalysisResponse{ID: id, Result: res}
	})
	if err != nil {
		s.writeDomainError(w, r, err, map[string]any{"id": id})
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.handle(w, r)
	if !ok {
		return
	}
	if err := s.analyses.Remove(id); err != nil {
		s.writeDomainError(w, r, err, map[string]any{"id": id})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Run serves Routes on addr until ctx is cancelled, then shuts down
// gracefully within ShutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("api: serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}

	return nil
}
