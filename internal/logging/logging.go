// SPDX-License-Identifier: MIT

// Package logging builds the logr loggers used across gamekit.
//
// Call sites log through logr with verbosity levels:
//
//	logger.Info("solved", "op", "nash")                // INFO
//	logger.V(logging.DEBUG).Info("scan", "rows", rows) // DEBUG
//
// The backend is zap (JSON in production, console in development) adapted by zapr.
package logging

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Options selects level and encoding.
type Options struct {
	// Level is one of trace, debug, info, warn, error.
	Level string
	// Development switches to the human-readable console encoder.
	Development bool
}

// New returns a zap-backed logr.Logger.
func New(opts Options) (logr.Logger, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build zap logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// Discard returns a logger that drops everything.
func Discard() logr.Logger { return logr.Discard() }

// ValidateLevel reports whether s names a known level.
func ValidateLevel(s string) error {
	_, err := parseLevel(s)

	return err
}

// parseLevel maps a level name onto zap. logr's V(n) is zap level -n, so
// "trace" sits one step below zap's debug.
func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}
