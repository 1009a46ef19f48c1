// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gamekit/dominance"
	"github.com/katalvlaran/gamekit/minimax"
	"github.com/katalvlaran/gamekit/nash"
	"github.com/katalvlaran/gamekit/payoff"
	"github.com/katalvlaran/gamekit/solver"
)

const prisonersDilemma = `
name: prisoners dilemma
rows: 2
cols: 2
p1: [3, 0, 5, 1]
p2: [3, 5, 0, 1]
`

func gameFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level=error"))
	err := cmd.Execute()

	return out.Bytes(), err
}

// TestSolve_All verifies the default operation prints the full report.
func TestSolve_All(t *testing.T) {
	out, err := run(t, "solve", "-f", gameFile(t, prisonersDilemma))
	require.NoError(t, err)

	var report solver.Report
	require.NoError(t, json.Unmarshal(out, &report))
	require.Len(t, report.Equilibria, 1)
	assert.Equal(t, []float64{0, 1}, report.Equilibria[0].Player1)
	assert.Equal(t, dominance.Result{P1: 1, P2: 1}, report.Dominance)
	assert.Equal(t, minimax.Result{Value: 1, Row: 1, Col: 1}, report.Minimax)
}

// TestSolve_SingleOps verifies each --op value.
func TestSolve_SingleOps(t *testing.T) {
	path := gameFile(t, prisonersDilemma)

	out, err := run(t, "solve", "-f", path, "--op", "nash")
	require.NoError(t, err)
	var eq struct {
		Equilibria []nash.StrategyProfile `json:"equilibria"`
	}
	require.NoError(t, json.Unmarshal(out, &eq))
	assert.Len(t, eq.Equilibria, 1)

	out, err = run(t, "solve", "-f", path, "--op", "minimax")
	require.NoError(t, err)
	var mm minimax.Result
	require.NoError(t, json.Unmarshal(out, &mm))
	assert.Equal(t, 1.0, mm.Value)

	out, err = run(t, "solve", "-f", path, "--op", "dominance")
	require.NoError(t, err)
	var dom dominance.Result
	require.NoError(t, json.Unmarshal(out, &dom))
	assert.Equal(t, dominance.Result{P1: 1, P2: 1}, dom)
}

// TestSolve_ZeroSumDocument verifies a zero-sum document without p2.
func TestSolve_ZeroSumDocument(t *testing.T) {
	path := gameFile(t, "rows: 2\ncols: 2\nzero_sum: true\np1: [1, -1, -1, 1]\n")
	out, err := run(t, "solve", "-f", path, "--op", "nash")
	require.NoError(t, err)

	var eq struct {
		Equilibria []nash.StrategyProfile `json:"equilibria"`
	}
	require.NoError(t, json.Unmarshal(out, &eq))
	require.Len(t, eq.Equilibria, 1)
	assert.InDelta(t, 0.5, eq.Equilibria[0].Player1[0], 1e-9)
}

// TestSolve_Errors verifies bad input is reported.
func TestSolve_Errors(t *testing.T) {
	_, err := run(t, "solve", "-f", gameFile(t, "rows: 2\ncols: 2\np1: [1]\np2: [1]\n"))
	assert.ErrorIs(t, err, payoff.ErrInvalidInput)

	_, err = run(t, "solve", "-f", gameFile(t, prisonersDilemma), "--op", "chess")
	assert.ErrorContains(t, err, "unknown --op")

	_, err = run(t, "solve", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "solve")
	assert.Error(t, err)
}

// TestNewApp_Metrics verifies the metrics flag controls the recorder.
func TestNewApp_Metrics(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.PersistentFlags().Parse([]string{"--metrics=false", "--max-strategies=3"}))
	a, err := newApp("", cmd)
	require.NoError(t, err)
	assert.Nil(t, a.metrics)
	assert.Equal(t, 3, a.engine.MaxStrategies())

	a, err = newApp("", newRootCmd())
	require.NoError(t, err)
	assert.NotNil(t, a.metrics)
}

// TestSolve_NonFiniteValues verifies -Inf payoffs and empty games print instead of failing.
func TestSolve_NonFiniteValues(t *testing.T) {
	cases := []struct {
		name, body string
		sign       int
	}{
		{"neg inf row", "rows: 1\ncols: 2\np1: [-.inf, 3]\np2: [0, 0]\n", -1},
		{"0x0", "rows: 0\ncols: 0\np1: []\np2: []\n", -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := gameFile(t, tc.body)
			for _, op := range []string{"minimax", "all"} {
				out, err := run(t, "solve", "-f", path, "--op", op)
				require.NoError(t, err, op)
				require.NotEmpty(t, out, op)

				var value float64
				if op == "minimax" {
					var res minimax.Result
					require.NoError(t, json.Unmarshal(out, &res))
					value = res.Value
				} else {
					var report solver.Report
					require.NoError(t, json.Unmarshal(out, &report))
					value = report.Minimax.Value
				}
				assert.True(t, math.IsInf(value, tc.sign), "%s: %v", op, value)
			}
		})
	}
}

// TestSolve_SampleGames verifies the game files shipped under examples/games.
func TestSolve_SampleGames(t *testing.T) {
	const dir = "../../examples/games"

	out, err := run(t, "solve", "-f", filepath.Join(dir, "prisoners_dilemma.yaml"))
	require.NoError(t, err)
	var report solver.Report
	require.NoError(t, json.Unmarshal(out, &report))
	assert.Equal(t, dominance.Result{P1: 1, P2: 1}, report.Dominance)

	rps := filepath.Join(dir, "rock_paper_scissors.yaml")
	out, err = run(t, "solve", "-f", rps, "--op", "minimax")
	require.NoError(t, err)
	var res minimax.Result
	require.NoError(t, json.Unmarshal(out, &res))
	// Every pure row can lose, so the floor is -1 while the mixed value is 0.
	assert.Equal(t, minimax.Result{Value: -1, Row: 0, Col: 0}, res)

	m, doc, err := payoff.Load(rps)
	require.NoError(t, err)
	assert.Equal(t, "rock paper scissors", doc.Name)
	p1, err := m.Payoffs(payoff.Player1)
	require.NoError(t, err)
	lo, hi, err := minimax.Bracket(m.Rows(), m.Cols(), p1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.False(t, minimax.HasSaddlePoint(lo, hi))

	out, err = run(t, "solve", "-f", rps, "--op", "nash")
	require.NoError(t, err)
	var eq struct {
		Equilibria []nash.StrategyProfile `json:"equilibria"`
	}
	require.NoError(t, json.Unmarshal(out, &eq))
	assert.Empty(t, eq.Equilibria)
}
