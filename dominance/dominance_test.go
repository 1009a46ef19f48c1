// SPDX-License-Identifier: MIT

package dominance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gamekit/dominance"
	"github.com/stretchr/testify/assert"
)

// TestFind_PrisonersDilemma: defect strictly dominates cooperate for both players.
func TestFind_PrisonersDilemma(t *testing.T) {
	res := dominance.Find(2, 2, []float64{3, 0, 5, 1}, []float64{3, 5, 0, 1})

	row, ok := res.Player1()
	assert.True(t, ok)
	assert.Equal(t, 1, row, "row 1 (defect) dominates for player 1")
	col, ok := res.Player2()
	assert.True(t, ok)
	assert.Equal(t, 1, col, "column 1 (defect) dominates for player 2")
}

// TestFind_MatchingPennies has no dominant strategy.
func TestFind_MatchingPennies(t *testing.T) {
	res := dominance.Find(2, 2, []float64{1, -1, -1, 1}, []float64{-1, 1, 1, -1})
	assert.Equal(t, dominance.Result{P1: dominance.None, P2: dominance.None}, res)
	_, ok := res.Player1()
	assert.False(t, ok)
	_, ok = res.Player2()
	assert.False(t, ok)
}

// TestFind_SingleCell: a 1×1 game's only action is dominant for both players.
func TestFind_SingleCell(t *testing.T) {
	res := dominance.Find(1, 1, []float64{4}, []float64{-4})
	assert.Equal(t, dominance.Result{P1: 0, P2: 0}, res)
}

// TestFind_TiesAreNotStrict checks that equality in a single cell breaks dominance.
func TestFind_TiesAreNotStrict(t *testing.T) {
	// Row 0 beats row 1 in column 0 but ties in column 1.
	res := dominance.Find(2, 2, []float64{2, 1, 1, 1}, []float64{0, 0, 0, 0})
	assert.Equal(t, dominance.None, res.P1)
	assert.Equal(t, dominance.None, res.P2, "all-equal payoffs have no dominant column")
}

// TestFind_NoEpsilon verifies that the smallest representable gap still dominates.
func TestFind_NoEpsilon(t *testing.T) {
	hi := math.Nextafter(1, 2)
	res := dominance.Find(2, 1, []float64{1, hi}, []float64{0, 0})
	assert.Equal(t, 1, res.P1)
}

// TestFind_MustBeatEveryRival checks dominance against all rows, not just one.
func TestFind_MustBeatEveryRival(t *testing.T) {
	// Row 2 beats row 0 everywhere but loses to row 1 in column 1.
	p1 := []float64{
		0, 0,
		1, 5,
		2, 3,
	}
	res := dominance.Find(3, 2, p1, make([]float64, 6))
	assert.Equal(t, dominance.None, res.P1)

	p1[3] = 2.5
	res = dominance.Find(3, 2, p1, make([]float64, 6))
	assert.Equal(t, 2, res.P1)
}

// TestFind_ColumnDominance exercises player 2 on a non-square game.
func TestFind_ColumnDominance(t *testing.T) {
	p2 := []float64{
		1, 4, 2,
		0, 3, 2.5,
	}
	res := dominance.Find(2, 3, make([]float64, 6), p2)
	assert.Equal(t, 1, res.P2)
}

// TestFind_NaNNeverDominates keeps NaN payoffs out of dominance in both directions.
func TestFind_NaNNeverDominates(t *testing.T) {
	res := dominance.Find(2, 1, []float64{math.NaN(), 0}, []float64{0, 0})
	assert.Equal(t, dominance.None, res.P1, "NaN > 0 and 0 > NaN are both false")
}

// TestFind_Soundness checks on random games that a reported row beats all others.
func TestFind_Soundness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		rows, cols := 1+rng.Intn(4), 1+rng.Intn(4)
		p1 := make([]float64, rows*cols)
		p2 := make([]float64, rows*cols)
		for k := range p1 {
			p1[k] = float64(rng.Intn(5))
			p2[k] = float64(rng.Intn(5))
		}
		res := dominance.Find(rows, cols, p1, p2)
		if i, ok := res.Player1(); ok {
			for k := 0; k < rows; k++ {
				for j := 0; j < cols && k != i; j++ {
					assert.Greater(t, p1[i*cols+j], p1[k*cols+j])
				}
			}
		}
		if j, ok := res.Player2(); ok {
			for l := 0; l < cols; l++ {
				for i := 0; i < rows && l != j; i++ {
					assert.Greater(t, p2[i*cols+j], p2[i*cols+l])
				}
			}
		}
	}
}
