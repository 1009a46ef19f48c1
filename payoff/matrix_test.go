// SPDX-License-Identifier: MIT

package payoff_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gamekit/payoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_CopiesInput ensures later writes to the caller's slices do not leak
// into the matrix.
func TestNew_CopiesInput(t *testing.T) {
	p1 := []float64{1, 2, 3, 4}
	p2 := []float64{5, 6, 7, 8}
	m, err := payoff.New(2, 2, p1, p2)
	require.NoError(t, err)

	p1[0], p2[3] = 100, 100
	a, b, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 5.0, b)
	_, b, _ = m.At(1, 1)
	assert.Equal(t, 8.0, b)
}

// TestNew_Invalid propagates ErrInvalidInput.
func TestNew_Invalid(t *testing.T) {
	_, err := payoff.New(2, 2, []float64{1}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, payoff.ErrInvalidInput)
}

// TestMatrix_At checks row-major addressing and bounds.
func TestMatrix_At(t *testing.T) {
	m, err := payoff.New(2, 3, []float64{0, 1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)

	a, b, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, a)
	assert.Equal(t, 0.0, b)

	_, _, err = m.At(2, 0)
	assert.ErrorIs(t, err, payoff.ErrOutOfRange)
	_, _, err = m.At(0, -1)
	assert.ErrorIs(t, err, payoff.ErrOutOfRange)
}

// TestMatrix_Payoffs returns copies and rejects unknown players.
func TestMatrix_Payoffs(t *testing.T) {
	m, err := payoff.New(1, 2, []float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)

	got, err := m.Payoffs(payoff.Player2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, got)
	got[0] = 99
	again, _ := m.Payoffs(payoff.Player2)
	assert.Equal(t, 3.0, again[0], "Payoffs must return a copy")

	_, err = m.Payoffs(payoff.Player(7))
	assert.ErrorIs(t, err, payoff.ErrPlayer)
}

// TestNewZeroSum negates player 1's payoffs for player 2.
func TestNewZeroSum(t *testing.T) {
	m, err := payoff.NewZeroSum(2, 2, []float64{1, -1, -1, 1})
	require.NoError(t, err)
	p2, _ := m.Payoffs(payoff.Player2)
	assert.Equal(t, []float64{-1, 1, 1, -1}, p2)

	_, err = payoff.NewZeroSum(2, 2, []float64{1})
	assert.ErrorIs(t, err, payoff.ErrInvalidInput)
}

// TestMatrix_Dense exposes gonum matrices and refuses empty games.
func TestMatrix_Dense(t *testing.T) {
	m, err := payoff.New(2, 2, []float64{3, 0, 5, 1}, []float64{3, 5, 0, 1})
	require.NoError(t, err)

	d, err := m.Dense(payoff.Player1)
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 5.0, d.At(1, 0))

	d.Set(1, 0, -1)
	a, _, _ := m.At(1, 0)
	assert.Equal(t, 5.0, a, "Dense must not alias the matrix")

	empty, err := payoff.New(0, 3, nil, nil)
	require.NoError(t, err)
	_, err = empty.Dense(payoff.Player1)
	assert.ErrorIs(t, err, payoff.ErrEmpty)
}

// TestMatrix_ExpectedPayoffs evaluates xᵀAy for pure and mixed profiles.
func TestMatrix_ExpectedPayoffs(t *testing.T) {
	// Matching pennies.
	m, err := payoff.New(2, 2, []float64{1, -1, -1, 1}, []float64{-1, 1, 1, -1})
	require.NoError(t, err)

	u1, u2, err := m.ExpectedPayoffs([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, u1)
	assert.Equal(t, 1.0, u2)

	u1, u2, err = m.ExpectedPayoffs([]float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, u1, 1e-12)
	assert.InDelta(t, 0.0, u2, 1e-12)

	_, _, err = m.ExpectedPayoffs([]float64{1}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, payoff.ErrInvalidInput)
}

// TestMatrix_InfinitePayoffs ensures ±Inf entries are accepted as data.
func TestMatrix_InfinitePayoffs(t *testing.T) {
	m, err := payoff.New(1, 2, []float64{math.Inf(1), math.Inf(-1)}, []float64{0, 0})
	require.NoError(t, err)
	a, _, _ := m.At(0, 1)
	assert.True(t, math.IsInf(a, -1))
}

// TestMatrix_String renders a bimatrix.
func TestMatrix_String(t *testing.T) {
	m, err := payoff.New(2, 2, []float64{3, 0, 5, 1}, []float64{3, 5, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "[(3,3) (0,5)]\n[(5,0) (1,1)]\n", m.String())
	assert.Equal(t, "player1", payoff.Player1.String())
}
