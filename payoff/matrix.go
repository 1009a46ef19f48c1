// SPDX-License-Identifier: MIT

package payoff

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Player selects one side of a two-player game.
type Player int

const (
	// Player1 chooses rows.
	Player1 Player = iota + 1
	// Player2 chooses columns.
	Player2
)

// String implements fmt.Stringer.
func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Matrix is a validated, read-only two-player payoff matrix.
// Both payoff arrays are row-major with length rows·cols; cell (i, j) lives
// at index i*cols + j.
type Matrix struct {
	rows, cols int
	p1, p2     []float64
}

// New validates the shape and returns a Matrix holding private copies of p1
// and p2, so later writes by the caller cannot change the game.
// Complexity: O(rows·cols).
func New(rows, cols int, p1, p2 []float64) (*Matrix, error) {
	if _, _, _, _, err := Validate(rows, cols, p1, p2); err != nil {
		return nil, fmt.Errorf("payoff.New: %w", err)
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		p1:   append([]float64(nil), p1...),
		p2:   append([]float64(nil), p2...),
	}, nil
}

// NewZeroSum builds a game where player 2's payoff is the negation of player 1's.
// Complexity: O(rows·cols).
func NewZeroSum(rows, cols int, payoffs []float64) (*Matrix, error) {
	if err := ValidateSingle(rows, cols, payoffs); err != nil {
		return nil, fmt.Errorf("payoff.NewZeroSum: %w", err)
	}
	neg := make([]float64, len(payoffs))
	for k, v := range payoffs {
		neg[k] = -v
	}

	return &Matrix{
		rows: rows,
		cols: cols,
		p1:   append([]float64(nil), payoffs...),
		p2:   neg,
	}, nil
}

// Rows returns the number of player 1 actions.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of player 2 actions.
func (m *Matrix) Cols() int { return m.cols }

// At returns both players' payoffs at (i, j).
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	k := i*m.cols + j

	return m.p1[k], m.p2[k], nil
}

// Payoffs returns a copy of the given player's row-major payoff array.
// Complexity: O(rows·cols).
func (m *Matrix) Payoffs(p Player) ([]float64, error) {
	src, err := m.side(p)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), src...), nil
}

// Dense returns the given player's payoffs as a gonum matrix backed by a fresh copy.
// gonum cannot represent empty matrices, so a game with zero rows or columns
// yields ErrEmpty.
// Complexity: O(rows·cols).
func (m *Matrix) Dense(p Player) (*mat.Dense, error) {
	src, err := m.side(p)
	if err != nil {
		return nil, err
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, fmt.Errorf("Matrix.Dense: %w", ErrEmpty)
	}

	return mat.NewDense(m.rows, m.cols, append([]float64(nil), src...)), nil
}

// ExpectedPayoffs evaluates the expected payoff of both players when player 1
// mixes with x (length rows) and player 2 mixes with y (length cols):
//
//	u1 = xᵀ·P1·y,  u2 = xᵀ·P2·y
//
// An empty game has expected payoffs (0, 0).
// Complexity: O(rows·cols).
func (m *Matrix) ExpectedPayoffs(x, y []float64) (float64, float64, error) {
	if err := ValidateStrategy(x, m.rows); err != nil {
		return 0, 0, fmt.Errorf("Matrix.ExpectedPayoffs: player1: %w", err)
	}
	if err := ValidateStrategy(y, m.cols); err != nil {
		return 0, 0, fmt.Errorf("Matrix.ExpectedPayoffs: player2: %w", err)
	}
	if m.rows == 0 || m.cols == 0 {
		return 0, 0, nil
	}

	xv := mat.NewVecDense(m.rows, append([]float64(nil), x...))
	yv := mat.NewVecDense(m.cols, append([]float64(nil), y...))
	a := mat.NewDense(m.rows, m.cols, m.p1)
	b := mat.NewDense(m.rows, m.cols, m.p2)

	return mat.Inner(xv, a, yv), mat.Inner(xv, b, yv), nil
}

// String renders the game as a bimatrix, one row per line: "[(a,b) (c,d)]".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			k := i*m.cols + j
			fmt.Fprintf(&sb, "(%g,%g)", m.p1[k], m.p2[k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// side returns the backing slice for p without copying.
func (m *Matrix) side(p Player) ([]float64, error) {
	switch p {
	case Player1:
		return m.p1, nil
	case Player2:
		return m.p2, nil
	default:
		return nil, fmt.Errorf("Matrix: %v: %w", p, ErrPlayer)
	}
}
