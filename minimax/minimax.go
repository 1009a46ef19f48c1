// SPDX-License-Identifier: MIT

package minimax

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gamekit/payoff"
)

// SaddleTolerance is the largest |maximin - minimax| gap still treated as a saddle point.
const SaddleTolerance = 1e-10

// Result is the outcome of Solve.
type Result struct {
	// Value is player 1's guaranteed floor (the maximin value).
	Value float64 `json:"value" yaml:"value"`
	// Row is the first row achieving the maximin value.
	Row int `json:"row" yaml:"row"`
	// Col is the first column achieving the minimax value.
	Col int `json:"col" yaml:"col"`
}

// Solve computes the maximin value with its row and the minimax column.
//
// Errors: payoff.ErrInvalidInput (wrapped) if len(payoffs) != rows·cols.
//
// A game with no rows reports Value = -Inf and Row = 0; a game with no columns
// reports +Inf row minima, so every row ties and Row = 0.
func Solve(rows, cols int, payoffs []float64) (Result, error) {
	if err := payoff.ValidateSingle(rows, cols, payoffs); err != nil {
		return Result{}, fmt.Errorf("minimax.Solve: %w", err)
	}
	maximin, row := maximinRow(rows, cols, payoffs)
	_, col := minimaxCol(rows, cols, payoffs)

	return Result{Value: maximin, Row: row, Col: col}, nil
}

// Bracket returns both sides of the zero-sum bracket maximin ≤ minimax.
//
// Errors: payoff.ErrInvalidInput (wrapped) if len(payoffs) != rows·cols.
func Bracket(rows, cols int, payoffs []float64) (maximin, minimax float64, err error) {
	if err = payoff.ValidateSingle(rows, cols, payoffs); err != nil {
		return 0, 0, fmt.Errorf("minimax.Bracket: %w", err)
	}
	maximin, _ = maximinRow(rows, cols, payoffs)
	minimax, _ = minimaxCol(rows, cols, payoffs)

	return maximin, minimax, nil
}

// HasSaddlePoint reports whether the bracket is closed within SaddleTolerance.
func HasSaddlePoint(maximin, minimax float64) bool {
	return math.Abs(maximin-minimax) < SaddleTolerance
}

// maximinRow scans rows in order, keeping the first row with the largest minimum.
func maximinRow(rows, cols int, payoffs []float64) (float64, int) {
	best, bestRow := math.Inf(-1), 0
	for i := 0; i < rows; i++ {
		rowMin := math.Inf(1)
		for j := 0; j < cols; j++ {
			// NaN never replaces the running minimum.
			if v := payoffs[i*cols+j]; v < rowMin {
				rowMin = v
			}
		}
		if rowMin > best {
			best, bestRow = rowMin, i
		}
	}

	return best, bestRow
}

// minimaxCol scans columns in order, keeping the first column with the smallest maximum.
func minimaxCol(rows, cols int, payoffs []float64) (float64, int) {
	best, bestCol := math.Inf(1), 0
	for j := 0; j < cols; j++ {
		colMax := math.Inf(-1)
		for i := 0; i < rows; i++ {
			if v := payoffs[i*cols+j]; v > colMax {
				colMax = v
			}
		}
		if colMax < best {
			best, bestCol = colMax, j
		}
	}

	return best, bestCol
}
