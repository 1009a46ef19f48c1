// SPDX-License-Identifier: MIT

package nash

// DegenerateTolerance is the smallest denominator magnitude the 2×2 mixed
// solver accepts; below it the indifference system has no unique solution.
const DegenerateTolerance = 1e-10

// Solve returns every pure Nash equilibrium in row-major order followed, for
// 2×2 games, by the interior mixed equilibrium when one exists.
//
// p1 and p2 are row-major arrays of length rows·cols; callers validate the
// shape with payoff.Validate first. The result is empty (never nil) when no
// equilibrium is found.
func Solve(rows, cols int, p1, p2 []float64) []StrategyProfile {
	equilibria := SolvePure(rows, cols, p1, p2)
	if rows == 2 && cols == 2 {
		if mixed, ok := SolveMixed2x2(p1, p2); ok {
			equilibria = append(equilibria, mixed)
		}
	}

	return equilibria
}

// SolvePure checks every cell for a profitable unilateral deviation.
func SolvePure(rows, cols int, p1, p2 []float64) []StrategyProfile {
	equilibria := make([]StrategyProfile, 0)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rowCanImprove(rows, cols, p1, i, j) || colCanImprove(cols, p2, i, j) {
				continue
			}
			equilibria = append(equilibria, pureProfile(rows, cols, i, j))
		}
	}

	return equilibria
}

// rowCanImprove reports whether player 1 gains by leaving row i at column j.
func rowCanImprove(rows, cols int, p1 []float64, i, j int) bool {
	current := p1[i*cols+j]
	for r := 0; r < rows; r++ {
		if p1[r*cols+j] > current {
			return true
		}
	}

	return false
}

// colCanImprove reports whether player 2 gains by leaving column j at row i.
func colCanImprove(cols int, p2 []float64, i, j int) bool {
	current := p2[i*cols+j]
	for c := 0; c < cols; c++ {
		if p2[i*cols+c] > current {
			return true
		}
	}

	return false
}
