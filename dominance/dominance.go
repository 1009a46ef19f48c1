// SPDX-License-Identifier: MIT

package dominance

// Find returns the strictly dominant strategy of each player.
//
// p1 and p2 are row-major payoff arrays of length rows·cols; callers validate
// the shape with payoff.Validate first. The first qualifying index in
// ascending order is reported (at most one can qualify when there are rivals).
// A 1×1 game has no rivals, so its single action is dominant for both players.
func Find(rows, cols int, p1, p2 []float64) Result {
	return Result{
		P1: dominantRow(rows, cols, p1),
		P2: dominantCol(rows, cols, p2),
	}
}

// dominantRow returns the first row beating every other row in every column.
func dominantRow(rows, cols int, payoffs []float64) int {
outer:
	for i := 0; i < rows; i++ {
		for k := 0; k < rows; k++ {
			if k == i {
				continue
			}
			for j := 0; j < cols; j++ {
				// !(a > b) rather than a <= b so that NaN never dominates.
				if !(payoffs[i*cols+j] > payoffs[k*cols+j]) {
					continue outer
				}
			}
		}
		return i
	}

	return None
}

// dominantCol returns the first column beating every other column in every row.
func dominantCol(rows, cols int, payoffs []float64) int {
outer:
	for j := 0; j < cols; j++ {
		for l := 0; l < cols; l++ {
			if l == j {
				continue
			}
			for i := 0; i < rows; i++ {
				if !(payoffs[i*cols+j] > payoffs[i*cols+l]) {
					continue outer
				}
			}
		}
		return j
	}

	return None
}
