// SPDX-License-Identifier: MIT

package nash

// SolveMixed2x2 returns the interior mixed equilibrium of a 2×2 game.
//
// p1 and p2 must hold exactly four row-major payoffs each. ok is false when
// either indifference denominator is degenerate or when either probability
// falls on or outside the boundary of (0, 1).
func SolveMixed2x2(p1, p2 []float64) (profile StrategyProfile, ok bool) {
	if len(p1) != 4 || len(p2) != 4 {
		return StrategyProfile{}, false
	}

	// q = P(column 0) makes player 1 indifferent between rows.
	q, ok := indifference(p1[0], p1[1], p1[2], p1[3])
	if !ok {
		return StrategyProfile{}, false
	}
	// p = P(row 0) applies the same closed form to player 2's payoffs
	// taken in row-major order.
	p, ok := indifference(p2[0], p2[1], p2[2], p2[3])
	if !ok {
		return StrategyProfile{}, false
	}
	if !interior(p) || !interior(q) {
		return StrategyProfile{}, false
	}

	return StrategyProfile{
		Player1: []float64{p, 1 - p},
		Player2: []float64{q, 1 - q},
	}, true
}

// indifference solves a·x + b·(1-x) = c·x + d·(1-x) for x.
func indifference(a, b, c, d float64) (float64, bool) {
	denom := (a - b) - (c - d)
	if denom < DegenerateTolerance && denom > -DegenerateTolerance {
		return 0, false
	}

	return (d - b) / denom, true
}

// interior reports 0 < x < 1; NaN is rejected.
func interior(x float64) bool {
	return x > 0 && x < 1
}
