// Package gamekit is a two-player game solver: strict dominance, maximin and
// minimax, and Nash equilibria of bimatrix games.
//
// What is inside?
//
//	payoff/     - payoff matrices: validation, row-major storage, YAML/JSON documents
//	dominance/  - strictly dominant row and column
//	minimax/    - maximin value, securing row, minimax column, saddle check
//	nash/       - pure equilibria of any m×n game, closed-form 2×2 mixed equilibrium
//	solver/     - façade running all three with logging and metrics
//	analysis/   - ranks competing predictions by casting them as a game
//	store/      - concurrent handle store for results kept across requests
//	cmd/gamekit - CLI: solve a game file or serve the HTTP API
//
// Quick example (prisoner's dilemma):
//
//	         C       D
//	  C   (3,3)   (0,5)
//	  D   (5,0)   (1,1)
//
//	m, _ := payoff.New(2, 2, []float64{3, 0, 5, 1}, []float64{3, 5, 0, 1})
//	report, _ := solver.New().Analyze(m)
//	// report.Equilibria: [([0 1], [0 1])]   (D, D)
//	// report.Dominance:  {P1: 1, P2: 1}
//	// report.Minimax:    {Value: 1, Row: 1, Col: 1}
//
// Payoffs are flat row-major slices: entry (i, j) of an m×n game lives at
// index i·n + j. Comparisons are exact except for the 2×2 degeneracy check
// and the saddle-point check, both at 1e-10.
package gamekit
