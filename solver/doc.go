// SPDX-License-Identifier: MIT

// Package solver is the EquilibriumSolver façade over a validated payoff.Matrix.
//
// What & Why:
//
//	The algorithm packages (nash, minimax, dominance) are pure functions over
//	raw row-major arrays. Solver binds them to a *payoff.Matrix, which already
//	guarantees the shape invariant, and adds the ambient concerns the pure
//	packages stay free of: structured logging (logr) and prometheus metrics.
//
// Concurrency:
//
//	A Solver holds only immutable configuration, a logger and a metrics
//	recorder; it is safe for concurrent use and is meant to be shared.
//
// Operations:
//
//	SolveNash              - pure equilibria + 2×2 mixed equilibrium.
//	SolveMinimax           - maximin value / rows from player 1's payoffs.
//	FindDominantStrategies - strictly dominant row / column.
//	Analyze                - all three in one Report.
package solver
