// SPDX-License-Identifier: MIT

// Package payoff defines the two-player payoff matrix shared by every solver
// in gamekit.
//
// What & Why:
//
//	A game is described by two row-major arrays of length rows·cols: p1 holds
//	player 1's payoff for each joint action (row = player 1's action,
//	column = player 2's action), p2 holds player 2's payoff for the same cell.
//	The solvers (nash, minimax, dominance) take these raw arrays; Validate is the
//	single gate every external caller passes through before handing data over.
//
// Errors:
//
//	ErrInvalidInput is the only error kind. It is raised when a payoff array
//	length does not match rows·cols. Degenerate games (1×1, all-equal payoffs,
//	±Inf entries) are valid.
//
// Numeric interop:
//
//	Matrix.Dense exposes a player's payoffs as a gonum *mat.Dense sharing no
//	memory with the Matrix; ExpectedPayoffs evaluates xᵀAy for a strategy pair.
//
// Documents:
//
//	Load/Decode read a game from YAML or JSON (keys rows, cols, p1, p2).
package payoff
