// SPDX-License-Identifier: MIT

// Package analysis applies the equilibrium solver to a set of competing
// predictions.
//
// The predictions are cast as a two-player game:
//
//	Player 1 ("nature") chooses which prediction comes true.
//	Player 2 ("agent")  chooses which prediction to prepare for.
//
// Nature's payoff at (i, j) is the confidence of prediction i. The agent
// earns the confidence of j when it prepared for the right outcome (i == j),
// and otherwise partial credit scaled by how many source series the two
// predictions share (Jaccard overlap).
//
// Engine.Analyze solves that game, names equilibrium strategies by prediction
// id, reports dominant strategies and the minimax value, and ranks predictions
// by their total probability weight across all equilibria.
package analysis
