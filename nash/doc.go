// SPDX-License-Identifier: MIT

// Package nash finds Nash equilibria of small two-player games.
//
// Two passes run over the same row-major payoff arrays:
//
//  1. Pure pass (any shape): cell (i, j) is an equilibrium iff neither player
//     has a strictly improving unilateral deviation, i.e. no row r with
//     p1[r,j] > p1[i,j] and no column c with p2[i,c] > p2[i,j].
//     Equilibria are emitted as one-hot profiles in row-major order.
//  2. Mixed pass (2×2 only): the closed-form indifference point. Player 2's
//     probability q of column 0 makes player 1 indifferent between rows:
//
//     p1[0,0]·q + p1[0,1]·(1-q) = p1[1,0]·q + p1[1,1]·(1-q)
//     ⇒ q = (d-b) / ((a-b) - (c-d)),  a,b,c,d = p1[0..3]
//
//     and player 1's probability p of row 0 follows from p2 the same way.
//     Near-zero denominators (|·| < DegenerateTolerance) and probabilities on
//     or outside the boundary of (0, 1) produce no mixed equilibrium.
//
// Larger games only get the pure pass; support enumeration is not attempted.
//
// Complexity:
//
//	Pure  O(rows·cols·(rows+cols)) time.
//	Mixed O(1).
package nash
