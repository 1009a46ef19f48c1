// SPDX-License-Identifier: MIT

// Package minimax solves zero-sum games in pure strategies.
//
// The payoff array is read from player 1's point of view: player 1 picks a row
// and wants a high payoff, player 2 picks a column and wants it low.
//
//	Maximin (player 1's floor):   max over rows    of (min over columns)
//	Minimax (player 2's ceiling): min over columns of (max over rows)
//
// Solve always reports the maximin value together with the maximin row and
// the minimax column. When the two bracket values agree within
// SaddleTolerance the game has a pure saddle point and the pair is mutually
// optimal; Solve does not signal this itself. Use Bracket and HasSaddlePoint
// when the distinction matters.
//
// Ties go to the lowest index: the scans compare with strict > and < while
// walking indices in ascending order. No tolerance is applied to the scans.
//
// Complexity: O(rows·cols) time, O(1) space.
package minimax
