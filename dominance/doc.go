// SPDX-License-Identifier: MIT

// Package dominance finds strictly dominant strategies in a two-player game.
//
// A row i is strictly dominant for player 1 iff, against every column j and
// every other row k, p1[i,j] > p1[k,j]. Columns are treated symmetrically for
// player 2 using p2. Comparisons are exact: payoffs that are equal to the last
// representable bit do not dominate each other, and no epsilon is applied.
//
// Complexity:
//
//	Time  O(rows²·cols + rows·cols²), with early exit on the first violation.
//	Space O(1).
package dominance
