// SPDX-License-Identifier: MIT

package dominance

// None marks the absence of a dominant strategy in a Result.
const None = -1

// Result holds the strictly dominant row of player 1 and the strictly dominant
// column of player 2, or None for either.
type Result struct {
	P1 int `json:"p1" yaml:"p1"`
	P2 int `json:"p2" yaml:"p2"`
}

// Player1 reports player 1's dominant row, if any.
func (r Result) Player1() (int, bool) { return r.P1, r.P1 != None }

// Player2 reports player 2's dominant column, if any.
func (r Result) Player2() (int, bool) { return r.P2, r.P2 != None }
