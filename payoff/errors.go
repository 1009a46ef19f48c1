// SPDX-License-Identifier: MIT
// Package payoff: sentinel error set.
// Call sites tag the sentinel with fmt.Errorf("%s: %w", tag, ErrX) so callers
// can match with errors.Is regardless of the added context.

package payoff

import "errors"

var (
	// ErrInvalidInput indicates a payoff array whose length does not match rows·cols,
	// or a negative dimension.
	ErrInvalidInput = errors.New("payoff: invalid input")

	// ErrPlayer indicates a player index other than Player1/Player2.
	ErrPlayer = errors.New("payoff: unknown player")
)

// ErrOutOfRange indicates a row or column index outside the matrix bounds.
var ErrOutOfRange = errors.New("payoff: index out of range")

// ErrEmpty indicates an operation that needs at least one row and one column.
var ErrEmpty = errors.New("payoff: empty matrix")
