// SPDX-License-Identifier: MIT
// Package: payoff
//
// Purpose:
//  - Single source of truth for the payoff-shape check every solver relies on.
//  - Return ErrInvalidInput tagged with the validator name and the observed lengths.
//
// Determinism & Performance:
//  - O(1), allocates only on the error path.

package payoff

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks that p1 and p2 both hold rows·cols values and returns the
// inputs unchanged on success.
//
// The error message lists the expected and the actual lengths, e.g.
//
//	Validate: expected 4 payoff values (2x2), got p1=2, p2=4: payoff: invalid input
//
// Complexity: O(1).
func Validate(rows, cols int, p1, p2 []float64) (int, int, []float64, []float64, error) {
	if rows < 0 || cols < 0 {
		return 0, 0, nil, nil, validatorErrorf(
			fmt.Sprintf("Validate: negative shape %dx%d", rows, cols), ErrInvalidInput)
	}
	expected := rows * cols
	if len(p1) != expected || len(p2) != expected {
		return 0, 0, nil, nil, validatorErrorf(
			fmt.Sprintf("Validate: expected %d payoff values (%dx%d), got p1=%d, p2=%d",
				expected, rows, cols, len(p1), len(p2)),
			ErrInvalidInput)
	}

	return rows, cols, p1, p2, nil
}

// ValidateSingle is Validate for one payoff array (zero-sum games).
// Complexity: O(1).
func ValidateSingle(rows, cols int, payoffs []float64) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf(fmt.Sprintf("ValidateSingle: negative shape %dx%d", rows, cols), ErrInvalidInput)
	}
	if len(payoffs) != rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateSingle: expected %d payoff values (%dx%d), got %d",
				rows*cols, rows, cols, len(payoffs)),
			ErrInvalidInput)
	}

	return nil
}

// ValidateStrategy checks that a mixed strategy has exactly n entries.
// Probabilities are not re-normalised; solvers produce well-formed profiles.
// Complexity: O(1).
func ValidateStrategy(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateStrategy: expected %d probabilities, got %d", n, len(x)),
			ErrInvalidInput)
	}

	return nil
}
