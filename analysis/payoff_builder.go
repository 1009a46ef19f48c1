// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gamekit/payoff"
)

// ValidatePrediction checks the id and the confidence range.
func ValidatePrediction(p Prediction) error {
	if p.ID == "" {
		return fmt.Errorf("ValidatePrediction: empty id: %w", ErrInvalidPrediction)
	}
	if math.IsNaN(p.Confidence) || p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("ValidatePrediction(%s): confidence %v outside [0,1]: %w",
			p.ID, p.Confidence, ErrInvalidPrediction)
	}

	return nil
}

// BuildPayoffMatrix casts n predictions as an n×n game.
//
//	p1[i,j] = confidence_i
//	p2[i,i] = confidence_i
//	p2[i,j] = confidence_j · |S_i ∩ S_j| / max(1, |S_i ∪ S_j|)   (i ≠ j)
//
// where S_k is the set of source series of prediction k.
// Complexity: O(n²·s) for s source series per prediction.
func BuildPayoffMatrix(preds []Prediction) (*payoff.Matrix, error) {
	n := len(preds)
	if n == 0 {
		return nil, fmt.Errorf("BuildPayoffMatrix: %w", ErrNoPredictions)
	}
	sets := make([]map[string]struct{}, n)
	for k, p := range preds {
		if err := ValidatePrediction(p); err != nil {
			return nil, fmt.Errorf("BuildPayoffMatrix: %w", err)
		}
		sets[k] = toSet(p.SourceSeries)
	}

	p1 := make([]float64, 0, n*n)
	p2 := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p1 = append(p1, preds[i].Confidence)
			if i == j {
				p2 = append(p2, preds[j].Confidence)
				continue
			}
			shared, union := overlap(sets[i], sets[j])
			p2 = append(p2, preds[j].Confidence*float64(shared)/float64(max(1, union)))
		}
	}

	return payoff.New(n, n, p1, p2)
}

func toSet(xs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}

	return set
}

// overlap returns |a ∩ b| and |a ∪ b|.
func overlap(a, b map[string]struct{}) (shared, union int) {
	for k := range a {
		if _, ok := b[k]; ok {
			shared++
		}
	}

	return shared, len(a) + len(b) - shared
}
