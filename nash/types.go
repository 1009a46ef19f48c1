// SPDX-License-Identifier: MIT

package nash

// StrategyProfile is a pair of probability distributions: Player1 over rows,
// Player2 over columns. Each sums to 1 and has non-negative entries.
type StrategyProfile struct {
	Player1 []float64 `json:"player1" yaml:"player1"`
	Player2 []float64 `json:"player2" yaml:"player2"`
}

// IsPure reports whether both distributions are one-hot.
func (s StrategyProfile) IsPure() bool {
	return isOneHot(s.Player1) && isOneHot(s.Player2)
}

// Support returns the indices with probability above tol, ascending.
func Support(dist []float64, tol float64) []int {
	out := make([]int, 0, len(dist))
	for i, p := range dist {
		if p > tol {
			out = append(out, i)
		}
	}

	return out
}

func isOneHot(dist []float64) bool {
	ones := 0
	for _, p := range dist {
		switch p {
		case 0:
		case 1:
			ones++
		default:
			return false
		}
	}

	return ones == 1
}

// pureProfile builds the one-hot profile for cell (i, j).
func pureProfile(rows, cols, i, j int) StrategyProfile {
	s1 := make([]float64, rows)
	s2 := make([]float64, cols)
	s1[i] = 1
	s2[j] = 1

	return StrategyProfile{Player1: s1, Player2: s2}
}
