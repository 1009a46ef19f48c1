// SPDX-License-Identifier: MIT

package minimax

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// resultJSON is the wire form of Result. Value holds a number, or one of the
// strings "+Inf", "-Inf", "NaN" when the value is not finite.
type resultJSON struct {
	Value json.RawMessage `json:"value"`
	Row   int             `json:"row"`
	Col   int             `json:"col"`
}

// MarshalJSON encodes non-finite values as strings, which encoding/json
// otherwise rejects. Empty games and -Inf payoffs produce such values.
func (r Result) MarshalJSON() ([]byte, error) {
	v, err := json.Marshal(FormatValue(r.Value))
	if err != nil {
		return nil, err
	}

	return json.Marshal(resultJSON{Value: v, Row: r.Row, Col: r.Col})
}

// UnmarshalJSON accepts the value as a number or as a string understood by
// strconv.ParseFloat ("+Inf", "-Inf", "NaN").
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	v, err := ParseValue(w.Value)
	if err != nil {
		return err
	}
	*r = Result{Value: v, Row: w.Row, Col: w.Col}

	return nil
}

// FormatValue returns v itself when finite and its string form otherwise,
// ready for encoding/json.
func FormatValue(v float64) any {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case math.IsNaN(v):
		return "NaN"
	default:
		return v
	}
}

// ParseValue decodes a JSON number or a non-finite string written by FormatValue.
func ParseValue(raw json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("minimax: value %s is neither number nor string", raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("minimax: value %q: %w", s, err)
	}

	return f, nil
}
