// SPDX-License-Identifier: MIT

package payoff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a game. YAML and JSON are both accepted
// (JSON is parsed as YAML). When ZeroSum is set and P2 is omitted, player 2's
// payoffs are the negation of P1.
//
//	rows: 2
//	cols: 2
//	p1: [3, 0, 5, 1]
//	p2: [3, 5, 0, 1]
type Document struct {
	Name    string    `yaml:"name,omitempty" json:"name,omitempty"`
	Rows    int       `yaml:"rows" json:"rows"`
	Cols    int       `yaml:"cols" json:"cols"`
	P1      []float64 `yaml:"p1" json:"p1"`
	P2      []float64 `yaml:"p2,omitempty" json:"p2,omitempty"`
	ZeroSum bool      `yaml:"zero_sum,omitempty" json:"zero_sum,omitempty"`
}

// Matrix validates the document and builds the game.
func (d Document) Matrix() (*Matrix, error) {
	if d.ZeroSum && len(d.P2) == 0 {
		return NewZeroSum(d.Rows, d.Cols, d.P1)
	}

	return New(d.Rows, d.Cols, d.P1, d.P2)
}

// Decode reads one Document from r and builds the game.
func Decode(r io.Reader) (*Matrix, Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, doc, fmt.Errorf("payoff.Decode: empty document: %w", ErrInvalidInput)
		}
		return nil, doc, fmt.Errorf("payoff.Decode: %w", err)
	}
	m, err := doc.Matrix()
	if err != nil {
		return nil, doc, fmt.Errorf("payoff.Decode: %w", err)
	}

	return m, doc, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Matrix, Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Document{}, fmt.Errorf("payoff.Load: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
