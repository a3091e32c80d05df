package evaluator

import (
	"fmt"
	"strings"
)

// Mode selects the evaluation algorithm.
type Mode int

const (
	// Compat follows the classic containment rules, see Evaluate.
	Compat Mode = iota
	// Strict splits at the first operator, see EvaluateStrict.
	Strict
)

// ParseMode accepts "compat" or "strict", case-insensitively. An empty name
// is Compat.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "compat":
		return Compat, nil
	case "strict":
		return Strict, nil
	}
	return Compat, fmt.Errorf("unknown evaluation mode %q (want compat or strict)", name)
}

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "compat"
}

// Evaluate runs the algorithm selected by m.
func (m Mode) Evaluate(expr string) (float64, error) {
	if m == Strict {
		return EvaluateStrict(expr)
	}
	return Evaluate(expr)
}
