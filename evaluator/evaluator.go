// Package evaluator computes the result of a single binary expression such as
// "3+4" taken from the calculator display.
//
// Two algorithms are available. Evaluate reproduces the classic behavior: the
// text is split on every operator character, the first two pieces are the
// operands and the operator is picked by testing the whole text for '+', '-',
// '*' and '/' in that order. So "2+3*4" is 2+3 and the "*4" is dropped.
// EvaluateStrict instead splits once at the first operator after position 0.
package evaluator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Operators in the order Evaluate tests for them.
const Operators = "+-*/"

// Evaluate computes expr using the classic containment rules. Division by zero
// is not an error, it yields an infinity or NaN.
func Evaluate(expr string) (float64, error) {
	if !strings.ContainsAny(expr, Operators) {
		return 0, fail(expr, ErrInvalidExpression)
	}

	tokens := splitOperands(expr)
	if len(tokens) < 2 {
		return 0, fail(expr, ErrMissingOperand)
	}
	x, ok := parseOperand(tokens[0])
	if !ok {
		return 0, failOperand(expr, tokens[0])
	}
	y, ok := parseOperand(tokens[1])
	if !ok {
		return 0, failOperand(expr, tokens[1])
	}

	for _, op := range Operators {
		if strings.ContainsRune(expr, op) {
			return apply(op, x, y), nil
		}
	}
	return 0, fail(expr, ErrInvalidExpression)
}

// EvaluateStrict locates the operator by scanning expr once for the first
// operator character at index 1 or later, and splits exactly there. A sign on
// either operand is accepted: "5*-3" is -15 and "-5+2" is -3.
func EvaluateStrict(expr string) (float64, error) {
	i := -1
	if len(expr) > 1 {
		if j := strings.IndexAny(expr[1:], Operators); j >= 0 {
			i = j + 1
		}
	}
	if i < 0 {
		return 0, fail(expr, ErrInvalidExpression)
	}

	left, right := expr[:i], expr[i+1:]
	if strings.TrimSpace(right) == "" {
		return 0, fail(expr, ErrMissingOperand)
	}
	x, ok := parseOperand(left)
	if !ok {
		return 0, failOperand(expr, left)
	}
	y, ok := parseOperand(right)
	if !ok {
		return 0, failOperand(expr, right)
	}
	return apply(rune(expr[i]), x, y), nil
}

// splitOperands splits s around every operator character. Empty pieces are
// kept except at the end, so "5+" is ["5"], "+5" is ["", "5"] and "5*-3" is
// ["5", "", "3"].
func splitOperands(s string) []string {
	var tokens []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Operators, s[i]) >= 0 {
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	tokens = append(tokens, s[start:])
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// parseOperand reads a decimal number. Surrounding blanks are ignored and a
// value out of float64 range becomes an infinity, as a pocket calculator would
// show it.
func parseOperand(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func apply(op rune, x, y float64) float64 {
	switch op {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	case '/':
		return x / y
	}
	return math.NaN()
}
