package evaluator

import (
	"errors"
	"fmt"
)

// Causes of an EvaluationFailure. Match them with errors.Is.
var (
	ErrParse             = errors.New("operand is not a number")
	ErrMissingOperand    = errors.New("missing operand")
	ErrInvalidExpression = errors.New("no operator in expression")
)

// EvaluationFailure is the only error Evaluate returns. The display shows the
// same text for every cause.
type EvaluationFailure struct {
	Expr    string
	Operand string // offending token for ErrParse
	Err     error
}

func (e *EvaluationFailure) Error() string {
	if errors.Is(e.Err, ErrParse) {
		return fmt.Sprintf("evaluate %q: %v: %q", e.Expr, e.Err, e.Operand)
	}
	return fmt.Sprintf("evaluate %q: %v", e.Expr, e.Err)
}

func (e *EvaluationFailure) Unwrap() error {
	return e.Err
}

func fail(expr string, err error) error {
	return &EvaluationFailure{Expr: expr, Err: err}
}

func failOperand(expr, operand string) error {
	return &EvaluationFailure{Expr: expr, Operand: operand, Err: ErrParse}
}
