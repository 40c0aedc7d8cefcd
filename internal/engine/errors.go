package engine

import "fmt"

// EvalErrorKind classifies evaluation failures.
type EvalErrorKind int

// Evaluation error kinds.
const (
	ErrDivisionByZero EvalErrorKind = iota
	ErrDomain
	ErrOverflow
	ErrNotFinite
)

func (k EvalErrorKind) String() string {
	switch k {
	case ErrDivisionByZero:
		return "division by zero"
	case ErrDomain:
		return "domain error"
	case ErrOverflow:
		return "overflow"
	case ErrNotFinite:
		return "result is not finite"
	default:
		return fmt.Sprintf("evaluation error(%d)", int(k))
	}
}

// ParseError reports malformed input. Pos is a byte offset into the
// original expression text.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

func parseErrf(pos int, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// EvalError reports a failed evaluation of a well-formed expression.
type EvalError struct {
	Kind EvalErrorKind
	Msg  string
}

func (e *EvalError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func evalErrf(kind EvalErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
