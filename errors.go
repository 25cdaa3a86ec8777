package zzre

import "errors"

// Errors returned while compiling an expression. Returned errors wrap one of
// these, so test for them with errors.Is.
var (
	// ErrUnsupportedSymbol means the expression contains a character or
	// escape sequence that is not part of the syntax.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrMismatchedParentheses means a group was closed without being
	// opened, or opened and never closed.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")

	// ErrMalformedAlternation means a | is not enclosed by a group.
	ErrMalformedAlternation = errors.New("malformed alternation")

	// ErrInvalidState means a state index outside the automaton was used.
	// It indicates a bug in this package rather than a bad expression.
	ErrInvalidState = errors.New("invalid state")

	// ErrInternal means the builder reached a situation that well-formed
	// input cannot produce.
	ErrInternal = errors.New("internal error")
)

// IsSyntaxError reports whether err is caused by an invalid expression, as
// opposed to an internal fault.
func IsSyntaxError(err error) bool {
	return errors.Is(err, ErrUnsupportedSymbol) ||
		errors.Is(err, ErrMismatchedParentheses) ||
		errors.Is(err, ErrMalformedAlternation)
}
