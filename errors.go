package yamlite

import (
	"errors"
	"fmt"
)

// Sentinel categories for syntax errors. Use errors.Is to distinguish them.
var (
	// ErrInvalidIndentation reports a dedent to an indentation width that
	// was never introduced.
	ErrInvalidIndentation = errors.New("invalid indentation")

	// ErrUnterminatedString reports a quoted string still open at end of
	// input.
	ErrUnterminatedString = errors.New("unterminated string")

	// ErrUnexpectedToken reports a token the grammar cannot accept at the
	// current position.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrMissingValue reports a value position that is immediately closed
	// by a dedent or end of input, such as a mapping key with nothing
	// after the colon.
	ErrMissingValue = errors.New("missing value")

	// ErrMaxDepth reports a document nested more deeply than the
	// configured limit.
	ErrMaxDepth = errors.New("max depth exceeded")
)

// SyntaxError describes a malformed document. Line and Column are 1-based
// and point at the offending token.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int

	category error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("yamlite: line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap returns the sentinel category of the error, for errors.Is.
func (e *SyntaxError) Unwrap() error { return e.category }

func syntaxError(category error, line, column int, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Msg:      fmt.Sprintf(format, args...),
		Line:     line,
		Column:   column,
		category: category,
	}
}

// TypeError reports a narrowing accessor applied to a Value of the wrong
// kind.
type TypeError struct {
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("yamlite: cannot use %s value as %s", e.Got, e.Want)
}

// KeyError reports a read-only lookup of a key absent from a mapping.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("yamlite: key not found: %q", e.Key)
}

// IndexError reports a read-only index outside a sequence's bounds.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("yamlite: index %d out of range (len %d)", e.Index, e.Len)
}
