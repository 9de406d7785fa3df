package encoder

import (
	"fmt"

	"github.com/ewal-lang/ewal/ast"
)

// Position aliases ast.Position so callers don't need to import ast
// just to build an Error.
type Position = ast.Position

// ErrorKind categorizes why compilation failed.
type ErrorKind int

const (
	ErrUndefinedLabel ErrorKind = iota
	ErrDuplicateLabel
	ErrUndefinedField
	ErrUndefinedType
	ErrUndefinedParameter
	ErrInvalidColor
	ErrMaxCodeSize
	ErrIO
)

// Error is a compilation failure tied to the source position that
// caused it.
type Error struct {
	Pos     Position
	Kind    ErrorKind
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Pos.Filename, e.Pos.Line, e.Message)
	}
	return e.Message
}

// Unwrap supports errors.Is/errors.As against the underlying cause.
func (e *Error) Unwrap() error { return e.Wrapped }

func newError(pos Position, kind ErrorKind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}

func wrapError(pos Position, kind ErrorKind, message string, cause error) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message, Wrapped: cause}
}
