/*
File    : Tupa/tupaerr/error.go
*/

// Package tupaerr defines the error kinds raised across the Tupã
// pipeline. Every kind carries a human-readable message and, where
// available, the source line/column, formatted as "[line:column]
// message".
package tupaerr

import "fmt"

// Kind tags which of the seven error categories an Error belongs to.
type Kind string

const (
	LexError    Kind = "LexError"
	SyntaxError Kind = "SyntaxError"
	NameError   Kind = "NameError"
	TypeError   Kind = "TypeError"
	IndexError  Kind = "IndexError"
	AttrError   Kind = "AttrError"
	ValueError  Kind = "ValueError"
)

// Error is the single error type flowing through the lexer, parser, and
// evaluator. It implements the standard error interface so Go callers can
// use it like any other error, while still carrying enough structure
// (Kind, Line, Column) for the REPL and file driver to format diagnostics.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func newf(kind Kind, line, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: col}
}

func NewLexError(line, col int, format string, args ...interface{}) *Error {
	return newf(LexError, line, col, format, args...)
}

func NewSyntaxError(line, col int, format string, args ...interface{}) *Error {
	return newf(SyntaxError, line, col, format, args...)
}

func NewNameError(line, col int, format string, args ...interface{}) *Error {
	return newf(NameError, line, col, format, args...)
}

func NewTypeError(line, col int, format string, args ...interface{}) *Error {
	return newf(TypeError, line, col, format, args...)
}

func NewIndexError(line, col int, format string, args ...interface{}) *Error {
	return newf(IndexError, line, col, format, args...)
}

func NewAttrError(line, col int, format string, args ...interface{}) *Error {
	return newf(AttrError, line, col, format, args...)
}

func NewValueError(line, col int, format string, args ...interface{}) *Error {
	return newf(ValueError, line, col, format, args...)
}

// As reports whether err is a *Error (of any kind), returning it for
// convenient access to Message/Line/Column (used by the tentar/pegar
// handler to bind the catch variable).
func As(err error) (*Error, bool) {
	te, ok := err.(*Error)
	return te, ok
}
