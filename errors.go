// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"errors"
	"fmt"
)

// Sentinel errors distinguishing the categories of parse failure. Every
// parse error reported by this package wraps exactly one of these, and can
// be tested with errors.Is.
var (
	// ErrBadSyntax reports a structural error: a missing bracket, comma, or
	// colon, or an unexpected code point where a value was required.
	ErrBadSyntax = errors.New("malformed syntax")

	// ErrBadLiteral reports a mismatch while matching one of the constants
	// true, false, or null.
	ErrBadLiteral = errors.New("malformed literal")

	// ErrBadString reports an invalid escape sequence, an unescaped control
	// character, or an unterminated string literal.
	ErrBadString = errors.New("malformed string")

	// ErrBadNumber reports a number literal that violates the JSON grammar.
	ErrBadNumber = errors.New("malformed number")

	// ErrBadEncoding reports input that is not valid in its declared
	// character encoding.
	ErrBadEncoding = errors.New("invalid character encoding")

	// ErrWrongKind reports narrowing a cursor to a kind it does not have.
	ErrWrongKind = errors.New("wrong value kind")

	// ErrUnexpectedEOF reports that the input ended where more was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// A SyntaxError is the concrete type of parse errors reported by this
// package. Offset is the byte offset in the input where the error was
// detected (the code-point offset for rune inputs). A SyntaxError wraps one
// of the sentinel error categories above.
type SyntaxError struct {
	Offset  int
	Message string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", e.Offset, e.Message)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

func syntaxErr(kind error, offset int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(msg, args...), err: kind}
}

// eofErr reports premature end of input in the given category.
func eofErr(kind error, offset int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{
		Offset:  offset,
		Message: fmt.Sprintf(msg, args...),
		err:     fmt.Errorf("%w: %w", kind, ErrUnexpectedEOF),
	}
}

// usage panics with a programming-error message. It is invoked for
// violations of the single-pass consumption contract, which are caller bugs
// rather than parse errors.
func usage(msg string, args ...any) {
	panic("jsoncur: " + fmt.Sprintf(msg, args...))
}
