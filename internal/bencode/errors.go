package bencode

import (
	"errors"
	"fmt"
)

// Decode failure classes. Every error returned by Decode wraps exactly one
// of these inside a *SyntaxError, so callers can classify with errors.Is
// and still report the offending byte offset.
var (
	ErrBadInteger    = errors.New("malformed integer")
	ErrShortString   = errors.New("string shorter than declared length")
	ErrBadToken      = errors.New("unexpected token")
	ErrTrailingData  = errors.New("trailing data after value")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrDuplicateKey  = errors.New("duplicate dictionary key")
	ErrTooDeep       = errors.New("nesting too deep")
)

// SyntaxError reports a decode failure and the byte offset it occurred at.
type SyntaxError struct {
	Offset int
	err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bencode: %v at offset %d", e.err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.err }

func failAt(offset int, err error) error {
	return &SyntaxError{Offset: offset, err: err}
}
