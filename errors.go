package gorpn

import (
	"errors"
	"fmt"
)

// Errors of the calculator. The set of error kinds is closed, see ErrorKind.
var (
	ErrEmpty  = errors.New("stack empty")          // too few operands on the stack
	ErrExtra  = errors.New("extra operand(s)")     // a line left more than one value
	ErrType   = errors.New("type mismatch")        // operand of wrong type
	ErrSyntax = errors.New("syntax error")         // unrecognized token
	ErrQuit   = errors.New("quit")                 // user requested to end the session
	ErrIO     = errors.New("input/output failure") // underlying I/O error, see IOError
)

// ErrorKind classifies errors of the calculator.
type ErrorKind int

// Kinds of calculator errors. Every error returned by this module falls into
// exactly one of these categories; foreign errors are classified as KindUnknown.
const (
	KindUnknown ErrorKind = iota
	KindEmpty
	KindExtra
	KindType
	KindSyntax
	KindIO
	KindQuit
)

func (k ErrorKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindExtra:
		return "Extra"
	case KindType:
		return "Type"
	case KindSyntax:
		return "Syntax"
	case KindIO:
		return "IO"
	case KindQuit:
		return "Quit"
	}
	return "Unknown"
}

// Kind returns the error category of err. A nil error has kind KindUnknown.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmpty):
		return KindEmpty
	case errors.Is(err, ErrExtra):
		return KindExtra
	case errors.Is(err, ErrType):
		return KindType
	case errors.Is(err, ErrSyntax):
		return KindSyntax
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrQuit):
		return KindQuit
	}
	return KindUnknown
}

// IOError wraps an underlying input/output error. The wrapped error is passed
// through uninterpreted; IOError matches ErrIO with errors.Is.
type IOError struct {
	Err error
}

// WrapIO wraps err as an IOError. It returns nil for a nil error.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	return IOError{Err: err}
}

func (e IOError) Error() string {
	return fmt.Sprintf("%v: %v", ErrIO, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e IOError) Unwrap() error { return e.Err }

// Is makes IOError match ErrIO.
func (e IOError) Is(target error) bool { return target == ErrIO }

// SyntaxError reports an input token which is neither a literal nor an
// operator. It matches ErrSyntax with errors.Is.
type SyntaxError struct {
	Lexeme string // offending token
	Pos    uint64 // byte offset of the token within its line
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%v: unrecognized token %q at position %d", ErrSyntax, e.Lexeme, e.Pos)
}

// Is makes SyntaxError match ErrSyntax.
func (e SyntaxError) Is(target error) bool { return target == ErrSyntax }
