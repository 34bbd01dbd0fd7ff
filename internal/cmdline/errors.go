package cmdline

import (
	"errors"
	"fmt"
)

// Kind classifies a command line error.
type Kind uint8

const (
	KindGrammar Kind = iota + 1 // Token not valid in the current state
	KindValue                   // Malformed or out-of-range value
	KindLiteral                 // Unrecognized color
	KindPath                    // Invalid output path
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGrammar:
		return "grammar"
	case KindValue:
		return "value"
	case KindLiteral:
		return "literal"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Sentinel errors, matched with errors.Is.
var (
	ErrNoArguments        = errors.New("no arguments")
	ErrTooFewStops        = errors.New("the command line should contain at least two stop definitions")
	ErrUnexpectedOption   = errors.New("unexpected option")
	ErrInvalidOption      = errors.New("invalid option")
	ErrMisplacedPercent   = errors.New("a percent value can only follow a color")
	ErrInvalidPercent     = errors.New("invalid percent value")
	ErrPositionOrder      = errors.New("stop positions can only be increasing and contained between 0 and 1")
	ErrInvalidSize        = errors.New("invalid gradient size")
	ErrSizeRange          = errors.New("gradient size must be between 2 and 4096 included")
	ErrMissingOptionValue = errors.New("option value must be specified before the filename")
	ErrInvalidPath        = errors.New("the specified path contains invalid characters")
	ErrEmptyPath          = errors.New("the specified path is empty")
	ErrUnexpectedToken    = errors.New("unexpected token")
)

// Error describes why a command line was rejected.
type Error struct {
	Kind  Kind
	Index int    // Position of the offending token
	Token string // The offending token
	Msg   string // Human readable description
	Err   error  // Sentinel or underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Token == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Token)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a command line error, or 0 if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind Kind, index int, token string, cause error, msg string) *Error {
	return &Error{Kind: kind, Index: index, Token: token, Msg: msg, Err: cause}
}
