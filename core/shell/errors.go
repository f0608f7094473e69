package shell

import "fmt"

// Kind classifies the failures a line can produce.
type Kind int

const (
	// KindParse is malformed redirection syntax, e.g. a missing filename.
	KindParse Kind = iota
	// KindLookup is a program that was not found or not executable.
	KindLookup
	// KindIO is a file open/create or working directory failure.
	KindIO
	// KindUsage is a missing or malformed argument to a builtin.
	KindUsage
	// KindGlob is an invalid wildcard pattern.
	KindGlob
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "syntax error"
	case KindLookup:
		return "command failed"
	case KindIO:
		return "io error"
	case KindUsage:
		return "usage error"
	case KindGlob:
		return "bad pattern"
	default:
		return "error"
	}
}

// Error is a line-level failure. Errors halt the pipeline that raised them
// but never the surrounding read loop.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an Error of the given kind.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an Error of the given kind around an underlying cause.
func WrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}
