package errors

import (
	"fmt"
	"strings"
)

// Kind categorizes the error.
type Kind string

const (
	KindNotSupported    Kind = "not_supported"
	KindInternal        Kind = "internal"
	KindInvalidArgument Kind = "invalid_argument"
)

// Sentinel errors for Kind matching with errors.Is.
var (
	ErrNotSupported    = &Error{Kind: KindNotSupported}
	ErrInternal        = &Error{Kind: KindInternal}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
)

// Error is the structured error type used throughout the runtime core.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Detail != "" {
		b.WriteByte(' ')
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two *Error values match when
// their kinds are equal, so the exported sentinels act as kind selectors.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// NotSupportedf constructs a KindNotSupported error.
func NotSupportedf(format string, args ...any) *Error {
	return &Error{Kind: KindNotSupported, Detail: fmt.Sprintf(format, args...)}
}

// Internalf constructs a KindInternal error.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Detail: fmt.Sprintf(format, args...)}
}

// InvalidArgumentf constructs a KindInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err, or the empty Kind if err is not an *Error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

// Wrap attaches a cause to a new error of the given kind.
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}
