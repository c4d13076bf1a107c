// Package errors carries coded errors from the pipeline to its two
// surfaces. The server turns a [Code] into an HTTP status and a JSON body;
// the CLI prints [UserMessage].
//
//	if w <= 0 || h <= 0 {
//	    return errors.New(errors.ErrCodeInvalidCanvas, "canvas must be positive, got %vx%v", w, h)
//	}
//
// Codes starting with INVALID_ mark bad caller input; see [Code.Invalid].
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies an error for API clients.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidCanvas Code = "INVALID_CANVAS"
	ErrCodeInvalidWords  Code = "INVALID_WORDS"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	ErrCodeNotFound Code = "NOT_FOUND"

	// ErrCodeUnsupported marks a valid request this build cannot serve,
	// such as PDF output without rsvg-convert installed.
	ErrCodeUnsupported Code = "UNSUPPORTED"
	ErrCodeInternal    Code = "INTERNAL_ERROR"
)

// Invalid reports whether c blames the caller's input.
func (c Code) Invalid() bool {
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error is a coded error. Message is safe to show to users; Cause is not.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Cause == nil {
		return msg
	}
	return msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns a coded error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap is [New] with an underlying cause, reachable through errors.Is and
// errors.As.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// find returns the outermost coded error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	e, ok := find(err)
	return ok && e.Code == code
}

// GetCode returns the code of the outermost coded error, or "" when err
// carries none.
func GetCode(err error) Code {
	if e, ok := find(err); ok {
		return e.Code
	}
	return ""
}

// UserMessage strips codes and causes from coded errors. Other errors are
// returned verbatim.
func UserMessage(err error) string {
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}
