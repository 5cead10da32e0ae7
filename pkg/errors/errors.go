// Package errors provides structured error types for deptree.
//
// Every failure falls into one of three kinds, decided by its code:
//   - usage: the command line is incomplete, e.g. no input path
//   - input: the dump or an option is wrong (missing file, malformed JSON,
//     bad pattern, unknown format)
//   - internal: deptree itself failed, e.g. writing output
//
// All of them end the run with status 1 and nothing on stdout. Usage errors
// print their message as-is; the others are prefixed with "Error: ".
//
// # Usage
//
//	g, err := io.ImportJSON(path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    // errors.UserMessage(err) == "File not found: " + path
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeUsage Code = "USAGE"

	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidScope   Code = "INVALID_SCOPE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPattern Code = "INVALID_PATTERN"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Kind groups codes by who has to act on the failure.
type Kind int

const (
	KindInternal Kind = iota
	KindUsage
	KindInput
)

// Kind reports the kind of failure c describes. Unknown codes are internal.
func (c Code) Kind() Kind {
	switch c {
	case ErrCodeUsage:
		return KindUsage
	case ErrCodeFileNotFound, ErrCodeInvalidInput, ErrCodeInvalidScope,
		ErrCodeInvalidFormat, ErrCodeInvalidPattern, ErrCodeInvalidConfig:
		return KindInput
	default:
		return KindInternal
	}
}

// Error is a coded failure. Path names the file it concerns, if any.
type Error struct {
	Code    Code
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error whose cause is err.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// NotFound reports a missing input file.
func NotFound(path string) *Error {
	return &Error{Code: ErrCodeFileNotFound, Message: "File not found: " + path, Path: path}
}

// Malformed reports a dump at path that could not be used. cause is the
// decoder's error, or nil when the document parsed but lacks a required key.
func Malformed(path string, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Cause:   cause,
	}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// KindOf returns the kind of err's outermost code. Uncoded errors are
// internal.
func KindOf(err error) Kind {
	return GetCode(err).Kind()
}

// UserMessage returns the message shown to the user: the outermost
// message and its cause, without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}
