package store

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("store: closed")

// ErrorCode classifies store failures.
type ErrorCode string

const (
	// ErrorCodeValidation indicates invalid input such as empty addressbook metadata.
	ErrorCodeValidation ErrorCode = "validation"
	// ErrorCodeNotFound indicates the referenced card does not exist.
	ErrorCodeNotFound ErrorCode = "not_found"
	// ErrorCodeStore indicates a SQLite failure.
	ErrorCodeStore ErrorCode = "store"
)

// Error is a typed package error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return "store: <nil>"
	}
	msg := fmt.Sprintf("store: %s", e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying driver error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is a store *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var storeErr *Error
	return errors.As(err, &storeErr) && storeErr.Code == code
}

func validationError(format string, args ...any) error {
	return &Error{Code: ErrorCodeValidation, Message: fmt.Sprintf(format, args...)}
}

func storeError(message string, err error) error {
	return &Error{Code: ErrorCodeStore, Message: message, Err: err}
}
