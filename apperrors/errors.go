// Package apperrors defines the error taxonomy shared by the service and
// HTTP layers. Services return *Error values; the HTTP layer maps each Kind
// to a status code and never inspects anything else.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnavailable
	KindPrediction
)

type Error struct {
	Kind    Kind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Unavailable(message, details string) *Error {
	return &Error{Kind: KindUnavailable, Message: message, Details: details}
}

func Prediction(message, details string) *Error {
	return &Error{Kind: KindPrediction, Message: message, Details: details}
}

func Internal(message string, err error) *Error {
	e := &Error{Kind: KindInternal, Message: message, Err: err}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// StatusCode returns the HTTP status for err. Anything outside the taxonomy
// is a 500.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// IsKind reports whether err is a taxonomy error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Wrapf wraps err as an internal error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Internal(fmt.Sprintf(format, args...), err)
}
