// Package apperr provides structured application errors with an HTTP mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithMessage returns a copy of the error with a different message.
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		Code:       e.Code,
		Message:    message,
		HTTPStatus: e.HTTPStatus,
		Err:        e.Err,
	}
}

// WithError returns a copy of the error wrapping another error.
func (e *Error) WithError(err error) *Error {
	return &Error{
		Code:       e.Code,
		Message:    e.Message,
		HTTPStatus: e.HTTPStatus,
		Err:        err,
	}
}

// Is reports whether target carries the same error code. This lets wrapped
// copies created by WithMessage/WithError match their sentinel via errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error.
func New(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Error codes
const (
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeUnprocessableEntity = "UNPROCESSABLE_ENTITY"
	CodeInternal            = "INTERNAL_ERROR"
)

// Predefined errors
var (
	ErrInvalidArgument     = New(CodeInvalidArgument, "Invalid argument", http.StatusBadRequest)
	ErrUnauthorized        = New(CodeUnauthorized, "Unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New(CodeForbidden, "Forbidden", http.StatusForbidden)
	ErrNotFound            = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict            = New(CodeConflict, "Resource conflict", http.StatusConflict)
	ErrUnprocessableEntity = New(CodeUnprocessableEntity, "Unprocessable entity", http.StatusUnprocessableEntity)
	ErrInternal            = New(CodeInternal, "Internal server error", http.StatusInternalServerError)
)

// HTTPStatus returns the HTTP status code for an error.
// Anything that is not an *Error collapses to 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus
}

// PublicMessage returns the message safe to expose at the HTTP boundary.
// Unknown errors get a generic message so internals never leak.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "Internal server error"
	}
	return appErr.Message
}
