// Package apperror is the error taxonomy of the site's HTTP surface.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with the HTTP status and stable code it is reported as.
// Internal is logged but never sent to the client.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

func (e *Error) Error() string {
	if e.Internal == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy carrying err as its cause.
func (e *Error) WithInternal(err error) *Error {
	c := *e
	c.Internal = err
	return &c
}

// WithMessage returns a copy with a different client-facing message.
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	return &c
}

func New(status int, code, message string) *Error {
	return &Error{HTTPStatus: status, Code: code, Message: message}
}

var (
	ErrNotFound             = New(http.StatusNotFound, "not_found", "Page not found")
	ErrMethodNotAllowed     = New(http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
	ErrTooManyRequests      = New(http.StatusTooManyRequests, "too_many_requests", "Too many requests, slow down")
	ErrStreamingUnsupported = New(http.StatusInternalServerError, "streaming_unsupported", "Streaming is not supported by this connection")
	ErrInternal             = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// NewInternal is ErrInternal with a specific message and cause.
func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}

// Body is the JSON error response: {"error":{"code":...,"message":...}}.
type Body struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError maps err to a status and response body. Errors outside the
// taxonomy are reported as ErrInternal.
func ToHTTPError(err error) (int, Body) {
	appErr := ErrInternal
	errors.As(err, &appErr)
	return appErr.HTTPStatus, Body{Error: Detail{Code: appErr.Code, Message: appErr.Message}}
}
