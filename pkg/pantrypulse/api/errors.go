package api

import (
	"errors"
	"net/http"
)

// ServerErrorMessage is the only text a client sees for an unexpected failure.
const ServerErrorMessage = "Server Error"

// Kind classifies handler errors.
type Kind int

const (
	KindServer Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
)

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	default:
		return "server"
	}
}

// Error is a handler error with a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // internal cause, never sent to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation is a 400.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// Conflict is a 409.
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Unauthorized is a 401.
func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// NotFound is a 404. Also used for rows owned by someone else.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// ServerError wraps an internal failure as a generic 500.
func ServerError(err error) error {
	return &Error{Kind: KindServer, Msg: ServerErrorMessage, Err: err}
}

// KindOf returns the kind of err, KindServer for anything that is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindServer
}
