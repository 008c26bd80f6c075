// Package domainerrors defines the typed error surface shared by services
// and HTTP handlers. Services return these; the HTTP layer translates them
// into status codes without inspecting error strings.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies a class of failure. Codes are stable API: handlers map
// them to HTTP statuses and tests assert on them.
type Code string

const (
	// CodeValidation marks caller input that failed domain validation
	// (missing identifiers, non-positive amounts).
	CodeValidation Code = "validation_error"

	// CodeBadRequest marks a structurally unusable request.
	CodeBadRequest Code = "bad_request"

	// CodeNotFound marks a missing entity.
	CodeNotFound Code = "not_found"

	// CodeUnavailable marks a dependency that could not be reached.
	CodeUnavailable Code = "unavailable"

	// CodeInternal marks anything unexpected. Its message is never sent
	// to callers verbatim.
	CodeInternal Code = "internal_error"
)

// DomainError carries a code plus a human-readable message. The message for
// CodeInternal is for logs only.
type DomainError struct {
	Code    Code
	Message string
}

func (e *DomainError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New constructs a DomainError.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Is reports whether err is (or wraps) a DomainError with the given code.
func Is(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// untyped errors so unexpected failures never leak detail.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the caller-safe message from err. Untyped and internal
// errors yield a generic message.
func MessageOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) && de.Code != CodeInternal {
		return de.Message
	}
	return "internal error"
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
