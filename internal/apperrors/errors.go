// Package apperrors holds the domain error type shared by the service and
// controller layers. Every error a handler can return is mapped to an HTTP
// status through StatusCode.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error for status mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "internal"
	}
}

// Error is the single domain error. Resource and ID are set for lookups.
type Error struct {
	Kind     Kind
	Resource string
	ID       int64
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Err != nil {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Message
	}
	if e.Kind == KindNotFound {
		return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports a missing resource by id.
func NotFound(resource string, id int64) error {
	return &Error{Kind: KindNotFound, Resource: resource, ID: id}
}

// InvalidInput reports a request the server cannot act on. err may be nil.
func InvalidInput(message string, err error) error {
	return &Error{Kind: KindInvalidInput, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// StatusCode maps err to the HTTP status the API answers with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
