package backend

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable category for auth service failures.
type Kind string

const (
	// KindTransport indicates the request never produced a usable response
	// (connection error, timeout, unreadable body).
	KindTransport Kind = "transport_failed"
	// KindUnauthorized indicates the server rejected the access token.
	KindUnauthorized Kind = "unauthorized"
	// KindValidation indicates the server rejected the submitted fields.
	KindValidation Kind = "validation_failed"
	// KindDecode indicates a 2xx response whose body could not be parsed.
	KindDecode Kind = "decode_failed"
)

// APIError wraps an auth service failure with its kind, the operation it
// belongs to, the user-facing message extracted from the payload (empty
// when the server sent none), and the verbatim field-keyed validation
// errors when the server sent any.
type APIError struct {
	Kind       Kind
	Op         string
	StatusCode int
	Message    string
	Fields     map[string][]string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Op
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an APIError of kind unauthorized.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == KindUnauthorized
}

func transportErr(op string, err error) *APIError {
	return &APIError{Kind: KindTransport, Op: op, Err: err}
}
