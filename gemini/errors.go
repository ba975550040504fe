package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorKind categorizes client failures.
type ErrorKind int

const (
	// ErrKindTransport is an underlying connection failure (DNS, TLS,
	// timeout, reset).
	ErrKindTransport ErrorKind = iota
	// ErrKindAPI is a non-success HTTP status from the API.
	ErrKindAPI
	// ErrKindDecode is a response body that does not match the expected
	// schema.
	ErrKindDecode
	// ErrKindUnknownFunction is a model request for a function absent from
	// the handler map.
	ErrKindUnknownFunction
	// ErrKindHandler is a local handler reporting failure.
	ErrKindHandler
)

// String returns a human-readable description of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindTransport:
		return "transport error"
	case ErrKindAPI:
		return "api error"
	case ErrKindDecode:
		return "decode error"
	case ErrKindUnknownFunction:
		return "unknown function"
	case ErrKindHandler:
		return "handler error"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned by client operations. Every
// failure is terminal for the call that produced it; the client never
// retries on the caller's behalf.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int    // HTTP status for API errors
	APICode    int    // vendor error code, when the payload was parseable
	APIStatus  string // vendor status string, e.g. "INVALID_ARGUMENT"
	RawBody    []byte // raw response body for decode errors
	Err        error  // wrapped cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini: %s: %s (status %d)", e.Kind, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("gemini: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Retryable reports whether retrying the whole operation could plausibly
// succeed. The client itself never retries; this feeds RetryWithBackoff for
// callers that wrap their own policy around a call.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case ErrKindTransport:
		return true
	case ErrKindAPI:
		return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
	default:
		return false
	}
}

// NewTransportError wraps a connection-level failure.
func NewTransportError(err error) *Error {
	return &Error{
		Kind:    ErrKindTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewAPIError builds an error for a non-success HTTP status, parsing the
// vendor error payload out of the body when present.
func NewAPIError(statusCode int, body []byte) *Error {
	e := &Error{
		Kind:       ErrKindAPI,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		StatusCode: statusCode,
	}

	var payload errorResponse
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		e.Message = payload.Error.Message
		e.APICode = payload.Error.Code
		e.APIStatus = payload.Error.Status
	}
	return e
}

// NewDecodeError wraps a schema mismatch, keeping the raw body for
// diagnostics.
func NewDecodeError(body []byte, err error) *Error {
	return &Error{
		Kind:    ErrKindDecode,
		Message: err.Error(),
		RawBody: body,
		Err:     err,
	}
}

// NewUnknownFunctionError reports a model request for an undeclared function.
func NewUnknownFunctionError(name string) *Error {
	return &Error{
		Kind:    ErrKindUnknownFunction,
		Message: fmt.Sprintf("no handler registered for function %q", name),
	}
}

// NewHandlerError wraps a local handler failure, surfacing its message
// unchanged.
func NewHandlerError(name string, err error) *Error {
	return &Error{
		Kind:    ErrKindHandler,
		Message: fmt.Sprintf("function %q: %s", name, err.Error()),
		Err:     err,
	}
}
