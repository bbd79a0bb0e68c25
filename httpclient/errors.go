package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Kind classifies request failures into a closed set of categories.
// Callers branch on Kind, never on message text.
type Kind int

const (
	// KindValidation indicates bad-request semantics (HTTP 400) or an
	// invalid request that never left the client.
	KindValidation Kind = iota
	// KindAuthentication indicates missing or invalid credentials (HTTP 401).
	KindAuthentication
	// KindAuthorization indicates insufficient permissions (HTTP 403).
	KindAuthorization
	// KindNotFound indicates the resource does not exist (HTTP 404).
	KindNotFound
	// KindConflict indicates a state conflict (HTTP 409).
	KindConflict
	// KindServer indicates a server-side failure (HTTP 5xx).
	KindServer
	// KindNetwork indicates a transport failure, a timeout, or an
	// unparsable success body.
	KindNetwork
	// KindGeneric covers any other non-success status.
	KindGeneric
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// RawResponse carries the unmodified response that produced an error.
type RawResponse struct {
	// Status is the HTTP status code.
	Status int
	// Body is the raw response body text.
	Body string
}

// Error is a classified request failure.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Message describes the failure. Diagnostic only.
	Message string
	// Status is the HTTP status code (0 for transport-level failures).
	Status int
	// Raw is the original response, when one was received.
	Raw *RawResponse
	// Err is the underlying error, when one exists.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Classify converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes. The mapping is total: every
// non-success status maps to exactly one kind.
func Classify(status int, message string, body []byte) *Error {
	if status >= 200 && status < 300 {
		return nil
	}
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	e := &Error{
		Message: message,
		Status:  status,
		Raw:     &RawResponse{Status: status, Body: string(body)},
	}
	switch {
	case status == 400:
		e.Kind = KindValidation
	case status == 401:
		e.Kind = KindAuthentication
	case status == 403:
		e.Kind = KindAuthorization
	case status == 404:
		e.Kind = KindNotFound
	case status == 409:
		e.Kind = KindConflict
	case status >= 500:
		e.Kind = KindServer
	default:
		e.Kind = KindGeneric
	}
	return e
}

// errorMessage extracts a "message" or "error" field from a JSON error
// body for a richer error message. Returns "" when neither is present.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// NewValidationError creates a client-side validation error.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewTimeoutError creates a timeout error for the given effective timeout.
func NewTimeoutError(timeout time.Duration, err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("request timeout after %dms", timeout.Milliseconds()),
		Err:     err,
	}
}

// NewNetworkError creates a transport failure error.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "network request failed", Err: err}
}

// NewDecodeError creates an error for an unparsable success body.
// A 2xx response with invalid JSON is a protocol violation and is
// reported under KindNetwork.
func NewDecodeError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "failed to parse response JSON", Err: err}
}

// NewTokenError creates an error for a failed token retrieval.
func NewTokenError(err error) *Error {
	return &Error{
		Kind:    KindAuthentication,
		Message: fmt.Sprintf("fetch token: %v", err),
		Err:     err,
	}
}

// IsKind checks whether an error is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool { return IsKind(err, KindAuthentication) }

// IsAuthorization checks if an error is an authorization error.
func IsAuthorization(err error) bool { return IsKind(err, KindAuthorization) }

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// IsServerError checks if an error is a server error.
func IsServerError(err error) bool { return IsKind(err, KindServer) }

// IsNetwork checks if an error is a network, timeout, or decode error.
func IsNetwork(err error) bool { return IsKind(err, KindNetwork) }

// IsGeneric checks if an error is a generic HTTP error.
func IsGeneric(err error) bool { return IsKind(err, KindGeneric) }
