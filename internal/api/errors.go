package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrAuthFailed indicates the API key is invalid or lacks permission.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates the resource already exists.
	ErrConflict = errors.New("resource already exists")
	// ErrValidation indicates the panel rejected the request payload.
	ErrValidation = errors.New("validation failed")
	// ErrServer indicates the panel returned a server error.
	ErrServer = errors.New("server error")
)

// ErrorKind discriminates the categories of API errors.
type ErrorKind string

const (
	// KindAuth covers HTTP 401 and 403.
	KindAuth ErrorKind = "auth"
	// KindNotFound covers HTTP 404.
	KindNotFound ErrorKind = "not_found"
	// KindConflict covers HTTP 409.
	KindConflict ErrorKind = "conflict"
	// KindValidation covers HTTP 400 and 422.
	KindValidation ErrorKind = "validation"
	// KindServer covers HTTP 5xx after the retry budget is exhausted.
	KindServer ErrorKind = "server"
	// KindAPI covers transport failures and other unexpected faults.
	KindAPI ErrorKind = "api"
)

// APIError represents a failed request against the panel API.
// Kind discriminates the category; StatusCode and Body carry the
// triggering response when one was received.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       map[string]any
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// VeloceError implements the VeloceError marker interface.
func (e *APIError) VeloceError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuth:
		return target == ErrAuthFailed
	case KindNotFound:
		return target == ErrNotFound
	case KindConflict:
		return target == ErrConflict
	case KindValidation:
		return target == ErrValidation
	case KindServer:
		return target == ErrServer
	}
	return false
}

// Retryable reports whether the error category is eligible for retry.
func (e *APIError) Retryable() bool {
	return e.Kind == KindServer
}

// classifyStatus maps an HTTP status code to an APIError, or nil when
// the status does not represent an error. 2xx, 3xx and unclassified 4xx
// codes are returned to the caller as-is.
func classifyStatus(status int, body map[string]any) *APIError {
	switch {
	case status == 401:
		return &APIError{
			Kind:       KindAuth,
			StatusCode: status,
			Message:    "Authentication failed. Check API key.",
			Body:       body,
		}
	case status == 403:
		return &APIError{
			Kind:       KindAuth,
			StatusCode: status,
			Message:    "Permission denied",
			Body:       body,
		}
	case status == 404:
		return &APIError{
			Kind:       KindNotFound,
			StatusCode: status,
			Message:    "Resource not found",
			Body:       body,
		}
	case status == 409:
		return &APIError{
			Kind:       KindConflict,
			StatusCode: status,
			Message:    "Resource already exists",
			Body:       body,
		}
	case status == 400 || status == 422:
		msg := "Validation error"
		if detail, ok := body["detail"].(string); ok && detail != "" {
			msg = detail
		}
		return &APIError{
			Kind:       KindValidation,
			StatusCode: status,
			Message:    msg,
			Body:       body,
		}
	case status >= 500:
		return &APIError{
			Kind:       KindServer,
			StatusCode: status,
			Message:    "Server error",
			Body:       body,
		}
	}
	return nil
}
