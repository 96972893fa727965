package veloce

import (
	"errors"
	"fmt"

	"github.com/veloce/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingBaseURL is returned when no base URL is provided.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrAuthFailed is returned on HTTP 401/403: the API key is invalid
	// or lacks permission.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when the resource already exists.
	ErrConflict = errors.New("resource already exists")

	// ErrValidation is returned when the panel rejects the request payload.
	ErrValidation = errors.New("validation failed")

	// ErrServer is returned when the panel keeps failing with 5xx after
	// the retry budget is exhausted.
	ErrServer = errors.New("server error")
)

// ErrorKind discriminates the categories of API errors.
type ErrorKind = api.ErrorKind

// Error kind constants.
const (
	// KindAuth covers HTTP 401 and 403.
	KindAuth = api.KindAuth
	// KindNotFound covers HTTP 404.
	KindNotFound = api.KindNotFound
	// KindConflict covers HTTP 409.
	KindConflict = api.KindConflict
	// KindValidation covers HTTP 400 and 422.
	KindValidation = api.KindValidation
	// KindServer covers HTTP 5xx after retries are exhausted.
	KindServer = api.KindServer
	// KindAPI covers transport failures and other unexpected faults.
	KindAPI = api.KindAPI
)

// VeloceError is implemented by all SDK errors.
type VeloceError interface {
	error
	VeloceError() // marker method
}

// APIError represents a failed request against the Veloce panel API.
// Kind discriminates the category; StatusCode and Body carry the
// triggering HTTP response when one was received.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Body       Record
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// VeloceError implements the VeloceError interface.
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

// IsAuthError reports whether err is an authentication or permission
// failure (HTTP 401/403).
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuth
}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the public sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       Record(apiErr.Body),
		}
	}

	return err
}
