// Package api provides HTTP client functionality for communicating with
// the Veloce panel API. It handles authentication, request/response
// serialization, and automatic retry logic with exponential backoff for
// transient failures.
//
// # Authentication
//
// The API key is sent via the X-API-Key header on every request, together
// with a JSON content type.
//
// # Retry Behavior
//
// Requests issued with retryable=true are attempted up to
// [Config.MaxRetries] times. Only transient failures are retried: HTTP
// 5xx responses and transport-level faults (connection errors, timeouts).
// The delay before attempt i+1 is min(2^i, 60) retry units, one second
// per unit by default.
//
// # Error Handling
//
// Failures surface as [*APIError] carrying an [ErrorKind] discriminant,
// the triggering HTTP status code and the decoded response body. The
// kinds map to sentinel errors for errors.Is checks:
//
//   - [ErrAuthFailed]: invalid or insufficient API key (401/403).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrConflict]: resource already exists (409).
//   - [ErrValidation]: request payload rejected (400/422).
//   - [ErrServer]: 5xx persisted past the retry budget.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// issue requests through a single Client simultaneously; they share one
// underlying session.
package api
