package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Default client configuration values.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	// DefaultRetryUnit is the base duration of one backoff unit. The
	// delay before retry attempt i+1 is min(2^i, 60) units.
	DefaultRetryUnit = time.Second
)

// Config holds the request executor configuration. These four fields are
// the only inputs that drive request behavior; diagnostics (logger) and
// test knobs are injected through setters.
type Config struct {
	// BaseURL is the panel API root, e.g. "https://panel.example.com/api".
	// A trailing slash is stripped.
	BaseURL string
	// APIKey is sent with every request in the X-API-Key header.
	APIKey string
	// Timeout bounds each individual request attempt. Zero means
	// DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the attempt budget for retryable requests. Zero means
	// DefaultMaxRetries.
	MaxRetries int
}

// Client executes HTTP requests against the panel API. It owns a lazily
// created session (an *http.Client with its connection pool) that is
// safe for concurrent use and recreated transparently after Close.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	retryUnit  time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	session *http.Client
}

// NewClient creates a new request executor.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		maxRetries: maxRetries,
		retryUnit:  DefaultRetryUnit,
		logger:     slog.Default(),
	}, nil
}

// SetLogger replaces the diagnostic logger.
func (c *Client) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetRetryUnit overrides the base backoff unit. Tests shrink it to keep
// retry loops fast; production code should not need it.
func (c *Client) SetRetryUnit(unit time.Duration) {
	if unit > 0 {
		c.retryUnit = unit
	}
}

// BaseURL returns the normalized panel API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// EnsureSession creates the session if it is absent or was closed.
func (c *Client) EnsureSession() {
	c.ensureSession()
}

// ensureSession returns the live session, creating one under the lock if
// needed so concurrent first use cannot create duplicates.
func (c *Client) ensureSession() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		c.session = &http.Client{Timeout: c.timeout}
	}
	return c.session
}

// Close releases the session. It is idempotent; a later Execute creates
// a fresh session.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		c.session.CloseIdleConnections()
		c.session = nil
	}
}

// Execute issues one logical request against the panel API.
//
// Transient failures (HTTP 5xx and transport faults) are retried up to
// the configured budget with exponential backoff when retryable is true;
// everything the status table classifies as non-retryable fails
// immediately with a typed *APIError. Any other status is a success and
// is returned together with the decoded JSON body. A body that fails to
// decode degrades to an empty map, never to an error.
func (c *Client) Execute(ctx context.Context, method, endpoint string, body map[string]any, params map[string]any, retryable bool) (int, map[string]any, error) {
	reqURL, err := c.buildURL(endpoint, params)
	if err != nil {
		return 0, nil, &APIError{Kind: KindAPI, Message: fmt.Sprintf("Request failed: %v", err), Err: err}
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return 0, nil, &APIError{Kind: KindAPI, Message: fmt.Sprintf("Request failed: %v", err), Err: err}
		}
	}

	retries := 1
	if retryable {
		retries = c.maxRetries
	}

	session := c.ensureSession()
	requestID := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		c.logger.Debug("sending request",
			"method", method,
			"endpoint", endpoint,
			"attempt", attempt+1,
			"retries", retries,
			"request_id", requestID,
		)

		req, err := c.newRequest(ctx, method, reqURL, payload, requestID)
		if err != nil {
			return 0, nil, &APIError{Kind: KindAPI, Message: fmt.Sprintf("Request failed: %v", err), Err: err}
		}

		resp, err := session.Do(req)
		if err != nil {
			lastErr = err
			if attempt < retries-1 {
				delay := backoffDelay(attempt, c.retryUnit)
				c.logger.Warn("network error, retrying",
					"delay", delay,
					"error", err,
					"request_id", requestID,
				)
				if werr := wait(ctx, delay); werr == nil {
					continue
				}
			}
			c.logger.Error("request failed",
				"attempts", retries,
				"error", err,
				"request_id", requestID,
			)
			return 0, nil, &APIError{
				Kind:    KindAPI,
				Message: fmt.Sprintf("HTTP request failed: %v", err),
				Err:     err,
			}
		}

		respBody := decodeBody(resp)
		c.logger.Debug("response received",
			"status", resp.StatusCode,
			"endpoint", endpoint,
			"request_id", requestID,
		)

		apiErr := classifyStatus(resp.StatusCode, respBody)
		if apiErr == nil {
			return resp.StatusCode, respBody, nil
		}
		if apiErr.Retryable() && attempt < retries-1 {
			lastErr = apiErr
			delay := backoffDelay(attempt, c.retryUnit)
			c.logger.Warn("server error, retrying",
				"status", resp.StatusCode,
				"delay", delay,
				"request_id", requestID,
			)
			if werr := wait(ctx, delay); werr != nil {
				return 0, nil, apiErr
			}
			continue
		}
		return 0, nil, apiErr
	}

	// Unreachable under the loop's control flow; kept as a guard.
	if lastErr != nil {
		return 0, nil, &APIError{
			Kind:    KindAPI,
			Message: fmt.Sprintf("Request failed after %d attempts: %v", retries, lastErr),
			Err:     lastErr,
		}
	}
	return 0, nil, &APIError{
		Kind:    KindAPI,
		Message: fmt.Sprintf("Request failed after %d attempts", retries),
	}
}

// buildURL joins the endpoint to the base URL and encodes query params.
func (c *Client) buildURL(endpoint string, params map[string]any) (string, error) {
	full := c.baseURL + endpoint
	if len(params) == 0 {
		return full, nil
	}
	u, err := url.Parse(full)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for key, value := range params {
		q.Set(key, fmt.Sprint(value))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// newRequest builds one attempt's request with the auth and content-type
// headers every outgoing request carries.
func (c *Client) newRequest(ctx context.Context, method, reqURL string, payload []byte, requestID string) (*http.Request, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	return req, nil
}

// decodeBody reads and decodes a JSON object body. Wrong content types
// and malformed bodies degrade to an empty map; that is not an error.
func decodeBody(resp *http.Response) map[string]any {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return map[string]any{}
	}
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil || body == nil {
		return map[string]any{}
	}
	return body
}
