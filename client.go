package veloce

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/veloce/client-go/internal/api"
)

// Client is the main Veloce panel client. It owns one request executor
// with a lazily created session and exposes the panel's resource groups.
//
// A Client is safe for concurrent use. Close releases the session; the
// client stays usable afterwards and recreates the session on the next
// request.
type Client struct {
	api    *api.Client
	logger *slog.Logger

	users    Users
	nodes    Nodes
	admin    Admin
	inbounds Inbounds
	system   System
	apiKeys  APIKeys
	core     CoreStats
}

// New creates a new Veloce panel client.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.maxRetries,
	})
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	apiClient.SetLogger(logger)

	c := &Client{
		api:    apiClient,
		logger: logger,
	}
	c.users = &usersImpl{client: c}
	c.nodes = &nodesImpl{client: c}
	c.admin = &adminImpl{client: c}
	c.inbounds = &inboundsImpl{client: c}
	c.system = &systemImpl{client: c}
	c.apiKeys = &apiKeysImpl{client: c}
	c.core = &coreStatsImpl{client: c}

	return c, nil
}

// Users returns the user management API.
func (c *Client) Users() Users { return c.users }

// Nodes returns the node management API.
func (c *Client) Nodes() Nodes { return c.nodes }

// Admin returns the admin operations API.
func (c *Client) Admin() Admin { return c.admin }

// Inbounds returns the inbound configuration API.
func (c *Client) Inbounds() Inbounds { return c.inbounds }

// System returns the system information API.
func (c *Client) System() System { return c.system }

// APIKeys returns the API key management API.
func (c *Client) APIKeys() APIKeys { return c.apiKeys }

// Core returns the core statistics API.
func (c *Client) Core() CoreStats { return c.core }

// Close releases the client's session. It is idempotent and safe to
// call when no session exists; a later request creates a fresh session.
func (c *Client) Close() error {
	c.api.Close()
	return nil
}

// WithSession ensures a live session for the duration of fn and closes
// it when fn returns, on every exit path including a panic.
func (c *Client) WithSession(fn func(*Client) error) (err error) {
	c.api.EnsureSession()
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// HealthCheck reports whether the panel API is reachable. An
// authentication failure still counts as reachable: the API answered,
// the credentials are merely invalid or insufficient. It never returns
// an error.
func (c *Client) HealthCheck(ctx context.Context) bool {
	_, _, err := c.api.Execute(ctx, http.MethodGet, "/admin", nil, nil, true)
	if err == nil {
		return true
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == api.KindAuth {
		return true
	}

	c.logger.Warn("health check failed", "error", err)
	return false
}

// execute forwards one request to the executor and converts internal
// errors to the public taxonomy. Every resource group funnels through
// here.
func (c *Client) execute(ctx context.Context, method, endpoint string, body map[string]any, params map[string]any, retryable bool) (int, Record, error) {
	status, respBody, err := c.api.Execute(ctx, method, endpoint, body, params, retryable)
	if err != nil {
		return 0, nil, wrapError(err)
	}
	return status, Record(respBody), nil
}
