package veloce

import (
	"log/slog"
	"time"

	"github.com/veloce/client-go/internal/api"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	timeout    time.Duration
	maxRetries int
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the attempt budget for retryable requests.
// Default: 3.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithLogger sets the diagnostic logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		timeout:    api.DefaultTimeout,
		maxRetries: api.DefaultMaxRetries,
	}
}
