package veloce

import (
	"context"
	"net/http"
)

// CoreStats groups operations for the panel's proxy core.
type CoreStats interface {
	// Stats returns the core's version and runtime statistics.
	Stats(ctx context.Context) (Record, error)

	// Restart restarts the proxy core. Restarting is not retried
	// automatically; a repeated restart on a slow panel would compound
	// the disruption.
	Restart(ctx context.Context) error
}

// coreStatsImpl implements the CoreStats interface.
type coreStatsImpl struct {
	client *Client
}

func (c *coreStatsImpl) Stats(ctx context.Context) (Record, error) {
	_, body, err := c.client.execute(ctx, http.MethodGet, "/core", nil, nil, true)
	return body, err
}

func (c *coreStatsImpl) Restart(ctx context.Context) error {
	_, _, err := c.client.execute(ctx, http.MethodPost, "/core/restart", nil, nil, false)
	return err
}
