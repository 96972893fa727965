package veloce

import (
	"context"
	"net/http"
)

// Admin groups admin operations.
type Admin interface {
	// Current returns the admin account the API key belongs to.
	Current(ctx context.Context) (Record, error)
}

// adminImpl implements the Admin interface.
type adminImpl struct {
	client *Client
}

func (a *adminImpl) Current(ctx context.Context) (Record, error) {
	_, body, err := a.client.execute(ctx, http.MethodGet, "/admin", nil, nil, true)
	return body, err
}
