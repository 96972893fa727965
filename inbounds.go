package veloce

import (
	"context"
	"net/http"
)

// Inbounds groups inbound configuration operations.
type Inbounds interface {
	// List returns the panel's inbound configurations grouped by protocol.
	List(ctx context.Context) (Record, error)
}

// inboundsImpl implements the Inbounds interface.
type inboundsImpl struct {
	client *Client
}

func (i *inboundsImpl) List(ctx context.Context) (Record, error) {
	_, body, err := i.client.execute(ctx, http.MethodGet, "/inbounds", nil, nil, true)
	return body, err
}
