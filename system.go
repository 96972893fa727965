package veloce

import (
	"context"
	"net/http"
)

// System groups system information operations.
type System interface {
	// Stats returns panel-wide statistics: user counts, bandwidth totals
	// and current transfer speeds.
	Stats(ctx context.Context) (Record, error)
}

// systemImpl implements the System interface.
type systemImpl struct {
	client *Client
}

func (s *systemImpl) Stats(ctx context.Context) (Record, error) {
	_, body, err := s.client.execute(ctx, http.MethodGet, "/system", nil, nil, true)
	return body, err
}
