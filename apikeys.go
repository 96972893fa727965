package veloce

import (
	"context"
	"fmt"
	"net/http"
)

// APIKeys groups API key management operations. These require admin
// privileges on the panel.
type APIKeys interface {
	// List returns all API keys.
	List(ctx context.Context) ([]Record, error)

	// Create creates a new API key with the given name. The returned
	// record contains the key material once; the panel does not show it
	// again.
	Create(ctx context.Context, name string) (Record, error)

	// Delete revokes an API key by ID.
	Delete(ctx context.Context, id int64) error
}

// apiKeysImpl implements the APIKeys interface.
type apiKeysImpl struct {
	client *Client
}

func (a *apiKeysImpl) List(ctx context.Context) ([]Record, error) {
	_, body, err := a.client.execute(ctx, http.MethodGet, "/api-keys", nil, nil, true)
	if err != nil {
		return nil, err
	}
	return body.Records("keys"), nil
}

func (a *apiKeysImpl) Create(ctx context.Context, name string) (Record, error) {
	payload := map[string]any{"name": name}
	_, body, err := a.client.execute(ctx, http.MethodPost, "/api-keys", payload, nil, true)
	return body, err
}

func (a *apiKeysImpl) Delete(ctx context.Context, id int64) error {
	_, _, err := a.client.execute(ctx, http.MethodDelete, fmt.Sprintf("/api-keys/%d", id), nil, nil, true)
	return err
}
