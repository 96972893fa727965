package veloce

import (
	"context"
	"fmt"
	"net/http"
)

// Nodes groups node management operations.
type Nodes interface {
	// List returns all nodes known to the panel.
	List(ctx context.Context) ([]Record, error)

	// Get returns a node by ID.
	Get(ctx context.Context, id int64) (Record, error)

	// Usage returns a node's uplink/downlink counters.
	Usage(ctx context.Context, id int64) (Record, error)

	// Reconnect asks the panel to re-establish its connection to a node.
	Reconnect(ctx context.Context, id int64) error
}

// nodesImpl implements the Nodes interface.
type nodesImpl struct {
	client *Client
}

func nodePath(id int64, suffix string) string {
	return fmt.Sprintf("/nodes/%d%s", id, suffix)
}

func (n *nodesImpl) List(ctx context.Context) ([]Record, error) {
	_, body, err := n.client.execute(ctx, http.MethodGet, "/nodes", nil, nil, true)
	if err != nil {
		return nil, err
	}
	return body.Records("nodes"), nil
}

func (n *nodesImpl) Get(ctx context.Context, id int64) (Record, error) {
	_, body, err := n.client.execute(ctx, http.MethodGet, nodePath(id, ""), nil, nil, true)
	return body, err
}

func (n *nodesImpl) Usage(ctx context.Context, id int64) (Record, error) {
	_, body, err := n.client.execute(ctx, http.MethodGet, nodePath(id, "/usage"), nil, nil, true)
	return body, err
}

func (n *nodesImpl) Reconnect(ctx context.Context, id int64) error {
	_, _, err := n.client.execute(ctx, http.MethodPost, nodePath(id, "/reconnect"), nil, nil, true)
	return err
}
