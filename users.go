package veloce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Users groups user management operations.
type Users interface {
	// Create creates a user with the given username and options.
	Create(ctx context.Context, username string, opts ...UserOption) (Record, error)

	// CreateFree creates a free-tier user and returns its subscription URL.
	CreateFree(ctx context.Context, username string) (string, error)

	// Get returns a user by username.
	Get(ctx context.Context, username string) (Record, error)

	// List returns a page of users together with the total count.
	List(ctx context.Context, offset, limit int) (*UserPage, error)

	// Delete removes a user.
	Delete(ctx context.Context, username string) error

	// ExtendSubscription extends a user's subscription by the given number
	// of days and returns the (possibly rotated) subscription URL.
	ExtendSubscription(ctx context.Context, username string, days int) (string, error)

	// Usage returns a user's traffic usage.
	Usage(ctx context.Context, username string) (Record, error)

	// ResetTraffic resets a user's traffic counters.
	ResetTraffic(ctx context.Context, username string) error

	// Ban suspends a user.
	Ban(ctx context.Context, username string) error

	// Unban reactivates a banned user.
	Unban(ctx context.Context, username string) error
}

// UserPage is one page of a user listing.
type UserPage struct {
	Total int64
	Users []Record
}

// userConfig holds optional fields for user creation.
type userConfig struct {
	body map[string]any
}

// UserOption configures user creation.
type UserOption func(*userConfig)

// WithDataLimit sets the user's traffic quota in bytes. Zero means
// unlimited.
func WithDataLimit(bytes int64) UserOption {
	return func(c *userConfig) {
		c.body["data_limit"] = bytes
	}
}

// WithExpireDays sets the subscription length in days from now.
func WithExpireDays(days int) UserOption {
	return func(c *userConfig) {
		c.body["expire_days"] = days
	}
}

// WithNote attaches an operator note to the user.
func WithNote(note string) UserOption {
	return func(c *userConfig) {
		c.body["note"] = note
	}
}

// usersImpl implements the Users interface.
type usersImpl struct {
	client *Client
}

func userPath(username string, suffix string) string {
	return fmt.Sprintf("/users/%s%s", url.PathEscape(username), suffix)
}

func (u *usersImpl) Create(ctx context.Context, username string, opts ...UserOption) (Record, error) {
	cfg := &userConfig{body: map[string]any{"username": username}}
	for _, opt := range opts {
		opt(cfg)
	}

	_, body, err := u.client.execute(ctx, http.MethodPost, "/users", cfg.body, nil, true)
	return body, err
}

func (u *usersImpl) CreateFree(ctx context.Context, username string) (string, error) {
	payload := map[string]any{"username": username}
	_, body, err := u.client.execute(ctx, http.MethodPost, "/users/free", payload, nil, true)
	if err != nil {
		return "", err
	}
	return body.String("subscription_url"), nil
}

func (u *usersImpl) Get(ctx context.Context, username string) (Record, error) {
	_, body, err := u.client.execute(ctx, http.MethodGet, userPath(username, ""), nil, nil, true)
	return body, err
}

func (u *usersImpl) List(ctx context.Context, offset, limit int) (*UserPage, error) {
	params := map[string]any{
		"offset": offset,
		"limit":  limit,
	}
	_, body, err := u.client.execute(ctx, http.MethodGet, "/users", nil, params, true)
	if err != nil {
		return nil, err
	}
	return &UserPage{
		Total: body.Int("total"),
		Users: body.Records("users"),
	}, nil
}

func (u *usersImpl) Delete(ctx context.Context, username string) error {
	_, _, err := u.client.execute(ctx, http.MethodDelete, userPath(username, ""), nil, nil, true)
	return err
}

func (u *usersImpl) ExtendSubscription(ctx context.Context, username string, days int) (string, error) {
	payload := map[string]any{"days": days}
	_, body, err := u.client.execute(ctx, http.MethodPost, userPath(username, "/extend"), payload, nil, true)
	if err != nil {
		return "", err
	}
	return body.String("subscription_url"), nil
}

func (u *usersImpl) Usage(ctx context.Context, username string) (Record, error) {
	_, body, err := u.client.execute(ctx, http.MethodGet, userPath(username, "/usage"), nil, nil, true)
	return body, err
}

func (u *usersImpl) ResetTraffic(ctx context.Context, username string) error {
	_, _, err := u.client.execute(ctx, http.MethodPost, userPath(username, "/reset"), nil, nil, true)
	return err
}

func (u *usersImpl) Ban(ctx context.Context, username string) error {
	_, _, err := u.client.execute(ctx, http.MethodPost, userPath(username, "/ban"), nil, nil, true)
	return err
}

func (u *usersImpl) Unban(ctx context.Context, username string) error {
	_, _, err := u.client.execute(ctx, http.MethodPost, userPath(username, "/unban"), nil, nil, true)
	return err
}
