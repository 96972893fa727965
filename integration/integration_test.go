//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	veloce "github.com/veloce/client-go"
)

var (
	apiKey  string
	baseURL string
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	baseURL = os.Getenv("VELOCE_URL")
	apiKey = os.Getenv("VELOCE_API_KEY")

	if baseURL == "" {
		os.Stderr.WriteString("Skipping integration tests: VELOCE_URL not set\n")
		os.Exit(0)
	}

	if apiKey == "" {
		os.Stderr.WriteString("Skipping integration tests: VELOCE_API_KEY not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("Panel URL: " + baseURL + "\n")

	os.Exit(m.Run())
}

func newClient(t *testing.T) *veloce.Client {
	t.Helper()

	client, err := veloce.New(baseURL, apiKey,
		veloce.WithTimeout(30*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestIntegration_HealthCheck(t *testing.T) {
	client := newClient(t)

	if !client.HealthCheck(context.Background()) {
		t.Fatal("HealthCheck() = false for a reachable panel")
	}
}

func TestIntegration_CurrentAdmin(t *testing.T) {
	client := newClient(t)

	admin, err := client.Admin().Current(context.Background())
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	t.Logf("Authenticated as: %s", admin.String("username"))

	if admin.String("username") == "" {
		t.Error("admin username is empty")
	}
}

func TestIntegration_UserLifecycle(t *testing.T) {
	client := newClient(t)
	ctx := context.Background()

	username := fmt.Sprintf("it-%d", time.Now().UnixNano())

	user, err := client.Users().Create(ctx, username,
		veloce.WithExpireDays(1),
		veloce.WithNote("integration test"),
	)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() {
		_ = client.Users().Delete(ctx, username)
	})

	t.Logf("Created user: %s", user.String("username"))

	got, err := client.Users().Get(ctx, username)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.String("username") != username {
		t.Errorf("Get() username = %q, want %q", got.String("username"), username)
	}

	// Creating the same user again must conflict
	if _, err := client.Users().Create(ctx, username); !errors.Is(err, veloce.ErrConflict) {
		t.Errorf("duplicate Create() error = %v, want ErrConflict", err)
	}

	if err := client.Users().Ban(ctx, username); err != nil {
		t.Errorf("Ban() error = %v", err)
	}
	if err := client.Users().Unban(ctx, username); err != nil {
		t.Errorf("Unban() error = %v", err)
	}

	usage, err := client.Users().Usage(ctx, username)
	if err != nil {
		t.Errorf("Usage() error = %v", err)
	} else if usage == nil {
		t.Error("Usage() returned nil record")
	}

	if err := client.Users().Delete(ctx, username); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	if _, err := client.Users().Get(ctx, username); !errors.Is(err, veloce.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestIntegration_ListUsers(t *testing.T) {
	client := newClient(t)

	page, err := client.Users().List(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Panel has %d users", page.Total)

	if page.Total < 0 {
		t.Errorf("Total = %d", page.Total)
	}
	if int64(len(page.Users)) > page.Total {
		t.Errorf("page holds %d users but total is %d", len(page.Users), page.Total)
	}
}

func TestIntegration_SystemStats(t *testing.T) {
	client := newClient(t)

	stats, err := client.System().Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	t.Logf("System stats: %v", stats)

	if len(stats) == 0 {
		t.Error("Stats() returned an empty record")
	}
}

func TestIntegration_Nodes(t *testing.T) {
	client := newClient(t)

	nodes, err := client.Nodes().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	t.Logf("Panel has %d nodes", len(nodes))
}

func TestIntegration_WithSession(t *testing.T) {
	client := newClient(t)

	err := client.WithSession(func(c *veloce.Client) error {
		if !c.HealthCheck(context.Background()) {
			return errors.New("panel unreachable inside session")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithSession() error = %v", err)
	}

	// Client stays usable after the session closes
	if !client.HealthCheck(context.Background()) {
		t.Error("HealthCheck() = false after WithSession")
	}
}
