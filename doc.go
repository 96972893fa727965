// Package veloce provides a Go client SDK for the Veloce VPN panel,
// a remote administration service for managing VPN/proxy users, nodes
// and inbound configurations over HTTP/JSON.
//
// Every request carries the configured API key and is retried with
// exponential backoff on transient failures (HTTP 5xx and network
// faults). Non-retryable failures surface as typed errors that work
// with errors.Is.
//
// Basic usage:
//
//	client, err := veloce.New("https://panel.example.com/api", apiKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	url, err := client.Users().CreateFree(ctx, "user123")
//	if errors.Is(err, veloce.ErrConflict) {
//	    // user already exists
//	}
//
//	stats, err := client.System().Stats(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("active users:", stats.Int("users_active"))
package veloce
