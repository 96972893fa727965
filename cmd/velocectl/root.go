package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	veloce "github.com/veloce/client-go"
	"github.com/veloce/client-go/internal/log"
)

var (
	flagTimeout time.Duration
	flagRetries int
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "velocectl",
		Short: "Administer a Veloce panel from the command line",
		Long: `velocectl talks to a Veloce panel's admin API.

The panel address and API key are read from VELOCE_URL and
VELOCE_API_KEY. A .env file in the working directory is loaded
automatically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request timeout")
	cmd.PersistentFlags().IntVar(&flagRetries, "retries", 3, "attempt budget for retryable requests")

	cmd.AddCommand(newHealthCommand())
	cmd.AddCommand(newUsersCommand())
	cmd.AddCommand(newNodesCommand())
	cmd.AddCommand(newSystemCommand())
	cmd.AddCommand(newAPIKeysCommand())
	cmd.AddCommand(newCoreCommand())

	return cmd
}

// newClient builds a panel client from the environment. Called by each
// subcommand's RunE rather than PersistentPreRunE so that help output
// works without credentials.
func newClient() (*veloce.Client, error) {
	_ = godotenv.Load()

	baseURL := os.Getenv("VELOCE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("VELOCE_URL is not set")
	}
	apiKey := os.Getenv("VELOCE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("VELOCE_API_KEY is not set")
	}

	return veloce.New(baseURL, apiKey,
		veloce.WithTimeout(flagTimeout),
		veloce.WithMaxRetries(flagRetries),
		veloce.WithLogger(log.New(log.FromEnv())),
	)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the panel is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if !client.HealthCheck(cmd.Context()) {
				return fmt.Errorf("panel is not reachable")
			}
			fmt.Println("ok")
			return nil
		},
	}
}
