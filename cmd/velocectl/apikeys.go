package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAPIKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikeys",
		Short: "Manage admin API keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			keys, err := client.APIKeys().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(keys)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name>",
		Short: "Create an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			key, err := client.APIKeys().Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(key)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid key ID %q", args[0])
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.APIKeys().Delete(cmd.Context(), id)
		},
	})

	return cmd
}
