package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "core",
		Short: "Inspect and control the panel's proxy core",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show proxy core statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			stats, err := client.Core().Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "restart",
		Short: "Restart the proxy core",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Core().Restart(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("restart requested")
			return nil
		},
	})

	return cmd
}
