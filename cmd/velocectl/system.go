package main

import (
	"github.com/spf13/cobra"
)

func newSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Inspect the panel",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show system statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			stats, err := client.System().Stats(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "admin",
		Short: "Show the authenticated admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			admin, err := client.Admin().Current(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(admin)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "inbounds",
		Short: "Show configured inbounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			inbounds, err := client.Inbounds().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(inbounds)
		},
	})

	return cmd
}
