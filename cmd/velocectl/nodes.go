package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes",
		Short: "Manage panel nodes",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())
	cmd.AddCommand(newNodesUsageCommand())
	cmd.AddCommand(newNodesReconnectCommand())

	return cmd
}

func parseNodeID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid node ID %q", arg)
	}
	return id, nil
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			nodes, err := client.Nodes().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(nodes)
		},
	}
}

func newNodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			node, err := client.Nodes().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(node)
		},
	}
}

func newNodesUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage <id>",
		Short: "Show a node's traffic usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			usage, err := client.Nodes().Usage(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(usage)
		},
	}
}

func newNodesReconnectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconnect <id>",
		Short: "Force a node to reconnect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNodeID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Nodes().Reconnect(cmd.Context(), id)
		},
	}
}
