package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	veloce "github.com/veloce/client-go"
)

func newUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage panel users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersCreateFreeCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersExtendCommand())
	cmd.AddCommand(newUsersUsageCommand())
	cmd.AddCommand(newUsersResetCommand())
	cmd.AddCommand(newUsersBanCommand())
	cmd.AddCommand(newUsersUnbanCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var offset, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			page, err := client.Users().List(cmd.Context(), offset, limit)
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"total": page.Total,
				"users": page.Users,
			})
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().IntVar(&limit, "limit", 50, "page size")
	return cmd
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <username>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			user, err := client.Users().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	var (
		dataLimit  int64
		expireDays int
		note       string
	)

	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			var opts []veloce.UserOption
			if dataLimit > 0 {
				opts = append(opts, veloce.WithDataLimit(dataLimit))
			}
			if expireDays > 0 {
				opts = append(opts, veloce.WithExpireDays(expireDays))
			}
			if note != "" {
				opts = append(opts, veloce.WithNote(note))
			}

			user, err := client.Users().Create(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	cmd.Flags().Int64Var(&dataLimit, "data-limit", 0, "traffic quota in bytes (0 = unlimited)")
	cmd.Flags().IntVar(&expireDays, "expire-days", 0, "subscription length in days")
	cmd.Flags().StringVar(&note, "note", "", "operator note")
	return cmd
}

func newUsersCreateFreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-free <username>",
		Short: "Create a free-tier user and print its subscription URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			url, err := client.Users().CreateFree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Users().Delete(cmd.Context(), args[0])
		},
	}
}

func newUsersExtendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extend <username> <days>",
		Short: "Extend a user's subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid day count %q", args[1])
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			url, err := client.Users().ExtendSubscription(cmd.Context(), args[0], days)
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}
}

func newUsersUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage <username>",
		Short: "Show a user's traffic usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			usage, err := client.Users().Usage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(usage)
		},
	}
}

func newUsersResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <username>",
		Short: "Reset a user's traffic counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Users().ResetTraffic(cmd.Context(), args[0])
		},
	}
}

func newUsersBanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ban <username>",
		Short: "Suspend a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Users().Ban(cmd.Context(), args[0])
		},
	}
}

func newUsersUnbanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unban <username>",
		Short: "Reactivate a banned user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			return client.Users().Unban(cmd.Context(), args[0])
		},
	}
}
