package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offertrack/track-ui-api/internal/data"
)

// sessionKeyPrefix matches the prefix the server's session store writes under.
const sessionKeyPrefix = "session:"

// SessionsCmd groups session maintenance commands.
func SessionsCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage server-side login sessions",
	}
	cmd.AddCommand(sessionsPurgeCmd(admin))
	return cmd
}

func sessionsPurgeCmd(admin *adminContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every stored session, forcing all users to log in again",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to purge sessions without --yes")
			}

			client, err := admin.Redis()
			if err != nil {
				return err
			}
			cache := data.NewRedisCacheRepo(client)

			n, err := cache.DeleteByPrefix(cmd.Context(), sessionKeyPrefix)
			if err != nil {
				return fmt.Errorf("purge sessions: %w", err)
			}
			fmt.Printf("purged %d sessions\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the purge")
	return cmd
}
