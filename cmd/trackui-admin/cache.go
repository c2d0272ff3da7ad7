package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/data"
)

// CacheCmd groups cache maintenance commands.
func CacheCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and flush cached tracker API reads",
	}
	cmd.AddCommand(cacheFlushCmd(admin))
	return cmd
}

func cacheFlushCmd(admin *adminContext) *cobra.Command {
	var (
		userID string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "flush",
		Short: "Evict cached reads for one user, or the whole cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" && !all {
				return fmt.Errorf("either --user or --all is required")
			}
			if userID != "" && all {
				return fmt.Errorf("--user and --all are mutually exclusive")
			}

			client, err := admin.Redis()
			if err != nil {
				return err
			}
			cache := data.NewRedisCacheRepo(client)

			ctx := cmd.Context()
			if userID != "" {
				n, err := cache.DeleteByPrefix(ctx, core.UserCachePrefix(userID))
				if err != nil {
					return fmt.Errorf("flush user cache: %w", err)
				}
				fmt.Printf("flushed %d cached entries for user %s\n", n, userID)
				return nil
			}

			total := 0
			for _, prefix := range []string{"user:", "share:", "profile:"} {
				n, err := cache.DeleteByPrefix(ctx, prefix)
				if err != nil {
					return fmt.Errorf("flush %q entries: %w", prefix, err)
				}
				total += n
			}
			fmt.Printf("flushed %d cached entries\n", total)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Flush cached reads for this user id")
	cmd.Flags().BoolVar(&all, "all", false, "Flush every cached read, including shares and profiles")
	return cmd
}
