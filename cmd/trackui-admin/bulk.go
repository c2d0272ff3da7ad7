package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/offertrack/track-ui-api/internal/domain/model"
	"github.com/offertrack/track-ui-api/internal/service"
)

// BulkCmd groups bulk process mutations run on a user's behalf.
func BulkCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Apply one mutation to many processes on a user's behalf",
	}
	cmd.AddCommand(bulkDeleteCmd(admin))
	cmd.AddCommand(bulkStatusCmd(admin))
	return cmd
}

func bulkDeleteCmd(admin *adminContext) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "delete <process-id>...",
		Short: "Delete processes for a user",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			services, err := admin.Services()
			if err != nil {
				return err
			}

			results, err := services.Bulk.DeleteProcesses(actingAs(cmd.Context(), userID), ids)
			if err != nil {
				return err
			}
			printBulkResults(results)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id the deletes are issued for")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func bulkStatusCmd(admin *adminContext) *cobra.Command {
	var (
		userID string
		status string
	)

	cmd := &cobra.Command{
		Use:   "status <process-id>...",
		Short: "Set the status of processes for a user",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			services, err := admin.Services()
			if err != nil {
				return err
			}

			results, err := services.Bulk.UpdateStatus(actingAs(cmd.Context(), userID), ids, model.ProcessStatus(status))
			if err != nil {
				return err
			}
			printBulkResults(results)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id the updates are issued for")
	cmd.Flags().StringVar(&status, "status", "", "Target process status")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid process id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printBulkResults(results []service.BulkResult) {
	for _, r := range results {
		if r.OK {
			fmt.Printf("%d\tok\n", r.ID)
		} else {
			fmt.Printf("%d\tfailed\t%s\n", r.ID, r.Error)
		}
	}
}
