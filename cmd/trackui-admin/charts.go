package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ChartsCmd groups read-only chart inspection commands.
func ChartsCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Inspect a user's chart aggregations",
	}
	cmd.AddCommand(chartsFlowCmd(admin))
	cmd.AddCommand(chartsSummaryCmd(admin))
	return cmd
}

func chartsFlowCmd(admin *adminContext) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Print a user's stage flow graph as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := admin.Services()
			if err != nil {
				return err
			}

			flow, err := services.Charts.Flow(actingAs(cmd.Context(), userID))
			if err != nil {
				return err
			}
			return printJSON(flow)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to aggregate for")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func chartsSummaryCmd(admin *adminContext) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's dashboard summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := admin.Services()
			if err != nil {
				return err
			}

			dashboard, err := services.Charts.Dashboard(actingAs(cmd.Context(), userID))
			if err != nil {
				return err
			}
			return printJSON(dashboard)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id to aggregate for")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
