package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/offertrack/track-ui-api/internal/bootstrap"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// WebhookCmd groups webhook sink commands.
func WebhookCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Exercise configured notification webhook sinks",
	}
	cmd.AddCommand(webhookTestCmd(admin))
	return cmd
}

func webhookTestCmd(admin *adminContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Dispatch a synthetic comment notification to every configured sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher := bootstrap.BuildDispatcher(admin.Config.Webhooks, admin.Logger)
			if dispatcher == nil {
				return fmt.Errorf("webhooks are disabled or no sinks are configured")
			}

			author := "trackui-admin"
			content := "test notification from trackui-admin"
			profile := "example"
			notification := &model.Notification{
				Type:            model.NotificationComment,
				CommentContent:  &content,
				AuthorUsername:  &author,
				ProfileUsername: &profile,
				CreatedAt:       time.Now().UTC(),
			}

			if err := dispatcher.Dispatch(cmd.Context(), notification); err != nil {
				return fmt.Errorf("dispatch test notification: %w", err)
			}
			fmt.Println("test notification dispatched")
			return nil
		},
	}
	return cmd
}
