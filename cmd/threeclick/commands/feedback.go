package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

func feedbackCmd() *cobra.Command {
	var sub domain.FeedbackSubmission

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := wire.Feedback
			form.Open()
			if err := form.Submit(cmd.Context(), sub); err != nil {
				if msg := form.Status(); msg != "" {
					return fmt.Errorf("%s", msg)
				}
				return err
			}
			fmt.Println(form.Status())
			return nil
		},
	}
	cmd.Flags().StringVar(&sub.Type, "type", "", "bug, feature, improvement or other")
	cmd.Flags().StringVar(&sub.Message, "message", "", "what happened")
	cmd.Flags().StringVar(&sub.Email, "email", "", "reply-to email (optional)")
	cmd.Flags().IntVar(&sub.Rating, "rating", 0, "1-5 stars (optional)")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("message")
	return cmd
}
