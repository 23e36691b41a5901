package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

func consentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consent",
		Short: "Cookie consent choices",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, ok := wire.Banner.Preferences()
			if !ok {
				fmt.Println("No preferences saved yet")
				return nil
			}
			fmt.Printf("essential: %v\nanalytics: %v\nmarketing: %v\n", prefs.Essential, prefs.Analytics, prefs.Marketing)
			return nil
		},
	}
	cmd.AddCommand(consentAcceptCmd(), consentRejectCmd(), consentSetCmd())
	return cmd
}

func consentAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept",
		Short: "Accept all cookies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Banner.AcceptAll(); err != nil {
				return err
			}
			fmt.Println("All cookies accepted")
			return nil
		},
	}
}

func consentRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject",
		Short: "Reject all optional cookies",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Banner.RejectAll(); err != nil {
				return err
			}
			fmt.Println("Optional cookies rejected")
			return nil
		},
	}
}

func consentSetCmd() *cobra.Command {
	var analytics, marketing bool

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save individual choices",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.Banner.Save(domain.ConsentPreferences{
				Analytics: analytics,
				Marketing: marketing,
			})
			if err != nil {
				return err
			}
			fmt.Println("Preferences saved")
			return nil
		},
	}
	cmd.Flags().BoolVar(&analytics, "analytics", false, "allow analytics cookies")
	cmd.Flags().BoolVar(&marketing, "marketing", false, "allow marketing cookies")
	return cmd
}
