package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Profile, settings, subscription and API keys",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parent := cmd.Root().PersistentPreRunE; parent != nil {
				if err := parent(cmd, args); err != nil {
					return err
				}
			}
			_, err := wire.Session.RequireUser()
			return err
		},
	}
	cmd.AddCommand(
		accountProfileCmd(), accountSettingsCmd(),
		accountPlansCmd(), accountSubscribeCmd(), accountUnsubscribeCmd(),
		accountKeysCmd(),
	)
	return cmd
}

func accountProfileCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update name or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.API.UpdateUserProfile(cmd.Context(), domain.ProfileUpdateRequest{
				FullName: name,
				Email:    email,
			})
			if err != nil {
				return err
			}
			wire.Session.UpdateUser(domain.UserUpdate{FullName: user.FullName, Email: user.Email})
			fmt.Printf("Profile updated: %s <%s>\n", user.FullName, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new full name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	return cmd
}

func accountSettingsCmd() *cobra.Command {
	var notifications, newsletter bool
	var theme string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Update notification and display settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := wire.API.UpdateUserSettings(cmd.Context(), domain.UserSettings{
				Notifications: notifications,
				Newsletter:    newsletter,
				Theme:         theme,
			})
			if err != nil {
				return err
			}
			fmt.Println("Settings saved")
			return nil
		},
	}
	cmd.Flags().BoolVar(&notifications, "notifications", true, "email notifications")
	cmd.Flags().BoolVar(&newsletter, "newsletter", false, "newsletter subscription")
	cmd.Flags().StringVar(&theme, "theme", "", "UI theme")
	return cmd
}

func accountPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := wire.API.SubscriptionPlans(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range plans {
				fmt.Printf("%s\t%s\t$%.2f/mo\t%s\n", p.ID, p.Name, p.PricePerMo, p.Description)
			}
			return nil
		},
	}
}

func accountSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe [plan]",
		Short: "Subscribe to a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := wire.API.CreateSubscription(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Subscribed to %s (%s)\n", sub.PlanID, sub.Status)
			return nil
		},
	}
}

func accountUnsubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe",
		Short: "Cancel the active subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.API.CancelSubscription(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Subscription cancelled")
			return nil
		},
	}
}

func accountKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List API keys",
			RunE: func(cmd *cobra.Command, args []string) error {
				keys, err := wire.API.APIKeys(cmd.Context())
				if err != nil {
					return err
				}
				for _, k := range keys {
					fmt.Printf("%d\t%s\n", k.ID, k.CreatedAt.Format("2006-01-02"))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Generate an API key",
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := wire.API.GenerateAPIKey(cmd.Context())
				if err != nil {
					return err
				}
				// The secret is only shown once.
				fmt.Printf("Key %d: %s\n", key.ID, key.Key)
				return nil
			},
		},
		&cobra.Command{
			Use:   "revoke [id]",
			Short: "Revoke an API key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := wire.API.RevokeAPIKey(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Println("Revoked")
				return nil
			},
		},
	)
	return cmd
}
