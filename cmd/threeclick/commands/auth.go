package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"threeclick/internal/domain"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.Session.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("%s", wire.Session.Err())
			}
			fmt.Printf("Signed in as %s (%s)\n", user.FullName, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.Session.Register(cmd.Context(), domain.RegisterRequest{
				Email:    email,
				Password: password,
				FullName: name,
			})
			if err != nil {
				return fmt.Errorf("%s", wire.Session.Err())
			}
			fmt.Printf("Account created. Signed in as %s (%s)\n", user.FullName, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (min 8 chars)")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Session.Logout(cmd.Context())
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.Session.RequireUser()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (id %d)\n", user.FullName, user.Email, user.ID)
			return nil
		},
	}
}
