package cli

import (
	"errors"
	"fmt"

	"github.com/jmallard/storefront/internal/auth"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local operator account",
}

var authCreds struct {
	name     string
	email    string
	password string
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an existing account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Auth.Login(ctx, authCreds.email, authCreds.password)
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account and log in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Auth.Signup(ctx, authCreds.name, authCreds.email, authCreds.password)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s\n", user.Name)
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.Auth.Current(ctx)
		if errors.Is(err, auth.ErrNotLoggedIn) {
			fmt.Println("Not logged in")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().StringVar(&authCreds.email, "email", "", "account email")
	authLoginCmd.Flags().StringVar(&authCreds.password, "password", "", "account password")
	_ = authLoginCmd.MarkFlagRequired("email")
	_ = authLoginCmd.MarkFlagRequired("password")

	authSignupCmd.Flags().StringVar(&authCreds.name, "name", "", "display name")
	authSignupCmd.Flags().StringVar(&authCreds.email, "email", "", "account email")
	authSignupCmd.Flags().StringVar(&authCreds.password, "password", "", "account password")
	_ = authSignupCmd.MarkFlagRequired("name")
	_ = authSignupCmd.MarkFlagRequired("email")
	_ = authSignupCmd.MarkFlagRequired("password")

	authCmd.AddCommand(authLoginCmd, authSignupCmd, authLogoutCmd, authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
