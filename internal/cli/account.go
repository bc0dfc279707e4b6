package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/auth"
	"github.com/Anhngoc0603/sneakerstore/internal/cart"
	"github.com/Anhngoc0603/sneakerstore/internal/catalog"
)

// NewAccountCommand covers the demo user directory: register, login,
// logout, the current user and the local order history.
func NewAccountCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "manage the signed-in user",
	}
	cmd.AddCommand(newRegisterCommand(app))
	cmd.AddCommand(newLoginCommand(app))
	cmd.AddCommand(newProfileCommand(app))
	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "whoami",
		Short: "show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := app.Auth.Current(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", u.FullName, u.Email)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "orders",
		Short: "orders placed from this console",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := cart.Load(ctx, app.Store, app.Log)
			for _, o := range c.OrderLog(ctx) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s\n", o.ID, o.Date, o.Status, catalog.FormatPrice(o.Total))
			}
			return nil
		},
	})
	return cmd
}

func newRegisterCommand(app *App) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Auth.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s (password strength: %s)\n",
				u.FullName, auth.PasswordStrength(password))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}

func newProfileCommand(app *App) *cobra.Command {
	var name, phone, address string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "update the signed-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, ok := app.Auth.Current(ctx); !ok {
				return fmt.Errorf("not signed in")
			}
			fields := map[string]string{}
			if name != "" {
				fields["name"] = name
			}
			if phone != "" {
				fields["phone"] = phone
			}
			if address != "" {
				fields["address"] = address
			}
			if len(fields) == 0 {
				return fmt.Errorf("nothing to update")
			}
			if err := app.GW.Customers.UpdateProfile(ctx, fields); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "shipping address")
	return cmd
}

func newLoginCommand(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "welcome back, %s\n", u.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	return cmd
}
