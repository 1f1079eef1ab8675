package main

import (
	"errors"
	"fmt"

	"portfolio-admin/internal/panel/session"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start an admin session",
		Long: `Log in with the admin account. The password is read from the
terminal unless --password is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				fmt.Fprint(c.out, "Password: ")
				line, err := readLine(c.in)
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = line
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.gate.Login(ctx, username, password); err != nil {
				if errors.Is(err, session.ErrInvalidCredentials) {
					return errors.New("invalid username or password")
				}
				return err
			}
			fmt.Fprintf(c.out, "Logged in as %s\n", c.gate.Username())
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Admin username")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.gate.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.gate.Authenticated() {
				fmt.Fprintln(c.out, "Not logged in")
				return nil
			}
			fmt.Fprintf(c.out, "Logged in as %s\n", c.gate.Username())
			return nil
		},
	}
}
