package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/tablewriter"
	"github.com/information-sharing-networks/teamsd/internal/types"
	"github.com/spf13/cobra"
)

func loginCommand(a *app) *cobra.Command {
	var (
		password string
		out      outputFlags
	)

	loginCmd := &cobra.Command{
		Use:   "login USERNAME",
		Short: "Log in and list the companies available to the user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			if err := out.validate(); err != nil {
				return err
			}

			user, err := a.apiClient.Login(cmd.Context(), types.Credentials{
				Username: args[0],
				Password: password,
			})
			if err != nil {
				return err
			}

			if out.json() {
				return writeJSON(cmd.OutOrStdout(), user, out.color)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Profile.FullName())
			if len(user.Companies) == 0 {
				cmd.Println("No companies found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				user.Companies,
				[]string{"ID", "Company", "Description"},
				func(c types.Company) ([]string, error) {
					return []string{formatID(c.ID), c.Name, c.Description}, nil
				},
			)
		},
	}

	loginCmd.Flags().StringVarP(&password, "password", "p", "", "user password")
	out.register(loginCmd, outputTable)

	return loginCmd
}
