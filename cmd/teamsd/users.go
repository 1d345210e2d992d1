package main

import (
	"errors"
	"strconv"

	"github.com/caarlos0/tablewriter"
	"github.com/information-sharing-networks/teamsd/internal/types"
	"github.com/spf13/cobra"
)

func usersCommand(a *app) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage the user registry of a company",
	}

	usersCmd.AddCommand(
		userListCommand(a),
		userAddCommand(a),
		userRemoveCommand(a),
	)

	return usersCmd
}

func userListCommand(a *app) *cobra.Command {
	var (
		company teamFlags
		out     outputFlags
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the users of a company",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			users, err := a.apiClient.ListUsers(cmd.Context(), company.companyID)
			if err != nil {
				return err
			}

			if out.json() {
				if users == nil {
					users = []types.FullUser{}
				}
				return writeJSON(cmd.OutOrStdout(), users, out.color)
			}

			if len(users) == 0 {
				cmd.Println("No users found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				users,
				[]string{"ID", "Name", "Email", "Admin", "Active", "Status"},
				func(u types.FullUser) ([]string, error) {
					return []string{
						formatID(u.ID),
						u.Profile.FullName(),
						u.Profile.Email,
						yesNo(u.IsAdmin),
						yesNo(u.Active),
						u.Status,
					}, nil
				},
			)
		},
	}

	company.register(listCmd, false)
	out.register(listCmd, outputTable)

	return listCmd
}

func userAddCommand(a *app) *cobra.Command {
	var (
		company teamFlags
		out     outputFlags
		req     types.UserRequest
	)

	addCmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Add a user to a company",
		Long:  "Add a user to a company. The user stays PENDING until their first login.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Credentials.Password == "" {
				return errors.New("--password is required")
			}
			req.Credentials.Username = args[0]

			user, err := a.apiClient.CreateUser(cmd.Context(), company.companyID, req)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), user, out.color)
		},
	}

	company.register(addCmd, false)
	out.register(addCmd, outputJSON)
	flags := addCmd.Flags()
	flags.StringVarP(&req.Credentials.Password, "password", "p", "", "initial password")
	flags.StringVar(&req.Profile.FirstName, "firstname", "", "first name")
	flags.StringVar(&req.Profile.LastName, "lastname", "", "last name")
	flags.StringVar(&req.Profile.Email, "email", "", "email address")
	flags.StringVar(&req.Profile.Phone, "phone", "", "phone number")
	flags.BoolVar(&req.Admin, "admin", false, "grant company admin rights")

	return addCmd
}

func userRemoveCommand(a *app) *cobra.Command {
	var (
		company teamFlags
		out     outputFlags
		admin   types.Credentials
	)

	removeCmd := &cobra.Command{
		Use:     "remove USER_ID",
		Aliases: []string{"rm"},
		Short:   "Deactivate a user",
		Long:    "Deactivate a user. The change is authorised with the credentials of a company admin.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("USER_ID must be a number")
			}
			if admin.Username == "" || admin.Password == "" {
				return errors.New("--admin-user and --admin-password are required")
			}

			user, err := a.apiClient.DeleteUser(cmd.Context(), company.companyID, userID, admin)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), user, out.color)
		},
	}

	company.register(removeCmd, false)
	out.register(removeCmd, outputJSON)
	removeCmd.Flags().StringVar(&admin.Username, "admin-user", "", "username of the admin making the change")
	removeCmd.Flags().StringVar(&admin.Password, "admin-password", "", "password of the admin making the change")

	return removeCmd
}
