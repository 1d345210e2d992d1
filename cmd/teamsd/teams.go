package main

import (
	"errors"
	"strconv"

	"github.com/caarlos0/tablewriter"
	"github.com/information-sharing-networks/teamsd/internal/types"
	"github.com/spf13/cobra"
)

func teamsCommand(a *app) *cobra.Command {
	teamsCmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Manage the teams of a company",
	}

	teamsCmd.AddCommand(
		teamListCommand(a),
		teamCreateCommand(a),
	)

	return teamsCmd
}

func teamListCommand(a *app) *cobra.Command {
	var (
		company teamFlags
		out     outputFlags
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the teams of a company",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			teams, err := a.apiClient.ListTeams(cmd.Context(), company.companyID)
			if err != nil {
				return err
			}

			if out.json() {
				if teams == nil {
					teams = []types.Team{}
				}
				return writeJSON(cmd.OutOrStdout(), teams, out.color)
			}

			if len(teams) == 0 {
				cmd.Println("No teams found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				teams,
				[]string{"ID", "Name", "Description", "Members"},
				func(t types.Team) ([]string, error) {
					return []string{
						formatID(t.ID),
						t.Name,
						t.Description,
						strconv.Itoa(len(t.Users)),
					}, nil
				},
			)
		},
	}

	company.register(listCmd, false)
	out.register(listCmd, outputTable)

	return listCmd
}

func teamCreateCommand(a *app) *cobra.Command {
	var (
		company     teamFlags
		out         outputFlags
		name        string
		description string
		teammates   []int64
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a team from a list of teammates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			if teammates == nil {
				teammates = []int64{}
			}

			team, err := a.apiClient.CreateTeam(cmd.Context(), company.companyID, types.TeamRequest{
				Name:        name,
				Description: description,
				Teammates:   teammates,
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), team, out.color)
		},
	}

	company.register(createCmd, false)
	out.register(createCmd, outputJSON)
	createCmd.Flags().StringVar(&name, "name", "", "team name")
	createCmd.Flags().StringVar(&description, "description", "", "team description")
	createCmd.Flags().Int64SliceVar(&teammates, "teammates", nil, "user ids of the team members (comma separated)")

	return createCmd
}
