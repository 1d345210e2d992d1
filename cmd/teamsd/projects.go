package main

import (
	"errors"
	"fmt"

	"github.com/caarlos0/tablewriter"
	"github.com/information-sharing-networks/teamsd/internal/types"
	"github.com/spf13/cobra"
)

// teamFlags select the company and team a command works on
type teamFlags struct {
	companyID int64
	teamID    int64
}

func (f *teamFlags) register(cmd *cobra.Command, withTeam bool) {
	cmd.Flags().Int64Var(&f.companyID, "company", 0, "company id")
	_ = cmd.MarkFlagRequired("company")
	if withTeam {
		cmd.Flags().Int64Var(&f.teamID, "team", 0, "team id")
		_ = cmd.MarkFlagRequired("team")
	}
}

func projectsCommand(a *app) *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage the projects of a team",
	}

	projectsCmd.AddCommand(
		projectListCommand(a),
		projectCreateCommand(a),
		projectUpdateCommand(a),
	)

	return projectsCmd
}

func projectListCommand(a *app) *cobra.Command {
	var (
		team teamFlags
		out  outputFlags
	)

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the projects of a team",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			projects, err := a.apiClient.ListProjects(cmd.Context(), team.companyID, team.teamID)
			if err != nil {
				return err
			}

			if out.json() {
				if projects == nil {
					projects = []types.Project{}
				}
				return writeJSON(cmd.OutOrStdout(), projects, out.color)
			}

			if len(projects) == 0 {
				cmd.Println("No projects found")
				return nil
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				projects,
				[]string{"ID", "Name", "Description", "Active", "Created"},
				func(p types.Project) ([]string, error) {
					return []string{
						formatID(p.ID),
						p.Name,
						p.Description,
						yesNo(p.Active),
						formatDate(p.Date),
					}, nil
				},
			)
		},
	}

	team.register(listCmd, true)
	out.register(listCmd, outputTable)

	return listCmd
}

func projectCreateCommand(a *app) *cobra.Command {
	var (
		team        teamFlags
		out         outputFlags
		name        string
		description string
		active      bool
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project for a team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return errors.New("--name is required")
			}

			project, err := a.apiClient.CreateProject(cmd.Context(), team.companyID, team.teamID, types.Project{
				Name:        name,
				Description: description,
				Active:      active,
				Team:        types.Team{ID: team.teamID},
			})
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), project, out.color)
		},
	}

	team.register(createCmd, true)
	out.register(createCmd, outputJSON)
	createCmd.Flags().StringVar(&name, "name", "", "project name")
	createCmd.Flags().StringVar(&description, "description", "", "project description")
	createCmd.Flags().BoolVar(&active, "active", true, "mark the project as active")

	return createCmd
}

func projectUpdateCommand(a *app) *cobra.Command {
	var (
		team        teamFlags
		out         outputFlags
		projectID   int64
		name        string
		description string
		active      bool
	)

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update the name, description or status of a project",
		Long: `Update a project. The backend replaces name, description and active together,
so values that are not given on the command line are taken from the current project.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			update := types.ProjectUpdate{
				Name:        name,
				Description: description,
				Active:      active,
			}

			if !flags.Changed("name") || !flags.Changed("description") || !flags.Changed("active") {
				current, err := findProject(cmd, a, team, projectID)
				if err != nil {
					return err
				}
				if !flags.Changed("name") {
					update.Name = current.Name
				}
				if !flags.Changed("description") {
					update.Description = current.Description
				}
				if !flags.Changed("active") {
					update.Active = current.Active
				}
			}

			project, err := a.apiClient.UpdateProject(cmd.Context(), team.companyID, team.teamID, projectID, update)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), project, out.color)
		},
	}

	team.register(updateCmd, true)
	out.register(updateCmd, outputJSON)
	updateCmd.Flags().Int64Var(&projectID, "id", 0, "project id")
	_ = updateCmd.MarkFlagRequired("id")
	updateCmd.Flags().StringVar(&name, "name", "", "new project name")
	updateCmd.Flags().StringVar(&description, "description", "", "new project description")
	updateCmd.Flags().BoolVar(&active, "active", false, "set the project status")

	return updateCmd
}

func findProject(cmd *cobra.Command, a *app, team teamFlags, projectID int64) (*types.Project, error) {
	projects, err := a.apiClient.ListProjects(cmd.Context(), team.companyID, team.teamID)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == projectID {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %d not found in team %d", projectID, team.teamID)
}
