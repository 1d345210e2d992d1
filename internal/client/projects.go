package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

func projectsPath(companyID, teamID int64) string {
	return fmt.Sprintf("company/%d/teams/%d/projects", companyID, teamID)
}

// ListProjects returns the projects owned by a team
func (c *Client) ListProjects(ctx context.Context, companyID, teamID int64) ([]types.Project, error) {
	var projects []types.Project
	if err := c.do(ctx, http.MethodGet, projectsPath(companyID, teamID), nil, &projects, "list projects"); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project for a team and returns the project as stored by the backend
func (c *Client) CreateProject(ctx context.Context, companyID, teamID int64, project types.Project) (*types.Project, error) {
	var created types.Project
	if err := c.do(ctx, http.MethodPost, projectsPath(companyID, teamID), project, &created, "create project"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProject edits the name, description and active flag of a project
func (c *Client) UpdateProject(ctx context.Context, companyID, teamID, projectID int64, update types.ProjectUpdate) (*types.Project, error) {
	path := fmt.Sprintf("%s/%d", projectsPath(companyID, teamID), projectID)

	var updated types.Project
	if err := c.do(ctx, http.MethodPatch, path, update, &updated, "update project"); err != nil {
		return nil, err
	}
	return &updated, nil
}
