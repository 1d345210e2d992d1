package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ListTeams returns the teams of a company
func (c *Client) ListTeams(ctx context.Context, companyID int64) ([]types.Team, error) {
	url := fmt.Sprintf("company/%d/teams", companyID)

	var teams []types.Team
	if err := c.do(ctx, http.MethodGet, url, nil, &teams, "list teams"); err != nil {
		return nil, err
	}
	return teams, nil
}

// CreateTeam creates a team in a company. The teammates in the request are user ids.
func (c *Client) CreateTeam(ctx context.Context, companyID int64, req types.TeamRequest) (*types.Team, error) {
	url := fmt.Sprintf("company/%d/teams", companyID)

	var team types.Team
	if err := c.do(ctx, http.MethodPost, url, req, &team, "create team"); err != nil {
		return nil, err
	}
	return &team, nil
}
