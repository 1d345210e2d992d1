package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ListUsers returns the user registry of a company
func (c *Client) ListUsers(ctx context.Context, companyID int64) ([]types.FullUser, error) {
	url := fmt.Sprintf("company/%d/users", companyID)

	var users []types.FullUser
	if err := c.do(ctx, http.MethodGet, url, nil, &users, "list users"); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a new user to a company.
// The backend marks the user active with status PENDING until their first login.
func (c *Client) CreateUser(ctx context.Context, companyID int64, req types.UserRequest) (*types.FullUser, error) {
	url := fmt.Sprintf("company/%d/users", companyID)

	var user types.FullUser
	if err := c.do(ctx, http.MethodPost, url, req, &user, "create user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deactivates a user in a company.
//
// admin must be the credentials of an admin user - the backend checks them before deactivating the account.
// Users are not removed: the returned user has Active set to false.
func (c *Client) DeleteUser(ctx context.Context, companyID, userID int64, admin types.Credentials) (*types.FullUser, error) {
	url := fmt.Sprintf("company/%d/users/%d", companyID, userID)

	var user types.FullUser
	if err := c.do(ctx, http.MethodDelete, url, admin, &user, "delete user"); err != nil {
		return nil, err
	}
	return &user, nil
}
