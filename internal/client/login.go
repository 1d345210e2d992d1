package client

import (
	"context"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

// Login checks a user's credentials with the backend.
// The returned user lists the companies the user can select.
func (c *Client) Login(ctx context.Context, credentials types.Credentials) (*types.FullUser, error) {
	var user types.FullUser
	if err := c.do(ctx, http.MethodPost, "users/login", credentials, &user, "login"); err != nil {
		return nil, err
	}
	return &user, nil
}
