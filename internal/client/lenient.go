package client

import (
	"context"
	"errors"
	"log/slog"

	"github.com/information-sharing-networks/teamsd/internal/types"
)

// Lenient exposes the client operations without an error return.
// Any failure is logged and the zero value (nil) is returned, so callers must treat a nil result as "no data".
type Lenient struct {
	client *Client
	logger *slog.Logger
}

func NewLenient(c *Client, logger *slog.Logger) *Lenient {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lenient{client: c, logger: logger}
}

func swallow[T any](ctx context.Context, l *Lenient, operation string, v T, err error) T {
	if err == nil {
		return v
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		attrs = append(attrs,
			slog.String("kind", ce.Kind.String()),
			slog.Int("status", ce.StatusCode),
		)
	}
	l.logger.LogAttrs(ctx, slog.LevelError, "backend request failed", attrs...)

	var zero T
	return zero
}

func (l *Lenient) ListProjects(ctx context.Context, companyID, teamID int64) []types.Project {
	projects, err := l.client.ListProjects(ctx, companyID, teamID)
	return swallow(ctx, l, "list projects", projects, err)
}

func (l *Lenient) CreateProject(ctx context.Context, companyID, teamID int64, project types.Project) *types.Project {
	created, err := l.client.CreateProject(ctx, companyID, teamID, project)
	return swallow(ctx, l, "create project", created, err)
}

func (l *Lenient) UpdateProject(ctx context.Context, companyID, teamID, projectID int64, update types.ProjectUpdate) *types.Project {
	updated, err := l.client.UpdateProject(ctx, companyID, teamID, projectID, update)
	return swallow(ctx, l, "update project", updated, err)
}

func (l *Lenient) ListTeams(ctx context.Context, companyID int64) []types.Team {
	teams, err := l.client.ListTeams(ctx, companyID)
	return swallow(ctx, l, "list teams", teams, err)
}

func (l *Lenient) CreateTeam(ctx context.Context, companyID int64, req types.TeamRequest) *types.Team {
	team, err := l.client.CreateTeam(ctx, companyID, req)
	return swallow(ctx, l, "create team", team, err)
}

func (l *Lenient) ListUsers(ctx context.Context, companyID int64) []types.FullUser {
	users, err := l.client.ListUsers(ctx, companyID)
	return swallow(ctx, l, "list users", users, err)
}

func (l *Lenient) CreateUser(ctx context.Context, companyID int64, req types.UserRequest) *types.FullUser {
	user, err := l.client.CreateUser(ctx, companyID, req)
	return swallow(ctx, l, "create user", user, err)
}

func (l *Lenient) DeleteUser(ctx context.Context, companyID, userID int64, admin types.Credentials) *types.FullUser {
	user, err := l.client.DeleteUser(ctx, companyID, userID, admin)
	return swallow(ctx, l, "delete user", user, err)
}

func (l *Lenient) Login(ctx context.Context, credentials types.Credentials) *types.FullUser {
	user, err := l.client.Login(ctx, credentials)
	return swallow(ctx, l, "login", user, err)
}
