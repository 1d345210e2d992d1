package handlers

import (
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/server/responses"
	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ListProjects returns the projects of a team
//
// GET /ui-api/companies/{companyID}/teams/{teamID}/projects
func (h *HandlerService) ListProjects(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}
	teamID, ok := int64URLParam(w, r, "teamID")
	if !ok {
		return
	}

	projects, err := h.ApiClient.ListProjects(r.Context(), companyID, teamID)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	// the screens render an empty table rather than null
	if projects == nil {
		projects = []types.Project{}
	}

	responses.RespondWithJSON(w, http.StatusOK, projects)
}

// CreateProject adds a project to a team
//
// POST /ui-api/companies/{companyID}/teams/{teamID}/projects
func (h *HandlerService) CreateProject(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}
	teamID, ok := int64URLParam(w, r, "teamID")
	if !ok {
		return
	}

	var project types.Project
	if !decodeBody(w, r, &project) {
		return
	}

	created, err := h.ApiClient.CreateProject(r.Context(), companyID, teamID, project)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusCreated, created)
}

// UpdateProject edits a project's name, description and active flag
//
// PATCH /ui-api/companies/{companyID}/teams/{teamID}/projects/{projectID}
func (h *HandlerService) UpdateProject(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}
	teamID, ok := int64URLParam(w, r, "teamID")
	if !ok {
		return
	}
	projectID, ok := int64URLParam(w, r, "projectID")
	if !ok {
		return
	}

	var update types.ProjectUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	updated, err := h.ApiClient.UpdateProject(r.Context(), companyID, teamID, projectID, update)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, updated)
}
