package handlers

import (
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/server/responses"
	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ListTeams returns the teams of the selected company
//
// GET /ui-api/companies/{companyID}/teams
func (h *HandlerService) ListTeams(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}

	teams, err := h.ApiClient.ListTeams(r.Context(), companyID)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	if teams == nil {
		teams = []types.Team{}
	}

	responses.RespondWithJSON(w, http.StatusOK, teams)
}

// CreateTeam creates a team from a name, a description and the ids of the selected teammates
//
// POST /ui-api/companies/{companyID}/teams
func (h *HandlerService) CreateTeam(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}

	var req types.TeamRequest
	if !decodeBody(w, r, &req) {
		return
	}

	team, err := h.ApiClient.CreateTeam(r.Context(), companyID, req)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusCreated, team)
}
