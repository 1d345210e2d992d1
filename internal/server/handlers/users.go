package handlers

import (
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/server/responses"
	"github.com/information-sharing-networks/teamsd/internal/types"
)

// ListUsers returns the user registry of the selected company
//
// GET /ui-api/companies/{companyID}/users
func (h *HandlerService) ListUsers(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}

	users, err := h.ApiClient.ListUsers(r.Context(), companyID)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	if users == nil {
		users = []types.FullUser{}
	}

	responses.RespondWithJSON(w, http.StatusOK, users)
}

// CreateUser adds a user to the selected company
//
// POST /ui-api/companies/{companyID}/users
func (h *HandlerService) CreateUser(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}

	var req types.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.ApiClient.CreateUser(r.Context(), companyID, req)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusCreated, user)
}

// DeleteUser deactivates a user. The request body holds the credentials of the admin making the change.
//
// DELETE /ui-api/companies/{companyID}/users/{userID}
func (h *HandlerService) DeleteUser(w http.ResponseWriter, r *http.Request) {
	companyID, ok := int64URLParam(w, r, "companyID")
	if !ok {
		return
	}
	userID, ok := int64URLParam(w, r, "userID")
	if !ok {
		return
	}

	var admin types.Credentials
	if !decodeBody(w, r, &admin) {
		return
	}

	user, err := h.ApiClient.DeleteUser(r.Context(), companyID, userID, admin)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	responses.RespondWithJSON(w, http.StatusOK, user)
}
