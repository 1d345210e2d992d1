package handlers

import (
	"log/slog"
	"net/http"

	"github.com/information-sharing-networks/teamsd/internal/logger"
	"github.com/information-sharing-networks/teamsd/internal/server/responses"
	"github.com/information-sharing-networks/teamsd/internal/types"
)

// Login checks the user's credentials and returns the user with the companies available in the company selector
//
// POST /ui-api/login
func (h *HandlerService) Login(w http.ResponseWriter, r *http.Request) {
	var credentials types.Credentials
	if !decodeBody(w, r, &credentials) {
		return
	}

	user, err := h.ApiClient.Login(r.Context(), credentials)
	if err != nil {
		respondWithClientError(w, r, err)
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.Int64("user_id", user.ID),
		slog.Int("companies", len(user.Companies)),
	)

	responses.RespondWithJSON(w, http.StatusOK, user)
}
