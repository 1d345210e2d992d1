// Package handlers implements the ui-api endpoints.
//
// Each handler backs one screen action of the ui (company selection, teams, projects, user registry)
// and forwards it to the backend through the client package.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/information-sharing-networks/teamsd/internal/apperrors"
	"github.com/information-sharing-networks/teamsd/internal/client"
	"github.com/information-sharing-networks/teamsd/internal/logger"
	"github.com/information-sharing-networks/teamsd/internal/server/responses"
)

type HandlerService struct {
	ApiClient *client.Client
}

func NewHandlerService(apiClient *client.Client) *HandlerService {
	return &HandlerService{ApiClient: apiClient}
}

// int64URLParam reads a numeric id from the route.
// Returns false after writing an error response when the value is not a valid id.
func int64URLParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidURLParam,
			fmt.Sprintf("invalid %s: %q", name, raw))
		return 0, false
	}

	logger.ContextWithLogAttrs(r.Context(), slog.Int64(name, id))
	return id, true
}

// decodeBody decodes the JSON request body into v.
// Returns false after writing an error response when the body can't be decoded.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			responses.RespondWithError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeRequestTooLarge,
				fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxBytesErr.Limit))
			return false
		}
		responses.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody,
			fmt.Sprintf("could not decode request body: %v", err))
		return false
	}
	return true
}

// respondWithClientError translates a backend call failure into a ui-api error response.
//
// Errors returned by the backend keep their status code. Connection and decode failures are reported as 502.
func respondWithClientError(w http.ResponseWriter, r *http.Request, err error) {
	reqLogger := logger.ContextRequestLogger(r.Context())

	var ce *client.ClientError
	if !errors.As(err, &ce) {
		reqLogger.Error("unexpected error calling backend", slog.String("error", err.Error()))
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, "An error occurred. Please try again later.")
		return
	}

	logger.ContextWithLogAttrs(r.Context(),
		slog.String("upstream_kind", ce.Kind.String()),
		slog.String("upstream_error", ce.Error()),
	)

	switch ce.Kind {
	case client.KindAPI:
		responses.RespondWithError(w, r, ce.StatusCode, apperrors.ErrCodeUpstreamError, ce.UserError())
	case client.KindConnection, client.KindDecode:
		responses.RespondWithError(w, r, http.StatusBadGateway, apperrors.ErrCodeUpstreamUnavailable, ce.UserError())
	default:
		responses.RespondWithError(w, r, http.StatusInternalServerError, apperrors.ErrCodeInternalError, ce.UserError())
	}
}
