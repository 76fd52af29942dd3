package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
)

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, string, string, error)
}

// RefreshRequest represents the JSON body for token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Opaque refresh token from a previous login or refresh
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse represents a successful refresh response
// swagger:model RefreshResponse
type RefreshResponse struct {
	// Success message
	// default: Token refreshed successfully
	Message string `json:"message"`

	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewRefreshHandler returns an HTTP handler for refresh-token rotation.
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new pair. The presented token is invalidated, so it cannot be replayed.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh request"
// @Success 200 {object} handlers.RefreshResponse "New token pair"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		accessToken, refreshToken, message, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if accessToken == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: message})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RefreshResponse{
			Message:      message,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		})
	}
}
