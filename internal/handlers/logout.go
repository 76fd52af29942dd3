package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, refreshToken string) (bool, error)
}

// LogoutRequest represents the JSON body for logout
// swagger:model LogoutRequest
type LogoutRequest struct {
	// Refresh token of the session to revoke
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// NewLogoutHandler returns an HTTP handler that revokes the session
// identified by the refresh token.
// @Summary Log out
// @Description Revokes the session holding the given refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param logoutRequest body handlers.LogoutRequest true "Logout request"
// @Success 200 {object} handlers.MessageResponse "Session revoked"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "No active session holds the token"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, err := svc.Logout(r.Context(), req.RefreshToken)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid refresh token"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Logged out successfully"})
	}
}
