package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginTokener mints the token pair for an authenticated user and stores
// the refresh token as the user's single active session.
type LoginTokener interface {
	GenerateAccessToken(ctx context.Context, user *models.UserDB) (string, error)
	GenerateRefreshToken() (string, error)
	SaveRefreshToken(ctx context.Context, user *models.UserDB, refreshToken string) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Signed JWT access token
	AccessToken string `json:"access_token"`

	// Opaque refresh token
	RefreshToken string `json:"refresh_token"`

	User *models.UserDB `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and return an access/refresh token pair. Logging in replaces any previous session.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Token pair returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials or unverified email"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, tokens LoginTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		user, message, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: message})
			return
		}

		accessToken, err := tokens.GenerateAccessToken(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("failed to generate access token", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		refreshToken, err := tokens.GenerateRefreshToken()
		if err != nil {
			logger.Log.Errorw("failed to generate refresh token", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if err := tokens.SaveRefreshToken(r.Context(), user, refreshToken); err != nil {
			logger.Log.Errorw("failed to save refresh token", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Message:      message,
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			User:         user,
		})
	}
}
