package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/middlewares"
)

// ForgotPassworder defines the interface for issuing reset codes.
type ForgotPassworder interface {
	ForgotPassword(ctx context.Context, email string) (bool, string, error)
}

// PasswordResetter defines the interface for applying a reset code.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, email, code, newPassword string) (bool, string, error)
}

// PasswordChanger defines the interface for authenticated password changes.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (bool, string, error)
}

// ForgotPasswordRequest represents the JSON body for requesting a reset code
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for resetting a password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Six-digit reset code from the email
	// required: true
	Code string `json:"code"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest represents the JSON body for changing a password
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// NewForgotPasswordHandler returns an HTTP handler that mails a reset code.
// The response is the same whether or not the account exists.
// @Summary Request a password reset code
// @Description Mails a reset code when the account exists. The response never reveals whether it does.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot-password request"
// @Success 200 {object} handlers.MessageResponse "Generic acknowledgement"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc ForgotPassworder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		_, message, err := svc.ForgotPassword(r.Context(), req.Email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: message})
	}
}

// NewResetPasswordHandler returns an HTTP handler that applies a mailed
// reset code.
// @Summary Reset password with a code
// @Description Sets a new password when the mailed code matches and has not expired.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset request"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired code"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, message, err := svc.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !ok {
			status := http.StatusBadRequest
			if message == "User not found" {
				status = http.StatusNotFound
			}
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ErrorResponse{Error: message})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: message})
	}
}

// NewChangePasswordHandler returns an HTTP handler for authenticated
// password changes.
// @Summary Change password
// @Description Replaces the caller's password after re-verifying the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Change request"
// @Success 200 {object} handlers.MessageResponse "Password changed"
// @Failure 400 {object} handlers.ErrorResponse "Current password is incorrect"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Log.Errorw("malformed subject claim", "err", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, message, err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !ok {
			status := http.StatusBadRequest
			if message == "User not found" {
				status = http.StatusNotFound
			}
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ErrorResponse{Error: message})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: message})
	}
}
