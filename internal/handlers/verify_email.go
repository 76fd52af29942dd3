package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
)

// EmailVerifier defines the interface that the verification service must implement.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email, code string) (bool, string, error)
}

// VerifyEmailRequest represents the JSON body for email verification
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`

	// Six-digit verification code from the email
	// required: true
	// default: 123456
	Code string `json:"code"`
}

// NewVerifyEmailHandler returns an HTTP handler for email verification.
// @Summary Verify email address
// @Description Marks the account verified when the mailed code matches and has not expired. Codes are single use.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Verification request"
// @Success 200 {object} handlers.MessageResponse "Email verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired code"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, message, err := svc.VerifyEmail(r.Context(), req.Email, req.Code)
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
