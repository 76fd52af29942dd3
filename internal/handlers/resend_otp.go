package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
)

// OtpResender defines the interface that the resend service must implement.
type OtpResender interface {
	ResendOtp(ctx context.Context, email string) (bool, string, error)
}

// ResendOtpRequest represents the JSON body for reissuing a verification code
// swagger:model ResendOtpRequest
type ResendOtpRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// NewResendOtpHandler returns an HTTP handler that reissues the
// verification code for an unverified account.
// @Summary Resend verification code
// @Description Generates a fresh code and emails it. The previous code stops working.
// @Tags auth
// @Accept json
// @Produce json
// @Param resendOtpRequest body handlers.ResendOtpRequest true "Resend request"
// @Success 200 {object} handlers.MessageResponse "Code sent"
// @Failure 400 {object} handlers.ErrorResponse "Email is already verified"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/resend-otp [post]
func NewResendOtpHandler(svc OtpResender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResendOtpRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, message, err := svc.ResendOtp(r.Context(), req.Email)
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
