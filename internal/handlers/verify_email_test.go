package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestVerifyEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVerifier := NewMockEmailVerifier(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "successful verification",
			body: `{"email":"jane@example.com","code":"123456"}`,
			setupMocks: func() {
				mockVerifier.EXPECT().VerifyEmail(gomock.Any(), "jane@example.com", "123456").
					Return(true, "Email verified successfully", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
		},
		{
			name:           "invalid json body",
			body:           `{not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "unknown user",
			body: `{"email":"ghost@example.com","code":"123456"}`,
			setupMocks: func() {
				mockVerifier.EXPECT().VerifyEmail(gomock.Any(), "ghost@example.com", "123456").
					Return(false, "User not found", nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error",
		},
		{
			name: "wrong code",
			body: `{"email":"jane@example.com","code":"000000"}`,
			setupMocks: func() {
				mockVerifier.EXPECT().VerifyEmail(gomock.Any(), "jane@example.com", "000000").
					Return(false, "Invalid verification code", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "expired code",
			body: `{"email":"jane@example.com","code":"123456"}`,
			setupMocks: func() {
				mockVerifier.EXPECT().VerifyEmail(gomock.Any(), "jane@example.com", "123456").
					Return(false, "Verification code has expired", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com","code":"123456"}`,
			setupMocks: func() {
				mockVerifier.EXPECT().VerifyEmail(gomock.Any(), "jane@example.com", "123456").
					Return(false, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewVerifyEmailHandler(mockVerifier)

			req := httptest.NewRequest(http.MethodPost, "/auth/verify-email", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestResendOtpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResender := NewMockOtpResender(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "code resent",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func() {
				mockResender.EXPECT().ResendOtp(gomock.Any(), "jane@example.com").
					Return(true, "Verification code sent", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
		},
		{
			name: "unknown user",
			body: `{"email":"ghost@example.com"}`,
			setupMocks: func() {
				mockResender.EXPECT().ResendOtp(gomock.Any(), "ghost@example.com").
					Return(false, "User not found", nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error",
		},
		{
			name: "already verified",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func() {
				mockResender.EXPECT().ResendOtp(gomock.Any(), "jane@example.com").
					Return(false, "Email is already verified", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func() {
				mockResender.EXPECT().ResendOtp(gomock.Any(), "jane@example.com").
					Return(false, "", errors.New("smtp down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewResendOtpHandler(mockResender)

			req := httptest.NewRequest(http.MethodPost, "/auth/resend-otp", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}
