package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kemet-travel/kemet-api/internal/models"
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockForgot := NewMockForgotPassworder(ctrl)

	const generic = "If an account exists with this email, you will receive a reset code."

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "known account",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func() {
				mockForgot.EXPECT().ForgotPassword(gomock.Any(), "jane@example.com").
					Return(true, generic, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			// The handler must not leak account existence.
			name: "unknown account gets the same response",
			body: `{"email":"ghost@example.com"}`,
			setupMocks: func() {
				mockForgot.EXPECT().ForgotPassword(gomock.Any(), "ghost@example.com").
					Return(false, generic, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com"}`,
			setupMocks: func() {
				mockForgot.EXPECT().ForgotPassword(gomock.Any(), "jane@example.com").
					Return(false, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewForgotPasswordHandler(mockForgot)

			req := httptest.NewRequest(http.MethodPost, "/auth/forgot-password", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp MessageResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, generic, resp.Message)
			}
		})
	}
}

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResetter := NewMockPasswordResetter(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "successful reset",
			body: `{"email":"jane@example.com","code":"123456","new_password":"fresh123"}`,
			setupMocks: func() {
				mockResetter.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "123456", "fresh123").
					Return(true, "Password reset successfully", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
		},
		{
			name: "unknown user",
			body: `{"email":"ghost@example.com","code":"123456","new_password":"fresh123"}`,
			setupMocks: func() {
				mockResetter.EXPECT().ResetPassword(gomock.Any(), "ghost@example.com", "123456", "fresh123").
					Return(false, "User not found", nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedKey:    "error",
		},
		{
			name: "wrong code",
			body: `{"email":"jane@example.com","code":"000000","new_password":"fresh123"}`,
			setupMocks: func() {
				mockResetter.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "000000", "fresh123").
					Return(false, "Invalid reset code", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com","code":"123456","new_password":"fresh123"}`,
			setupMocks: func() {
				mockResetter.EXPECT().ResetPassword(gomock.Any(), "jane@example.com", "123456", "fresh123").
					Return(false, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewResetPasswordHandler(mockResetter)

			req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(tt.body))
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

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockChanger := NewMockPasswordChanger(ctrl)

	userID := uuid.New()

	tests := []struct {
		name           string
		authenticated  bool
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name:          "successful change",
			authenticated: true,
			body:          `{"current_password":"secret123","new_password":"fresh123"}`,
			setupMocks: func() {
				mockChanger.EXPECT().ChangePassword(gomock.Any(), userID, "secret123", "fresh123").
					Return(true, "Password changed successfully", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
		},
		{
			name:           "no claims",
			authenticated:  false,
			body:           `{"current_password":"secret123","new_password":"fresh123"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name:          "wrong current password",
			authenticated: true,
			body:          `{"current_password":"wrong","new_password":"fresh123"}`,
			setupMocks: func() {
				mockChanger.EXPECT().ChangePassword(gomock.Any(), userID, "wrong", "fresh123").
					Return(false, "Current password is incorrect", nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name:          "internal error",
			authenticated: true,
			body:          `{"current_password":"secret123","new_password":"fresh123"}`,
			setupMocks: func() {
				mockChanger.EXPECT().ChangePassword(gomock.Any(), userID, "secret123", "fresh123").
					Return(false, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewChangePasswordHandler(mockChanger)

			var req *http.Request
			if tt.authenticated {
				req = authedRequest(http.MethodPost, "/auth/change-password", strings.NewReader(tt.body), userID, models.RoleUser)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(tt.body))
			}
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
