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

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := NewMockRefresher(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "successful rotation",
			body: `{"refresh_token":"old-token"}`,
			setupMocks: func() {
				mockRefresher.EXPECT().Refresh(gomock.Any(), "old-token").
					Return("new-access", "new-refresh", "Token refreshed successfully", nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "access_token",
		},
		{
			name:           "invalid json body",
			body:           `{not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "replayed or unknown token",
			body: `{"refresh_token":"stale-token"}`,
			setupMocks: func() {
				mockRefresher.EXPECT().Refresh(gomock.Any(), "stale-token").
					Return("", "", "Invalid refresh token", nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"refresh_token":"old-token"}`,
			setupMocks: func() {
				mockRefresher.EXPECT().Refresh(gomock.Any(), "old-token").
					Return("", "", "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewRefreshHandler(mockRefresher)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(tt.body))
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

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogouter := NewMockLogouter(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "successful logout",
			body: `{"refresh_token":"session-token"}`,
			setupMocks: func() {
				mockLogouter.EXPECT().Logout(gomock.Any(), "session-token").
					Return(true, nil)
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
			name: "unknown token",
			body: `{"refresh_token":"stale-token"}`,
			setupMocks: func() {
				mockLogouter.EXPECT().Logout(gomock.Any(), "stale-token").
					Return(false, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"refresh_token":"session-token"}`,
			setupMocks: func() {
				mockLogouter.EXPECT().Logout(gomock.Any(), "session-token").
					Return(false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewLogoutHandler(mockLogouter)

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(tt.body))
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
