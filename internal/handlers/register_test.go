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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegisterer := NewMockRegisterer(ctrl)
	mockTokener := NewMockLoginTokener(ctrl)

	user := &models.UserDB{
		UserID:    uuid.New(),
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleUser,
	}

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
		expectedKey    string // "message" or "error"
	}{
		{
			name: "successful registration",
			body: `{"email":"jane@example.com","password":"secret123","first_name":"Jane","last_name":"Doe"}`,
			setupMocks: func() {
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "Jane", "Doe", "").
					Return(user, "User registered successfully. Please check your email for verification code.", nil)
				mockTokener.EXPECT().GenerateAccessToken(gomock.Any(), user).Return("access-token", nil)
				mockTokener.EXPECT().GenerateRefreshToken().Return("refresh-token", nil)
				mockTokener.EXPECT().SaveRefreshToken(gomock.Any(), user, "refresh-token").Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedKey:    "message",
		},
		{
			name: "requested role is forwarded to the service",
			body: `{"email":"jane@example.com","password":"secret123","role":"Admin"}`,
			setupMocks: func() {
				// Role validation lives in the service, the handler only forwards it.
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "", "", "Admin").
					Return(user, "User registered successfully. Please check your email for verification code.", nil)
				mockTokener.EXPECT().GenerateAccessToken(gomock.Any(), user).Return("access-token", nil)
				mockTokener.EXPECT().GenerateRefreshToken().Return("refresh-token", nil)
				mockTokener.EXPECT().SaveRefreshToken(gomock.Any(), user, "refresh-token").Return(nil)
			},
			expectedStatus: http.StatusCreated,
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
			name:           "missing email",
			body:           `{"password":"secret123"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name:           "missing password",
			body:           `{"email":"jane@example.com"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "error",
		},
		{
			name: "duplicate email",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "", "", "").
					Return(nil, "Email already exists", nil)
			},
			expectedStatus: http.StatusConflict,
			expectedKey:    "error",
		},
		{
			name: "internal error",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "", "", "").
					Return(nil, "", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
		{
			name: "access token generation fails",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "", "", "").
					Return(user, "User registered successfully. Please check your email for verification code.", nil)
				mockTokener.EXPECT().GenerateAccessToken(gomock.Any(), user).Return("", errors.New("sign failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
		{
			name: "refresh token persistence fails",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			setupMocks: func() {
				mockRegisterer.EXPECT().
					Register(gomock.Any(), "jane@example.com", "secret123", "", "", "").
					Return(user, "User registered successfully. Please check your email for verification code.", nil)
				mockTokener.EXPECT().GenerateAccessToken(gomock.Any(), user).Return("access-token", nil)
				mockTokener.EXPECT().GenerateRefreshToken().Return("refresh-token", nil)
				mockTokener.EXPECT().SaveRefreshToken(gomock.Any(), user, "refresh-token").Return(errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()
			handler := NewRegisterHandler(mockRegisterer, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
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

func TestRegisterHandler_ReturnsTokenPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		UserID: uuid.New(),
		Email:  "jane@example.com",
		Role:   models.RoleUser,
	}

	mockRegisterer := NewMockRegisterer(ctrl)
	mockRegisterer.EXPECT().
		Register(gomock.Any(), "jane@example.com", "secret123", "", "", "").
		Return(user, "User registered successfully. Please check your email for verification code.", nil)

	mockTokener := NewMockLoginTokener(ctrl)
	mockTokener.EXPECT().GenerateAccessToken(gomock.Any(), user).Return("signed-access", nil)
	mockTokener.EXPECT().GenerateRefreshToken().Return("opaque-refresh", nil)
	mockTokener.EXPECT().SaveRefreshToken(gomock.Any(), user, "opaque-refresh").Return(nil)

	handler := NewRegisterHandler(mockRegisterer, mockTokener)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp RegisterResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "signed-access", resp.AccessToken)
	assert.Equal(t, "opaque-refresh", resp.RefreshToken)
	assert.Equal(t, user.UserID, resp.User.UserID)
}

func TestRegisterHandler_ConflictEchoesServiceMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegisterer := NewMockRegisterer(ctrl)
	mockRegisterer.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, "Email already exists", nil)

	mockTokener := NewMockLoginTokener(ctrl)

	handler := NewRegisterHandler(mockRegisterer, mockTokener)

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Email already exists", resp.Error)
}
