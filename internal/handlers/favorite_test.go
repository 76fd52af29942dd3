package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kemet-travel/kemet-api/internal/models"
)

func TestAddFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavoriter := NewMockFavoriter(ctrl)

	callerID := uuid.New()
	destinationID := uuid.New()

	router := chi.NewRouter()
	router.Post("/favorites/{id}", NewAddFavoriteHandler(mockFavoriter))

	tests := []struct {
		name           string
		authenticated  bool
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:          "favorite added",
			authenticated: true,
			setupMocks: func() {
				mockFavoriter.EXPECT().AddFavorite(gomock.Any(), callerID, destinationID).
					Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "unknown destination",
			authenticated: true,
			setupMocks: func() {
				mockFavoriter.EXPECT().AddFavorite(gomock.Any(), callerID, destinationID).
					Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unauthenticated",
			authenticated:  false,
			setupMocks:     func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "internal error",
			authenticated: true,
			setupMocks: func() {
				mockFavoriter.EXPECT().AddFavorite(gomock.Any(), callerID, destinationID).
					Return(false, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			target := "/favorites/" + destinationID.String()
			var req *http.Request
			if tt.authenticated {
				req = authedRequest(http.MethodPost, target, nil, callerID, models.RoleUser)
			} else {
				req = httptest.NewRequest(http.MethodPost, target, nil)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRemoveFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavoriter := NewMockFavoriter(ctrl)

	callerID := uuid.New()
	destinationID := uuid.New()

	router := chi.NewRouter()
	router.Delete("/favorites/{id}", NewRemoveFavoriteHandler(mockFavoriter))

	t.Run("Removed", func(t *testing.T) {
		mockFavoriter.EXPECT().RemoveFavorite(gomock.Any(), callerID, destinationID).Return(true, nil)

		req := authedRequest(http.MethodDelete, "/favorites/"+destinationID.String(), nil, callerID, models.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFavorited", func(t *testing.T) {
		mockFavoriter.EXPECT().RemoveFavorite(gomock.Any(), callerID, destinationID).Return(false, nil)

		req := authedRequest(http.MethodDelete, "/favorites/"+destinationID.String(), nil, callerID, models.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListFavoritesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFavoriter := NewMockFavoriter(ctrl)

	callerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockFavoriter.EXPECT().ListFavorites(gomock.Any(), callerID).
			Return([]models.DestinationDB{{DestinationID: uuid.New(), Name: "Giza Pyramids"}}, nil)

		req := authedRequest(http.MethodGet, "/favorites", nil, callerID, models.RoleUser)
		rr := httptest.NewRecorder()
		NewListFavoritesHandler(mockFavoriter).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []models.DestinationDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 1)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewListFavoritesHandler(mockFavoriter).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/favorites", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
