package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kemet-travel/kemet-api/internal/models"
)

func TestListDestinationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockDestinationReader(ctrl)

	t.Run("Success", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).
			Return([]models.DestinationDB{{DestinationID: uuid.New(), Name: "Giza Pyramids", City: "Giza"}}, nil)

		rr := httptest.NewRecorder()
		NewListDestinationsHandler(mockReader).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/destinations", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []models.DestinationDB
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 1)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		rr := httptest.NewRecorder()
		NewListDestinationsHandler(mockReader).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/destinations", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockDestinationReader(ctrl)

	destinationID := uuid.New()
	viewerID := uuid.New()

	router := chi.NewRouter()
	router.Get("/destinations/{id}", NewGetDestinationHandler(mockReader))

	t.Run("AnonymousViewer", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), destinationID, (*uuid.UUID)(nil)).
			Return(&models.DestinationDB{DestinationID: destinationID, Name: "Giza Pyramids"}, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/destinations/"+destinationID.String(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("AuthenticatedViewerIsAttributed", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), destinationID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, viewer *uuid.UUID) (*models.DestinationDB, error) {
				assert.NotNil(t, viewer)
				assert.Equal(t, viewerID, *viewer)
				return &models.DestinationDB{DestinationID: destinationID, Name: "Giza Pyramids"}, nil
			})

		req := authedRequest(http.MethodGet, "/destinations/"+destinationID.String(), nil, viewerID, models.RoleUser)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockReader.EXPECT().Get(gomock.Any(), destinationID, (*uuid.UUID)(nil)).Return(nil, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/destinations/"+destinationID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/destinations/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockDestinationWriter(ctrl)

	tests := []struct {
		name           string
		body           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "destination created",
			body: `{"name":"Giza Pyramids","city":"Giza","estimated_price":20}`,
			setupMocks: func() {
				mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, dest *models.DestinationDB) (*models.DestinationDB, error) {
						dest.DestinationID = uuid.New()
						return dest, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"city":"Giza"}`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json body",
			body:           `{not json`,
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"name":"Giza Pyramids"}`,
			setupMocks: func() {
				mockWriter.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := httptest.NewRequest(http.MethodPost, "/admin/destinations", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			NewCreateDestinationHandler(mockWriter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestUpdateDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockDestinationWriter(ctrl)

	destinationID := uuid.New()

	router := chi.NewRouter()
	router.Put("/admin/destinations/{id}", NewUpdateDestinationHandler(mockWriter))

	t.Run("Updated", func(t *testing.T) {
		mockWriter.EXPECT().Update(gomock.Any(), destinationID, gomock.Any()).
			Return(&models.DestinationDB{DestinationID: destinationID, Name: "Giza Pyramids"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/admin/destinations/"+destinationID.String(),
			strings.NewReader(`{"name":"Giza Pyramids"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockWriter.EXPECT().Update(gomock.Any(), destinationID, gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPut, "/admin/destinations/"+destinationID.String(),
			strings.NewReader(`{"name":"Giza Pyramids"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteDestinationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockDestinationWriter(ctrl)

	destinationID := uuid.New()

	router := chi.NewRouter()
	router.Delete("/admin/destinations/{id}", NewDeleteDestinationHandler(mockWriter))

	t.Run("Deleted", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), destinationID).Return(true, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/admin/destinations/"+destinationID.String(), nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockWriter.EXPECT().Delete(gomock.Any(), destinationID).Return(false, nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/admin/destinations/"+destinationID.String(), nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
