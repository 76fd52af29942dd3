package handlers

import (
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

func TestAddActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := NewMockActivityWriter(ctrl)
	mockAuthz := NewMockEditAuthorizer(ctrl)

	callerID := uuid.New()
	tripID := uuid.New()
	dayID := uuid.New()

	router := chi.NewRouter()
	router.Post("/trips/{id}/days/{dayID}/activities", NewAddActivityHandler(mockActivities, mockAuthz))

	target := "/trips/" + tripID.String() + "/days/" + dayID.String() + "/activities"
	body := `{"destination_id":"` + uuid.New().String() + `","activity_type":"Visit","start_time":"09:00","duration_hours":2}`

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "activity scheduled",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().AddActivity(gomock.Any(), tripID, dayID, gomock.Any()).
					Return(&models.DayActivityDB{ActivityID: uuid.New(), DayID: dayID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "not the owner",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			// The day belongs to a different trip or does not exist.
			name: "day not found",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().AddActivity(gomock.Any(), tripID, dayID, gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "internal error",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().AddActivity(gomock.Any(), tripID, dayID, gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := authedRequest(http.MethodPost, target, strings.NewReader(body), callerID, models.RoleUser)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestUpdateActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := NewMockActivityWriter(ctrl)
	mockAuthz := NewMockEditAuthorizer(ctrl)

	callerID := uuid.New()
	tripID := uuid.New()
	dayID := uuid.New()
	activityID := uuid.New()

	router := chi.NewRouter()
	router.Put("/trips/{id}/days/{dayID}/activities/{activityID}", NewUpdateActivityHandler(mockActivities, mockAuthz))

	base := "/trips/" + tripID.String() + "/days/" + dayID.String() + "/activities/"

	tests := []struct {
		name           string
		target         string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name:   "activity updated",
			target: base + activityID.String(),
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().UpdateActivity(gomock.Any(), dayID, activityID, gomock.Any()).
					Return(&models.DayActivityDB{ActivityID: activityID, DayID: dayID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "invalid activity id",
			target: base + "not-a-uuid",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "activity not in this day",
			target: base + activityID.String(),
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().UpdateActivity(gomock.Any(), dayID, activityID, gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := authedRequest(http.MethodPut, tt.target,
				strings.NewReader(`{"start_time":"14:00"}`), callerID, models.RoleUser)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRemoveActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := NewMockActivityWriter(ctrl)
	mockAuthz := NewMockEditAuthorizer(ctrl)

	callerID := uuid.New()
	tripID := uuid.New()
	dayID := uuid.New()
	activityID := uuid.New()

	router := chi.NewRouter()
	router.Delete("/trips/{id}/days/{dayID}/activities/{activityID}", NewRemoveActivityHandler(mockActivities, mockAuthz))

	target := "/trips/" + tripID.String() + "/days/" + dayID.String() + "/activities/" + activityID.String()

	tests := []struct {
		name           string
		setupMocks     func()
		expectedStatus int
	}{
		{
			name: "activity removed",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().RemoveActivity(gomock.Any(), dayID, activityID).Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "activity not found",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(true, nil)
				mockActivities.EXPECT().RemoveActivity(gomock.Any(), dayID, activityID).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "not the owner",
			setupMocks: func() {
				mockAuthz.EXPECT().CanEdit(gomock.Any(), gomock.Any(), tripID, callerID, models.RoleUser).
					Return(false, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			req := authedRequest(http.MethodDelete, target, nil, callerID, models.RoleUser)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
