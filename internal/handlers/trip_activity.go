package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// ActivityWriter defines the activity operations the handlers need.
type ActivityWriter interface {
	AddActivity(ctx context.Context, tripID, dayID uuid.UUID, activity *models.DayActivityDB) (*models.DayActivityDB, error)
	UpdateActivity(ctx context.Context, dayID, activityID uuid.UUID, updated *models.DayActivityDB) (*models.DayActivityDB, error)
	RemoveActivity(ctx context.Context, dayID, activityID uuid.UUID) (bool, error)
}

// NewAddActivityHandler returns an HTTP handler that schedules an activity
// within a day of the trip.
// @Summary Add an activity
// @Description Schedules an activity on a day of the trip. Owners and admins only.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param dayID path string true "Day ID"
// @Param activity body models.DayActivityDB true "Activity"
// @Success 201 {object} models.DayActivityDB "Created activity"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Day not found"
// @Router /trips/{id}/days/{dayID}/activities [post]
// @Security BearerAuth
func NewAddActivityHandler(svc ActivityWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, true)
		if !ok {
			return
		}

		var activity models.DayActivityDB
		if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.AddActivity(r.Context(), route.tripID, route.dayID, &activity)
		if err != nil {
			logger.Log.Errorw("failed to add activity", "day_id", route.dayID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if created == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Day not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// NewUpdateActivityHandler returns an HTTP handler that updates a
// scheduled activity.
// @Summary Update an activity
// @Description Updates an activity that belongs to the day. Owners and admins only.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param dayID path string true "Day ID"
// @Param activityID path string true "Activity ID"
// @Param activity body models.DayActivityDB true "Activity"
// @Success 200 {object} models.DayActivityDB "Updated activity"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Activity not found"
// @Router /trips/{id}/days/{dayID}/activities/{activityID} [put]
// @Security BearerAuth
func NewUpdateActivityHandler(svc ActivityWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, true)
		if !ok {
			return
		}

		activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid activity id"})
			return
		}

		var updated models.DayActivityDB
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		activity, err := svc.UpdateActivity(r.Context(), route.dayID, activityID, &updated)
		if err != nil {
			logger.Log.Errorw("failed to update activity", "activity_id", activityID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if activity == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Activity not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(activity)
	}
}

// NewRemoveActivityHandler returns an HTTP handler that removes a
// scheduled activity.
// @Summary Remove an activity
// @Description Deletes an activity from the day. Owners and admins only.
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param dayID path string true "Day ID"
// @Param activityID path string true "Activity ID"
// @Success 200 {object} handlers.MessageResponse "Activity removed"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Activity not found"
// @Router /trips/{id}/days/{dayID}/activities/{activityID} [delete]
// @Security BearerAuth
func NewRemoveActivityHandler(svc ActivityWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, true)
		if !ok {
			return
		}

		activityID, err := uuid.Parse(chi.URLParam(r, "activityID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid activity id"})
			return
		}

		removed, err := svc.RemoveActivity(r.Context(), route.dayID, activityID)
		if err != nil {
			logger.Log.Errorw("failed to remove activity", "activity_id", activityID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !removed {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Activity not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Activity removed successfully"})
	}
}
