package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/services"
)

// DayWriter defines the itinerary-day operations the handlers need.
type DayWriter interface {
	AddDay(ctx context.Context, tripID uuid.UUID, day *models.DayDB) (*models.DayDB, error)
	UpdateDay(ctx context.Context, tripID, dayID uuid.UUID, updated *models.DayDB) (*models.DayDB, error)
	RemoveDay(ctx context.Context, tripID, dayID uuid.UUID) (bool, error)
}

// dayRoute holds the parsed path and caller of a day sub-resource request.
type dayRoute struct {
	tripID   uuid.UUID
	dayID    uuid.UUID
	callerID uuid.UUID
	role     string
	cache    services.EditCache
}

// parseDayRoute authorizes a mutation on a trip's day sub-resources and
// writes the error response itself when the request may not proceed.
func parseDayRoute(w http.ResponseWriter, r *http.Request, authz EditAuthorizer, withDayID bool) (*dayRoute, bool) {
	callerID, callerRole, ok := callerIdentity(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	route := &dayRoute{callerID: callerID, role: callerRole, cache: services.NewEditCache()}

	var err error
	route.tripID, err = uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid trip id"})
		return nil, false
	}
	if withDayID {
		route.dayID, err = uuid.Parse(chi.URLParam(r, "dayID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid day id"})
			return nil, false
		}
	}

	allowed, err := authz.CanEdit(r.Context(), route.cache, route.tripID, callerID, callerRole)
	if err != nil {
		logger.Log.Errorw("ownership check failed", "trip_id", route.tripID, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
		return nil, false
	}
	if !allowed {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "You can only edit your own trips"})
		return nil, false
	}
	return route, true
}

// NewAddDayHandler returns an HTTP handler that appends a day to a trip.
// @Summary Add a day
// @Description Appends an itinerary day to a trip. Owners and admins only.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param day body models.DayDB true "Day"
// @Success 201 {object} models.DayDB "Created day"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{id}/days [post]
// @Security BearerAuth
func NewAddDayHandler(svc DayWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, false)
		if !ok {
			return
		}

		var day models.DayDB
		if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		created, err := svc.AddDay(r.Context(), route.tripID, &day)
		if err != nil {
			logger.Log.Errorw("failed to add day", "trip_id", route.tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if created == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Trip not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// NewUpdateDayHandler returns an HTTP handler that updates an itinerary day.
// @Summary Update a day
// @Description Updates a day that belongs to the trip. Owners and admins only.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param dayID path string true "Day ID"
// @Param day body models.DayDB true "Day"
// @Success 200 {object} models.DayDB "Updated day"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Day not found"
// @Router /trips/{id}/days/{dayID} [put]
// @Security BearerAuth
func NewUpdateDayHandler(svc DayWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, true)
		if !ok {
			return
		}

		var updated models.DayDB
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		day, err := svc.UpdateDay(r.Context(), route.tripID, route.dayID, &updated)
		if err != nil {
			logger.Log.Errorw("failed to update day", "day_id", route.dayID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if day == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Day not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(day)
	}
}

// NewRemoveDayHandler returns an HTTP handler that deletes an itinerary day.
// @Summary Remove a day
// @Description Deletes a day from the trip. Owners and admins only.
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param dayID path string true "Day ID"
// @Success 200 {object} handlers.MessageResponse "Day removed"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Day not found"
// @Router /trips/{id}/days/{dayID} [delete]
// @Security BearerAuth
func NewRemoveDayHandler(svc DayWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, ok := parseDayRoute(w, r, authz, true)
		if !ok {
			return
		}

		removed, err := svc.RemoveDay(r.Context(), route.tripID, route.dayID)
		if err != nil {
			logger.Log.Errorw("failed to remove day", "day_id", route.dayID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !removed {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Day not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Day removed successfully"})
	}
}
