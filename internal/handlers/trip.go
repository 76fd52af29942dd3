package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/middlewares"
	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/services"
)

// TripReader defines the read operations the trip handlers need.
type TripReader interface {
	List(ctx context.Context) ([]models.TripDB, error)
	Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error)
}

// TripWriter defines the write operations the trip handlers need.
type TripWriter interface {
	Create(ctx context.Context, trip *models.TripDB) (*models.TripDB, error)
	Update(ctx context.Context, tripID uuid.UUID, updated *models.TripDB) (*models.TripDB, error)
	Delete(ctx context.Context, tripID uuid.UUID) (bool, error)
}

// EditAuthorizer decides whether the caller may mutate a trip. The cache
// memoizes decisions within one request and must never outlive it.
type EditAuthorizer interface {
	CanEdit(ctx context.Context, cache services.EditCache, tripID, callerID uuid.UUID, callerRole string) (bool, error)
}

// TripRequest represents the JSON body for creating or updating a trip
// swagger:model TripRequest
type TripRequest struct {
	// Trip title
	// required: true
	// default: Cairo Highlights
	Title string `json:"title"`

	// Trip type: Single, Family, Couple or Group
	// default: Family
	TripType string `json:"trip_type"`

	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationDays int     `json:"duration_days"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	ImageURL     *string `json:"image_url"`

	Days []models.DayDB `json:"days"`
}

// callerIdentity extracts the authenticated caller from the request
// context. Returns false when the request carries no valid claims.
func callerIdentity(r *http.Request) (uuid.UUID, string, bool) {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil, "", false
	}
	userID, err := claims.UserID()
	if err != nil {
		logger.Log.Errorw("malformed subject claim", "err", err)
		return uuid.Nil, "", false
	}
	return userID, claims.Role, true
}

// NewListTripsHandler returns an HTTP handler listing all trips.
// @Summary List trips
// @Description Returns all trips with their day-by-day itineraries.
// @Tags trips
// @Produce json
// @Success 200 {array} models.TripDB "Trips"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /trips [get]
func NewListTripsHandler(svc TripReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trips, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list trips", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trips)
	}
}

// NewGetTripHandler returns an HTTP handler for fetching one trip.
// @Summary Get a trip
// @Description Returns a trip with its days and activities.
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} models.TripDB "Trip"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{id} [get]
func NewGetTripHandler(svc TripReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid trip id"})
			return
		}

		trip, err := svc.Get(r.Context(), tripID)
		if err != nil {
			logger.Log.Errorw("failed to get trip", "trip_id", tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if trip == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Trip not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trip)
	}
}

// NewMyTripsHandler returns an HTTP handler listing the caller's trips.
// @Summary List my trips
// @Description Returns the trips owned by the authenticated caller.
// @Tags trips
// @Produce json
// @Success 200 {array} models.TripDB "Trips"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /trips/my [get]
// @Security BearerAuth
func NewMyTripsHandler(svc TripReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		trips, err := svc.ListByUser(r.Context(), callerID)
		if err != nil {
			logger.Log.Errorw("failed to list trips", "user_id", callerID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trips)
	}
}

// NewCreateTripHandler returns an HTTP handler that creates a trip with its
// nested itinerary. Admins author system trips with no owner; everyone else
// becomes the owner of what they create.
// @Summary Create a trip
// @Description Creates a trip together with any nested days and activities in one transaction.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripRequest body handlers.TripRequest true "Trip request"
// @Success 201 {object} models.TripDB "Created trip"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /trips [post]
// @Security BearerAuth
func NewCreateTripHandler(svc TripWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, callerRole, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var trip models.TripDB
		if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if trip.Title == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "title is required"})
			return
		}

		if callerRole == models.RoleAdmin {
			trip.UserID = nil
		} else {
			trip.UserID = &callerID
		}

		created, err := svc.Create(r.Context(), &trip)
		if err != nil {
			logger.Log.Errorw("failed to create trip", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// NewUpdateTripHandler returns an HTTP handler that updates a trip the
// caller may edit.
// @Summary Update a trip
// @Description Replaces the mutable trip fields. Owners and admins only.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param tripRequest body handlers.TripRequest true "Trip request"
// @Success 200 {object} models.TripDB "Updated trip"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{id} [put]
// @Security BearerAuth
func NewUpdateTripHandler(svc TripWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, callerRole, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid trip id"})
			return
		}

		allowed, err := authz.CanEdit(r.Context(), services.NewEditCache(), tripID, callerID, callerRole)
		if err != nil {
			logger.Log.Errorw("ownership check failed", "trip_id", tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !allowed {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You can only edit your own trips"})
			return
		}

		var updated models.TripDB
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		trip, err := svc.Update(r.Context(), tripID, &updated)
		if err != nil {
			logger.Log.Errorw("failed to update trip", "trip_id", tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if trip == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Trip not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(trip)
	}
}

// NewDeleteTripHandler returns an HTTP handler that deletes a trip the
// caller may edit.
// @Summary Delete a trip
// @Description Removes a trip and its itinerary. Owners and admins only.
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} handlers.MessageResponse "Trip deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Trip not found"
// @Router /trips/{id} [delete]
// @Security BearerAuth
func NewDeleteTripHandler(svc TripWriter, authz EditAuthorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, callerRole, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid trip id"})
			return
		}

		allowed, err := authz.CanEdit(r.Context(), services.NewEditCache(), tripID, callerID, callerRole)
		if err != nil {
			logger.Log.Errorw("ownership check failed", "trip_id", tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !allowed {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You can only edit your own trips"})
			return
		}

		deleted, err := svc.Delete(r.Context(), tripID)
		if err != nil {
			logger.Log.Errorw("failed to delete trip", "trip_id", tripID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Trip not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Trip deleted successfully"})
	}
}
