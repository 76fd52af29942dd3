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
)

// DestinationReader defines the read operations the destination handlers need.
type DestinationReader interface {
	List(ctx context.Context) ([]models.DestinationDB, error)
	Get(ctx context.Context, destinationID uuid.UUID, viewerID *uuid.UUID) (*models.DestinationDB, error)
}

// DestinationWriter defines the write operations the destination handlers need.
type DestinationWriter interface {
	Create(ctx context.Context, dest *models.DestinationDB) (*models.DestinationDB, error)
	Update(ctx context.Context, destinationID uuid.UUID, updated *models.DestinationDB) (*models.DestinationDB, error)
	Delete(ctx context.Context, destinationID uuid.UUID) (bool, error)
}

// NewListDestinationsHandler returns an HTTP handler listing all destinations.
// @Summary List destinations
// @Description Returns all destinations.
// @Tags destinations
// @Produce json
// @Success 200 {array} models.DestinationDB "Destinations"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /destinations [get]
func NewListDestinationsHandler(svc DestinationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinations, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list destinations", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(destinations)
	}
}

// NewGetDestinationHandler returns an HTTP handler for fetching one
// destination. Authenticated viewers are attributed in the view event.
// @Summary Get a destination
// @Description Returns a destination and records a view for the popularity breakdown.
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} models.DestinationDB "Destination"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Router /destinations/{id} [get]
func NewGetDestinationHandler(svc DestinationReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid destination id"})
			return
		}

		var viewerID *uuid.UUID
		if claims := middlewares.GetClaimsFromContext(r.Context()); claims != nil {
			if id, err := claims.UserID(); err == nil {
				viewerID = &id
			}
		}

		dest, err := svc.Get(r.Context(), destinationID, viewerID)
		if err != nil {
			logger.Log.Errorw("failed to get destination", "destination_id", destinationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if dest == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Destination not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dest)
	}
}

// NewCreateDestinationHandler returns an HTTP handler that creates a
// destination. Admin only.
// @Summary Create a destination
// @Description Creates a destination. Admin only.
// @Tags destinations
// @Accept json
// @Produce json
// @Param destination body models.DestinationDB true "Destination"
// @Success 201 {object} models.DestinationDB "Created destination"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /destinations [post]
// @Security BearerAuth
func NewCreateDestinationHandler(svc DestinationWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dest models.DestinationDB
		if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}
		if dest.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "name is required"})
			return
		}

		created, err := svc.Create(r.Context(), &dest)
		if err != nil {
			logger.Log.Errorw("failed to create destination", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

// NewUpdateDestinationHandler returns an HTTP handler that updates a
// destination. Admin only.
// @Summary Update a destination
// @Description Replaces the mutable destination fields. Admin only.
// @Tags destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param destination body models.DestinationDB true "Destination"
// @Success 200 {object} models.DestinationDB "Updated destination"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Router /destinations/{id} [put]
// @Security BearerAuth
func NewUpdateDestinationHandler(svc DestinationWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid destination id"})
			return
		}

		var updated models.DestinationDB
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		dest, err := svc.Update(r.Context(), destinationID, &updated)
		if err != nil {
			logger.Log.Errorw("failed to update destination", "destination_id", destinationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if dest == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Destination not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dest)
	}
}

// NewDeleteDestinationHandler returns an HTTP handler that deletes a
// destination. Admin only.
// @Summary Delete a destination
// @Description Removes a destination. Admin only.
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} handlers.MessageResponse "Destination deleted"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Router /destinations/{id} [delete]
// @Security BearerAuth
func NewDeleteDestinationHandler(svc DestinationWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid destination id"})
			return
		}

		deleted, err := svc.Delete(r.Context(), destinationID)
		if err != nil {
			logger.Log.Errorw("failed to delete destination", "destination_id", destinationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Destination not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Destination deleted successfully"})
	}
}
