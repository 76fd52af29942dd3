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

// Favoriter defines the favorite operations the handlers need.
type Favoriter interface {
	AddFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error)
	RemoveFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.DestinationDB, error)
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's
// favorite destinations.
// @Summary List favorites
// @Description Returns the destinations the caller has favorited.
// @Tags favorites
// @Produce json
// @Success 200 {array} models.DestinationDB "Favorites"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		favorites, err := svc.ListFavorites(r.Context(), callerID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites", "user_id", callerID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(favorites)
	}
}

// NewAddFavoriteHandler returns an HTTP handler that favorites a
// destination for the caller. Favoriting twice is a no-op.
// @Summary Add a favorite
// @Description Marks a destination as a favorite of the caller.
// @Tags favorites
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} handlers.MessageResponse "Favorite added"
// @Failure 404 {object} handlers.ErrorResponse "Destination not found"
// @Router /favorites/{id} [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		destinationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid destination id"})
			return
		}

		added, err := svc.AddFavorite(r.Context(), callerID, destinationID)
		if err != nil {
			logger.Log.Errorw("failed to add favorite", "destination_id", destinationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !added {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Destination not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Destination added to favorites"})
	}
}

// NewRemoveFavoriteHandler returns an HTTP handler that removes a
// destination from the caller's favorites.
// @Summary Remove a favorite
// @Description Removes a destination from the caller's favorites.
// @Tags favorites
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} handlers.MessageResponse "Favorite removed"
// @Failure 404 {object} handlers.ErrorResponse "Favorite not found"
// @Router /favorites/{id} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc Favoriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, _, ok := callerIdentity(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		destinationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid destination id"})
			return
		}

		removed, err := svc.RemoveFavorite(r.Context(), callerID, destinationID)
		if err != nil {
			logger.Log.Errorw("failed to remove favorite", "destination_id", destinationID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !removed {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Favorite not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Destination removed from favorites"})
	}
}
