package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/middlewares"
)

// EventTracker defines the interface that the analytics service must implement.
type EventTracker interface {
	Record(ctx context.Context, eventType string, category *string, userID *uuid.UUID) error
}

// TrackEventRequest represents the JSON body for a usage event
// swagger:model TrackEventRequest
type TrackEventRequest struct {
	// Event type
	// required: true
	// default: FeatureUsage
	EventType string `json:"event_type"`

	// Optional category, e.g. a feature name
	// default: Chatbot
	Category *string `json:"category"`
}

// NewTrackEventHandler returns an HTTP handler recording a usage event.
// Authenticated callers are attributed, anonymous events are kept too.
// @Summary Track a usage event
// @Description Records a usage event for the dashboard aggregates. Works with or without authentication.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param trackEventRequest body handlers.TrackEventRequest true "Usage event"
// @Success 200 {object} handlers.MessageResponse "Event recorded"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard/track [post]
func NewTrackEventHandler(svc EventTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TrackEventRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if req.EventType == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "event_type is required"})
			return
		}

		var userID *uuid.UUID
		if claims := middlewares.GetClaimsFromContext(r.Context()); claims != nil {
			if id, err := claims.UserID(); err == nil {
				userID = &id
			}
		}

		if err := svc.Record(r.Context(), req.EventType, req.Category, userID); err != nil {
			logger.Log.Errorw("failed to record event", "event_type", req.EventType, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: "Event recorded"})
	}
}
