package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// DashboardGetter defines the interface that the dashboard service must implement.
type DashboardGetter interface {
	GetDashboardData(ctx context.Context) (*models.DashboardData, error)
}

// NewDashboardHandler returns an HTTP handler serving the admin dashboard
// aggregates.
// @Summary Admin dashboard
// @Description Returns user growth, destination popularity, feature usage and daily activity. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} models.DashboardData "Dashboard payload"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.GetDashboardData(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to assemble dashboard", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(data)
	}
}
