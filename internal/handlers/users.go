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

// UserLister defines the interface for listing users.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// RoleUpdater defines the interface for changing a user's role.
type RoleUpdater interface {
	UpdateUserRole(ctx context.Context, userID uuid.UUID, role string) (bool, string, error)
}

// UpdateRoleRequest represents the JSON body for changing a user's role
// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	// Target role
	// required: true
	// default: Admin
	Role string `json:"role"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns all registered users. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserDB "Users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /admin/users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewUpdateUserRoleHandler returns an HTTP handler that sets a user's role.
// @Summary Update user role
// @Description Sets a user's role to User or Admin. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateRoleRequest body handlers.UpdateRoleRequest true "Role request"
// @Success 200 {object} handlers.MessageResponse "Role updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid role"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /admin/users/{id}/role [put]
// @Security BearerAuth
func NewUpdateUserRoleHandler(svc RoleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid user id"})
			return
		}

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		ok, message, err := svc.UpdateUserRole(r.Context(), userID, req.Role)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}
		if !ok {
			status := http.StatusBadRequest
			if message == "User not found" {
				status = http.StatusNotFound
			}
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(ErrorResponse{Error: message})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{Message: message})
	}
}
