package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// TripOwnershipReader is the slice of the trip store the policy needs.
type TripOwnershipReader interface {
	GetOwned(ctx context.Context, tripID, userID uuid.UUID) (*models.TripDB, error)
}

type editCacheKey struct {
	TripID uuid.UUID
	UserID uuid.UUID
}

// EditCache memoizes ownership decisions within a single request, so a
// handler touching several sub-resources of one trip runs the ownership
// query once. It must be created per request and never shared across
// requests or users.
type EditCache map[editCacheKey]bool

// NewEditCache returns an empty request-scoped cache.
func NewEditCache() EditCache {
	return make(EditCache)
}

// TripPolicy decides whether a caller may mutate a trip.
type TripPolicy struct {
	trips TripOwnershipReader
}

// NewTripPolicy creates a new TripPolicy instance.
func NewTripPolicy(trips TripOwnershipReader) *TripPolicy {
	return &TripPolicy{trips: trips}
}

// CanEdit reports whether the caller may mutate the trip. Admins may edit
// any trip, including system trips with no owner; other callers must own
// the trip. Caller identity is passed explicitly, never read from ambient
// state.
func (p *TripPolicy) CanEdit(ctx context.Context, cache EditCache, tripID, callerID uuid.UUID, callerRole string) (bool, error) {
	if callerRole == models.RoleAdmin {
		return true, nil
	}

	key := editCacheKey{TripID: tripID, UserID: callerID}
	if cache != nil {
		if allowed, ok := cache[key]; ok {
			return allowed, nil
		}
	}

	trip, err := p.trips.GetOwned(ctx, tripID, callerID)
	if err != nil {
		logger.Log.Errorw("ownership lookup failed", "trip_id", tripID, "user_id", callerID, "err", err)
		return false, err
	}

	allowed := trip != nil
	if cache != nil {
		cache[key] = allowed
	}
	return allowed, nil
}
