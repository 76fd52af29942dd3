package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kemet-travel/kemet-api/internal/models"
	"github.com/kemet-travel/kemet-api/internal/services"
)

func TestTripPolicy_CanEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := services.NewMockTripOwnershipReader(ctrl)
	policy := services.NewTripPolicy(trips)

	tripID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner may edit", func(t *testing.T) {
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(&models.TripDB{TripID: tripID}, nil)

		allowed, err := policy.CanEdit(context.Background(), services.NewEditCache(), tripID, owner, models.RoleUser)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("non-owner may not edit", func(t *testing.T) {
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, stranger).
			Return(nil, nil)

		allowed, err := policy.CanEdit(context.Background(), services.NewEditCache(), tripID, stranger, models.RoleUser)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("admin skips the ownership lookup", func(t *testing.T) {
		// No GetOwned expectation: the reader must not be called.
		allowed, err := policy.CanEdit(context.Background(), services.NewEditCache(), tripID, stranger, models.RoleAdmin)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("lookup error is surfaced", func(t *testing.T) {
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(nil, errors.New("db error"))

		allowed, err := policy.CanEdit(context.Background(), services.NewEditCache(), tripID, owner, models.RoleUser)
		assert.Error(t, err)
		assert.False(t, allowed)
	})

	t.Run("nil cache still decides", func(t *testing.T) {
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(&models.TripDB{TripID: tripID}, nil)

		allowed, err := policy.CanEdit(context.Background(), nil, tripID, owner, models.RoleUser)
		assert.NoError(t, err)
		assert.True(t, allowed)
	})
}

func TestTripPolicy_CanEdit_Memoization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trips := services.NewMockTripOwnershipReader(ctrl)
	policy := services.NewTripPolicy(trips)

	tripID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("positive decision is cached", func(t *testing.T) {
		cache := services.NewEditCache()
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(&models.TripDB{TripID: tripID}, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			allowed, err := policy.CanEdit(context.Background(), cache, tripID, owner, models.RoleUser)
			assert.NoError(t, err)
			assert.True(t, allowed)
		}
	})

	t.Run("negative decision is cached", func(t *testing.T) {
		cache := services.NewEditCache()
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, stranger).
			Return(nil, nil).
			Times(1)

		for i := 0; i < 3; i++ {
			allowed, err := policy.CanEdit(context.Background(), cache, tripID, stranger, models.RoleUser)
			assert.NoError(t, err)
			assert.False(t, allowed)
		}
	})

	t.Run("a fresh cache queries again", func(t *testing.T) {
		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(&models.TripDB{TripID: tripID}, nil).
			Times(2)

		for i := 0; i < 2; i++ {
			allowed, err := policy.CanEdit(context.Background(), services.NewEditCache(), tripID, owner, models.RoleUser)
			assert.NoError(t, err)
			assert.True(t, allowed)
		}
	})

	t.Run("cache entries are keyed by trip and user", func(t *testing.T) {
		cache := services.NewEditCache()
		otherTrip := uuid.New()

		trips.EXPECT().
			GetOwned(gomock.Any(), tripID, owner).
			Return(&models.TripDB{TripID: tripID}, nil).
			Times(1)
		trips.EXPECT().
			GetOwned(gomock.Any(), otherTrip, owner).
			Return(nil, nil).
			Times(1)

		allowed, err := policy.CanEdit(context.Background(), cache, tripID, owner, models.RoleUser)
		assert.NoError(t, err)
		assert.True(t, allowed)

		allowed, err = policy.CanEdit(context.Background(), cache, otherTrip, owner, models.RoleUser)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
