package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// DestinationReader defines read-only operations for destinations.
type DestinationReader interface {
	Get(ctx context.Context, destinationID uuid.UUID) (*models.DestinationDB, error)
	List(ctx context.Context) ([]models.DestinationDB, error)
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.DestinationDB, error)
}

// DestinationWriter defines write operations for destinations and favorites.
type DestinationWriter interface {
	Save(ctx context.Context, dest *models.DestinationDB) error
	Update(ctx context.Context, dest *models.DestinationDB) error
	Delete(ctx context.Context, destinationID uuid.UUID) error
	SaveFavorite(ctx context.Context, userID, destinationID uuid.UUID) error
	DeleteFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error)
}

// DestinationService handles destination CRUD and user favorites.
type DestinationService struct {
	reader   DestinationReader
	writer   DestinationWriter
	recorder EventRecorder
}

// NewDestinationService creates a new DestinationService instance.
func NewDestinationService(reader DestinationReader, writer DestinationWriter, recorder EventRecorder) *DestinationService {
	return &DestinationService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

// List returns all destinations.
func (svc *DestinationService) List(ctx context.Context) ([]models.DestinationDB, error) {
	return svc.reader.List(ctx)
}

// Get returns one destination, or nil when not found. A view event is
// recorded for the dashboard's popularity breakdown.
func (svc *DestinationService) Get(ctx context.Context, destinationID uuid.UUID, viewerID *uuid.UUID) (*models.DestinationDB, error) {
	dest, err := svc.reader.Get(ctx, destinationID)
	if err != nil || dest == nil {
		return dest, err
	}

	if svc.recorder != nil {
		name := dest.Name
		_ = svc.recorder.Record(ctx, models.EventDestinationView, &name, viewerID)
	}
	return dest, nil
}

// Create persists a new destination.
func (svc *DestinationService) Create(ctx context.Context, dest *models.DestinationDB) (*models.DestinationDB, error) {
	dest.DestinationID = uuid.New()

	if err := svc.writer.Save(ctx, dest); err != nil {
		logger.Log.Errorw("failed to save destination", "err", err)
		return nil, err
	}
	return dest, nil
}

// Update replaces the mutable destination fields. Returns nil when the
// destination does not exist.
func (svc *DestinationService) Update(ctx context.Context, destinationID uuid.UUID, updated *models.DestinationDB) (*models.DestinationDB, error) {
	dest, err := svc.reader.Get(ctx, destinationID)
	if err != nil || dest == nil {
		return nil, err
	}

	dest.Name = updated.Name
	dest.City = updated.City
	dest.Description = updated.Description
	dest.ImageURL = updated.ImageURL
	dest.EstimatedPrice = updated.EstimatedPrice
	dest.OpensAt = updated.OpensAt
	dest.ClosesAt = updated.ClosesAt
	dest.VrImageURL = updated.VrImageURL

	if err := svc.writer.Update(ctx, dest); err != nil {
		logger.Log.Errorw("failed to update destination", "destination_id", destinationID, "err", err)
		return nil, err
	}
	return dest, nil
}

// Delete removes a destination. Returns false when it does not exist.
func (svc *DestinationService) Delete(ctx context.Context, destinationID uuid.UUID) (bool, error) {
	dest, err := svc.reader.Get(ctx, destinationID)
	if err != nil || dest == nil {
		return false, err
	}

	if err := svc.writer.Delete(ctx, destinationID); err != nil {
		logger.Log.Errorw("failed to delete destination", "destination_id", destinationID, "err", err)
		return false, err
	}
	return true, nil
}

// AddFavorite marks a destination as a user favorite. Returns false when
// the destination does not exist.
func (svc *DestinationService) AddFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	dest, err := svc.reader.Get(ctx, destinationID)
	if err != nil || dest == nil {
		return false, err
	}

	if err := svc.writer.SaveFavorite(ctx, userID, destinationID); err != nil {
		logger.Log.Errorw("failed to save favorite", "user_id", userID, "destination_id", destinationID, "err", err)
		return false, err
	}
	return true, nil
}

// RemoveFavorite removes a favorite. Returns false when it was not set.
func (svc *DestinationService) RemoveFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	removed, err := svc.writer.DeleteFavorite(ctx, userID, destinationID)
	if err != nil {
		logger.Log.Errorw("failed to delete favorite", "user_id", userID, "destination_id", destinationID, "err", err)
		return false, err
	}
	return removed, nil
}

// ListFavorites returns the destinations favorited by a user.
func (svc *DestinationService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.DestinationDB, error) {
	return svc.reader.ListFavorites(ctx, userID)
}
