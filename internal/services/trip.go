package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// TripReader defines read-only operations for trips.
type TripReader interface {
	Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
	GetWithDays(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
	ListWithDays(ctx context.Context) ([]models.TripDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error)
	GetDay(ctx context.Context, dayID uuid.UUID) (*models.DayDB, error)
	GetActivity(ctx context.Context, activityID uuid.UUID) (*models.DayActivityDB, error)
}

// TripWriter defines write operations for trips, days and activities.
type TripWriter interface {
	SaveTrip(ctx context.Context, trip *models.TripDB) error
	UpdateTrip(ctx context.Context, trip *models.TripDB) error
	DeleteTrip(ctx context.Context, tripID uuid.UUID) error
	SaveDay(ctx context.Context, day *models.DayDB) error
	UpdateDay(ctx context.Context, day *models.DayDB) error
	DeleteDay(ctx context.Context, dayID uuid.UUID) error
	SaveActivity(ctx context.Context, activity *models.DayActivityDB) error
	UpdateActivity(ctx context.Context, activity *models.DayActivityDB) error
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error
}

// EventRecorder records analytics events.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, category *string, userID *uuid.UUID) error
}

// TripService handles trip itineraries with their nested days and activities.
// Missing resources come back as nil/false results; returned errors are
// infrastructure faults.
type TripService struct {
	reader   TripReader
	writer   TripWriter
	recorder EventRecorder
}

// NewTripService creates a new TripService instance.
func NewTripService(reader TripReader, writer TripWriter, recorder EventRecorder) *TripService {
	return &TripService{
		reader:   reader,
		writer:   writer,
		recorder: recorder,
	}
}

// List returns all trips with nested days and activities.
func (svc *TripService) List(ctx context.Context) ([]models.TripDB, error) {
	return svc.reader.ListWithDays(ctx)
}

// Get returns one trip with nested days, or nil when not found.
func (svc *TripService) Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	return svc.reader.GetWithDays(ctx, tripID)
}

// ListByUser returns the trips owned by a user.
func (svc *TripService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error) {
	return svc.reader.ListByUser(ctx, userID)
}

// Create persists a trip together with any nested days and activities.
// The caller wraps the request in a transaction, so the whole itinerary
// commits or rolls back as one unit.
func (svc *TripService) Create(ctx context.Context, trip *models.TripDB) (*models.TripDB, error) {
	trip.TripID = uuid.New()

	if err := svc.writer.SaveTrip(ctx, trip); err != nil {
		logger.Log.Errorw("failed to save trip", "err", err)
		return nil, err
	}

	for i := range trip.Days {
		day := &trip.Days[i]
		day.DayID = uuid.New()
		day.TripID = trip.TripID
		if err := svc.writer.SaveDay(ctx, day); err != nil {
			logger.Log.Errorw("failed to save day", "trip_id", trip.TripID, "err", err)
			return nil, err
		}

		for j := range day.Activities {
			activity := &day.Activities[j]
			activity.ActivityID = uuid.New()
			activity.DayID = day.DayID
			if err := svc.writer.SaveActivity(ctx, activity); err != nil {
				logger.Log.Errorw("failed to save activity", "day_id", day.DayID, "err", err)
				return nil, err
			}
		}
	}

	if svc.recorder != nil {
		category := trip.Title
		_ = svc.recorder.Record(ctx, models.EventTripCreated, &category, trip.UserID)
	}

	return trip, nil
}

// Update replaces the mutable trip fields. Returns nil when the trip does
// not exist.
func (svc *TripService) Update(ctx context.Context, tripID uuid.UUID, updated *models.TripDB) (*models.TripDB, error) {
	trip, err := svc.reader.GetWithDays(ctx, tripID)
	if err != nil || trip == nil {
		return nil, err
	}

	trip.Title = updated.Title
	trip.TripType = updated.TripType
	trip.StartDate = updated.StartDate
	trip.EndDate = updated.EndDate
	trip.DurationDays = updated.DurationDays
	trip.Price = updated.Price
	trip.Description = updated.Description
	trip.ImageURL = updated.ImageURL

	if err := svc.writer.UpdateTrip(ctx, trip); err != nil {
		logger.Log.Errorw("failed to update trip", "trip_id", tripID, "err", err)
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip. Returns false when it does not exist.
func (svc *TripService) Delete(ctx context.Context, tripID uuid.UUID) (bool, error) {
	trip, err := svc.reader.Get(ctx, tripID)
	if err != nil || trip == nil {
		return false, err
	}

	if err := svc.writer.DeleteTrip(ctx, tripID); err != nil {
		logger.Log.Errorw("failed to delete trip", "trip_id", tripID, "err", err)
		return false, err
	}
	return true, nil
}

// AddDay appends a day to a trip. Returns nil when the trip does not exist.
func (svc *TripService) AddDay(ctx context.Context, tripID uuid.UUID, day *models.DayDB) (*models.DayDB, error) {
	trip, err := svc.reader.Get(ctx, tripID)
	if err != nil || trip == nil {
		return nil, err
	}

	day.DayID = uuid.New()
	day.TripID = tripID

	if err := svc.writer.SaveDay(ctx, day); err != nil {
		logger.Log.Errorw("failed to save day", "trip_id", tripID, "err", err)
		return nil, err
	}
	return day, nil
}

// UpdateDay updates a day that belongs to the given trip. Returns nil when
// the day is missing or attached to another trip.
func (svc *TripService) UpdateDay(ctx context.Context, tripID, dayID uuid.UUID, updated *models.DayDB) (*models.DayDB, error) {
	day, err := svc.reader.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day == nil || day.TripID != tripID {
		return nil, nil
	}

	day.DayNumber = updated.DayNumber
	day.Date = updated.Date
	day.Title = updated.Title
	day.Description = updated.Description
	day.City = updated.City

	if err := svc.writer.UpdateDay(ctx, day); err != nil {
		logger.Log.Errorw("failed to update day", "day_id", dayID, "err", err)
		return nil, err
	}
	return day, nil
}

// RemoveDay deletes a day from a trip. Returns false when the day is
// missing or attached to another trip.
func (svc *TripService) RemoveDay(ctx context.Context, tripID, dayID uuid.UUID) (bool, error) {
	day, err := svc.reader.GetDay(ctx, dayID)
	if err != nil {
		return false, err
	}
	if day == nil || day.TripID != tripID {
		return false, nil
	}

	if err := svc.writer.DeleteDay(ctx, dayID); err != nil {
		logger.Log.Errorw("failed to delete day", "day_id", dayID, "err", err)
		return false, err
	}
	return true, nil
}

// AddActivity appends an activity to a day of the given trip. Returns nil
// when the day is missing or attached to another trip.
func (svc *TripService) AddActivity(ctx context.Context, tripID, dayID uuid.UUID, activity *models.DayActivityDB) (*models.DayActivityDB, error) {
	day, err := svc.reader.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if day == nil || day.TripID != tripID {
		return nil, nil
	}

	activity.ActivityID = uuid.New()
	activity.DayID = dayID

	if err := svc.writer.SaveActivity(ctx, activity); err != nil {
		logger.Log.Errorw("failed to save activity", "day_id", dayID, "err", err)
		return nil, err
	}
	return activity, nil
}

// UpdateActivity updates an activity that belongs to the given day.
func (svc *TripService) UpdateActivity(ctx context.Context, dayID, activityID uuid.UUID, updated *models.DayActivityDB) (*models.DayActivityDB, error) {
	activity, err := svc.reader.GetActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil || activity.DayID != dayID {
		return nil, nil
	}

	activity.DestinationID = updated.DestinationID
	activity.ActivityType = updated.ActivityType
	activity.StartTime = updated.StartTime
	activity.DurationHours = updated.DurationHours
	activity.Description = updated.Description

	if err := svc.writer.UpdateActivity(ctx, activity); err != nil {
		logger.Log.Errorw("failed to update activity", "activity_id", activityID, "err", err)
		return nil, err
	}
	return activity, nil
}

// RemoveActivity deletes an activity from a day.
func (svc *TripService) RemoveActivity(ctx context.Context, dayID, activityID uuid.UUID) (bool, error) {
	activity, err := svc.reader.GetActivity(ctx, activityID)
	if err != nil {
		return false, err
	}
	if activity == nil || activity.DayID != dayID {
		return false, nil
	}

	if err := svc.writer.DeleteActivity(ctx, activityID); err != nil {
		logger.Log.Errorw("failed to delete activity", "activity_id", activityID, "err", err)
		return false, err
	}
	return true, nil
}
