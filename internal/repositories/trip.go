package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

const tripColumns = `
	trip_id, user_id, title, trip_type, start_date, end_date,
	duration_days, price, description, image_url, created_at
`

const dayColumns = `
	day_id, trip_id, day_number, date, title, description, city
`

const activityColumns = `
	activity_id, day_id, destination_id, activity_type, start_time,
	duration_hours, description
`

// TripReadRepository provides read access to trips, days and activities.
type TripReadRepository struct {
	db *sqlx.DB
}

func NewTripReadRepository(db *sqlx.DB) *TripReadRepository {
	return &TripReadRepository{db: db}
}

// Get returns the bare trip row, or nil when not found.
func (r *TripReadRepository) Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1`

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, tripID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"trip_id", tripID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetOwned returns the trip only when it is owned by the given user.
// System trips (nil owner) never match.
func (r *TripReadRepository) GetOwned(ctx context.Context, tripID, userID uuid.UUID) (*models.TripDB, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1 AND user_id = $2`

	var trip models.TripDB
	err := r.db.GetContext(ctx, &trip, query, tripID, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"trip_id", tripID,
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetWithDays returns the trip with its days and day activities attached,
// or nil when the trip does not exist.
func (r *TripReadRepository) GetWithDays(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	trip, err := r.Get(ctx, tripID)
	if err != nil || trip == nil {
		return trip, err
	}

	days, err := r.daysForTrips(ctx, []uuid.UUID{tripID})
	if err != nil {
		return nil, err
	}
	trip.Days = days[tripID]
	return trip, nil
}

// ListWithDays returns all trips with nested days and activities.
func (r *TripReadRepository) ListWithDays(ctx context.Context) ([]models.TripDB, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at`

	var trips []models.TripDB
	err := r.db.SelectContext(ctx, &trips, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(trips),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	return r.attachDays(ctx, trips)
}

// ListByUser returns the trips owned by a user, with nested days.
func (r *TripReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TripDB, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = $1 ORDER BY created_at`

	var trips []models.TripDB
	err := r.db.SelectContext(ctx, &trips, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"rows", len(trips),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	return r.attachDays(ctx, trips)
}

// GetDay returns a day row, or nil when not found.
func (r *TripReadRepository) GetDay(ctx context.Context, dayID uuid.UUID) (*models.DayDB, error) {
	query := `SELECT ` + dayColumns + ` FROM days WHERE day_id = $1`

	var day models.DayDB
	err := r.db.GetContext(ctx, &day, query, dayID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"day_id", dayID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// GetActivity returns a day activity, or nil when not found.
func (r *TripReadRepository) GetActivity(ctx context.Context, activityID uuid.UUID) (*models.DayActivityDB, error) {
	query := `SELECT ` + activityColumns + ` FROM day_activities WHERE activity_id = $1`

	var activity models.DayActivityDB
	err := r.db.GetContext(ctx, &activity, query, activityID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"activity_id", activityID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *TripReadRepository) attachDays(ctx context.Context, trips []models.TripDB) ([]models.TripDB, error) {
	if len(trips) == 0 {
		return trips, nil
	}

	ids := make([]uuid.UUID, 0, len(trips))
	for _, t := range trips {
		ids = append(ids, t.TripID)
	}

	days, err := r.daysForTrips(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i].Days = days[trips[i].TripID]
	}
	return trips, nil
}

func (r *TripReadRepository) daysForTrips(ctx context.Context, tripIDs []uuid.UUID) (map[uuid.UUID][]models.DayDB, error) {
	dayQuery, args, err := sqlx.In(
		`SELECT `+dayColumns+` FROM days WHERE trip_id IN (?) ORDER BY day_number`, tripIDs)
	if err != nil {
		return nil, err
	}
	dayQuery = r.db.Rebind(dayQuery)

	var days []models.DayDB
	if err := r.db.SelectContext(ctx, &days, dayQuery, args...); err != nil {
		logger.Log.Errorw("failed to load days", "error", err)
		return nil, err
	}

	actQuery, args, err := sqlx.In(
		`SELECT `+activityColumns+` FROM day_activities
		 WHERE day_id IN (SELECT day_id FROM days WHERE trip_id IN (?))
		 ORDER BY start_time`, tripIDs)
	if err != nil {
		return nil, err
	}
	actQuery = r.db.Rebind(actQuery)

	var activities []models.DayActivityDB
	if err := r.db.SelectContext(ctx, &activities, actQuery, args...); err != nil {
		logger.Log.Errorw("failed to load day activities", "error", err)
		return nil, err
	}

	byDay := make(map[uuid.UUID][]models.DayActivityDB, len(days))
	for _, a := range activities {
		byDay[a.DayID] = append(byDay[a.DayID], a)
	}

	byTrip := make(map[uuid.UUID][]models.DayDB, len(tripIDs))
	for _, d := range days {
		d.Activities = byDay[d.DayID]
		byTrip[d.TripID] = append(byTrip[d.TripID], d)
	}
	return byTrip, nil
}

// TripWriteRepository provides write access to trips, days and activities.
// When a transaction is present in the context it is used instead of the
// pool, so the trip-create route commits trip and days atomically.
type TripWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTripWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TripWriteRepository {
	return &TripWriteRepository{db: db, txGetter: txGetter}
}

func (r *TripWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveTrip inserts a trip row.
func (r *TripWriteRepository) SaveTrip(ctx context.Context, trip *models.TripDB) error {
	query := `
		INSERT INTO trips (
			trip_id, user_id, title, trip_type, start_date, end_date,
			duration_days, price, description, image_url, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())`

	if trip.TripID == uuid.Nil {
		trip.TripID = uuid.New()
	}

	_, err := r.executor(ctx).ExecContext(ctx, query,
		trip.TripID, trip.UserID, trip.Title, trip.TripType, trip.StartDate,
		trip.EndDate, trip.DurationDays, trip.Price, trip.Description, trip.ImageURL,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"trip_id", trip.TripID,
		"error", err,
	)
	return err
}

// UpdateTrip updates the mutable trip fields. Ownership never changes here.
func (r *TripWriteRepository) UpdateTrip(ctx context.Context, trip *models.TripDB) error {
	query := `
		UPDATE trips SET
			title = $2, trip_type = $3, start_date = $4, end_date = $5,
			duration_days = $6, price = $7, description = $8, image_url = $9
		WHERE trip_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		trip.TripID, trip.Title, trip.TripType, trip.StartDate, trip.EndDate,
		trip.DurationDays, trip.Price, trip.Description, trip.ImageURL,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"trip_id", trip.TripID,
		"error", err,
	)
	return err
}

// DeleteTrip removes a trip; days and activities cascade at the schema level.
func (r *TripWriteRepository) DeleteTrip(ctx context.Context, tripID uuid.UUID) error {
	query := `DELETE FROM trips WHERE trip_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, tripID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"trip_id", tripID,
		"error", err,
	)
	return err
}

// SaveDay inserts a day row.
func (r *TripWriteRepository) SaveDay(ctx context.Context, day *models.DayDB) error {
	query := `
		INSERT INTO days (day_id, trip_id, day_number, date, title, description, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if day.DayID == uuid.Nil {
		day.DayID = uuid.New()
	}

	_, err := r.executor(ctx).ExecContext(ctx, query,
		day.DayID, day.TripID, day.DayNumber, day.Date, day.Title, day.Description, day.City,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"day_id", day.DayID,
		"error", err,
	)
	return err
}

// UpdateDay updates a day row.
func (r *TripWriteRepository) UpdateDay(ctx context.Context, day *models.DayDB) error {
	query := `
		UPDATE days SET day_number = $2, date = $3, title = $4, description = $5, city = $6
		WHERE day_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		day.DayID, day.DayNumber, day.Date, day.Title, day.Description, day.City,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"day_id", day.DayID,
		"error", err,
	)
	return err
}

// DeleteDay removes a day row.
func (r *TripWriteRepository) DeleteDay(ctx context.Context, dayID uuid.UUID) error {
	query := `DELETE FROM days WHERE day_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, dayID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"day_id", dayID,
		"error", err,
	)
	return err
}

// SaveActivity inserts a day activity.
func (r *TripWriteRepository) SaveActivity(ctx context.Context, activity *models.DayActivityDB) error {
	query := `
		INSERT INTO day_activities (
			activity_id, day_id, destination_id, activity_type,
			start_time, duration_hours, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if activity.ActivityID == uuid.Nil {
		activity.ActivityID = uuid.New()
	}

	_, err := r.executor(ctx).ExecContext(ctx, query,
		activity.ActivityID, activity.DayID, activity.DestinationID,
		activity.ActivityType, activity.StartTime, activity.DurationHours, activity.Description,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"activity_id", activity.ActivityID,
		"error", err,
	)
	return err
}

// UpdateActivity updates a day activity.
func (r *TripWriteRepository) UpdateActivity(ctx context.Context, activity *models.DayActivityDB) error {
	query := `
		UPDATE day_activities SET
			destination_id = $2, activity_type = $3, start_time = $4,
			duration_hours = $5, description = $6
		WHERE activity_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query,
		activity.ActivityID, activity.DestinationID, activity.ActivityType,
		activity.StartTime, activity.DurationHours, activity.Description,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"activity_id", activity.ActivityID,
		"error", err,
	)
	return err
}

// DeleteActivity removes a day activity.
func (r *TripWriteRepository) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	query := `DELETE FROM day_activities WHERE activity_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, activityID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"activity_id", activityID,
		"error", err,
	)
	return err
}
