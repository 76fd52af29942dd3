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

const destinationColumns = `
	d.destination_id, d.name, d.city, d.description, d.image_url,
	d.estimated_price, d.opens_at, d.closes_at, d.created_at,
	v.vr_id, v.vr_image_url
`

const destinationFrom = `
	FROM destinations d
	LEFT JOIN virtual_tours v ON v.destination_id = d.destination_id
`

// DestinationReadRepository provides read access to destinations and favorites.
type DestinationReadRepository struct {
	db *sqlx.DB
}

func NewDestinationReadRepository(db *sqlx.DB) *DestinationReadRepository {
	return &DestinationReadRepository{db: db}
}

// Get returns a destination, or nil when not found.
func (r *DestinationReadRepository) Get(ctx context.Context, destinationID uuid.UUID) (*models.DestinationDB, error) {
	query := `SELECT ` + destinationColumns + destinationFrom + ` WHERE d.destination_id = $1`

	var dest models.DestinationDB
	err := r.db.GetContext(ctx, &dest, query, destinationID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"destination_id", destinationID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}

// List returns all destinations ordered by name.
func (r *DestinationReadRepository) List(ctx context.Context) ([]models.DestinationDB, error) {
	query := `SELECT ` + destinationColumns + destinationFrom + ` ORDER BY d.name`

	var dests []models.DestinationDB
	err := r.db.SelectContext(ctx, &dests, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(dests),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return dests, nil
}

// ListFavorites returns the destinations favorited by a user.
func (r *DestinationReadRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.DestinationDB, error) {
	query := `SELECT ` + destinationColumns + destinationFrom + `
		JOIN user_favorites f ON f.destination_id = d.destination_id
		WHERE f.user_id = $1
		ORDER BY f.added_at DESC`

	var dests []models.DestinationDB
	err := r.db.SelectContext(ctx, &dests, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"rows", len(dests),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return dests, nil
}

// DestinationWriteRepository provides write access to destinations and favorites.
type DestinationWriteRepository struct {
	db *sqlx.DB
}

func NewDestinationWriteRepository(db *sqlx.DB) *DestinationWriteRepository {
	return &DestinationWriteRepository{db: db}
}

// Save inserts a destination.
func (r *DestinationWriteRepository) Save(ctx context.Context, dest *models.DestinationDB) error {
	query := `
		INSERT INTO destinations (
			destination_id, name, city, description, image_url,
			estimated_price, opens_at, closes_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	if dest.DestinationID == uuid.Nil {
		dest.DestinationID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, query,
		dest.DestinationID, dest.Name, dest.City, dest.Description,
		dest.ImageURL, dest.EstimatedPrice, dest.OpensAt, dest.ClosesAt,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"destination_id", dest.DestinationID,
		"error", err,
	)
	if err != nil {
		return err
	}
	return r.saveVirtualTour(ctx, dest)
}

// Update updates a destination.
func (r *DestinationWriteRepository) Update(ctx context.Context, dest *models.DestinationDB) error {
	query := `
		UPDATE destinations SET
			name = $2, city = $3, description = $4, image_url = $5,
			estimated_price = $6, opens_at = $7, closes_at = $8
		WHERE destination_id = $1`

	_, err := r.db.ExecContext(ctx, query,
		dest.DestinationID, dest.Name, dest.City, dest.Description,
		dest.ImageURL, dest.EstimatedPrice, dest.OpensAt, dest.ClosesAt,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"destination_id", dest.DestinationID,
		"error", err,
	)
	if err != nil {
		return err
	}
	return r.saveVirtualTour(ctx, dest)
}

// saveVirtualTour reconciles the tour row with the destination payload:
// upserts when a tour image is set, removes the row when it is cleared.
func (r *DestinationWriteRepository) saveVirtualTour(ctx context.Context, dest *models.DestinationDB) error {
	if dest.VrImageURL == nil {
		query := `DELETE FROM virtual_tours WHERE destination_id = $1`

		_, err := r.db.ExecContext(ctx, query, dest.DestinationID)

		logger.Log.Infow("query",
			"sql", strings.Join(strings.Fields(query), " "),
			"destination_id", dest.DestinationID,
			"error", err,
		)
		dest.VrID = nil
		return err
	}

	query := `
		INSERT INTO virtual_tours (vr_id, destination_id, vr_image_url, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (destination_id) DO UPDATE SET vr_image_url = EXCLUDED.vr_image_url
		RETURNING vr_id`

	var vrID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, uuid.New(), dest.DestinationID, *dest.VrImageURL).Scan(&vrID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"destination_id", dest.DestinationID,
		"error", err,
	)
	if err != nil {
		return err
	}
	dest.VrID = &vrID
	return nil
}

// Delete removes a destination.
func (r *DestinationWriteRepository) Delete(ctx context.Context, destinationID uuid.UUID) error {
	query := `DELETE FROM destinations WHERE destination_id = $1`

	_, err := r.db.ExecContext(ctx, query, destinationID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"destination_id", destinationID,
		"error", err,
	)
	return err
}

// SaveFavorite marks a destination as a user favorite. Idempotent.
func (r *DestinationWriteRepository) SaveFavorite(ctx context.Context, userID, destinationID uuid.UUID) error {
	query := `
		INSERT INTO user_favorites (user_id, destination_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, destination_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID, destinationID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"destination_id", destinationID,
		"error", err,
	)
	return err
}

// DeleteFavorite removes a user favorite. Returns true when a row was removed.
func (r *DestinationWriteRepository) DeleteFavorite(ctx context.Context, userID, destinationID uuid.UUID) (bool, error) {
	query := `DELETE FROM user_favorites WHERE user_id = $1 AND destination_id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, destinationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"destination_id", destinationID,
		"rows", rowsAffected,
		"error", err,
	)
	return rowsAffected > 0, err
}
