package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// AnalyticsWriteRepository stores usage events.
type AnalyticsWriteRepository struct {
	db *sqlx.DB
}

func NewAnalyticsWriteRepository(db *sqlx.DB) *AnalyticsWriteRepository {
	return &AnalyticsWriteRepository{db: db}
}

// Save inserts an analytics event.
func (r *AnalyticsWriteRepository) Save(ctx context.Context, event *models.AnalyticsEventDB) error {
	query := `
		INSERT INTO analytics_events (event_id, event_type, category, user_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, query,
		event.EventID, event.EventType, event.Category, event.UserID,
	)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"event_id", event.EventID,
		"event_type", event.EventType,
		"error", err,
	)
	return err
}
