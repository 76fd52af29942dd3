package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// DashboardReadRepository runs the aggregate queries behind the admin dashboard.
type DashboardReadRepository struct {
	db *sqlx.DB
}

func NewDashboardReadRepository(db *sqlx.DB) *DashboardReadRepository {
	return &DashboardReadRepository{db: db}
}

// monthCount is an intermediate row for UserGrowthByMonth.
type monthCount struct {
	Month    string `db:"month"` // Short month name
	NewUsers int    `db:"new_users"`
}

// UserGrowthByMonth returns new-user counts grouped by month for rows newer
// than the given cutoff. Missing months are filled by the service.
func (r *DashboardReadRepository) UserGrowthByMonth(ctx context.Context, sinceMonths int) (map[string]int, error) {
	query := `
		SELECT TO_CHAR(DATE_TRUNC('month', created_at), 'Mon') AS month,
		       COUNT(*) AS new_users
		FROM users
		WHERE created_at >= DATE_TRUNC('month', NOW()) - ($1 || ' months')::interval
		GROUP BY DATE_TRUNC('month', created_at)`

	var rows []monthCount
	err := r.db.SelectContext(ctx, &rows, query, sinceMonths)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[strings.TrimSpace(row.Month)] = row.NewUsers
	}
	return counts, nil
}

// DestinationPopularity scores each destination by day-activity references
// plus favorites, with a flat 10-point bonus for having a virtual tour, and
// returns the top entries.
func (r *DashboardReadRepository) DestinationPopularity(ctx context.Context, limit int) ([]models.DestinationPopularity, error) {
	query := `
		SELECT d.name,
		       (SELECT COUNT(*) FROM day_activities da WHERE da.destination_id = d.destination_id) +
		       (SELECT COUNT(*) FROM user_favorites uf WHERE uf.destination_id = d.destination_id) +
		       CASE WHEN EXISTS (SELECT 1 FROM virtual_tours vt WHERE vt.destination_id = d.destination_id)
		            THEN 10 ELSE 0 END AS count
		FROM destinations d
		ORDER BY count DESC
		LIMIT $1`

	var rows []models.DestinationPopularity
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FeatureUsage returns usage counts per feature category. Percentages are
// computed by the service.
func (r *DashboardReadRepository) FeatureUsage(ctx context.Context) ([]models.FeatureUsage, error) {
	query := `
		SELECT COALESCE(category, 'Unknown') AS feature_name,
		       COUNT(*) AS usage_count
		FROM analytics_events
		WHERE event_type = $1
		GROUP BY category`

	var rows []models.FeatureUsage
	err := r.db.SelectContext(ctx, &rows, query, models.EventFeatureUsage)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// weekdayCount is an intermediate row for TripsByWeekday.
type weekdayCount struct {
	Day           string `db:"day"` // Short weekday name
	ActivityCount int    `db:"activity_count"`
}

// TripsByWeekday returns trips created per weekday. Missing weekdays are
// filled by the service.
func (r *DashboardReadRepository) TripsByWeekday(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT TO_CHAR(created_at, 'Dy') AS day,
		       COUNT(*) AS activity_count
		FROM trips
		GROUP BY TO_CHAR(created_at, 'Dy')`

	var rows []weekdayCount
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[strings.TrimSpace(row.Day)] = row.ActivityCount
	}
	return counts, nil
}
