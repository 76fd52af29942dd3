package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

const dashboardCacheKey = "dashboard:aggregate"

// DashboardCacheRepository caches the assembled dashboard payload in Redis
// with a TTL, so repeated admin loads skip the aggregate queries.
type DashboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewDashboardCacheRepository creates a cache repository with the given TTL.
func NewDashboardCacheRepository(client *redis.Client, expiration time.Duration) *DashboardCacheRepository {
	return &DashboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached payload, or nil on a miss.
func (r *DashboardCacheRepository) Get(ctx context.Context) (*models.DashboardData, error) {
	val, err := r.client.Get(ctx, dashboardCacheKey).Result()
	if err == redis.Nil {
		logger.Log.Infow("dashboard cache miss", "key", dashboardCacheKey)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("dashboard cache read failed", "key", dashboardCacheKey, "error", err)
		return nil, err
	}

	var data models.DashboardData
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		logger.Log.Errorw("dashboard cache payload corrupt", "key", dashboardCacheKey, "error", err)
		return nil, err
	}
	return &data, nil
}

// Set stores the payload with the configured TTL.
func (r *DashboardCacheRepository) Set(ctx context.Context, data *models.DashboardData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, dashboardCacheKey, raw, r.exp).Err()

	logger.Log.Infow("dashboard cache set",
		"key", dashboardCacheKey,
		"ttl", r.exp,
		"error", err,
	)
	return err
}
