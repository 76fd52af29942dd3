package services

import (
	"context"
	"time"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// growthMonths is how many months of user growth the dashboard shows,
// current month included.
const growthMonths = 7

// popularityLimit is how many top destinations the dashboard shows.
const popularityLimit = 5

// defaultFeatures seed the usage breakdown when no events exist yet.
var defaultFeatures = []string{"Chatbot", "VR Tours", "Taxi Estimator", "Translator"}

// DashboardReader runs the aggregate queries.
type DashboardReader interface {
	UserGrowthByMonth(ctx context.Context, sinceMonths int) (map[string]int, error)
	DestinationPopularity(ctx context.Context, limit int) ([]models.DestinationPopularity, error)
	FeatureUsage(ctx context.Context) ([]models.FeatureUsage, error)
	TripsByWeekday(ctx context.Context) (map[string]int, error)
}

// DashboardCache caches the assembled payload.
type DashboardCache interface {
	Get(ctx context.Context) (*models.DashboardData, error)
	Set(ctx context.Context, data *models.DashboardData) error
}

// DashboardService assembles the admin dashboard payload with a
// read-through cache in front of the aggregate queries.
type DashboardService struct {
	reader DashboardReader
	cache  DashboardCache
	now    func() time.Time
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(reader DashboardReader, cache DashboardCache) *DashboardService {
	return &DashboardService{
		reader: reader,
		cache:  cache,
		now:    time.Now,
	}
}

// GetDashboardData returns the aggregate payload, from the cache when
// possible. Cache failures fall through to the live queries.
func (svc *DashboardService) GetDashboardData(ctx context.Context) (*models.DashboardData, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	growth, err := svc.userGrowth(ctx)
	if err != nil {
		return nil, err
	}

	popularity, err := svc.reader.DestinationPopularity(ctx, popularityLimit)
	if err != nil {
		return nil, err
	}

	features, err := svc.featureUsage(ctx)
	if err != nil {
		return nil, err
	}

	daily, err := svc.dailyActivity(ctx)
	if err != nil {
		return nil, err
	}

	data := &models.DashboardData{
		UserGrowth:            growth,
		DestinationPopularity: popularity,
		FeatureUsage:          features,
		DailyActivity:         daily,
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, data); err != nil {
			logger.Log.Warnw("failed to cache dashboard payload", "error", err)
		}
	}
	return data, nil
}

// userGrowth zero-fills the last growthMonths months in order, oldest first.
func (svc *DashboardService) userGrowth(ctx context.Context) ([]models.GrowthTrend, error) {
	counts, err := svc.reader.UserGrowthByMonth(ctx, growthMonths-1)
	if err != nil {
		return nil, err
	}

	now := svc.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(growthMonths - 1), 0)

	trend := make([]models.GrowthTrend, 0, growthMonths)
	for i := 0; i < growthMonths; i++ {
		month := first.AddDate(0, i, 0).Format("Jan")
		trend = append(trend, models.GrowthTrend{
			Month:    month,
			NewUsers: counts[month],
		})
	}
	return trend, nil
}

// featureUsage computes percentages and substitutes the default feature set
// when no events exist.
func (svc *DashboardService) featureUsage(ctx context.Context) ([]models.FeatureUsage, error) {
	features, err := svc.reader.FeatureUsage(ctx)
	if err != nil {
		return nil, err
	}

	if len(features) == 0 {
		features = make([]models.FeatureUsage, 0, len(defaultFeatures))
		for _, name := range defaultFeatures {
			features = append(features, models.FeatureUsage{FeatureName: name})
		}
	}

	total := 0
	for _, f := range features {
		total += f.UsageCount
	}
	for i := range features {
		if total > 0 {
			features[i].Percentage = float64(features[i].UsageCount) / float64(total) * 100
		}
	}
	return features, nil
}

// dailyActivity zero-fills trips created per weekday, Monday first.
func (svc *DashboardService) dailyActivity(ctx context.Context) ([]models.DailyActivity, error) {
	counts, err := svc.reader.TripsByWeekday(ctx)
	if err != nil {
		return nil, err
	}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	daily := make([]models.DailyActivity, 0, len(days))
	for _, day := range days {
		daily = append(daily, models.DailyActivity{
			Day:           day,
			ActivityCount: counts[day],
		})
	}
	return daily, nil
}
