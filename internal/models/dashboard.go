package models

// GrowthTrend holds new-user counts for one month
type GrowthTrend struct {
	Month    string `json:"month"`     // Short month name, e.g. "Jan"
	NewUsers int    `json:"new_users"` // Users registered that month
}

// DestinationPopularity scores a destination by activity references and favorites
type DestinationPopularity struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeatureUsage holds usage counts for one feature category
type FeatureUsage struct {
	FeatureName string  `json:"feature_name"`
	UsageCount  int     `json:"usage_count"`
	Percentage  float64 `json:"percentage"` // Share of all feature-usage events
}

// DailyActivity holds trips created per weekday
type DailyActivity struct {
	Day           string `json:"day"` // Short weekday name, e.g. "Mon"
	ActivityCount int    `json:"activity_count"`
}

// DashboardData is the aggregate payload served to the admin dashboard
type DashboardData struct {
	UserGrowth            []GrowthTrend           `json:"user_growth"`
	DestinationPopularity []DestinationPopularity `json:"destination_popularity"`
	FeatureUsage          []FeatureUsage          `json:"feature_usage"`
	DailyActivity         []DailyActivity         `json:"daily_activity"`
}
