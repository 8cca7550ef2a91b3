package dto

// DashboardStats is the headline card row: either relayed verbatim from the
// statistics endpoint or computed from the current snapshot as a fallback.
// The two sources are displayed independently and never reconciled.
type DashboardStats struct {
	TotalRevenue     float64 `json:"total_revenue"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	AverageDailyRate float64 `json:"average_daily_rate"`
	ArrivalsToday    int     `json:"arrivals_today"`
	DeparturesToday  int     `json:"departures_today"`
	Source           string  `json:"source"`
}

const (
	StatsSourceEndpoint = "endpoint"
	StatsSourceComputed = "computed"
)
