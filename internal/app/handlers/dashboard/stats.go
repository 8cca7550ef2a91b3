package dashboard

import (
	"context"
	"log/slog"
	"time"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/queries"
	"stayboard/internal/app/snapshot"
	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/timeline"
)

const statsKey = "dashboard.stats"

// StatsFetcher pulls the pre-aggregated headline metrics from the external
// statistics endpoint.
type StatsFetcher interface {
	Fetch(ctx context.Context) (*dto.DashboardStats, error)
}

// StatsQuery asks for the headline card metrics.
type StatsQuery struct{}

func (q StatsQuery) Key() string { return statsKey }

// StatsHandler relays the statistics endpoint when available and falls back
// to computing the same headline figures from the current snapshot. The two
// sources are tagged but never reconciled against each other.
type StatsHandler struct {
	Fetcher StatsFetcher
	Holder  *snapshot.Holder
	Now     func() time.Time
	Logger  *slog.Logger
}

func (h *StatsHandler) Handle(ctx context.Context, _ StatsQuery) (dto.DashboardStats, error) {
	if h.Fetcher != nil {
		stats, err := h.Fetcher.Fetch(ctx)
		if err == nil && stats != nil {
			out := *stats
			out.Source = dto.StatsSourceEndpoint
			return out, nil
		}
		if err != nil && h.Logger != nil {
			h.Logger.Warn("stats endpoint unavailable, computing locally", "error", err)
		}
	}
	return h.computed(), nil
}

// computed derives trailing-30-day headline figures from the snapshot. An
// empty or absent snapshot yields all zeros, never an error.
func (h *StatsHandler) computed() dto.DashboardStats {
	out := dto.DashboardStats{Source: dto.StatsSourceComputed}
	if h.Holder == nil {
		return out
	}
	snap, ok := h.Holder.Current()
	if !ok {
		return out
	}
	today := daterange.Day(h.now())
	from := today.AddDate(0, 0, -29)

	points := timeline.DailySeries(snap.Bookings, from, 30)
	var revenue float64
	var occupied int
	for _, p := range points {
		revenue += p.Metric.Revenue
		occupied += p.Metric.OccupiedNights
	}
	out.TotalRevenue = dto.Round2(revenue)
	out.OccupancyRate = dto.Round2(float64(occupied) / 30 * 100)
	if occupied > 0 {
		out.AverageDailyRate = dto.Round2(revenue / float64(occupied))
	}

	for _, b := range snap.Bookings {
		if !b.Status.Active() || b.Range.Validate() != nil {
			continue
		}
		if daterange.SameDay(b.Range.CheckIn, today) {
			out.ArrivalsToday++
		}
		if daterange.SameDay(b.Range.CheckOut, today) {
			out.DeparturesToday++
		}
	}
	return out
}

func (h *StatsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

var _ queries.Handler[StatsQuery, dto.DashboardStats] = (*StatsHandler)(nil)
