package dashboard

import (
	"context"
	"time"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/queries"
	"stayboard/internal/app/snapshot"
	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/timeline"
)

const (
	revenueSeriesKey = "dashboard.revenue_series"

	defaultSeriesDays = 30
	maxSeriesDays     = 92
)

// RevenueSeriesQuery asks for the daily revenue/occupancy series over a
// window of Days days starting at From. A zero From means a trailing window
// ending today.
type RevenueSeriesQuery struct {
	From time.Time
	Days int
}

func (q RevenueSeriesQuery) Key() string { return revenueSeriesKey }

type RevenueSeriesHandler struct {
	Source snapshot.Source
	Now    func() time.Time
}

func (h *RevenueSeriesHandler) Handle(ctx context.Context, q RevenueSeriesQuery) (dto.Series, error) {
	days := q.Days
	if days <= 0 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}
	from := q.From
	if from.IsZero() {
		from = daterange.Day(h.now()).AddDate(0, 0, -(days - 1))
	} else {
		from = daterange.Day(from)
	}
	to := from.AddDate(0, 0, days)

	bookings, err := h.Source.Bookings(ctx, from, to)
	if err != nil {
		return dto.Series{}, err
	}
	return dto.MapSeries(timeline.DailySeries(bookings, from, days)), nil
}

func (h *RevenueSeriesHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

var _ queries.Handler[RevenueSeriesQuery, dto.Series] = (*RevenueSeriesHandler)(nil)
