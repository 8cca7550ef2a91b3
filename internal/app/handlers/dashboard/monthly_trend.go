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
	monthlyTrendKey = "dashboard.monthly_trend"

	minTrendMonths = 6
	maxTrendMonths = 12
)

// MonthlyTrendQuery asks for the month-by-month trend series. Months is
// clamped to the 6..12 range the trend chart supports; a zero From means a
// trailing window ending in the current month.
type MonthlyTrendQuery struct {
	From   time.Time
	Months int
}

func (q MonthlyTrendQuery) Key() string { return monthlyTrendKey }

type MonthlyTrendHandler struct {
	Source snapshot.Source
	Now    func() time.Time
}

func (h *MonthlyTrendHandler) Handle(ctx context.Context, q MonthlyTrendQuery) (dto.Series, error) {
	months := q.Months
	if months < minTrendMonths {
		months = minTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}
	from := q.From
	if from.IsZero() {
		now := h.now()
		from = daterange.Date(now.UTC().Year(), now.UTC().Month(), 1).AddDate(0, -(months - 1), 0)
	}

	buckets := timeline.MonthlyBuckets(from, months)
	windowStart, windowEnd := timeline.Window(buckets)
	bookings, err := h.Source.Bookings(ctx, windowStart, windowEnd)
	if err != nil {
		return dto.Series{}, err
	}
	return dto.MapSeries(timeline.MonthlySeries(bookings, from, months)), nil
}

func (h *MonthlyTrendHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

var _ queries.Handler[MonthlyTrendQuery, dto.Series] = (*MonthlyTrendHandler)(nil)
