package calendar

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/queries"
	"stayboard/internal/app/snapshot"
	"stayboard/internal/domain/calendargrid"
)

const monthGridKey = "calendar.month_grid"

var ErrInvalidMonth = errors.New("calendar: month out of range")

// MonthGridQuery asks for one displayed month: padded day cells plus
// positioned capsules.
type MonthGridQuery struct {
	Year      int
	Month     time.Month
	SplitRows bool
	ColorMode calendargrid.ColorMode
}

func (q MonthGridQuery) Key() string { return monthGridKey }

type MonthGridHandler struct {
	Source snapshot.Source
	Now    func() time.Time
	Logger *slog.Logger
}

func (h *MonthGridHandler) Handle(ctx context.Context, q MonthGridQuery) (dto.MonthGrid, error) {
	if q.Month < time.January || q.Month > time.December || q.Year < 1 {
		return dto.MonthGrid{}, ErrInvalidMonth
	}
	month := calendargrid.Month{Year: q.Year, Month: q.Month}
	monthStart, monthEnd := month.Span()

	bookings, err := h.Source.Bookings(ctx, monthStart, monthEnd)
	if err != nil {
		return dto.MonthGrid{}, err
	}
	blocked, err := h.Source.BlockedDates(ctx, monthStart, monthEnd)
	if err != nil {
		return dto.MonthGrid{}, err
	}

	// The calendar-by-month endpoint may return nothing for the month; the
	// grid then derives day statuses from the bookings directly.
	overrides, err := h.Source.CalendarDays(ctx, q.Year, q.Month)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("calendar-by-month fetch failed, using derived statuses", "error", err)
		}
		overrides = nil
	}

	grid := calendargrid.Build(month, bookings, blocked, calendargrid.Options{
		Today:        h.now(),
		ColorMode:    q.ColorMode,
		SplitRows:    q.SplitRows,
		DayOverrides: overrides,
	})
	return dto.MapMonthGrid(grid), nil
}

func (h *MonthGridHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

var _ queries.Handler[MonthGridQuery, dto.MonthGrid] = (*MonthGridHandler)(nil)
