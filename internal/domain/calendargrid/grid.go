package calendargrid

import (
	"time"

	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/stay"
)

// Month identifies one displayed calendar month.
type Month struct {
	Year  int
	Month time.Month
}

func (m Month) Span() (time.Time, time.Time) {
	return daterange.MonthSpan(m.Year, m.Month)
}

func (m Month) Days() int {
	return daterange.DaysInMonth(m.Year, m.Month)
}

// FirstWeekdayOffset is the column of day 1, weeks starting on Sunday.
func (m Month) FirstWeekdayOffset() int {
	return int(daterange.Date(m.Year, m.Month, 1).Weekday())
}

type DayStatus string

const (
	DayAvailable DayStatus = "available"
	DayBooked    DayStatus = "booked"
	DayBlocked   DayStatus = "blocked"
	DayCheckIn   DayStatus = "check_in"
	DayCheckOut  DayStatus = "check_out"
)

// statusRank orders statuses when several intervals touch the same date:
// a check-in beats a check-out beats an occupied night beats a block.
func statusRank(s DayStatus) int {
	switch s {
	case DayCheckIn:
		return 4
	case DayCheckOut:
		return 3
	case DayBooked:
		return 2
	case DayBlocked:
		return 1
	default:
		return 0
	}
}

// Cell is one day of the month grid. Padding positions are nil pointers in
// Grid.Cells so the rendered weeks always line up in rows of seven.
type Cell struct {
	Day    int
	Date   time.Time
	Today  bool
	Status DayStatus
}

// Grid is a fully laid-out month: padded day cells plus positioned capsules.
type Grid struct {
	Month    Month
	Cells    []*Cell
	Weeks    int
	Capsules []Capsule
}

// Options tunes grid construction.
type Options struct {
	// Today marks the matching cell; the zero value marks none.
	Today time.Time
	// ColorMode selects capsule color assignment; stable hashing is the
	// default because round-robin depends on input ordering.
	ColorMode ColorMode
	// SplitRows emits continuation segments for capsules crossing week rows.
	// Off by default: the single-row rendering is the established behavior.
	SplitRows bool
	// DayOverrides carries per-day statuses from the calendar-by-month
	// endpoint when it returned data; days not present fall back to the
	// statuses derived from bookings and blocks.
	DayOverrides map[int]DayStatus
}

// Build lays out one month: day cells with leading and trailing padding so
// the sequence is whole weeks, a derived status per day, and one capsule per
// interval touching the month.
func Build(m Month, bookings []stay.Booking, blocked []stay.BlockedDate, opts Options) Grid {
	days := m.Days()
	offset := m.FirstWeekdayOffset()

	statuses := dayStatuses(m, bookings, blocked)
	for day, s := range opts.DayOverrides {
		if day >= 1 && day <= days {
			statuses[day-1] = s
		}
	}

	total := offset + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}
	cells := make([]*Cell, 0, total)
	for i := 0; i < offset; i++ {
		cells = append(cells, nil)
	}
	for day := 1; day <= days; day++ {
		date := daterange.Date(m.Year, m.Month, day)
		cells = append(cells, &Cell{
			Day:    day,
			Date:   date,
			Today:  !opts.Today.IsZero() && daterange.SameDay(date, opts.Today),
			Status: statuses[day-1],
		})
	}
	for len(cells) < total {
		cells = append(cells, nil)
	}

	return Grid{
		Month:    m,
		Cells:    cells,
		Weeks:    total / 7,
		Capsules: mapCapsules(m, bookings, blocked, opts),
	}
}

func dayStatuses(m Month, bookings []stay.Booking, blocked []stay.BlockedDate) []DayStatus {
	days := m.Days()
	statuses := make([]DayStatus, days)
	for i := range statuses {
		statuses[i] = DayAvailable
	}
	upgrade := func(day int, s DayStatus) {
		if day < 1 || day > days {
			return
		}
		if statusRank(s) > statusRank(statuses[day-1]) {
			statuses[day-1] = s
		}
	}

	for _, b := range bookings {
		if !b.Status.Active() || b.Range.Validate() != nil {
			continue
		}
		markInterval(m, b.Range, upgrade, true)
	}
	for _, bl := range blocked {
		r := bl.Range()
		if r.Validate() != nil {
			continue
		}
		markInterval(m, r, upgrade, false)
	}
	return statuses
}

// markInterval stamps day statuses for one interval. Bookings get check-in
// and check-out markers on the boundary days; blocks stay plain blocked.
func markInterval(m Month, r daterange.DateRange, upgrade func(int, DayStatus), isBooking bool) {
	monthStart, _ := m.Span()
	occupied := DayBooked
	if !isBooking {
		occupied = DayBlocked
	}
	for day := 1; day <= m.Days(); day++ {
		date := monthStart.AddDate(0, 0, day-1)
		switch {
		case isBooking && daterange.SameDay(date, r.CheckIn):
			upgrade(day, DayCheckIn)
		case isBooking && daterange.SameDay(date, r.CheckOut):
			upgrade(day, DayCheckOut)
		case r.ContainsDate(date):
			upgrade(day, occupied)
		}
	}
}
