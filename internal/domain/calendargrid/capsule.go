package calendargrid

import (
	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/stay"
)

type CapsuleKind string

const (
	KindBooking CapsuleKind = "booking"
	KindBlocked CapsuleKind = "blocked"
)

const (
	// Single-day capsules keep a small inset on each side so they never
	// collapse to a zero-width pill.
	singleDayInset = 0.10
	// Multi-day capsules start and end at cell midpoints: the pill begins in
	// the middle of the check-in cell and ends in the middle of the last
	// occupied night's cell.
	multiDayInset = 0.50
)

// Capsule is the positioned pill for one interval within the month grid.
//
// StartDay and EndDay are 1-based days of the displayed month, clipped to it.
// EndDay is the last occupied night, one before the vacating morning. Row,
// StartCol and EndCol address the week grid; insets are fractions of a cell
// width.
type Capsule struct {
	SourceID     string
	Kind         CapsuleKind
	Label        string
	StartDay     int
	EndDay       int
	Row          int
	StartCol     int
	EndCol       int
	Nights       int
	Color        string
	LeftInset    float64
	RightInset   float64
	SpansRows    bool
	Continuation bool
}

func mapCapsules(m Month, bookings []stay.Booking, blocked []stay.BlockedDate, opts Options) []Capsule {
	capsules := make([]Capsule, 0, len(bookings)+len(blocked))
	colors := newColorPicker(opts.ColorMode)

	for _, b := range bookings {
		if !b.Status.Active() || b.Range.Validate() != nil {
			continue
		}
		startDay, endDay, ok := clipToMonth(m, b.Range)
		if !ok {
			continue
		}
		base := Capsule{
			SourceID: b.ID,
			Kind:     KindBooking,
			Label:    b.GuestName,
			Color:    colors.pick(b.ID),
		}
		capsules = appendSegments(capsules, m, base, startDay, endDay, opts.SplitRows)
	}

	for _, bl := range blocked {
		r := bl.Range()
		if r.Validate() != nil {
			continue
		}
		startDay, endDay, ok := clipToMonth(m, r)
		if !ok {
			continue
		}
		base := Capsule{
			SourceID: bl.ID,
			Kind:     KindBlocked,
			Label:    bl.Reason,
			Color:    blockedColor,
		}
		capsules = appendSegments(capsules, m, base, startDay, endDay, opts.SplitRows)
	}
	return capsules
}

// clipToMonth maps an interval onto 1-based days of the month. The returned
// end day is the last occupied night: a checkout inside the month is pulled
// back by one so the pill ends on the night before the vacating morning.
func clipToMonth(m Month, r daterange.DateRange) (startDay, endDay int, ok bool) {
	monthStart, monthEnd := m.Span()
	if r.OverlapNights(monthStart, monthEnd) <= 0 {
		return 0, 0, false
	}
	days := m.Days()

	startDay = 1
	if r.CheckIn.After(monthStart) {
		startDay = daterange.DaysBetween(monthStart, r.CheckIn) + 1
	}
	if r.CheckOut.Before(monthEnd) {
		endDay = daterange.DaysBetween(monthStart, r.CheckOut)
	} else {
		endDay = days
	}

	if startDay > days || endDay < 1 || endDay < startDay {
		return 0, 0, false
	}
	return startDay, endDay, true
}

// appendSegments positions the capsule within the week grid.
//
// The default path renders only the segment in the interval's first row even
// when the stay crosses into the next week; the continuation rows are an
// accepted display gap, flagged via SpansRows. With splitRows enabled a
// separate segment is emitted per row instead.
func appendSegments(capsules []Capsule, m Month, base Capsule, startDay, endDay int, splitRows bool) []Capsule {
	offset := m.FirstWeekdayOffset()
	startIndex := offset + startDay - 1
	endIndex := offset + endDay - 1
	startRow := startIndex / 7
	endRow := endIndex / 7

	nights := endDay - startDay + 1
	single := startDay == endDay
	leftInset, rightInset := multiDayInset, multiDayInset
	if single {
		leftInset, rightInset = singleDayInset, singleDayInset
	}

	if startRow == endRow || !splitRows {
		c := base
		c.StartDay = startDay
		c.EndDay = endDay
		c.Row = startRow
		c.StartCol = startIndex % 7
		c.EndCol = endIndex % 7
		c.Nights = nights
		c.LeftInset = leftInset
		c.RightInset = rightInset
		c.SpansRows = startRow != endRow
		if c.SpansRows {
			// Clip the visible segment at the end of its first week.
			c.EndCol = 6
		}
		return append(capsules, c)
	}

	for row := startRow; row <= endRow; row++ {
		segStart := startDay
		segStartCol := startIndex % 7
		if row > startRow {
			segStart = row*7 - offset + 1
			segStartCol = 0
		}
		segEnd := endDay
		segEndCol := endIndex % 7
		if row < endRow {
			segEnd = (row+1)*7 - offset
			segEndCol = 6
		}
		c := base
		c.StartDay = segStart
		c.EndDay = segEnd
		c.Row = row
		c.StartCol = segStartCol
		c.EndCol = segEndCol
		c.Nights = nights
		c.LeftInset = leftInset
		c.RightInset = rightInset
		c.SpansRows = true
		c.Continuation = row > startRow
		capsules = append(capsules, c)
	}
	return capsules
}
