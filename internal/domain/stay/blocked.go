package stay

import (
	"time"

	"stayboard/internal/domain/shared/daterange"
)

// BlockedDate marks a range of nights as unavailable for reasons other than a
// booking (maintenance, owner stay, external hold).
//
// The upstream record carries Start and End as calendar dates where End plays
// the role of a checkout date: the blocked nights are [Start, End), mirroring
// the booking convention so the calendar renders both kinds identically.
type BlockedDate struct {
	ID     string
	Start  time.Time
	End    time.Time
	Reason string
}

// Range exposes the blocked nights as a half-open stay interval.
func (b BlockedDate) Range() daterange.DateRange {
	return daterange.DateRange{CheckIn: daterange.Day(b.Start), CheckOut: daterange.Day(b.End)}
}

// Nights counts the blocked nights.
func (b BlockedDate) Nights() int {
	return b.Range().Nights()
}

// IntersectsMonth reports whether the block covers at least one night of the
// given month.
func (b BlockedDate) IntersectsMonth(year int, month time.Month) bool {
	start, end := daterange.MonthSpan(year, month)
	return b.Range().OverlapNights(start, end) > 0
}
