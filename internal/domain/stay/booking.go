package stay

import (
	"errors"
	"time"

	"stayboard/internal/domain/shared/daterange"
)

var (
	ErrInvalidGuests = errors.New("stay: guests count cannot be negative")
	ErrMissingID     = errors.New("stay: id is required")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusPaid       Status = "paid"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// Active reports whether the booking still occupies its nights.
// Cancelled bookings are excluded from every aggregate and from rendering.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// CountsGuests reports whether the booking's guests are attributed to the
// bucket containing its check-in date. No-shows occupy nothing and bring
// nobody.
func (s Status) CountsGuests() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPaid, StatusCheckedIn, StatusCheckedOut:
		return true
	default:
		return false
	}
}

// Booking is the immutable stay snapshot the dashboard core consumes.
// It is never mutated after normalization; every recomputation starts from a
// freshly fetched list.
type Booking struct {
	ID         string
	GuestName  string
	Range      daterange.DateRange
	Nights     int
	TotalPrice float64
	Guests     int
	Status     Status
	Source     string
}

// EffectiveNights guards the per-night division: zero or negative nights are
// clamped to 1 so one bad record cannot poison a whole series.
func (b Booking) EffectiveNights() int {
	if b.Nights <= 0 {
		return 1
	}
	return b.Nights
}

// PerNightRevenue spreads the total price evenly across the stay's nights.
func (b Booking) PerNightRevenue() float64 {
	return b.TotalPrice / float64(b.EffectiveNights())
}

// IntersectsMonth reports whether the stay occupies at least one night of the
// given month.
func (b Booking) IntersectsMonth(year int, month time.Month) bool {
	start, end := daterange.MonthSpan(year, month)
	return b.Range.OverlapNights(start, end) > 0
}
