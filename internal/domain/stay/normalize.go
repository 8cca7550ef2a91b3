package stay

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"stayboard/internal/domain/shared/daterange"
)

var (
	ErrBadDate       = errors.New("stay: unparseable date")
	ErrNegativePrice = errors.New("stay: total price cannot be negative")
)

// RawBooking is the wire shape delivered by the bookings-list query before
// validation. Dates arrive as strings, nights and guests may be absent.
type RawBooking struct {
	ID         string  `json:"id"`
	GuestName  string  `json:"guestName"`
	CheckIn    string  `json:"checkInDate"`
	CheckOut   string  `json:"checkOutDate"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
	Guests     int     `json:"numberOfGuests"`
	Status     string  `json:"status"`
	Source     string  `json:"bookingSource"`
}

// RawBlockedDate is the wire shape of an unavailable range.
type RawBlockedDate struct {
	ID     string `json:"id"`
	Start  string `json:"startDate"`
	End    string `json:"endDate"`
	Reason string `json:"reason"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts the two date encodings seen upstream, normalized to
// midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrBadDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return daterange.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, raw)
}

// NormalizeBooking validates and shapes one raw record into the canonical
// snapshot. Nights fall back to the rounded stay length, clamped to 1.
func NormalizeBooking(raw RawBooking) (Booking, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return Booking{}, ErrMissingID
	}
	checkIn, err := ParseDate(raw.CheckIn)
	if err != nil {
		return Booking{}, err
	}
	checkOut, err := ParseDate(raw.CheckOut)
	if err != nil {
		return Booking{}, err
	}
	dr, err := daterange.New(checkIn, checkOut)
	if err != nil {
		return Booking{}, err
	}
	if raw.TotalPrice < 0 {
		return Booking{}, ErrNegativePrice
	}
	if raw.Guests < 0 {
		return Booking{}, ErrInvalidGuests
	}
	nights := raw.Nights
	if nights == 0 {
		rounded := int(math.Round(checkOut.Sub(checkIn).Hours() / 24))
		if rounded < 1 {
			rounded = 1
		}
		nights = rounded
	}
	return Booking{
		ID:         raw.ID,
		GuestName:  strings.TrimSpace(raw.GuestName),
		Range:      dr,
		Nights:     nights,
		TotalPrice: raw.TotalPrice,
		Guests:     raw.Guests,
		Status:     normalizeStatus(raw.Status),
		Source:     strings.TrimSpace(raw.Source),
	}, nil
}

// NormalizeBookings shapes a whole list, dropping records that fail
// validation so one bad row cannot blank an entire chart.
func NormalizeBookings(raw []RawBooking) []Booking {
	out := make([]Booking, 0, len(raw))
	for _, r := range raw {
		b, err := NormalizeBooking(r)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

// NormalizeBlockedDate validates one raw blocked range.
func NormalizeBlockedDate(raw RawBlockedDate) (BlockedDate, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return BlockedDate{}, ErrMissingID
	}
	start, err := ParseDate(raw.Start)
	if err != nil {
		return BlockedDate{}, err
	}
	end, err := ParseDate(raw.End)
	if err != nil {
		return BlockedDate{}, err
	}
	if !end.After(start) {
		return BlockedDate{}, daterange.ErrInvalidRange
	}
	return BlockedDate{ID: raw.ID, Start: start, End: end, Reason: strings.TrimSpace(raw.Reason)}, nil
}

// NormalizeBlockedDates shapes a whole list, dropping invalid rows.
func NormalizeBlockedDates(raw []RawBlockedDate) []BlockedDate {
	out := make([]BlockedDate, 0, len(raw))
	for _, r := range raw {
		b, err := NormalizeBlockedDate(r)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func normalizeStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending
	case StatusConfirmed:
		return StatusConfirmed
	case StatusPaid:
		return StatusPaid
	case StatusCheckedIn:
		return StatusCheckedIn
	case StatusCheckedOut:
		return StatusCheckedOut
	case StatusCancelled:
		return StatusCancelled
	case StatusNoShow:
		return StatusNoShow
	default:
		return StatusPending
	}
}
