package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: checkout must be after checkin")
)

const nightsPerDay = 24 * time.Hour

// DateRange represents a half-open interval [checkIn, checkOut).
// The guest occupies the nights of checkIn up to, but not including, checkOut.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func New(checkIn, checkOut time.Time) (DateRange, error) {
	dr := DateRange{CheckIn: Day(checkIn), CheckOut: Day(checkOut)}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

func (dr DateRange) Validate() error {
	if dr.CheckOut.IsZero() || dr.CheckIn.IsZero() {
		return ErrInvalidRange
	}
	if !dr.CheckOut.After(dr.CheckIn) {
		return ErrInvalidRange
	}
	return nil
}

func (dr DateRange) Nights() int {
	return int(dr.CheckOut.Sub(dr.CheckIn).Hours() / 24)
}

func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(dr.CheckOut)
}

func (dr DateRange) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return (t.Equal(dr.CheckIn) || t.After(dr.CheckIn)) && t.Before(dr.CheckOut)
}

// OverlapNights counts the calendar nights shared by the receiver and the
// half-open window [start, end). Zero or negative overlaps report 0.
func (dr DateRange) OverlapNights(start, end time.Time) int {
	from := dr.CheckIn
	if start.After(from) {
		from = start
	}
	to := dr.CheckOut
	if end.Before(to) {
		to = end
	}
	n := DaysBetween(from, to)
	if n < 0 {
		return 0
	}
	return n
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole days from a to b, negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / nightsPerDay)
}

// SameDay reports whether both instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// MonthSpan returns the first day of the month and the first day of the next
// month as a half-open range.
func MonthSpan(year int, month time.Month) (time.Time, time.Time) {
	start := Date(year, month, 1)
	return start, start.AddDate(0, 1, 0)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	start, end := MonthSpan(year, month)
	return DaysBetween(start, end)
}
