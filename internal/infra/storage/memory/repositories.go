package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"stayboard/internal/domain/calendargrid"
	"stayboard/internal/domain/stay"
)

// StayStore is an in-memory stay source for demo and test setups. It serves
// the same window queries as the mongo repository, seeded from a fixtures
// file or programmatically.
type StayStore struct {
	mu       sync.RWMutex
	bookings map[string]stay.Booking
	blocked  map[string]stay.BlockedDate
	calendar map[string]map[int]calendargrid.DayStatus
}

// NewStayStore builds an empty store.
func NewStayStore() *StayStore {
	return &StayStore{
		bookings: make(map[string]stay.Booking),
		blocked:  make(map[string]stay.BlockedDate),
		calendar: make(map[string]map[int]calendargrid.DayStatus),
	}
}

type fixturesFile struct {
	Bookings     []stay.RawBooking     `json:"bookings"`
	BlockedDates []stay.RawBlockedDate `json:"blockedDates"`
}

// LoadFixtures seeds the store from a JSON file of raw upstream records.
// Rows that fail normalization are dropped, matching the live pipeline.
func (s *StayStore) LoadFixtures(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("memory: read fixtures: %w", err)
	}
	var file fixturesFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("memory: parse fixtures: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range stay.NormalizeBookings(file.Bookings) {
		s.bookings[b.ID] = b
	}
	for _, b := range stay.NormalizeBlockedDates(file.BlockedDates) {
		s.blocked[b.ID] = b
	}
	return nil
}

// UpsertBooking stores or replaces one booking.
func (s *StayStore) UpsertBooking(b stay.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

// RemoveBooking drops a booking by id.
func (s *StayStore) RemoveBooking(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, id)
}

// UpsertBlockedDate stores or replaces one blocked range.
func (s *StayStore) UpsertBlockedDate(b stay.BlockedDate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocked[b.ID] = b
}

// SetCalendarDay records a per-day status override for a month.
func (s *StayStore) SetCalendarDay(year int, month time.Month, day int, status calendargrid.DayStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := monthKey(year, month)
	if s.calendar[key] == nil {
		s.calendar[key] = make(map[int]calendargrid.DayStatus)
	}
	s.calendar[key][day] = status
}

// Bookings returns bookings overlapping [from, to), ordered by check-in.
func (s *StayStore) Bookings(ctx context.Context, from, to time.Time) ([]stay.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]stay.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.Range.CheckIn.Before(to) && b.Range.CheckOut.After(from) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Range.CheckIn.Equal(out[j].Range.CheckIn) {
			return out[i].ID < out[j].ID
		}
		return out[i].Range.CheckIn.Before(out[j].Range.CheckIn)
	})
	return out, nil
}

// BlockedDates returns blocked ranges overlapping [from, to).
func (s *StayStore) BlockedDates(ctx context.Context, from, to time.Time) ([]stay.BlockedDate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]stay.BlockedDate, 0, len(s.blocked))
	for _, b := range s.blocked {
		if b.Start.Before(to) && b.End.After(from) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

// CalendarDays returns recorded day-status overrides for the month.
func (s *StayStore) CalendarDays(ctx context.Context, year int, month time.Month) (map[int]calendargrid.DayStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]calendargrid.DayStatus)
	for day, status := range s.calendar[monthKey(year, month)] {
		out[day] = status
	}
	return out, nil
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
