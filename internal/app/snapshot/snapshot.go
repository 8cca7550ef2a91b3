package snapshot

import (
	"context"
	"sync"
	"time"

	"stayboard/internal/domain/calendargrid"
	"stayboard/internal/domain/stay"
)

// Source delivers read-only stay data for a window. Implementations fetch
// from storage or an upstream API; the dashboard core itself never performs
// I/O.
type Source interface {
	Bookings(ctx context.Context, from, to time.Time) ([]stay.Booking, error)
	BlockedDates(ctx context.Context, from, to time.Time) ([]stay.BlockedDate, error)
	// CalendarDays returns per-day statuses from the calendar-by-month
	// endpoint, keyed by day of month. An empty map is a valid answer; the
	// caller then derives statuses from bookings instead.
	CalendarDays(ctx context.Context, year int, month time.Month) (map[int]calendargrid.DayStatus, error)
}

// Snapshot is one immutable fetch result. Aggregations recompute from the
// latest snapshot; nothing inside it is ever mutated.
type Snapshot struct {
	Bookings  []stay.Booking
	Blocked   []stay.BlockedDate
	FetchedAt time.Time
	Seq       uint64
}

// Holder keeps the latest committed snapshot, guarded against out-of-order
// fetches: a response that started before the currently applied one must not
// overwrite it.
type Holder struct {
	mu      sync.RWMutex
	guard   Guard
	current Snapshot
	ready   bool
}

// Begin reserves a sequence number for a fetch about to start.
func (h *Holder) Begin() uint64 {
	return h.guard.Begin()
}

// Replace installs the snapshot if its sequence is still the newest. Stale
// fetches return false and leave the current snapshot untouched.
func (h *Holder) Replace(seq uint64, s Snapshot) bool {
	if !h.guard.Commit(seq) {
		return false
	}
	s.Seq = seq
	h.mu.Lock()
	h.current = s
	h.ready = true
	h.mu.Unlock()
	return true
}

// Current returns the latest committed snapshot, false before the first one.
func (h *Holder) Current() (Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current, h.ready
}
