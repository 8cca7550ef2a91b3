package snapshot

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultLookback  = 365 * 24 * time.Hour
	defaultLookahead = 90 * 24 * time.Hour
)

// Refresher keeps the holder's snapshot fresh: on a timer, and immediately
// when Kick is called (e.g. by the booking-events consumer).
type Refresher struct {
	Source    Source
	Holder    *Holder
	Interval  time.Duration
	Lookback  time.Duration
	Lookahead time.Duration
	Logger    *slog.Logger

	kick chan struct{}
}

func NewRefresher(source Source, holder *Holder, interval time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		Source:   source,
		Holder:   holder,
		Interval: interval,
		Logger:   logger,
		kick:     make(chan struct{}, 1),
	}
}

// Kick requests an immediate refresh without blocking the caller. Kicks
// arriving while one is already pending coalesce.
func (r *Refresher) Kick() {
	select {
	case r.kick <- struct{}{}:
	default:
	}
}

// Run refreshes once eagerly, then on every tick or kick until the context
// is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	r.refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		case <-r.kick:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	seq := r.Holder.Begin()
	now := time.Now().UTC()

	lookback := r.Lookback
	if lookback <= 0 {
		lookback = defaultLookback
	}
	lookahead := r.Lookahead
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}
	from := now.Add(-lookback)
	to := now.Add(lookahead)

	bookings, err := r.Source.Bookings(ctx, from, to)
	if err != nil {
		r.logWarn("snapshot bookings fetch failed", err)
		return
	}
	blocked, err := r.Source.BlockedDates(ctx, from, to)
	if err != nil {
		r.logWarn("snapshot blocked-dates fetch failed", err)
		return
	}

	if !r.Holder.Replace(seq, Snapshot{Bookings: bookings, Blocked: blocked, FetchedAt: now}) {
		if r.Logger != nil {
			r.Logger.Debug("stale snapshot discarded", "seq", seq)
		}
		return
	}
	if r.Logger != nil {
		r.Logger.Debug("snapshot refreshed", "seq", seq, "bookings", len(bookings), "blocked", len(blocked))
	}
}

func (r *Refresher) logWarn(msg string, err error) {
	if r.Logger != nil {
		r.Logger.Warn(msg, "error", err)
	}
}
