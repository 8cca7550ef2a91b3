package timeline

import (
	"stayboard/internal/domain/stay"
)

// Metric is the aggregate attached to one bucket.
//
// NightWeightedBookings increments once per overlapping night, not once per
// booking touching the bucket. The day-weighted semantic feeds chart tooltips
// and is kept deliberately; see the regression test pinning it down.
type Metric struct {
	Revenue               float64
	NightWeightedBookings int
	OccupiedNights        int
	GuestCount            int
	OccupancyPct          int
}

// Point pairs a bucket with its aggregate, ready for chart binding.
type Point struct {
	Bucket Bucket
	Metric Metric
}

// Distribute apportions each booking's revenue, nights and guests across the
// ordered bucket list.
//
// Revenue is spread proportionally to night overlap: overlapNights times the
// booking's per-night rate, so a stay fully covered by the window sums back
// to its total price up to floating-point rounding. Guests are not spread;
// the full count lands in the single bucket containing the check-in date,
// and only for statuses that actually bring guests. Cancelled bookings
// contribute nothing at all.
//
// An empty or nil booking list yields all-zero metrics, never an error.
func Distribute(bookings []stay.Booking, buckets []Bucket) []Metric {
	metrics := make([]Metric, len(buckets))
	if len(buckets) == 0 {
		return metrics
	}
	windowStart, windowEnd := Window(buckets)

	for _, b := range bookings {
		if !b.Status.Active() {
			continue
		}
		if b.Range.Validate() != nil {
			continue
		}
		if b.Range.OverlapNights(windowStart, windowEnd) <= 0 {
			continue
		}
		perNight := b.PerNightRevenue()
		for i := range buckets {
			overlap := b.Range.OverlapNights(buckets[i].Start, buckets[i].End)
			if overlap <= 0 {
				continue
			}
			metrics[i].Revenue += float64(overlap) * perNight
			metrics[i].NightWeightedBookings += overlap
			metrics[i].OccupiedNights += overlap
		}
		if b.Status.CountsGuests() {
			for i := range buckets {
				if buckets[i].ContainsDate(b.Range.CheckIn) {
					metrics[i].GuestCount += b.Guests
					break
				}
			}
		}
	}

	// A single rentable unit can never be occupied for more nights than the
	// bucket spans, whatever the input claims.
	for i := range buckets {
		if span := buckets[i].Days(); metrics[i].OccupiedNights > span {
			metrics[i].OccupiedNights = span
		}
	}
	return metrics
}
