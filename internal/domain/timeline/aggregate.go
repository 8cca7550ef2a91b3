package timeline

import (
	"math"
	"time"

	"stayboard/internal/domain/stay"
)

// DailySeries aggregates bookings into one point per day over the window
// starting at start, for the short-range revenue chart.
func DailySeries(bookings []stay.Booking, start time.Time, days int) []Point {
	return buildSeries(bookings, DailyBuckets(start, days), false)
}

// MonthlySeries aggregates bookings into one point per calendar month for
// the trend chart, attaching the occupancy percentage.
func MonthlySeries(bookings []stay.Booking, start time.Time, months int) []Point {
	return buildSeries(bookings, MonthlyBuckets(start, months), true)
}

func buildSeries(bookings []stay.Booking, buckets []Bucket, withOccupancy bool) []Point {
	metrics := Distribute(bookings, buckets)
	points := make([]Point, len(buckets))
	for i := range buckets {
		m := metrics[i]
		if withOccupancy {
			m.OccupancyPct = occupancyPct(m.OccupiedNights, buckets[i].Days())
		}
		points[i] = Point{Bucket: buckets[i], Metric: m}
	}
	return points
}

// occupancyPct rounds occupied nights over the bucket span to a whole
// percentage, clamped to [0, 100].
func occupancyPct(occupied, span int) int {
	if span <= 0 {
		return 0
	}
	pct := int(math.Round(float64(occupied) / float64(span) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
