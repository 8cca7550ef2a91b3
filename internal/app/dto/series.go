package dto

import (
	"math"
	"time"

	"stayboard/internal/domain/timeline"
)

// Round2 rounds to display precision. Revenue stays exact through the whole
// aggregation and is only rounded here, at the presentation boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type TimeBucket struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AggregatedMetric struct {
	Revenue               float64 `json:"revenue"`
	NightWeightedBookings int     `json:"night_weighted_bookings"`
	OccupiedNights        int     `json:"occupied_nights"`
	GuestCount            int     `json:"guest_count"`
	OccupancyPct          int     `json:"occupancy_pct,omitempty"`
}

type SeriesPoint struct {
	Bucket TimeBucket       `json:"bucket"`
	Metric AggregatedMetric `json:"metric"`
}

type Series struct {
	Points []SeriesPoint `json:"points"`
}

func MapSeries(points []timeline.Point) Series {
	out := make([]SeriesPoint, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPoint{
			Bucket: TimeBucket{
				Key:   p.Bucket.Key,
				Label: p.Bucket.Label,
				Start: p.Bucket.Start,
				End:   p.Bucket.End,
			},
			Metric: AggregatedMetric{
				Revenue:               Round2(p.Metric.Revenue),
				NightWeightedBookings: p.Metric.NightWeightedBookings,
				OccupiedNights:        p.Metric.OccupiedNights,
				GuestCount:            p.Metric.GuestCount,
				OccupancyPct:          p.Metric.OccupancyPct,
			},
		})
	}
	return Series{Points: out}
}
