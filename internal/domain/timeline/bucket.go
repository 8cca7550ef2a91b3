package timeline

import (
	"time"

	"stayboard/internal/domain/shared/daterange"
)

const (
	dailyKeyLayout     = "2006-01-02"
	dailyLabelLayout   = "Jan 2"
	monthlyKeyLayout   = "2006-01"
	monthlyLabelLayout = "Jan 2006"
)

// Bucket is one fixed aggregation slice: a day or a month, as a half-open
// date range with a sortable key and a display label.
type Bucket struct {
	Key   string
	Label string
	Start time.Time
	End   time.Time
}

// Days returns the bucket's span in whole days.
func (b Bucket) Days() int {
	return daterange.DaysBetween(b.Start, b.End)
}

// ContainsDate reports whether the date falls inside the bucket's window.
func (b Bucket) ContainsDate(t time.Time) bool {
	t = daterange.Day(t)
	return !t.Before(b.Start) && t.Before(b.End)
}

// DailyBuckets builds one bucket per day for the window starting at start.
func DailyBuckets(start time.Time, days int) []Bucket {
	if days <= 0 {
		return nil
	}
	start = daterange.Day(start)
	buckets := make([]Bucket, 0, days)
	for i := 0; i < days; i++ {
		s := start.AddDate(0, 0, i)
		buckets = append(buckets, Bucket{
			Key:   s.Format(dailyKeyLayout),
			Label: s.Format(dailyLabelLayout),
			Start: s,
			End:   s.AddDate(0, 0, 1),
		})
	}
	return buckets
}

// MonthlyBuckets builds one bucket per calendar month, starting at the month
// containing start.
func MonthlyBuckets(start time.Time, months int) []Bucket {
	if months <= 0 {
		return nil
	}
	first := daterange.Date(start.UTC().Year(), start.UTC().Month(), 1)
	buckets := make([]Bucket, 0, months)
	for i := 0; i < months; i++ {
		s := first.AddDate(0, i, 0)
		buckets = append(buckets, Bucket{
			Key:   s.Format(monthlyKeyLayout),
			Label: s.Format(monthlyLabelLayout),
			Start: s,
			End:   s.AddDate(0, 1, 0),
		})
	}
	return buckets
}

// Window returns the half-open range covered by a contiguous bucket list.
func Window(buckets []Bucket) (time.Time, time.Time) {
	if len(buckets) == 0 {
		return time.Time{}, time.Time{}
	}
	return buckets[0].Start, buckets[len(buckets)-1].End
}
