package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"stayboard/internal/domain/calendargrid"
	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/stay"
)

// StayRepository reads bookings, blocked ranges and per-day calendar
// statuses for the dashboard. It is read-only: the booking pipeline that
// writes these collections lives in another service.
type StayRepository struct {
	bookings *mongo.Collection
	blocked  *mongo.Collection
	calendar *mongo.Collection
}

func NewStayRepository(db *mongo.Database) *StayRepository {
	return &StayRepository{
		bookings: db.Collection("bookings"),
		blocked:  db.Collection("blocked_dates"),
		calendar: db.Collection("calendar_days"),
	}
}

// Bookings returns every booking whose stay overlaps [from, to).
func (r *StayRepository) Bookings(ctx context.Context, from, to time.Time) ([]stay.Booking, error) {
	filter := bson.M{
		"range.check_in":  bson.M{"$lt": to.UnixMilli()},
		"range.check_out": bson.M{"$gt": from.UnixMilli()},
	}
	cur, err := r.bookings.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []stay.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// BlockedDates returns blocked ranges overlapping [from, to).
func (r *StayRepository) BlockedDates(ctx context.Context, from, to time.Time) ([]stay.BlockedDate, error) {
	filter := bson.M{
		"start": bson.M{"$lt": to.UnixMilli()},
		"end":   bson.M{"$gt": from.UnixMilli()},
	}
	cur, err := r.blocked.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []stay.BlockedDate
	for cur.Next(ctx) {
		var doc blockedDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// CalendarDays returns the per-day status overrides recorded for the month,
// keyed by day of month. A missing month yields an empty map, not an error.
func (r *StayRepository) CalendarDays(ctx context.Context, year int, month time.Month) (map[int]calendargrid.DayStatus, error) {
	filter := bson.M{"year": year, "month": int(month)}
	cur, err := r.calendar.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[int]calendargrid.DayStatus)
	for cur.Next(ctx) {
		var doc calendarDayDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.Day] = calendargrid.DayStatus(doc.Status)
	}
	return out, cur.Err()
}

type bookingDocument struct {
	ID         string        `bson:"_id"`
	GuestName  string        `bson:"guest_name"`
	Range      rangeDocument `bson:"range"`
	Nights     int           `bson:"nights"`
	TotalPrice float64       `bson:"total_price"`
	Guests     int           `bson:"guests"`
	Status     string        `bson:"status"`
	Source     string        `bson:"source"`
}

type rangeDocument struct {
	CheckIn  int64 `bson:"check_in"`
	CheckOut int64 `bson:"check_out"`
}

func (d bookingDocument) toDomain() stay.Booking {
	return stay.Booking{
		ID:        d.ID,
		GuestName: d.GuestName,
		Range: daterange.DateRange{
			CheckIn:  timestampToTime(d.Range.CheckIn),
			CheckOut: timestampToTime(d.Range.CheckOut),
		},
		Nights:     d.Nights,
		TotalPrice: d.TotalPrice,
		Guests:     d.Guests,
		Status:     stay.Status(d.Status),
		Source:     d.Source,
	}
}

type blockedDocument struct {
	ID     string `bson:"_id"`
	Start  int64  `bson:"start"`
	End    int64  `bson:"end"`
	Reason string `bson:"reason"`
}

func (d blockedDocument) toDomain() stay.BlockedDate {
	return stay.BlockedDate{
		ID:     d.ID,
		Start:  timestampToTime(d.Start),
		End:    timestampToTime(d.End),
		Reason: d.Reason,
	}
}

type calendarDayDocument struct {
	Year   int    `bson:"year"`
	Month  int    `bson:"month"`
	Day    int    `bson:"day"`
	Status string `bson:"status"`
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
