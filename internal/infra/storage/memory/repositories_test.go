package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stayboard/internal/domain/calendargrid"
	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/stay"
)

const fixturesJSON = `{
  "bookings": [
    {"id": "b1", "guestName": "Ada", "checkInDate": "2024-03-10", "checkOutDate": "2024-03-13", "nights": 3, "totalPrice": 300, "numberOfGuests": 2, "status": "confirmed", "bookingSource": "airbnb"},
    {"id": "b2", "guestName": "Bo", "checkInDate": "2024-04-01", "checkOutDate": "2024-04-03", "nights": 2, "totalPrice": 200, "numberOfGuests": 1, "status": "paid", "bookingSource": "direct"},
    {"id": "bad", "guestName": "Broken", "checkInDate": "not-a-date", "checkOutDate": "2024-04-03", "totalPrice": 1, "numberOfGuests": 1, "status": "paid"}
  ],
  "blockedDates": [
    {"id": "blk1", "startDate": "2024-03-20", "endDate": "2024-03-22", "reason": "maintenance"}
  ]
}`

func writeFixtures(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stays.json")
	if err := os.WriteFile(path, []byte(fixturesJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFixturesDropsInvalidRows(t *testing.T) {
	store := NewStayStore()
	if err := store.LoadFixtures(writeFixtures(t)); err != nil {
		t.Fatal(err)
	}

	all, err := store.Bookings(context.Background(), daterange.Date(2024, time.January, 1), daterange.Date(2025, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 valid bookings, got %d", len(all))
	}
	if all[0].ID != "b1" || all[1].ID != "b2" {
		t.Errorf("expected check-in order b1, b2; got %s, %s", all[0].ID, all[1].ID)
	}
}

func TestBookingsWindowFiltering(t *testing.T) {
	store := NewStayStore()
	if err := store.LoadFixtures(writeFixtures(t)); err != nil {
		t.Fatal(err)
	}

	march, err := store.Bookings(context.Background(), daterange.Date(2024, time.March, 1), daterange.Date(2024, time.April, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(march) != 1 || march[0].ID != "b1" {
		t.Fatalf("expected only b1 in March, got %+v", march)
	}

	// Checkout on the window start is exclusive.
	none, err := store.Bookings(context.Background(), daterange.Date(2024, time.March, 13), daterange.Date(2024, time.March, 14))
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Errorf("expected no bookings after checkout day, got %d", len(none))
	}
}

func TestBlockedDatesWindowFiltering(t *testing.T) {
	store := NewStayStore()
	if err := store.LoadFixtures(writeFixtures(t)); err != nil {
		t.Fatal(err)
	}

	blocked, err := store.BlockedDates(context.Background(), daterange.Date(2024, time.March, 1), daterange.Date(2024, time.April, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(blocked) != 1 || blocked[0].ID != "blk1" {
		t.Fatalf("expected blk1, got %+v", blocked)
	}
}

func TestCalendarDayOverrides(t *testing.T) {
	store := NewStayStore()
	store.SetCalendarDay(2024, time.March, 4, calendargrid.DayBlocked)

	days, err := store.CalendarDays(context.Background(), 2024, time.March)
	if err != nil {
		t.Fatal(err)
	}
	if days[4] != calendargrid.DayBlocked {
		t.Errorf("expected day 4 blocked, got %q", days[4])
	}

	other, err := store.CalendarDays(context.Background(), 2024, time.April)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("expected empty map for other month, got %v", other)
	}
}

func TestUpsertAndRemoveBooking(t *testing.T) {
	store := NewStayStore()
	dr := daterange.DateRange{CheckIn: daterange.Date(2024, time.May, 1), CheckOut: daterange.Date(2024, time.May, 3)}
	store.UpsertBooking(stay.Booking{ID: "b9", Range: dr, Nights: 2, TotalPrice: 150, Status: stay.StatusConfirmed})

	got, err := store.Bookings(context.Background(), daterange.Date(2024, time.May, 1), daterange.Date(2024, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected stored booking, got %d", len(got))
	}

	store.RemoveBooking("b9")
	got, err = store.Bookings(context.Background(), daterange.Date(2024, time.May, 1), daterange.Date(2024, time.June, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected booking removed, got %d", len(got))
	}
}
