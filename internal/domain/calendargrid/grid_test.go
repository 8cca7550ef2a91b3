package calendargrid

import (
	"testing"
	"time"

	"stayboard/internal/domain/shared/daterange"
	"stayboard/internal/domain/stay"
)

// March 2024 starts on a Friday: offset 5, 31 days, 6 grid weeks.
var march = Month{Year: 2024, Month: time.March}

func booking(id string, checkIn, checkOut time.Time, status stay.Status) stay.Booking {
	dr := daterange.DateRange{CheckIn: checkIn, CheckOut: checkOut}
	return stay.Booking{ID: id, GuestName: "Guest " + id, Range: dr, Nights: dr.Nights(), TotalPrice: 100, Guests: 2, Status: status}
}

func TestBuildPadsToWholeWeeks(t *testing.T) {
	g := Build(march, nil, nil, Options{})

	if len(g.Cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(g.Cells))
	}
	if g.Weeks != 6 {
		t.Errorf("expected 6 weeks, got %d", g.Weeks)
	}
	for i := 0; i < 5; i++ {
		if g.Cells[i] != nil {
			t.Errorf("expected leading padding at %d", i)
		}
	}
	if g.Cells[5] == nil || g.Cells[5].Day != 1 {
		t.Fatalf("expected day 1 at index 5")
	}
	if g.Cells[35] == nil || g.Cells[35].Day != 31 {
		t.Fatalf("expected day 31 at index 35")
	}
	for i := 36; i < 42; i++ {
		if g.Cells[i] != nil {
			t.Errorf("expected trailing padding at %d", i)
		}
	}
}

func TestBuildDayStatuses(t *testing.T) {
	bookings := []stay.Booking{
		booking("b1", daterange.Date(2024, time.March, 10), daterange.Date(2024, time.March, 13), stay.StatusConfirmed),
	}
	blocked := []stay.BlockedDate{
		{ID: "bl1", Start: daterange.Date(2024, time.March, 20), End: daterange.Date(2024, time.March, 22), Reason: "maintenance"},
	}

	g := Build(march, bookings, blocked, Options{})

	cellFor := func(day int) *Cell { return g.Cells[5+day-1] }
	checks := map[int]DayStatus{
		9:  DayAvailable,
		10: DayCheckIn,
		11: DayBooked,
		12: DayBooked,
		13: DayCheckOut,
		14: DayAvailable,
		20: DayBlocked,
		21: DayBlocked,
		22: DayAvailable,
	}
	for day, want := range checks {
		if got := cellFor(day).Status; got != want {
			t.Errorf("day %d: expected %q, got %q", day, want, got)
		}
	}
}

func TestBuildCancelledBookingLeavesNoTrace(t *testing.T) {
	bookings := []stay.Booking{
		booking("b1", daterange.Date(2024, time.March, 10), daterange.Date(2024, time.March, 13), stay.StatusCancelled),
	}

	g := Build(march, bookings, nil, Options{})

	if len(g.Capsules) != 0 {
		t.Errorf("expected no capsules for cancelled booking, got %d", len(g.Capsules))
	}
	if got := g.Cells[5+10-1].Status; got != DayAvailable {
		t.Errorf("expected day 10 available, got %q", got)
	}
}

func TestBuildMarksToday(t *testing.T) {
	g := Build(march, nil, nil, Options{Today: daterange.Date(2024, time.March, 11)})

	for _, c := range g.Cells {
		if c == nil {
			continue
		}
		if c.Day == 11 && !c.Today {
			t.Error("expected day 11 marked today")
		}
		if c.Day != 11 && c.Today {
			t.Errorf("day %d wrongly marked today", c.Day)
		}
	}
}

func TestBuildCheckInWinsOverCheckOutOnTurnoverDay(t *testing.T) {
	bookings := []stay.Booking{
		booking("out", daterange.Date(2024, time.March, 8), daterange.Date(2024, time.March, 10), stay.StatusCheckedOut),
		booking("in", daterange.Date(2024, time.March, 10), daterange.Date(2024, time.March, 12), stay.StatusConfirmed),
	}

	g := Build(march, bookings, nil, Options{})

	if got := g.Cells[5+10-1].Status; got != DayCheckIn {
		t.Errorf("expected turnover day to read check_in, got %q", got)
	}
}

func TestBuildDayOverridesFromCalendarEndpoint(t *testing.T) {
	g := Build(march, nil, nil, Options{DayOverrides: map[int]DayStatus{4: DayBlocked, 99: DayBooked}})

	if got := g.Cells[5+4-1].Status; got != DayBlocked {
		t.Errorf("expected override applied, got %q", got)
	}
}
