package dto

import (
	"time"

	"stayboard/internal/domain/calendargrid"
)

// CalendarCell is one day of the month grid. Padding positions render as
// JSON nulls so weeks always come in rows of seven.
type CalendarCell struct {
	Day    int       `json:"day"`
	Date   time.Time `json:"date"`
	Today  bool      `json:"is_today"`
	Status string    `json:"status"`
}

type CalendarCapsule struct {
	SourceID     string  `json:"source_id"`
	Kind         string  `json:"kind"`
	Label        string  `json:"label"`
	StartDay     int     `json:"start_day"`
	EndDay       int     `json:"end_day"`
	Row          int     `json:"row"`
	StartCol     int     `json:"start_col"`
	EndCol       int     `json:"end_col"`
	Nights       int     `json:"nights"`
	Color        string  `json:"color"`
	LeftInset    float64 `json:"left_inset"`
	RightInset   float64 `json:"right_inset"`
	SpansRows    bool    `json:"spans_rows"`
	Continuation bool    `json:"continuation,omitempty"`
}

type MonthGrid struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Weeks    int               `json:"weeks"`
	Cells    []*CalendarCell   `json:"cells"`
	Capsules []CalendarCapsule `json:"capsules"`
}

func MapMonthGrid(g calendargrid.Grid) MonthGrid {
	cells := make([]*CalendarCell, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c == nil {
			cells = append(cells, nil)
			continue
		}
		cells = append(cells, &CalendarCell{
			Day:    c.Day,
			Date:   c.Date,
			Today:  c.Today,
			Status: string(c.Status),
		})
	}
	capsules := make([]CalendarCapsule, 0, len(g.Capsules))
	for _, c := range g.Capsules {
		capsules = append(capsules, CalendarCapsule{
			SourceID:     c.SourceID,
			Kind:         string(c.Kind),
			Label:        c.Label,
			StartDay:     c.StartDay,
			EndDay:       c.EndDay,
			Row:          c.Row,
			StartCol:     c.StartCol,
			EndCol:       c.EndCol,
			Nights:       c.Nights,
			Color:        c.Color,
			LeftInset:    c.LeftInset,
			RightInset:   c.RightInset,
			SpansRows:    c.SpansRows,
			Continuation: c.Continuation,
		})
	}
	return MonthGrid{
		Year:     g.Month.Year,
		Month:    int(g.Month.Month),
		Weeks:    g.Weeks,
		Cells:    cells,
		Capsules: capsules,
	}
}
