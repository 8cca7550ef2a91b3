package dto

import "time"

// MonthReport is the serialized month summary placed in object storage.
type MonthReport struct {
	Year        int         `json:"year"`
	Month       int         `json:"month"`
	Trend       SeriesPoint `json:"trend"`
	Grid        MonthGrid   `json:"grid"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// ReportExport points at an uploaded month report.
type ReportExport struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generated_at"`
}
