package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/queries"
	"stayboard/internal/app/snapshot"
	"stayboard/internal/domain/calendargrid"
	"stayboard/internal/domain/timeline"
)

const exportMonthKey = "reports.export_month"

var ErrUploaderUnavailable = errors.New("reports: uploader not configured")

// Uploader stores a serialized report and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
}

// EventPublisher announces a finished export on the broker. Optional.
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte, headers map[string]string) error
}

// ExportMonthQuery produces the month summary document and uploads it.
type ExportMonthQuery struct {
	Year  int
	Month time.Month
}

func (q ExportMonthQuery) Key() string { return exportMonthKey }

type ExportMonthHandler struct {
	Source    snapshot.Source
	Uploader  Uploader
	Publisher EventPublisher
	Topic     string
	Now       func() time.Time
	Logger    *slog.Logger
}

func (h *ExportMonthHandler) Handle(ctx context.Context, q ExportMonthQuery) (dto.ReportExport, error) {
	if h.Uploader == nil {
		return dto.ReportExport{}, ErrUploaderUnavailable
	}
	month := calendargrid.Month{Year: q.Year, Month: q.Month}
	monthStart, monthEnd := month.Span()

	bookings, err := h.Source.Bookings(ctx, monthStart, monthEnd)
	if err != nil {
		return dto.ReportExport{}, err
	}
	blocked, err := h.Source.BlockedDates(ctx, monthStart, monthEnd)
	if err != nil {
		return dto.ReportExport{}, err
	}

	now := h.now()
	trend := dto.MapSeries(timeline.MonthlySeries(bookings, monthStart, 1))
	grid := dto.MapMonthGrid(calendargrid.Build(month, bookings, blocked, calendargrid.Options{Today: now}))

	report := dto.MonthReport{
		Year:        q.Year,
		Month:       int(q.Month),
		Trend:       trend.Points[0],
		Grid:        grid,
		GeneratedAt: now,
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return dto.ReportExport{}, fmt.Errorf("reports: encode month report: %w", err)
	}

	key := fmt.Sprintf("reports/%04d/%02d-%s.json", q.Year, int(q.Month), uuid.NewString())
	url, err := h.Uploader.Upload(ctx, key, bytes.NewReader(payload), "application/json")
	if err != nil {
		return dto.ReportExport{}, fmt.Errorf("reports: upload month report: %w", err)
	}

	export := dto.ReportExport{Key: key, URL: url, GeneratedAt: now}
	if h.Publisher != nil && h.Topic != "" {
		event, _ := json.Marshal(export)
		if err := h.Publisher.Publish(ctx, h.Topic, key, event, nil); err != nil && h.Logger != nil {
			h.Logger.Warn("report export event publish failed", "error", err, "key", key)
		}
	}
	return export, nil
}

func (h *ExportMonthHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

var _ queries.Handler[ExportMonthQuery, dto.ReportExport] = (*ExportMonthHandler)(nil)
