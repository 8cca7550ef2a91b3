package finance

import (
	"context"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/queries"
	domainfinance "stayboard/internal/domain/finance"
)

const breakdownKey = "finance.breakdown"

// BreakdownQuery carries the manually entered booking components from the
// OTA entry form.
type BreakdownQuery struct {
	Input domainfinance.BreakdownInput
}

func (q BreakdownQuery) Key() string { return breakdownKey }

// BreakdownHandler is a thin shim over the pure calculator: it always
// computes, and marks the result final only when validation passes.
type BreakdownHandler struct{}

func (h *BreakdownHandler) Handle(_ context.Context, q BreakdownQuery) (dto.FinancialBreakdown, error) {
	result := domainfinance.Compute(q.Input)
	final := q.Input.Validate() == nil
	return dto.MapFinancialBreakdown(result, final), nil
}

var _ queries.Handler[BreakdownQuery, dto.FinancialBreakdown] = (*BreakdownHandler)(nil)
