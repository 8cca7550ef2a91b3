package dto

import "stayboard/internal/domain/finance"

type FinancialBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	GuestPays      float64 `json:"guest_pays"`
	CommissionBase float64 `json:"commission_base"`
	OTACommission  float64 `json:"ota_commission"`
	NetToProperty  float64 `json:"net_to_property"`
	BalanceDue     float64 `json:"balance_due"`
	Final          bool    `json:"final"`
}

// MapFinancialBreakdown rounds for display; final marks an entry the form
// may persist (all required fields present and in range).
func MapFinancialBreakdown(b finance.Breakdown, final bool) FinancialBreakdown {
	return FinancialBreakdown{
		Subtotal:       Round2(b.Subtotal),
		GuestPays:      Round2(b.GuestPays),
		CommissionBase: Round2(b.CommissionBase),
		OTACommission:  Round2(b.OTACommission),
		NetToProperty:  Round2(b.NetToProperty),
		BalanceDue:     Round2(b.BalanceDue),
		Final:          final,
	}
}
