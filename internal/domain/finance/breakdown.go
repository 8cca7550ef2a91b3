package finance

import "errors"

var (
	ErrCommissionRange = errors.New("finance: commission percent must be between 0 and 100")
	ErrNegativeAmount  = errors.New("finance: monetary components cannot be negative")
)

// BreakdownInput carries the manually entered components of one booking, as
// captured by the OTA entry form.
type BreakdownInput struct {
	RoomPrice         float64
	CleaningFee       float64
	CityTax           float64
	Extras            float64
	AppliedDiscount   float64
	CommissionPercent float64
	PaidAmount        float64
}

// Breakdown is the settlement arithmetic for one booking. Amounts are exact;
// rounding to display precision happens at the presentation boundary.
type Breakdown struct {
	Subtotal       float64
	GuestPays      float64
	CommissionBase float64
	OTACommission  float64
	NetToProperty  float64
	BalanceDue     float64
}

// Compute derives the full settlement from the entered components.
//
// City tax is a pass-through and stays out of the commission base. The
// function computes whatever it is given, negative inputs included; the form
// decides what counts as a final, valid entry via Validate.
func Compute(in BreakdownInput) Breakdown {
	subtotal := in.RoomPrice + in.CleaningFee + in.CityTax + in.Extras
	guestPays := subtotal - in.AppliedDiscount
	commissionBase := in.RoomPrice + in.CleaningFee + in.Extras - in.AppliedDiscount
	otaCommission := commissionBase * in.CommissionPercent / 100
	return Breakdown{
		Subtotal:       subtotal,
		GuestPays:      guestPays,
		CommissionBase: commissionBase,
		OTACommission:  otaCommission,
		NetToProperty:  guestPays - otaCommission,
		BalanceDue:     guestPays - in.PaidAmount,
	}
}

// Validate reports whether the entry may be considered final: commission in
// range, required amounts present and non-negative.
func (in BreakdownInput) Validate() error {
	if in.CommissionPercent < 0 || in.CommissionPercent > 100 {
		return ErrCommissionRange
	}
	for _, v := range []float64{in.RoomPrice, in.CleaningFee, in.CityTax, in.Extras, in.AppliedDiscount, in.PaidAmount} {
		if v < 0 {
			return ErrNegativeAmount
		}
	}
	return nil
}
