// Package pricing computes order price breakdowns. Everything here is pure:
// no store access, no clock, no side effects, so a recompute may run any
// number of times and always yields the same breakdown for the same inputs.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"omis_backend/internal/domain/entities"
)

// ErrPreconditionsNotMet means the VAT fields are incomplete or
// inconsistent, so no price can be computed yet. Callers must treat it as
// "cannot price yet" and keep a zero breakdown, not as a hard failure.
var ErrPreconditionsNotMet = errors.New("pricing preconditions not met")

var (
	minutesPerHour = decimal.NewFromInt(60)
	oneHundred     = decimal.NewFromInt(100)
)

// VATApplies evaluates the VAT rule table for an order's VAT fields:
//
//	domestic           -> VAT always applies
//	outside_trade_area -> VAT never applies
//	trade_area         -> VAT applies unless the VAT number is verified
//
// Any other combination (unknown status, or trade_area with the verified
// flag undeclared) fails with ErrPreconditionsNotMet.
func VATApplies(status entities.VATStatus, verified *bool) (bool, error) {
	switch status {
	case entities.VATStatusDomestic:
		return true, nil
	case entities.VATStatusOutsideTradeArea:
		return false, nil
	case entities.VATStatusTradeArea:
		if verified == nil {
			return false, ErrPreconditionsNotMet
		}
		return !*verified, nil
	default:
		return false, ErrPreconditionsNotMet
	}
}

// Calculate turns assignee time, rate, discount and VAT status into the
// four price fields, all in integer minor currency units.
//
// Rounding policy: half away from zero, applied once per intermediate field
// (net cost and VAT cost); repeated recomputes cannot drift.
//
// Zero estimated minutes short-circuits to an all-zero breakdown before any
// rate or VAT handling, so unpriced draft orders never fail here.
func Calculate(
	estimatedMinutes int64,
	hourlyRate int64,
	vatPercent decimal.Decimal,
	discountValue int64,
	vatStatus entities.VATStatus,
	vatVerified *bool,
) (entities.Pricing, error) {
	if estimatedMinutes == 0 {
		return entities.Pricing{}, nil
	}

	applyVAT, err := VATApplies(vatStatus, vatVerified)
	if err != nil {
		return entities.Pricing{}, err
	}

	netCost := decimal.NewFromInt(estimatedMinutes).
		Div(minutesPerHour).
		Mul(decimal.NewFromInt(hourlyRate)).
		Round(0).
		IntPart()

	subtotalCost := netCost - discountValue
	if subtotalCost < 0 {
		subtotalCost = 0
	}

	var vatCost int64
	if applyVAT {
		vatCost = vatPercent.
			Mul(decimal.NewFromInt(subtotalCost)).
			Div(oneHundred).
			Round(0).
			IntPart()
	}

	return entities.Pricing{
		NetCost:      netCost,
		SubtotalCost: subtotalCost,
		VATCost:      vatCost,
		TotalCost:    subtotalCost + vatCost,
	}, nil
}
