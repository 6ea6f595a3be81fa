package usecase

import (
	"context"
	"errors"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/domain/pricing"
	"omis_backend/internal/usecase/interfaces"
)

// pricingUpdater recomputes an order's price fields from its assignee time,
// hourly rate, discount and VAT status. It is the single write path for the
// four price fields; nothing else in the engine touches them.
type pricingUpdater struct {
	rates interfaces.IHourlyRateRepository
}

// Refresh recomputes the breakdown and applies it to the order in memory.
// It returns whether anything actually changed, so callers can skip the
// store write when a recompute lands on identical values.
//
// Orders that cannot be priced yet (no rate assigned, or incomplete VAT
// fields) are zeroed rather than failed: a draft is allowed to be
// incomplete, and quote generation validates completeness separately.
func (p pricingUpdater) Refresh(ctx context.Context, o *entities.Order) (bool, error) {
	breakdown := entities.Pricing{}

	minutes := o.TotalEstimatedMinutes()
	if minutes > 0 && o.HourlyRateID != "" {
		rate, err := p.rates.GetByID(ctx, o.HourlyRateID)
		if err != nil {
			return false, err
		}
		if rate.ID != "" {
			breakdown, err = pricing.Calculate(
				minutes, rate.RateValue, rate.VATValue,
				o.DiscountValue, o.VATStatus, o.VATVerified,
			)
			if err != nil && !errors.Is(err, pricing.ErrPreconditionsNotMet) {
				return false, err
			}
		}
	}

	if o.CurrentPricing() == breakdown {
		return false, nil
	}
	o.ApplyPricing(breakdown)
	return true, nil
}
