package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omis_backend/internal/domain/entities"
)

func boolPtr(b bool) *bool { return &b }

func TestVATApplies(t *testing.T) {
	tests := []struct {
		name     string
		status   entities.VATStatus
		verified *bool
		applies  bool
		wantErr  bool
	}{
		{"domestic, verified unset", entities.VATStatusDomestic, nil, true, false},
		{"domestic, verified true", entities.VATStatusDomestic, boolPtr(true), true, false},
		{"domestic, verified false", entities.VATStatusDomestic, boolPtr(false), true, false},
		{"outside trade area, verified unset", entities.VATStatusOutsideTradeArea, nil, false, false},
		{"outside trade area, verified true", entities.VATStatusOutsideTradeArea, boolPtr(true), false, false},
		{"trade area, verified true", entities.VATStatusTradeArea, boolPtr(true), false, false},
		{"trade area, verified false", entities.VATStatusTradeArea, boolPtr(false), true, false},
		{"trade area, verified undeclared", entities.VATStatusTradeArea, nil, false, true},
		{"unknown status", entities.VATStatus("zero_rated"), nil, false, true},
		{"empty status", entities.VATStatus(""), boolPtr(true), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applies, err := VATApplies(tt.status, tt.verified)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPreconditionsNotMet)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.applies, applies)
		})
	}
}

func TestCalculate(t *testing.T) {
	vat := decimal.RequireFromString("19.5")

	t.Run("domestic order with discount", func(t *testing.T) {
		got, err := Calculate(130, 1000, vat, 100, entities.VATStatusDomestic, nil)
		require.NoError(t, err)

		// 130 min at 1000/h -> 2166.67 rounds to 2167.
		assert.Equal(t, entities.Pricing{
			NetCost:      2167,
			SubtotalCost: 2067,
			VATCost:      403,
			TotalCost:    2470,
		}, got)
	})

	t.Run("outside trade area pays no VAT", func(t *testing.T) {
		got, err := Calculate(130, 1000, vat, 100, entities.VATStatusOutsideTradeArea, nil)
		require.NoError(t, err)

		assert.Equal(t, entities.Pricing{
			NetCost:      2167,
			SubtotalCost: 2067,
			VATCost:      0,
			TotalCost:    2067,
		}, got)
	})

	t.Run("zero minutes short-circuits before VAT checks", func(t *testing.T) {
		// Incomplete VAT fields must not matter when there is no time.
		got, err := Calculate(0, 1000, vat, 100, entities.VATStatusTradeArea, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.Pricing{}, got)
	})

	t.Run("incomplete VAT fields fail with zero breakdown", func(t *testing.T) {
		got, err := Calculate(60, 1000, vat, 0, entities.VATStatusTradeArea, nil)
		require.ErrorIs(t, err, ErrPreconditionsNotMet)
		assert.Equal(t, entities.Pricing{}, got)
	})

	t.Run("discount larger than net clamps subtotal to zero", func(t *testing.T) {
		got, err := Calculate(60, 1000, vat, 5000, entities.VATStatusDomestic, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1000), got.NetCost)
		assert.Equal(t, int64(0), got.SubtotalCost)
		assert.Equal(t, int64(0), got.VATCost)
		assert.Equal(t, int64(0), got.TotalCost)
	})

	t.Run("net cost rounds half away from zero", func(t *testing.T) {
		// 30 min at 1001/h -> 500.5 rounds to 501.
		got, err := Calculate(30, 1001, decimal.Zero, 0, entities.VATStatusOutsideTradeArea, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(501), got.NetCost)
	})

	t.Run("recompute is idempotent", func(t *testing.T) {
		first, err := Calculate(130, 1000, vat, 100, entities.VATStatusDomestic, nil)
		require.NoError(t, err)
		second, err := Calculate(130, 1000, vat, 100, entities.VATStatusDomestic, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("breakdown invariants hold across inputs", func(t *testing.T) {
		cases := []struct {
			minutes  int64
			rate     int64
			discount int64
			status   entities.VATStatus
		}{
			{1, 1, 0, entities.VATStatusDomestic},
			{59, 999, 10, entities.VATStatusDomestic},
			{60, 1000, 1000, entities.VATStatusDomestic},
			{121, 2500, 0, entities.VATStatusOutsideTradeArea},
			{100000, 12345, 99999, entities.VATStatusDomestic},
		}
		for _, c := range cases {
			got, err := Calculate(c.minutes, c.rate, vat, c.discount, c.status, nil)
			require.NoError(t, err)
			assert.Equal(t, got.SubtotalCost+got.VATCost, got.TotalCost)
			assert.GreaterOrEqual(t, got.SubtotalCost, int64(0))
			expectedSubtotal := got.NetCost - c.discount
			if expectedSubtotal < 0 {
				expectedSubtotal = 0
			}
			assert.Equal(t, expectedSubtotal, got.SubtotalCost)
		}
	})
}

func TestCalculateUnknownStatusIsNotHardFailure(t *testing.T) {
	_, err := Calculate(60, 1000, decimal.Zero, 0, entities.VATStatus("intra_group"), nil)
	if !errors.Is(err, ErrPreconditionsNotMet) {
		t.Fatalf("expected ErrPreconditionsNotMet, got %v", err)
	}
}
