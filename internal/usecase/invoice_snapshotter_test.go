package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"omis_backend/internal/domain/entities"
	mock_interfaces "omis_backend/internal/usecase/interfaces/mocks"
)

func TestInvoiceSnapshotter_Snapshot(t *testing.T) {
	verified := true
	order := entities.Order{
		ID:        "order-1",
		ContactID: "contact-1",
		VATStatus: entities.VATStatusTradeArea, VATNumber: "BR123", VATVerified: &verified,
		NetCost: 2167, SubtotalCost: 2067, VATCost: 0, TotalCost: 2067,
		BillingAddress:     entities.Address{Line1: "1 Main St", Town: "Springfield"},
		BillingContactName: "Accounts Payable",
	}

	t.Run("copies billing and price fields into an immutable snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)

		s := invoiceSnapshotter{
			store:      store,
			randString: fixedRandString("0123456789"),
			now:        func() time.Time { return time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC) },
		}

		store.EXPECT().InvoiceNumberExists(gomock.Any(), "0123456789").Return(false, nil)

		inv, err := s.Snapshot(context.Background(), order)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if inv.ID == "" || inv.OrderID != "order-1" {
			t.Fatalf("unexpected identity: %+v", inv)
		}
		if inv.InvoiceNumber != "0123456789" {
			t.Fatalf("unexpected invoice number: %q", inv.InvoiceNumber)
		}
		// 30-day payment term from the snapshot date.
		if !inv.PaymentDueDate.Equal(time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected due date: %v", inv.PaymentDueDate)
		}
		if inv.BillingAddress != order.BillingAddress || inv.BillingContactName != "Accounts Payable" {
			t.Fatalf("billing snapshot mismatch: %+v", inv)
		}
		if inv.VATStatus != order.VATStatus || inv.VATNumber != "BR123" || inv.VATVerified == nil || !*inv.VATVerified {
			t.Fatalf("VAT snapshot mismatch: %+v", inv)
		}
		if inv.NetCost != 2167 || inv.SubtotalCost != 2067 || inv.VATCost != 0 || inv.TotalCost != 2067 {
			t.Fatalf("price snapshot mismatch: %+v", inv)
		}
		if inv.ContactReference != "contact-1" {
			t.Fatalf("unexpected contact reference: %q", inv.ContactReference)
		}
	})

	t.Run("invoice number collisions exhaust", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)

		s := invoiceSnapshotter{
			store:      store,
			randString: fixedRandString("0123456789"),
			now:        time.Now,
		}

		store.EXPECT().InvoiceNumberExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxAllocationAttempts)

		_, err := s.Snapshot(context.Background(), order)
		if !errors.Is(err, entities.ErrAllocationExhausted) {
			t.Fatalf("expected ErrAllocationExhausted, got %v", err)
		}
	})
}
