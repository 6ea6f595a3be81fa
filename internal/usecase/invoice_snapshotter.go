package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"
)

// invoicePaymentTermDays is the standard payment term stamped on every
// invoice snapshot.
const invoicePaymentTermDays = 30

// invoiceSnapshotter copies the order's billing, VAT and price fields into
// a fresh immutable invoice. It runs at quote acceptance and again on every
// invoice-details refresh; superseded invoices stay behind as audit
// history, only the order's current-invoice pointer moves.
type invoiceSnapshotter struct {
	store      interfaces.IOrderStore
	randString randStringFunc
	now        func() time.Time
}

// Snapshot builds the new invoice row. Repointing the order and persisting
// both belong to the state machine's atomic commit.
func (s invoiceSnapshotter) Snapshot(ctx context.Context, o entities.Order) (entities.Invoice, error) {
	number, err := allocateUnique(ctx,
		func() (string, error) { return s.randString(digitAlphabet, invoiceNumberLength) },
		s.store.InvoiceNumberExists,
	)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := s.now().UTC()
	return entities.Invoice{
		ID:                 uuid.NewString(),
		OrderID:            o.ID,
		InvoiceNumber:      number,
		PaymentDueDate:     truncateToDate(now).AddDate(0, 0, invoicePaymentTermDays),
		BillingAddress:     o.BillingAddress,
		BillingContactName: o.BillingContactName,
		VATStatus:          o.VATStatus,
		VATNumber:          o.VATNumber,
		VATVerified:        o.VATVerified,
		NetCost:            o.NetCost,
		SubtotalCost:       o.SubtotalCost,
		VATCost:            o.VATCost,
		TotalCost:          o.TotalCost,
		ContactReference:   o.ContactID,
		CreatedAt:          now,
	}, nil
}
