package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/domain/events"
	"omis_backend/internal/usecase/interfaces"
)

// PaymentInput is one payment submitted with mark-as-paid.
type PaymentInput struct {
	Amount     int64
	Method     entities.PaymentMethod
	ReceivedOn time.Time
}

// TransitionResult is what a successful transition hands back to the host:
// the updated aggregate, whatever rows the transition created, and the
// outbound events the host should dispatch. The engine never dispatches
// events itself.
type TransitionResult struct {
	Order    entities.Order
	Quote    *entities.Quote
	Invoice  *entities.Invoice
	Payments []entities.Payment
	Events   []events.Event
}

// ITransitionUseCase is the order state machine. Every method checks the
// allowed-from table first and fails with a conflict error naming the
// current and required states; every multi-row effect goes through one
// atomic store commit.
type ITransitionUseCase interface {
	GenerateQuote(ctx context.Context, orderID, actorID string) (TransitionResult, error)
	Reopen(ctx context.Context, orderID, actorID string) (TransitionResult, error)
	AcceptQuote(ctx context.Context, orderID, actorID string) (TransitionResult, error)
	UpdateInvoiceDetails(ctx context.Context, orderID string) (TransitionResult, error)
	MarkAsPaid(ctx context.Context, orderID string, payments []PaymentInput) (TransitionResult, error)
	Complete(ctx context.Context, orderID, actorID string) (TransitionResult, error)
	Cancel(ctx context.Context, orderID, actorID, reason string, force bool) (TransitionResult, error)
}

type TransitionUseCase struct {
	store    interfaces.IOrderStore
	quotes   quoteGenerator
	invoices invoiceSnapshotter
	logger   *zap.Logger
	now      func() time.Time
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(
	store interfaces.IOrderStore,
	rates interfaces.IHourlyRateRepository,
	companies interfaces.ICompanyDirectory,
	logger *zap.Logger,
) *TransitionUseCase {
	return &TransitionUseCase{
		store: store,
		quotes: quoteGenerator{
			store:      store,
			companies:  companies,
			pricing:    pricingUpdater{rates: rates},
			randString: cryptoRandString,
			now:        time.Now,
		},
		invoices: invoiceSnapshotter{
			store:      store,
			randString: cryptoRandString,
			now:        time.Now,
		},
		logger: logger,
		now:    time.Now,
	}
}

func (u *TransitionUseCase) GenerateQuote(ctx context.Context, orderID, actorID string) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o, entities.OrderStatusDraft); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	quote, err := u.quotes.Generate(ctx, &o)
	if err != nil {
		return TransitionResult{}, err
	}

	now := u.now().UTC()
	o.Status = entities.OrderStatusQuoteAwaitingAcceptance
	o.CurrentQuoteID = quote.ID
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		NewQuote:       &quote,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("quote generated",
		zap.String("order_id", o.ID),
		zap.String("quote_reference", quote.Reference),
		zap.String("actor_id", actorID),
	)
	return TransitionResult{
		Order: o,
		Quote: &quote,
		Events: []events.Event{
			events.New(events.OrderChanged, o.ID, now),
			events.New(events.QuoteGenerated, o.ID, now),
		},
	}, nil
}

func (u *TransitionUseCase) Reopen(ctx context.Context, orderID, actorID string) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o,
		entities.OrderStatusQuoteAwaitingAcceptance,
		entities.OrderStatusQuoteAccepted,
	); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status
	now := u.now().UTC()

	var cancelledQuote *entities.Quote
	if o.CurrentQuoteID != "" {
		quote, err := u.store.GetQuoteByID(ctx, o.CurrentQuoteID)
		if err != nil {
			return TransitionResult{}, err
		}
		if quote.ID != "" && quote.IsActive() {
			quote.CancelledOn = &now
			quote.CancelledByID = actorID
			cancelledQuote = &quote
		}
	}

	o.Status = entities.OrderStatusDraft
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		UpdatedQuote:   cancelledQuote,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("order reopened",
		zap.String("order_id", o.ID),
		zap.String("actor_id", actorID),
	)
	return TransitionResult{
		Order:  o,
		Quote:  cancelledQuote,
		Events: []events.Event{events.New(events.OrderChanged, o.ID, now)},
	}, nil
}

func (u *TransitionUseCase) AcceptQuote(ctx context.Context, orderID, actorID string) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o, entities.OrderStatusQuoteAwaitingAcceptance); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	quote, err := u.store.GetQuoteByID(ctx, o.CurrentQuoteID)
	if err != nil {
		return TransitionResult{}, err
	}
	if quote.ID == "" || !quote.IsActive() {
		return TransitionResult{}, &entities.ConflictError{
			Message: "there is no active quote to accept",
			Current: o.Status,
		}
	}

	now := u.now().UTC()
	quote.AcceptedOn = &now
	quote.AcceptedByID = actorID

	invoice, err := u.invoices.Snapshot(ctx, o)
	if err != nil {
		return TransitionResult{}, err
	}

	o.Status = entities.OrderStatusQuoteAccepted
	o.CurrentInvoiceID = invoice.ID
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		UpdatedQuote:   &quote,
		NewInvoice:     &invoice,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("quote accepted",
		zap.String("order_id", o.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("actor_id", actorID),
	)
	return TransitionResult{
		Order:   o,
		Quote:   &quote,
		Invoice: &invoice,
		Events: []events.Event{
			events.New(events.OrderChanged, o.ID, now),
			events.New(events.InvoiceGenerated, o.ID, now),
		},
	}, nil
}

func (u *TransitionUseCase) UpdateInvoiceDetails(ctx context.Context, orderID string) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o, entities.OrderStatusQuoteAccepted); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	invoice, err := u.invoices.Snapshot(ctx, o)
	if err != nil {
		return TransitionResult{}, err
	}

	now := u.now().UTC()
	o.CurrentInvoiceID = invoice.ID
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		NewInvoice:     &invoice,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("invoice details refreshed",
		zap.String("order_id", o.ID),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return TransitionResult{
		Order:   o,
		Invoice: &invoice,
		Events: []events.Event{
			events.New(events.OrderChanged, o.ID, now),
			events.New(events.InvoiceGenerated, o.ID, now),
		},
	}, nil
}

func (u *TransitionUseCase) MarkAsPaid(ctx context.Context, orderID string, payments []PaymentInput) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o, entities.OrderStatusQuoteAccepted); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	if len(payments) == 0 {
		return TransitionResult{}, entities.NewValidationError("payments", "at least one payment is required")
	}

	var total int64
	var latest time.Time
	now := u.now().UTC()
	rows := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Amount <= 0 {
			return TransitionResult{}, entities.NewValidationError("amount", "must be greater than zero")
		}
		if p.ReceivedOn.IsZero() {
			return TransitionResult{}, entities.NewValidationError("received_on", "this field is required")
		}
		total += p.Amount
		if p.ReceivedOn.After(latest) {
			latest = p.ReceivedOn
		}
		rows = append(rows, entities.Payment{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			Amount:     p.Amount,
			Method:     p.Method,
			ReceivedOn: p.ReceivedOn,
			CreatedAt:  now,
		})
	}
	if total < o.TotalCost {
		return TransitionResult{}, entities.NewValidationError("amount",
			fmt.Sprintf("the amounts do not cover the order total (%d < %d)", total, o.TotalCost))
	}

	o.Status = entities.OrderStatusPaid
	o.PaidOn = &latest
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		NewPayments:    rows,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("order marked as paid",
		zap.String("order_id", o.ID),
		zap.Int64("amount_received", total),
		zap.Int("payments", len(rows)),
	)
	return TransitionResult{
		Order:    o,
		Payments: rows,
		Events: []events.Event{
			events.New(events.OrderChanged, o.ID, now),
			events.New(events.PaymentRecorded, o.ID, now),
		},
	}, nil
}

func (u *TransitionUseCase) Complete(ctx context.Context, orderID, actorID string) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := requireStatus(o, entities.OrderStatusPaid); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	for _, a := range o.Assignees {
		if a.ActualTime == nil {
			return TransitionResult{}, entities.NewValidationError("assignees",
				fmt.Sprintf("assignee %q has no actual time recorded", a.AdviserID))
		}
	}

	now := u.now().UTC()
	o.Status = entities.OrderStatusComplete
	o.CompletedOn = &now
	o.CompletedByID = actorID
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("order completed",
		zap.String("order_id", o.ID),
		zap.String("actor_id", actorID),
	)
	return TransitionResult{
		Order:  o,
		Events: []events.Event{events.New(events.OrderChanged, o.ID, now)},
	}, nil
}

func (u *TransitionUseCase) Cancel(ctx context.Context, orderID, actorID, reason string, force bool) (TransitionResult, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return TransitionResult{}, err
	}

	allowed := []entities.OrderStatus{
		entities.OrderStatusDraft,
		entities.OrderStatusQuoteAwaitingAcceptance,
	}
	if force {
		allowed = append(allowed,
			entities.OrderStatusQuoteAccepted,
			entities.OrderStatusPaid,
		)
	}
	if err := requireStatus(o, allowed...); err != nil {
		return TransitionResult{}, err
	}
	previous := o.Status

	if reason == "" {
		return TransitionResult{}, entities.NewValidationError("cancellation_reason", "this field is required")
	}

	now := u.now().UTC()

	var cancelledQuote *entities.Quote
	if o.CurrentQuoteID != "" {
		quote, err := u.store.GetQuoteByID(ctx, o.CurrentQuoteID)
		if err != nil {
			return TransitionResult{}, err
		}
		if quote.ID != "" && quote.IsActive() {
			quote.CancelledOn = &now
			quote.CancelledByID = actorID
			cancelledQuote = &quote
		}
	}

	o.Status = entities.OrderStatusCancelled
	o.CancelledOn = &now
	o.CancelledByID = actorID
	o.CancellationReason = reason
	o.UpdatedAt = now

	if err := u.commit(ctx, interfaces.TransitionWrite{
		Order:          o,
		ExpectedStatus: previous,
		UpdatedQuote:   cancelledQuote,
	}); err != nil {
		return TransitionResult{}, err
	}

	u.logger.Info("order cancelled",
		zap.String("order_id", o.ID),
		zap.String("actor_id", actorID),
		zap.Bool("forced", force),
	)
	return TransitionResult{
		Order:  o,
		Quote:  cancelledQuote,
		Events: []events.Event{events.New(events.OrderChanged, o.ID, now)},
	}, nil
}

func (u *TransitionUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *TransitionUseCase) commit(ctx context.Context, w interfaces.TransitionWrite) error {
	if err := u.store.CommitTransition(ctx, w); err != nil {
		return fmt.Errorf("commit transition: %w", err)
	}
	return nil
}

// requireStatus is the single allowed-state guard every transition runs
// first.
func requireStatus(o entities.Order, allowed ...entities.OrderStatus) error {
	for _, s := range allowed {
		if o.Status == s {
			return nil
		}
	}
	return entities.NewStatusConflictError(o.Status, allowed...)
}
