package interfaces

import (
	"context"

	"omis_backend/internal/domain/entities"
)

// TransitionWrite is the set of rows one state-machine transition touches.
// The store must commit everything in it atomically: either the order
// update, quote/invoice creation, quote terminal-timestamp update and
// payment rows all land, or none of them do.
type TransitionWrite struct {
	// Order carries the mutated aggregate root. ExpectedStatus is the
	// status the stored order must still have at commit time; a mismatch
	// fails the whole write so a lost race never interleaves.
	Order          entities.Order
	ExpectedStatus entities.OrderStatus

	NewQuote     *entities.Quote
	UpdatedQuote *entities.Quote
	NewInvoice   *entities.Invoice
	NewPayments  []entities.Payment
}

// IOrderStore abstracts the transactional persistence the order engine runs
// against. Reads return zero-value entities (ID == "") when nothing
// matches.
//
// Concurrency contract: the host must serialise transitions per order; the
// store's conditional commit is a backstop, not a scheduler.
type IOrderStore interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByPublicToken(ctx context.Context, token string) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)

	SaveAssignees(ctx context.Context, orderID string, assignees []entities.OrderAssignee, removedAdviserIDs []string) error
	SaveSubscribers(ctx context.Context, orderID string, subscribers []entities.OrderSubscriber, removedAdviserIDs []string) error

	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	GetInvoiceByID(ctx context.Context, id string) (entities.Invoice, error)
	ListInvoicesByOrderID(ctx context.Context, orderID string) ([]entities.Invoice, error)
	ListPaymentsByOrderID(ctx context.Context, orderID string) ([]entities.Payment, error)

	CommitTransition(ctx context.Context, w TransitionWrite) error

	OrderReferenceExists(ctx context.Context, reference string) (bool, error)
	PublicTokenExists(ctx context.Context, token string) (bool, error)
	QuoteReferenceExists(ctx context.Context, reference string) (bool, error)
	InvoiceNumberExists(ctx context.Context, number string) (bool, error)
}
