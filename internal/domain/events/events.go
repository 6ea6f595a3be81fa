// Package events defines the records the engine hands back to the host
// after a successful transition. The engine never calls downstream
// collaborators (search indexer, audit log, notifications) directly; the
// host dispatches these instead.
package events

import "time"

// Name identifies what happened during a transition.

type Name string

const (
	OrderChanged     Name = "order_changed"
	QuoteGenerated   Name = "quote_generated"
	InvoiceGenerated Name = "invoice_generated"
	PaymentRecorded  Name = "payment_recorded"
)

// Event is a single outbound notification tied to an order.
type Event struct {
	Name       Name      `json:"name"`
	OrderID    string    `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New builds an event stamped with the given time.
func New(name Name, orderID string, at time.Time) Event {
	return Event{Name: name, OrderID: orderID, OccurredAt: at}
}
