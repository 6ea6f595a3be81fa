package entities

import "time"

// Quote is an immutable priced offer generated from an order snapshot.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (reference-index): reference
//
// Immutability: once created, only AcceptedOn and CancelledOn may ever be
// set, each exactly once. A quote is active while it has not been cancelled;
// at most one active quote exists per order.
type Quote struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Reference string `json:"reference"`
	Content   string `json:"content"`

	ExpiresOn time.Time `json:"expires_on"`

	AcceptedOn   *time.Time `json:"accepted_on"`
	AcceptedByID string     `json:"accepted_by_id"`

	CancelledOn   *time.Time `json:"cancelled_on"`
	CancelledByID string     `json:"cancelled_by_id"`

	CreatedAt time.Time `json:"created_at"`
}

// IsActive reports whether the quote has not been cancelled.
func (q Quote) IsActive() bool {
	return q.CancelledOn == nil
}
