package entities

import "time"

// PaymentMethod identifies how money was received against an order.

type PaymentMethod string

const (
	PaymentMethodBACS   PaymentMethod = "bacs"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodManual PaymentMethod = "manual"
)

// Payment records money received against an order. Payments are created
// only by the mark-as-paid transition, which requires the sum of amounts to
// cover the order's total cost.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`

	Amount     int64         `json:"amount"` // minor currency units
	Method     PaymentMethod `json:"method"`
	ReceivedOn time.Time     `json:"received_on"`

	CreatedAt time.Time `json:"created_at"`
}
