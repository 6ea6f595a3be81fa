package entities

import "time"

// Invoice is an immutable billing snapshot taken from the order at quote
// acceptance, and again whenever invoice details are refreshed.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//   - GSI2 (invoice_number-index): invoice_number
//
// The order points at its current invoice only; superseded invoices stay in
// the table as the audit trail and are never relinked or deleted.
type Invoice struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`

	PaymentDueDate time.Time `json:"payment_due_date"`

	BillingAddress     Address `json:"billing_address"`
	BillingContactName string  `json:"billing_contact_name"`

	VATStatus   VATStatus `json:"vat_status"`
	VATNumber   string    `json:"vat_number"`
	VATVerified *bool     `json:"vat_verified"`

	NetCost      int64 `json:"net_cost"`
	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`

	// Free-text contact kept for reconciliation with legacy finance records.
	ContactReference string `json:"contact_reference"`

	CreatedAt time.Time `json:"created_at"`
}
