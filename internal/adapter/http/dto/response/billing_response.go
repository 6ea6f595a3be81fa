package response

import (
	"time"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"
)

type QuoteResponse struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Reference string `json:"reference"`
	Content   string `json:"content"`

	ExpiresOn time.Time `json:"expires_on"`

	AcceptedOn   *time.Time `json:"accepted_on"`
	AcceptedByID string     `json:"accepted_by_id,omitempty"`

	CancelledOn   *time.Time `json:"cancelled_on"`
	CancelledByID string     `json:"cancelled_by_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func QuoteFromEntity(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		OrderID:       q.OrderID,
		Reference:     q.Reference,
		Content:       q.Content,
		ExpiresOn:     q.ExpiresOn,
		AcceptedOn:    q.AcceptedOn,
		AcceptedByID:  q.AcceptedByID,
		CancelledOn:   q.CancelledOn,
		CancelledByID: q.CancelledByID,
		CreatedAt:     q.CreatedAt,
	}
}

type InvoiceResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"order_id"`
	InvoiceNumber string `json:"invoice_number"`

	PaymentDueDate time.Time `json:"payment_due_date"`

	BillingAddress     AddressResponse `json:"billing_address"`
	BillingContactName string          `json:"billing_contact_name"`

	VATStatus   string `json:"vat_status"`
	VATNumber   string `json:"vat_number"`
	VATVerified *bool  `json:"vat_verified"`

	NetCost      int64 `json:"net_cost"`
	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`

	ContactReference string    `json:"contact_reference"`
	CreatedAt        time.Time `json:"created_at"`
}

func InvoiceFromEntity(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                 i.ID,
		OrderID:            i.OrderID,
		InvoiceNumber:      i.InvoiceNumber,
		PaymentDueDate:     i.PaymentDueDate,
		BillingAddress:     addressFromEntity(i.BillingAddress),
		BillingContactName: i.BillingContactName,
		VATStatus:          string(i.VATStatus),
		VATNumber:          i.VATNumber,
		VATVerified:        i.VATVerified,
		NetCost:            i.NetCost,
		SubtotalCost:       i.SubtotalCost,
		VATCost:            i.VATCost,
		TotalCost:          i.TotalCost,
		ContactReference:   i.ContactReference,
		CreatedAt:          i.CreatedAt,
	}
}

func InvoicesFromEntities(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, InvoiceFromEntity(i))
	}
	return out
}

type PaymentResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Amount     int64     `json:"amount"`
	Method     string    `json:"method"`
	ReceivedOn time.Time `json:"received_on"`
	CreatedAt  time.Time `json:"created_at"`
}

func PaymentFromEntity(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Amount:     p.Amount,
		Method:     string(p.Method),
		ReceivedOn: p.ReceivedOn,
		CreatedAt:  p.CreatedAt,
	}
}

func PaymentsFromEntities(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentFromEntity(p))
	}
	return out
}

// TransitionResponse is the body returned by every state-machine endpoint:
// the updated order plus whatever rows the transition produced.
type TransitionResponse struct {
	Order    OrderResponse     `json:"order"`
	Quote    *QuoteResponse    `json:"quote,omitempty"`
	Invoice  *InvoiceResponse  `json:"invoice,omitempty"`
	Payments []PaymentResponse `json:"payments,omitempty"`
}

func TransitionFromResult(res usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{Order: OrderFromEntity(res.Order)}
	if res.Quote != nil {
		q := QuoteFromEntity(*res.Quote)
		out.Quote = &q
	}
	if res.Invoice != nil {
		i := InvoiceFromEntity(*res.Invoice)
		out.Invoice = &i
	}
	if len(res.Payments) > 0 {
		out.Payments = PaymentsFromEntities(res.Payments)
	}
	return out
}
