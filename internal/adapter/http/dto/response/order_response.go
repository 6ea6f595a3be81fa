package response

import (
	"time"

	"omis_backend/internal/domain/entities"
)

// AddressResponse mirrors the stored billing-address snapshot.
type AddressResponse struct {
	Line1    string `json:"line_1"`
	Line2    string `json:"line_2"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

func addressFromEntity(a entities.Address) AddressResponse {
	return AddressResponse{
		Line1:    a.Line1,
		Line2:    a.Line2,
		Town:     a.Town,
		County:   a.County,
		Postcode: a.Postcode,
		Country:  a.Country,
	}
}

// OrderResponse is the full order aggregate as returned to callers.
type OrderResponse struct {
	ID          string `json:"id"`
	Reference   string `json:"reference"`
	PublicToken string `json:"public_token"`
	Status      string `json:"status"`

	CompanyID       string `json:"company_id"`
	ContactID       string `json:"contact_id"`
	PrimaryMarketID string `json:"primary_market_id"`

	ServiceTypes []string   `json:"service_types"`
	Description  string     `json:"description"`
	DeliveryDate *time.Time `json:"delivery_date"`

	HourlyRateID  string `json:"hourly_rate_id"`
	DiscountValue int64  `json:"discount_value"`
	VATStatus     string `json:"vat_status"`
	VATNumber     string `json:"vat_number"`
	VATVerified   *bool  `json:"vat_verified"`

	NetCost      int64 `json:"net_cost"`
	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`

	BillingAddress     AddressResponse `json:"billing_address"`
	BillingContactName string          `json:"billing_contact_name"`

	CurrentQuoteID   string `json:"current_quote_id,omitempty"`
	CurrentInvoiceID string `json:"current_invoice_id,omitempty"`

	PaidOn             *time.Time `json:"paid_on,omitempty"`
	CompletedOn        *time.Time `json:"completed_on,omitempty"`
	CancelledOn        *time.Time `json:"cancelled_on,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	Assignees   []AssigneeResponse   `json:"assignees"`
	Subscribers []SubscriberResponse `json:"subscribers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func OrderFromEntity(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		PublicToken:        o.PublicToken,
		Status:             string(o.Status),
		CompanyID:          o.CompanyID,
		ContactID:          o.ContactID,
		PrimaryMarketID:    o.PrimaryMarketID,
		ServiceTypes:       o.ServiceTypes,
		Description:        o.Description,
		DeliveryDate:       o.DeliveryDate,
		HourlyRateID:       o.HourlyRateID,
		DiscountValue:      o.DiscountValue,
		VATStatus:          string(o.VATStatus),
		VATNumber:          o.VATNumber,
		VATVerified:        o.VATVerified,
		NetCost:            o.NetCost,
		SubtotalCost:       o.SubtotalCost,
		VATCost:            o.VATCost,
		TotalCost:          o.TotalCost,
		BillingAddress:     addressFromEntity(o.BillingAddress),
		BillingContactName: o.BillingContactName,
		CurrentQuoteID:     o.CurrentQuoteID,
		CurrentInvoiceID:   o.CurrentInvoiceID,
		PaidOn:             o.PaidOn,
		CompletedOn:        o.CompletedOn,
		CancelledOn:        o.CancelledOn,
		CancellationReason: o.CancellationReason,
		Assignees:          AssigneesFromEntities(o.Assignees),
		Subscribers:        SubscribersFromEntities(o.Subscribers),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// PublicOrderResponse is the reduced view served on the unauthenticated
// public-token route. It omits internal identifiers and the adviser ledger.
type PublicOrderResponse struct {
	Reference    string     `json:"reference"`
	Status       string     `json:"status"`
	ServiceTypes []string   `json:"service_types"`
	Description  string     `json:"description"`
	DeliveryDate *time.Time `json:"delivery_date"`

	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`

	BillingAddress     AddressResponse `json:"billing_address"`
	BillingContactName string          `json:"billing_contact_name"`
}

func PublicOrderFromEntity(o entities.Order) PublicOrderResponse {
	return PublicOrderResponse{
		Reference:          o.Reference,
		Status:             string(o.Status),
		ServiceTypes:       o.ServiceTypes,
		Description:        o.Description,
		DeliveryDate:       o.DeliveryDate,
		SubtotalCost:       o.SubtotalCost,
		VATCost:            o.VATCost,
		TotalCost:          o.TotalCost,
		BillingAddress:     addressFromEntity(o.BillingAddress),
		BillingContactName: o.BillingContactName,
	}
}
