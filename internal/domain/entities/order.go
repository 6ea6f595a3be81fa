package entities

import "time"

// OrderStatus represents the lifecycle of a commissioned-services order.
//
// Domain notes:
//   - The order engine is the source of truth for order state.
//   - Status moves only through the explicit transition methods of the
//     state machine; there is no direct status write anywhere else.
//   - Cancellation is a terminal status, never a deletion.

type OrderStatus string

const (
	OrderStatusDraft                   OrderStatus = "draft"
	OrderStatusQuoteAwaitingAcceptance OrderStatus = "quote_awaiting_acceptance"
	OrderStatusQuoteAccepted           OrderStatus = "quote_accepted"
	OrderStatusPaid                    OrderStatus = "paid"
	OrderStatusComplete                OrderStatus = "complete"
	OrderStatusCancelled               OrderStatus = "cancelled"
)

// statusRank orders the happy-path statuses so "at or past" checks read
// naturally. Cancelled sits outside the progression.
var statusRank = map[OrderStatus]int{
	OrderStatusDraft:                   0,
	OrderStatusQuoteAwaitingAcceptance: 1,
	OrderStatusQuoteAccepted:           2,
	OrderStatusPaid:                    3,
	OrderStatusComplete:                4,
}

// AtOrPast reports whether s has reached other on the happy path.
// Cancelled orders compare as past everything except complete.
func (s OrderStatus) AtOrPast(other OrderStatus) bool {
	if s == OrderStatusCancelled {
		return true
	}
	return statusRank[s] >= statusRank[other]
}

// VATStatus drives whether VAT is charged on an order.

type VATStatus string

const (
	VATStatusDomestic         VATStatus = "domestic"
	VATStatusTradeArea        VATStatus = "trade_area"
	VATStatusOutsideTradeArea VATStatus = "outside_trade_area"
)

// Address is the billing-address snapshot carried on orders and invoices.
type Address struct {
	Line1    string `json:"line_1"`
	Line2    string `json:"line_2"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// IsZero reports whether no address field has been filled in.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Order is the aggregate root persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference-index): reference
//   - GSI2 (public_token-index): public_token
//
// Monetary representation:
//   - All price fields are integers in minor currency units and are always
//     recomputed from assignee time, rate, discount and VAT status; they are
//     never written directly by a caller.
//
// Invariants held after every committed write:
//   - TotalCost == SubtotalCost + VATCost
//   - SubtotalCost == max(NetCost - DiscountValue, 0)
//   - Reference and PublicToken are allocated once and never change.
type Order struct {
	ID          string      `json:"id"`
	Reference   string      `json:"reference"`
	PublicToken string      `json:"public_token"`
	Status      OrderStatus `json:"status"`

	CompanyID       string `json:"company_id"`
	ContactID       string `json:"contact_id"`
	PrimaryMarketID string `json:"primary_market_id"`

	ServiceTypes []string   `json:"service_types"`
	Description  string     `json:"description"`
	DeliveryDate *time.Time `json:"delivery_date"`

	HourlyRateID  string    `json:"hourly_rate_id"`
	DiscountValue int64     `json:"discount_value"`
	VATStatus     VATStatus `json:"vat_status"`
	VATNumber     string    `json:"vat_number"`
	VATVerified   *bool     `json:"vat_verified"`

	NetCost      int64 `json:"net_cost"`
	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`

	BillingAddress     Address `json:"billing_address"`
	BillingContactName string  `json:"billing_contact_name"`

	CurrentQuoteID   string `json:"current_quote_id"`
	CurrentInvoiceID string `json:"current_invoice_id"`

	PaidOn             *time.Time `json:"paid_on"`
	CompletedOn        *time.Time `json:"completed_on"`
	CompletedByID      string     `json:"completed_by_id"`
	CancelledOn        *time.Time `json:"cancelled_on"`
	CancelledByID      string     `json:"cancelled_by_id"`
	CancellationReason string     `json:"cancellation_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded with the aggregate; excluded from the order item itself.
	Assignees   []OrderAssignee   `json:"assignees"`
	Subscribers []OrderSubscriber `json:"subscribers"`
}

// TotalEstimatedMinutes sums estimated time across all assignees.
func (o Order) TotalEstimatedMinutes() int64 {
	var total int64
	for _, a := range o.Assignees {
		total += a.EstimatedTime
	}
	return total
}

// LeadAssignee returns the lead assignee, if one has been designated.
func (o Order) LeadAssignee() (OrderAssignee, bool) {
	for _, a := range o.Assignees {
		if a.IsLead {
			return a, true
		}
	}
	return OrderAssignee{}, false
}

// Pricing groups the four computed price fields.
type Pricing struct {
	NetCost      int64 `json:"net_cost"`
	SubtotalCost int64 `json:"subtotal_cost"`
	VATCost      int64 `json:"vat_cost"`
	TotalCost    int64 `json:"total_cost"`
}

// CurrentPricing returns the price fields currently stored on the order.
func (o Order) CurrentPricing() Pricing {
	return Pricing{
		NetCost:      o.NetCost,
		SubtotalCost: o.SubtotalCost,
		VATCost:      o.VATCost,
		TotalCost:    o.TotalCost,
	}
}

// ApplyPricing writes a computed breakdown back onto the order.
func (o *Order) ApplyPricing(p Pricing) {
	o.NetCost = p.NetCost
	o.SubtotalCost = p.SubtotalCost
	o.VATCost = p.VATCost
	o.TotalCost = p.TotalCost
}
