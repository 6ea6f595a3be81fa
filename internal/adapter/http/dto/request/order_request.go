package request

import (
	"time"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"
)

// AddressRequest mirrors the billing-address snapshot fields.
type AddressRequest struct {
	Line1    string `json:"line_1"`
	Line2    string `json:"line_2"`
	Town     string `json:"town"`
	County   string `json:"county"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

func (r AddressRequest) ToEntity() entities.Address {
	return entities.Address{
		Line1:    r.Line1,
		Line2:    r.Line2,
		Town:     r.Town,
		County:   r.County,
		Postcode: r.Postcode,
		Country:  r.Country,
	}
}

// CreateOrderRequest is the payload accepted when opening a new order.
type CreateOrderRequest struct {
	CompanyID       string     `json:"company_id" binding:"required"`
	ContactID       string     `json:"contact_id" binding:"required"`
	PrimaryMarketID string     `json:"primary_market_id"`
	ServiceTypes    []string   `json:"service_types"`
	Description     string     `json:"description"`
	DeliveryDate    *time.Time `json:"delivery_date"`
	HourlyRateID    string     `json:"hourly_rate_id"`
	DiscountValue   int64      `json:"discount_value"`
	VATStatus       string     `json:"vat_status"`
	VATNumber       string     `json:"vat_number"`
	VATVerified     *bool      `json:"vat_verified"`
}

func (r CreateOrderRequest) ToCommand() usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		CompanyID:       r.CompanyID,
		ContactID:       r.ContactID,
		PrimaryMarketID: r.PrimaryMarketID,
		ServiceTypes:    r.ServiceTypes,
		Description:     r.Description,
		DeliveryDate:    r.DeliveryDate,
		HourlyRateID:    r.HourlyRateID,
		DiscountValue:   r.DiscountValue,
		VATStatus:       entities.VATStatus(r.VATStatus),
		VATNumber:       r.VATNumber,
		VATVerified:     r.VATVerified,
	}
}

// UpdateOrderRequest is a partial update; absent fields stay untouched.
// Which fields are accepted depends on the order's status; the engine
// rejects the rest with a conflict.
type UpdateOrderRequest struct {
	ContactID          *string         `json:"contact_id"`
	PrimaryMarketID    *string         `json:"primary_market_id"`
	ServiceTypes       *[]string       `json:"service_types"`
	Description        *string         `json:"description"`
	DeliveryDate       *time.Time      `json:"delivery_date"`
	HourlyRateID       *string         `json:"hourly_rate_id"`
	DiscountValue      *int64          `json:"discount_value"`
	VATStatus          *string         `json:"vat_status"`
	VATNumber          *string         `json:"vat_number"`
	VATVerified        *bool           `json:"vat_verified"`
	BillingAddress     *AddressRequest `json:"billing_address"`
	BillingContactName *string         `json:"billing_contact_name"`
}

func (r UpdateOrderRequest) ToPatch() usecase.OrderPatch {
	patch := usecase.OrderPatch{
		ContactID:          r.ContactID,
		PrimaryMarketID:    r.PrimaryMarketID,
		ServiceTypes:       r.ServiceTypes,
		Description:        r.Description,
		DeliveryDate:       r.DeliveryDate,
		HourlyRateID:       r.HourlyRateID,
		DiscountValue:      r.DiscountValue,
		VATNumber:          r.VATNumber,
		VATVerified:        r.VATVerified,
		BillingContactName: r.BillingContactName,
	}
	if r.VATStatus != nil {
		status := entities.VATStatus(*r.VATStatus)
		patch.VATStatus = &status
	}
	if r.BillingAddress != nil {
		addr := r.BillingAddress.ToEntity()
		patch.BillingAddress = &addr
	}
	return patch
}
