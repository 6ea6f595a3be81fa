package usecase

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/domain/pricing"
	"omis_backend/internal/usecase/interfaces"
)

const (
	// Quotes aim to expire 30 days before delivery so work can still fit,
	// but a customer always gets at least 2 days to consider one.
	quoteDeliveryLeadDays = 30
	quoteMinValidityDays  = 2
)

// quoteContentTemplate renders the immutable quote body from the order
// snapshot at generation time.
var quoteContentTemplate = template.Must(template.New("quote").Parse(
	`Quote {{.Reference}}

Prepared for {{.CompanyName}} on {{.GeneratedOn}}.

Commissioned services: {{.Description}}

Delivery date: {{.DeliveryDate}}
This quote expires on {{.ExpiresOn}}.

Net cost:      {{.NetCost}}
Subtotal:      {{.SubtotalCost}}
VAT:           {{.VATCost}}
Total payable: {{.TotalCost}}

Amounts are in minor currency units.
`))

// quoteGenerator produces an immutable quote from a complete order. It
// validates the order, refreshes pricing so the snapshot cannot be stale,
// allocates a unique quote reference and fills the billing address from the
// company's registered address when the caller has not set one.
type quoteGenerator struct {
	store      interfaces.IOrderStore
	companies  interfaces.ICompanyDirectory
	pricing    pricingUpdater
	randString randStringFunc
	now        func() time.Time
}

// Generate builds the quote and mutates the order's pricing and billing
// fields in memory. Status and the current-quote pointer stay with the
// state machine; persistence stays with its atomic commit.
func (g quoteGenerator) Generate(ctx context.Context, o *entities.Order) (entities.Quote, error) {
	if err := g.validate(*o); err != nil {
		return entities.Quote{}, err
	}

	if o.CurrentQuoteID != "" {
		current, err := g.store.GetQuoteByID(ctx, o.CurrentQuoteID)
		if err != nil {
			return entities.Quote{}, err
		}
		if current.ID != "" && current.IsActive() {
			return entities.Quote{}, &entities.ConflictError{
				Message: "an active quote already exists for this order",
				Current: o.Status,
			}
		}
	}

	now := g.now().UTC()
	expiresOn, err := quoteExpiryDate(now, *o.DeliveryDate)
	if err != nil {
		return entities.Quote{}, err
	}

	if _, err := g.pricing.Refresh(ctx, o); err != nil {
		return entities.Quote{}, err
	}

	company, err := g.companies.GetByID(ctx, o.CompanyID)
	if err != nil {
		return entities.Quote{}, err
	}
	if o.BillingAddress.IsZero() {
		o.BillingAddress = company.RegisteredAddress
	}

	reference, err := allocateUnique(ctx,
		func() (string, error) {
			suffix, err := g.randString(referenceAlphabet, quoteSuffixLength)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s/Q-%s", o.Reference, suffix), nil
		},
		g.store.QuoteReferenceExists,
	)
	if err != nil {
		return entities.Quote{}, err
	}

	content, err := renderQuoteContent(*o, company, reference, expiresOn, now)
	if err != nil {
		return entities.Quote{}, err
	}

	return entities.Quote{
		ID:        uuid.NewString(),
		OrderID:   o.ID,
		Reference: reference,
		Content:   content,
		ExpiresOn: expiresOn,
		CreatedAt: now,
	}, nil
}

// validate checks the quoting preconditions, failing with a validation
// error naming the first missing field.
func (g quoteGenerator) validate(o entities.Order) error {
	if o.PrimaryMarketID == "" {
		return entities.NewValidationError("primary_market_id", "this field is required to generate a quote")
	}
	if len(o.ServiceTypes) == 0 {
		return entities.NewValidationError("service_types", "this field is required to generate a quote")
	}
	if o.Description == "" {
		return entities.NewValidationError("description", "this field is required to generate a quote")
	}
	if o.DeliveryDate == nil {
		return entities.NewValidationError("delivery_date", "this field is required to generate a quote")
	}
	if _, err := pricing.VATApplies(o.VATStatus, o.VATVerified); err != nil {
		return entities.NewValidationError("vat_status", "the VAT fields are incomplete")
	}
	if len(o.Assignees) == 0 {
		return entities.NewValidationError("assignees", "at least one assignee is required to generate a quote")
	}
	if _, ok := o.LeadAssignee(); !ok {
		return entities.NewValidationError("assignees", "a lead assignee is required to generate a quote")
	}
	if o.TotalEstimatedMinutes() == 0 {
		return entities.NewValidationError("assignees", "the combined estimated time must be greater than zero")
	}
	return nil
}

// quoteExpiryDate picks the latest acceptable expiry: 30 days before
// delivery where possible, never earlier than 2 days from now. If even the
// 2-day floor lands after the delivery date, the delivery is too soon to
// quote against.
func quoteExpiryDate(now, deliveryDate time.Time) (time.Time, error) {
	today := truncateToDate(now)
	delivery := truncateToDate(deliveryDate)

	floor := today.AddDate(0, 0, quoteMinValidityDays)
	if floor.After(delivery) {
		return time.Time{}, entities.NewValidationError("delivery_date",
			"the delivery date is too soon to generate a quote against")
	}

	expiry := delivery.AddDate(0, 0, -quoteDeliveryLeadDays)
	if expiry.Before(floor) {
		expiry = floor
	}
	return expiry, nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func renderQuoteContent(o entities.Order, company entities.Company, reference string, expiresOn, generatedOn time.Time) (string, error) {
	companyName := company.Name
	if companyName == "" {
		companyName = o.CompanyID
	}

	var buf bytes.Buffer
	err := quoteContentTemplate.Execute(&buf, map[string]any{
		"Reference":    reference,
		"CompanyName":  companyName,
		"GeneratedOn":  generatedOn.Format("2 January 2006"),
		"Description":  o.Description,
		"DeliveryDate": o.DeliveryDate.Format("2 January 2006"),
		"ExpiresOn":    expiresOn.Format("2 January 2006"),
		"NetCost":      o.NetCost,
		"SubtotalCost": o.SubtotalCost,
		"VATCost":      o.VATCost,
		"TotalCost":    o.TotalCost,
	})
	if err != nil {
		return "", fmt.Errorf("render quote content: %w", err)
	}
	return buf.String(), nil
}
