package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidPublicToken = errors.New("invalid public token")
)

// orderField names every caller-writable order attribute. Which fields may
// be written is decided once, by the per-state capability table below,
// instead of per-transition checks scattered through the engine.
type orderField string

const (
	fieldContact            orderField = "contact_id"
	fieldPrimaryMarket      orderField = "primary_market_id"
	fieldServiceTypes       orderField = "service_types"
	fieldDescription        orderField = "description"
	fieldDeliveryDate       orderField = "delivery_date"
	fieldHourlyRate         orderField = "hourly_rate_id"
	fieldDiscountValue      orderField = "discount_value"
	fieldVATStatus          orderField = "vat_status"
	fieldVATNumber          orderField = "vat_number"
	fieldVATVerified        orderField = "vat_verified"
	fieldBillingAddress     orderField = "billing_address"
	fieldBillingContactName orderField = "billing_contact_name"
)

type fieldSet map[orderField]struct{}

func fields(fs ...orderField) fieldSet {
	set := make(fieldSet, len(fs))
	for _, f := range fs {
		set[f] = struct{}{}
	}
	return set
}

// writableFields is the capability table: order status -> fields a caller
// may still change. Everything else is frozen once a quote exists; billing
// details stay open until payment because finance corrects them late.
var writableFields = map[entities.OrderStatus]fieldSet{
	entities.OrderStatusDraft: fields(
		fieldContact, fieldPrimaryMarket, fieldServiceTypes, fieldDescription,
		fieldDeliveryDate, fieldHourlyRate, fieldDiscountValue,
		fieldVATStatus, fieldVATNumber, fieldVATVerified,
		fieldBillingAddress, fieldBillingContactName,
	),
	entities.OrderStatusQuoteAwaitingAcceptance: fields(
		fieldContact, fieldBillingAddress, fieldBillingContactName,
	),
	entities.OrderStatusQuoteAccepted: fields(
		fieldContact, fieldBillingAddress, fieldBillingContactName,
	),
	entities.OrderStatusPaid:      fields(fieldContact),
	entities.OrderStatusComplete:  fields(),
	entities.OrderStatusCancelled: fields(),
}

// pricingFields are the patchable fields whose change forces a price
// recompute.
var pricingFields = fields(
	fieldHourlyRate, fieldDiscountValue,
	fieldVATStatus, fieldVATNumber, fieldVATVerified,
)

// CreateOrderCommand carries everything a caller may set at creation time.
type CreateOrderCommand struct {
	CompanyID       string
	ContactID       string
	PrimaryMarketID string
	ServiceTypes    []string
	Description     string
	DeliveryDate    *time.Time
	HourlyRateID    string
	DiscountValue   int64
	VATStatus       entities.VATStatus
	VATNumber       string
	VATVerified     *bool
}

// OrderPatch is a partial update; nil fields are left untouched.
type OrderPatch struct {
	ContactID          *string
	PrimaryMarketID    *string
	ServiceTypes       *[]string
	Description        *string
	DeliveryDate       *time.Time
	HourlyRateID       *string
	DiscountValue      *int64
	VATStatus          *entities.VATStatus
	VATNumber          *string
	VATVerified        *bool
	BillingAddress     *entities.Address
	BillingContactName *string
}

// IOrderUseCase exposes order aggregate operations outside the state
// machine: creation, reads and capability-guarded field updates.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPublicToken(ctx context.Context, token string) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, patch OrderPatch) (entities.Order, error)
	GetCurrentQuote(ctx context.Context, orderID string) (entities.Quote, error)
	GetCurrentInvoice(ctx context.Context, orderID string) (entities.Invoice, error)
	ListInvoices(ctx context.Context, orderID string) ([]entities.Invoice, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error)
}

type OrderUseCase struct {
	store      interfaces.IOrderStore
	pricing    pricingUpdater
	logger     *zap.Logger
	randString randStringFunc
	now        func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IOrderStore, rates interfaces.IHourlyRateRepository, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		store:      store,
		pricing:    pricingUpdater{rates: rates},
		logger:     logger,
		randString: cryptoRandString,
		now:        time.Now,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	cmd.CompanyID = strings.TrimSpace(cmd.CompanyID)
	cmd.ContactID = strings.TrimSpace(cmd.ContactID)
	if cmd.CompanyID == "" {
		return entities.Order{}, entities.NewValidationError("company_id", "this field is required")
	}
	if cmd.ContactID == "" {
		return entities.Order{}, entities.NewValidationError("contact_id", "this field is required")
	}
	if cmd.DiscountValue < 0 {
		return entities.Order{}, entities.NewValidationError("discount_value", "must not be negative")
	}

	now := u.now().UTC()

	reference, err := allocateUnique(ctx,
		func() (string, error) { return u.generateReference(now) },
		u.store.OrderReferenceExists,
	)
	if err != nil {
		return entities.Order{}, err
	}

	token, err := allocateUnique(ctx,
		func() (string, error) { return u.randString(publicTokenAlphabet, publicTokenLength) },
		u.store.PublicTokenExists,
	)
	if err != nil {
		return entities.Order{}, err
	}

	o := entities.Order{
		ID:              uuid.NewString(),
		Reference:       reference,
		PublicToken:     token,
		Status:          entities.OrderStatusDraft,
		CompanyID:       cmd.CompanyID,
		ContactID:       cmd.ContactID,
		PrimaryMarketID: strings.TrimSpace(cmd.PrimaryMarketID),
		ServiceTypes:    cmd.ServiceTypes,
		Description:     cmd.Description,
		DeliveryDate:    cmd.DeliveryDate,
		HourlyRateID:    strings.TrimSpace(cmd.HourlyRateID),
		DiscountValue:   cmd.DiscountValue,
		VATStatus:       cmd.VATStatus,
		VATNumber:       cmd.VATNumber,
		VATVerified:     cmd.VATVerified,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.store.CreateOrder(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("reference", created.Reference),
	)
	return created, nil
}

// generateReference builds a candidate order reference, format XXXXXX/YY
// with YY the two-digit creation year.
func (u *OrderUseCase) generateReference(now time.Time) (string, error) {
	head, err := u.randString(referenceAlphabet, orderReferenceLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%02d", head, now.Year()%100), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.store.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) GetByPublicToken(ctx context.Context, token string) (entities.Order, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Order{}, ErrInvalidPublicToken
	}

	o, err := u.store.GetOrderByPublicToken(ctx, token)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, id string, patch OrderPatch) (entities.Order, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	touched, err := applyPatch(&o, patch)
	if err != nil {
		return entities.Order{}, err
	}
	if len(touched) == 0 {
		return o, nil
	}

	repriced := false
	for f := range touched {
		if _, ok := pricingFields[f]; ok {
			if repriced, err = u.pricing.Refresh(ctx, &o); err != nil {
				return entities.Order{}, err
			}
			break
		}
	}

	o.UpdatedAt = u.now().UTC()
	updated, err := u.store.UpdateOrder(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	u.logger.Info("order updated",
		zap.String("order_id", updated.ID),
		zap.Int("fields", len(touched)),
		zap.Bool("repriced", repriced),
	)
	return updated, nil
}

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// GetCurrentQuote returns the quote the order currently points at,
// cancelled or not.
func (u *OrderUseCase) GetCurrentQuote(ctx context.Context, orderID string) (entities.Quote, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Quote{}, err
	}
	if o.CurrentQuoteID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q, err := u.store.GetQuoteByID(ctx, o.CurrentQuoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// GetCurrentInvoice returns the latest invoice snapshot for the order.
func (u *OrderUseCase) GetCurrentInvoice(ctx context.Context, orderID string) (entities.Invoice, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if o.CurrentInvoiceID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	inv, err := u.store.GetInvoiceByID(ctx, o.CurrentInvoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// ListInvoices returns every invoice snapshot ever taken for the order,
// the audit trail behind the current-invoice pointer.
func (u *OrderUseCase) ListInvoices(ctx context.Context, orderID string) ([]entities.Invoice, error) {
	if _, err := u.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.store.ListInvoicesByOrderID(ctx, orderID)
}

// ListPayments returns the payments recorded against the order.
func (u *OrderUseCase) ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error) {
	if _, err := u.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return u.store.ListPaymentsByOrderID(ctx, orderID)
}

// applyPatch copies the set patch fields onto the order, rejecting any
// field the capability table does not allow in the order's current status.
// It returns the set of fields actually written.
func applyPatch(o *entities.Order, patch OrderPatch) (fieldSet, error) {
	if patch.DiscountValue != nil && *patch.DiscountValue < 0 {
		return nil, entities.NewValidationError("discount_value", "must not be negative")
	}

	writable := writableFields[o.Status]
	touched := fieldSet{}

	set := func(f orderField, apply func()) error {
		if _, ok := writable[f]; !ok {
			return &entities.ConflictError{
				Message: fmt.Sprintf("field %q cannot be changed", f),
				Current: o.Status,
			}
		}
		apply()
		touched[f] = struct{}{}
		return nil
	}

	steps := []struct {
		field orderField
		isSet bool
		apply func()
	}{
		{fieldContact, patch.ContactID != nil, func() { o.ContactID = *patch.ContactID }},
		{fieldPrimaryMarket, patch.PrimaryMarketID != nil, func() { o.PrimaryMarketID = *patch.PrimaryMarketID }},
		{fieldServiceTypes, patch.ServiceTypes != nil, func() { o.ServiceTypes = *patch.ServiceTypes }},
		{fieldDescription, patch.Description != nil, func() { o.Description = *patch.Description }},
		{fieldDeliveryDate, patch.DeliveryDate != nil, func() { o.DeliveryDate = patch.DeliveryDate }},
		{fieldHourlyRate, patch.HourlyRateID != nil, func() { o.HourlyRateID = *patch.HourlyRateID }},
		{fieldDiscountValue, patch.DiscountValue != nil, func() { o.DiscountValue = *patch.DiscountValue }},
		{fieldVATStatus, patch.VATStatus != nil, func() { o.VATStatus = *patch.VATStatus }},
		{fieldVATNumber, patch.VATNumber != nil, func() { o.VATNumber = *patch.VATNumber }},
		{fieldVATVerified, patch.VATVerified != nil, func() { o.VATVerified = patch.VATVerified }},
		{fieldBillingAddress, patch.BillingAddress != nil, func() { o.BillingAddress = *patch.BillingAddress }},
		{fieldBillingContactName, patch.BillingContactName != nil, func() { o.BillingContactName = *patch.BillingContactName }},
	}

	for _, s := range steps {
		if !s.isSet {
			continue
		}
		if err := set(s.field, s.apply); err != nil {
			return nil, err
		}
	}
	return touched, nil
}
