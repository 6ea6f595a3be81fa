package request

import (
	"time"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"
)

// ActorRequest carries the adviser performing a transition.
type ActorRequest struct {
	AdviserID string `json:"adviser_id"`
}

// CancelOrderRequest carries the cancellation reason and, for back-office
// callers, the force flag that unlocks cancellation of accepted and paid
// orders.
type CancelOrderRequest struct {
	AdviserID          string `json:"adviser_id"`
	CancellationReason string `json:"cancellation_reason"`
	Force              bool   `json:"force"`
}

// PaymentRequest is a single payment line of a mark-as-paid call.
type PaymentRequest struct {
	Amount          int64      `json:"amount"`
	Method          string     `json:"method"`
	ReceivedOn      *time.Time `json:"received_on"`
	ProviderPayload string     `json:"provider_payload,omitempty"`
}

// MarkAsPaidRequest records the payments that settle an order.
type MarkAsPaidRequest struct {
	AdviserID string           `json:"adviser_id"`
	Payments  []PaymentRequest `json:"payments" binding:"required"`
}

func (r MarkAsPaidRequest) ToInputs() []usecase.PaymentInput {
	inputs := make([]usecase.PaymentInput, 0, len(r.Payments))
	for _, p := range r.Payments {
		in := usecase.PaymentInput{
			Amount: p.Amount,
			Method: entities.PaymentMethod(p.Method),
		}
		if p.ReceivedOn != nil {
			in.ReceivedOn = *p.ReceivedOn
		}
		inputs = append(inputs, in)
	}
	return inputs
}
