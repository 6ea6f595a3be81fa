package handlers

import (
	"encoding/json"
	"net/http"

	request "omis_backend/internal/adapter/http/dto/request"
	response "omis_backend/internal/adapter/http/dto/response"
	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"
	"omis_backend/internal/usecase/interfaces"
	"omis_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)
)

// TransitionHandler exposes the order state machine. Every endpoint runs a
// single transition, dispatches the resulting events after the commit, and
// returns the updated aggregate plus whatever rows the transition created.

type TransitionHandler struct {
	usecase    usecase.ITransitionUseCase
	dispatcher interfaces.IEventDispatcher
	gateway    interfaces.IPaymentGateway
	logger     *zap.Logger
}

func NewTransitionHandler(
	uc usecase.ITransitionUseCase,
	dispatcher interfaces.IEventDispatcher,
	gateway interfaces.IPaymentGateway,
	logger *zap.Logger,
) *TransitionHandler {
	return &TransitionHandler{usecase: uc, dispatcher: dispatcher, gateway: gateway, logger: logger}
}

func (h *TransitionHandler) GenerateQuote(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.GenerateQuote(c.Request.Context(), c.Param("id"), payload.AdviserID)
	h.respond(c, res, err)
}

func (h *TransitionHandler) Reopen(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), payload.AdviserID)
	h.respond(c, res, err)
}

func (h *TransitionHandler) AcceptQuote(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.AcceptQuote(c.Request.Context(), c.Param("id"), payload.AdviserID)
	h.respond(c, res, err)
}

func (h *TransitionHandler) UpdateInvoiceDetails(c *gin.Context) {
	res, err := h.usecase.UpdateInvoiceDetails(c.Request.Context(), c.Param("id"))
	h.respond(c, res, err)
}

// MarkAsPaid records the payments that settle the order. Card payments that
// carry a provider payload are reconciled with the payment gateway before
// anything is written.
func (h *TransitionHandler) MarkAsPaid(c *gin.Context) {
	var payload request.MarkAsPaidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	if err := h.reconcileCardPayments(c, payload.Payments); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.MarkAsPaid(c.Request.Context(), c.Param("id"), payload.ToInputs())
	h.respond(c, res, err)
}

func (h *TransitionHandler) Complete(c *gin.Context) {
	var payload request.ActorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.AdviserID)
	h.respond(c, res, err)
}

func (h *TransitionHandler) Cancel(c *gin.Context) {
	var payload request.CancelOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransitionPayload.HTTPStatus, errInvalidTransitionPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.AdviserID, payload.CancellationReason, payload.Force)
	h.respond(c, res, err)
}

func (h *TransitionHandler) respond(c *gin.Context, res usecase.TransitionResult, err error) {
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.dispatcher.Dispatch(c.Request.Context(), res.Events...)

	c.JSON(http.StatusOK, response.TransitionFromResult(res))
}

func (h *TransitionHandler) reconcileCardPayments(c *gin.Context, payments []request.PaymentRequest) error {
	for _, p := range payments {
		if entities.PaymentMethod(p.Method) != entities.PaymentMethodCard || p.ProviderPayload == "" {
			continue
		}
		if h.gateway == nil {
			return entities.NewValidationError("payments", "card payments cannot be reconciled: no payment gateway configured")
		}

		providerID, providerStatus, _, err := h.gateway.CreatePayment(c.Request.Context(), json.RawMessage(p.ProviderPayload))
		if err != nil {
			return err
		}
		if providerStatus != "approved" {
			return entities.NewValidationError("payments", "card payment was not approved by the provider")
		}

		h.logger.Info("card payment reconciled",
			zap.String("provider_payment_id", providerID),
			zap.String("provider_status", providerStatus),
		)
	}
	return nil
}
