package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"omis_backend/internal/adapter/http/handlers/mocks"
	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from engine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(entities.Order{}, entities.NewValidationError("company_id", "this field is required"))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"contact_id":"contact-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, cmd usecase.CreateOrderCommand) (entities.Order, error) {
				if cmd.CompanyID != "company-1" || cmd.ContactID != "contact-1" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Order{
					ID: "order-1", Reference: "ABCDEF/26", Status: entities.OrderStatusDraft,
					CompanyID: "company-1", ContactID: "contact-1",
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders",
			bytes.NewBufferString(`{"company_id":"company-1","contact_id":"contact-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["reference"] != "ABCDEF/26" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id", h.GetOrder)

		uc.EXPECT().GetByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Reference: "ABCDEF/26", Status: entities.OrderStatusDraft,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetPublicOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("omits internal fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetPublicOrder)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "tok-1").Return(entities.Order{
			ID: "order-1", Reference: "ABCDEF/26", Status: entities.OrderStatusQuoteAwaitingAcceptance,
			NetCost: 2167, SubtotalCost: 2067, VATCost: 403, TotalCost: 2470,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := body["id"]; ok {
			t.Fatalf("public view must not expose the order id: %v", body)
		}
		if _, ok := body["net_cost"]; ok {
			t.Fatalf("public view must not expose the net cost: %v", body)
		}
		if body["total_cost"] != float64(2470) {
			t.Fatalf("expected total_cost 2470, got %v", body["total_cost"])
		}
	})

	t.Run("bad token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetPublicOrder)

		uc.EXPECT().GetByPublicToken(gomock.Any(), "short").Return(entities.Order{}, usecase.ErrInvalidPublicToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/short", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("frozen field conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), "order-1", gomock.Any()).
			Return(entities.Order{}, &entities.ConflictError{
				Message: "service_types cannot change while the order is quote_accepted",
				Current: entities.OrderStatusQuoteAccepted,
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1",
			bytes.NewBufferString(`{"service_types":["export_documentation"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateOrder)

		uc.EXPECT().UpdateOrder(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, patch usecase.OrderPatch) (entities.Order, error) {
				if patch.Description == nil || *patch.Description != "Export documentation review" {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return entities.Order{ID: "order-1", Description: "Export documentation review"}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1",
			bytes.NewBufferString(`{"description":"Export documentation review"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_BillingReads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("current quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/quote", h.GetCurrentQuote)

		uc.EXPECT().GetCurrentQuote(gomock.Any(), "order-1").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("current invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/invoice", h.GetCurrentInvoice)

		uc.EXPECT().GetCurrentInvoice(gomock.Any(), "order-1").Return(entities.Invoice{
			ID: "inv-1", OrderID: "order-1", InvoiceNumber: "0123456789",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/invoice", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoice history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/invoices", h.ListInvoices)

		uc.EXPECT().ListInvoices(gomock.Any(), "order-1").Return([]entities.Invoice{
			{ID: "inv-1"}, {ID: "inv-2"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/invoices", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(body))
		}
	})

	t.Run("payments store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/payments", h.ListPayments)

		uc.EXPECT().ListPayments(gomock.Any(), "order-1").Return(nil, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
