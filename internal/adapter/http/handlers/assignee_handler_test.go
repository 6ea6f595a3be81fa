package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"omis_backend/internal/adapter/http/handlers/mocks"
	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAssigneeHandler_SetAssignees(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/assignees", h.SetAssignees)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/assignees", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("time ledger conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/assignees", h.SetAssignees)

		uc.EXPECT().SetAssignees(gomock.Any(), "order-1", gomock.Any()).
			Return(nil, entities.NewStatusConflictError(
				entities.OrderStatusQuoteAwaitingAcceptance, entities.OrderStatusDraft))

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/assignees",
			bytes.NewBufferString(`{"assignees":[{"adviser_id":"adviser-1","estimated_time":90}]}`))
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
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/assignees", h.SetAssignees)

		uc.EXPECT().SetAssignees(gomock.Any(), "order-1", gomock.Any()).DoAndReturn(
			func(_ interface{}, _ string, inputs []usecase.AssigneeInput) ([]entities.OrderAssignee, error) {
				if len(inputs) != 1 || inputs[0].AdviserID != "adviser-1" || !inputs[0].IsLead {
					t.Fatalf("unexpected inputs: %+v", inputs)
				}
				return []entities.OrderAssignee{
					{AdviserID: "adviser-1", EstimatedTime: 90, IsLead: true},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/assignees",
			bytes.NewBufferString(`{"assignees":[{"adviser_id":"adviser-1","estimated_time":90,"is_lead":true}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0]["adviser_id"] != "adviser-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAssigneeHandler_SetSubscribers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("replaces the set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.PUT("/v1/orders/:id/subscribers", h.SetSubscribers)

		uc.EXPECT().SetSubscribers(gomock.Any(), "order-1", []string{"adviser-1", "adviser-2"}).
			Return([]entities.OrderSubscriber{
				{AdviserID: "adviser-1"}, {AdviserID: "adviser-2"},
			}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/order-1/subscribers",
			bytes.NewBufferString(`{"subscribers":[{"adviser_id":"adviser-1"},{"adviser_id":"adviser-2"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/subscribers", h.ListSubscribers)

		uc.EXPECT().ListSubscribers(gomock.Any(), "missing").Return(nil, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing/subscribers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAssigneeHandler_ListAssignees(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssigneeUseCase(ctrl)
		h := NewAssigneeHandler(uc)

		r := gin.New()
		r.GET("/v1/orders/:id/assignees", h.ListAssignees)

		actual := int64(75)
		uc.EXPECT().ListAssignees(gomock.Any(), "order-1").Return([]entities.OrderAssignee{
			{AdviserID: "adviser-1", EstimatedTime: 90, ActualTime: &actual, IsLead: true},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/assignees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
