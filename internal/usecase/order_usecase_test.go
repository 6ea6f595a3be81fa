package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"omis_backend/internal/domain/entities"
	mock_interfaces "omis_backend/internal/usecase/interfaces/mocks"
)

func newOrderUseCaseForTest(store *mock_interfaces.MockIOrderStore, rates *mock_interfaces.MockIHourlyRateRepository) *OrderUseCase {
	uc := NewOrderUseCase(store, rates, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("missing company id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{ContactID: "contact-1"})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "company_id" {
			t.Fatalf("expected company_id validation error, got %v", err)
		}
	})

	t.Run("missing contact id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{CompanyID: "company-1", ContactID: "   "})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "contact_id" {
			t.Fatalf("expected contact_id validation error, got %v", err)
		}
	})

	t.Run("negative discount", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			CompanyID: "company-1", ContactID: "contact-1", DiscountValue: -1,
		})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "discount_value" {
			t.Fatalf("expected discount_value validation error, got %v", err)
		}
	})

	t.Run("allocates reference and token then persists a draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().OrderReferenceExists(gomock.Any(), gomock.Any()).Return(false, nil)
		store.EXPECT().PublicTokenExists(gomock.Any(), gomock.Any()).Return(false, nil)
		store.EXPECT().CreateOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated id")
				}
				if o.Status != entities.OrderStatusDraft {
					t.Fatalf("expected draft status, got %q", o.Status)
				}
				// Reference format XXXXXX/YY with the two-digit year.
				if !regexp.MustCompile(`^[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{6}/26$`).MatchString(o.Reference) {
					t.Fatalf("unexpected reference format: %q", o.Reference)
				}
				if len(o.PublicToken) != publicTokenLength {
					t.Fatalf("expected %d-char token, got %d", publicTokenLength, len(o.PublicToken))
				}
				if o.TotalCost != 0 || o.NetCost != 0 {
					t.Fatalf("expected zero pricing on creation: %+v", o.CurrentPricing())
				}
				return o, nil
			},
		)

		created, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			CompanyID: " company-1 ", ContactID: "contact-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CompanyID != "company-1" {
			t.Fatalf("expected trimmed company id, got %q", created.CompanyID)
		}
	})

	t.Run("reference collisions retry then exhaust", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().OrderReferenceExists(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxAllocationAttempts)

		_, err := uc.CreateOrder(context.Background(), CreateOrderCommand{
			CompanyID: "company-1", ContactID: "contact-1",
		})
		if !errors.Is(err, entities.ErrAllocationExhausted) {
			t.Fatalf("expected ErrAllocationExhausted, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "order-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		o, err := uc.GetByID(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_GetByPublicToken(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, zap.NewNop())
		_, err := uc.GetByPublicToken(context.Background(), "")
		if !errors.Is(err, ErrInvalidPublicToken) {
			t.Fatalf("expected ErrInvalidPublicToken, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByPublicToken(gomock.Any(), "tok").Return(entities.Order{}, nil)

		_, err := uc.GetByPublicToken(context.Background(), "tok")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateOrder(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	int64Ptr := func(v int64) *int64 { return &v }

	t.Run("negative discount rejected before anything is applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusDraft,
		}, nil)

		_, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{DiscountValue: int64Ptr(-5)})
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "discount_value" {
			t.Fatalf("expected discount_value validation error, got %v", err)
		}
	})

	t.Run("frozen field rejected by capability table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusQuoteAwaitingAcceptance,
		}, nil)

		_, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{Description: strPtr("new scope")})
		var cErr *entities.ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("expected conflict error, got %v", err)
		}
		if cErr.Current != entities.OrderStatusQuoteAwaitingAcceptance {
			t.Fatalf("expected conflict to name current status, got %+v", cErr)
		}
	})

	t.Run("billing details stay writable after quoting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusQuoteAccepted,
		}, nil)
		store.EXPECT().UpdateOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.BillingContactName != "Accounts Payable" {
					t.Fatalf("expected billing contact name applied, got %q", o.BillingContactName)
				}
				return o, nil
			},
		)

		_, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{
			BillingContactName: strPtr("Accounts Payable"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("everything frozen once complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusComplete,
		}, nil)

		_, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{ContactID: strPtr("contact-2")})
		var cErr *entities.ConflictError
		if !errors.As(err, &cErr) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("empty patch writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusDraft,
		}, nil)

		o, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "order-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("pricing field change triggers recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		rates := mock_interfaces.NewMockIHourlyRateRepository(ctrl)
		uc := newOrderUseCaseForTest(store, rates)

		actual := int64(0)
		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", Status: entities.OrderStatusDraft,
			VATStatus: entities.VATStatusDomestic,
			Assignees: []entities.OrderAssignee{
				{AdviserID: "adviser-1", EstimatedTime: 130, ActualTime: &actual, IsLead: true},
			},
		}, nil)
		rates.EXPECT().GetByID(gomock.Any(), "rate-1").Return(entities.HourlyRate{
			ID: "rate-1", RateValue: 1000, VATValue: decimal.RequireFromString("19.5"),
		}, nil)
		store.EXPECT().UpdateOrder(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.NetCost != 2167 || o.SubtotalCost != 2067 || o.VATCost != 403 || o.TotalCost != 2470 {
					t.Fatalf("unexpected pricing: %+v", o.CurrentPricing())
				}
				return o, nil
			},
		)

		rateID := "rate-1"
		discount := int64(100)
		_, err := uc.UpdateOrder(context.Background(), "order-1", OrderPatch{
			HourlyRateID:  &rateID,
			DiscountValue: &discount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_CurrentQuoteAndInvoice(t *testing.T) {
	t.Run("no current quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)

		_, err := uc.GetCurrentQuote(context.Background(), "order-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("current invoice resolved through the pointer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{
			ID: "order-1", CurrentInvoiceID: "inv-2",
		}, nil)
		store.EXPECT().GetInvoiceByID(gomock.Any(), "inv-2").Return(entities.Invoice{ID: "inv-2"}, nil)

		inv, err := uc.GetCurrentInvoice(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.ID != "inv-2" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("invoice list proxies the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := newOrderUseCaseForTest(store, nil)

		store.EXPECT().GetOrderByID(gomock.Any(), "order-1").Return(entities.Order{ID: "order-1"}, nil)
		store.EXPECT().ListInvoicesByOrderID(gomock.Any(), "order-1").Return([]entities.Invoice{{ID: "inv-1"}, {ID: "inv-2"}}, nil)

		invoices, err := uc.ListInvoices(context.Background(), "order-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(invoices))
		}
	})
}
