package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type mockCreateOrder struct {
	ExecuteFunc func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
}

func (m *mockCreateOrder) Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	return m.ExecuteFunc(ctx, req)
}

type mockListOrders struct {
	ExecuteFunc func(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error)
}

func (m *mockListOrders) Execute(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	return m.ExecuteFunc(ctx, limit, offset)
}

type mockGetOrder struct {
	ExecuteFunc func(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

func (m *mockGetOrder) Execute(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	return m.ExecuteFunc(ctx, id)
}

type mockUpdateStatus struct {
	ExecuteFunc func(ctx context.Context, id uint, status string) (*dto.OrderResponse, error)
}

func (m *mockUpdateStatus) Execute(ctx context.Context, id uint, status string) (*dto.OrderResponse, error) {
	return m.ExecuteFunc(ctx, id, status)
}

type mockDeleteOrder struct {
	ExecuteFunc func(ctx context.Context, id uint) error
}

func (m *mockDeleteOrder) Execute(ctx context.Context, id uint) error {
	return m.ExecuteFunc(ctx, id)
}

type mockRequestPayment struct {
	ExecuteFunc func(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error)
}

func (m *mockRequestPayment) Execute(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error) {
	return m.ExecuteFunc(ctx, id)
}

func newTestController() (*OrderController, *mockCreateOrder, *mockListOrders, *mockGetOrder, *mockUpdateStatus, *mockDeleteOrder, *mockRequestPayment) {
	create := &mockCreateOrder{}
	list := &mockListOrders{}
	get := &mockGetOrder{}
	update := &mockUpdateStatus{}
	del := &mockDeleteOrder{}
	pay := &mockRequestPayment{}
	ctrl := NewOrderController(create, list, get, update, del, pay, zap.NewNop())
	return ctrl, create, list, get, update, del, pay
}

// Handlers are exercised through chi so {orderId} URL params resolve the same
// way they do in production.
func newTestRouter(ctrl *OrderController) http.Handler {
	r := chi.NewRouter()
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", ctrl.Create)
		r.Get("/", ctrl.List)
		r.Get("/{orderId}", ctrl.Get)
		r.Put("/{orderId}", ctrl.UpdateStatus)
		r.Delete("/{orderId}", ctrl.Delete)
		r.Post("/{orderId}/payment", ctrl.RequestPayment)
	})
	return r
}

func serve(ctrl *OrderController, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router := newTestRouter(ctrl)
	router.ServeHTTP(rec, req)
	return rec
}

func TestOrderController_Create(t *testing.T) {
	t.Run("returns 201 with the created order", func(t *testing.T) {
		ctrl, create, _, _, _, _, _ := newTestController()
		create.ExecuteFunc = func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			assert.Equal(t, []int{1, 2}, req.ProductIDs)
			return &dto.OrderResponse{ID: 42, TotalPrice: 30.0, Status: domain.OrderStatusReceived}, nil
		}

		rec := serve(ctrl, http.MethodPost, "/orders/", `{"product_ids": [1, 2]}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, 30.0, resp.TotalPrice)
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		ctrl, create, _, _, _, _, _ := newTestController()
		create.ExecuteFunc = func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			t.Fatal("use case should not run for malformed JSON")
			return nil, nil
		}

		rec := serve(ctrl, http.MethodPost, "/orders/", `{"product_ids": [`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 400 on validation failure", func(t *testing.T) {
		ctrl, create, _, _, _, _, _ := newTestController()
		create.ExecuteFunc = func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return nil, apperrors.NewValidationError("invalid request")
		}

		rec := serve(ctrl, http.MethodPost, "/orders/", `{"product_ids": []}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 503 when the catalog is unavailable", func(t *testing.T) {
		ctrl, create, _, _, _, _, _ := newTestController()
		create.ExecuteFunc = func(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
			return nil, apperrors.NewUnavailableError("product service is currently unavailable", nil)
		}

		rec := serve(ctrl, http.MethodPost, "/orders/", `{"product_ids": [1]}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestOrderController_Get(t *testing.T) {
	t.Run("returns the order", func(t *testing.T) {
		ctrl, _, _, get, _, _, _ := newTestController()
		get.ExecuteFunc = func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			return &dto.OrderResponse{ID: id, Status: domain.OrderStatusReceived}, nil
		}

		rec := serve(ctrl, http.MethodGet, "/orders/42", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint(42), resp.ID)
	})

	t.Run("returns 404 for an unknown order", func(t *testing.T) {
		ctrl, _, _, get, _, _, _ := newTestController()
		get.ExecuteFunc = func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			return nil, apperrors.NewNotFoundError("order with id 99 not found")
		}

		rec := serve(ctrl, http.MethodGet, "/orders/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("returns 400 for a non numeric id", func(t *testing.T) {
		ctrl, _, _, get, _, _, _ := newTestController()
		get.ExecuteFunc = func(ctx context.Context, id uint) (*dto.OrderResponse, error) {
			t.Fatal("use case should not run for an invalid id")
			return nil, nil
		}

		rec := serve(ctrl, http.MethodGet, "/orders/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderController_List(t *testing.T) {
	t.Run("passes pagination through and defaults missing values", func(t *testing.T) {
		ctrl, _, list, _, _, _, _ := newTestController()
		list.ExecuteFunc = func(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
			assert.Equal(t, 5, limit)
			assert.Equal(t, 0, offset)
			return []dto.OrderResponse{{ID: 1}, {ID: 2}}, nil
		}

		rec := serve(ctrl, http.MethodGet, "/orders/?limit=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})
}

func TestOrderController_UpdateStatus(t *testing.T) {
	t.Run("returns the updated order", func(t *testing.T) {
		ctrl, _, _, _, update, _, _ := newTestController()
		update.ExecuteFunc = func(ctx context.Context, id uint, status string) (*dto.OrderResponse, error) {
			assert.Equal(t, uint(42), id)
			assert.Equal(t, domain.OrderStatusPreparing, status)
			return &dto.OrderResponse{ID: id, Status: status}, nil
		}

		rec := serve(ctrl, http.MethodPut, "/orders/42?status=PREPARING", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing status parameter is a 400", func(t *testing.T) {
		ctrl, _, _, _, update, _, _ := newTestController()
		update.ExecuteFunc = func(ctx context.Context, id uint, status string) (*dto.OrderResponse, error) {
			t.Fatal("use case should not run without a status")
			return nil, nil
		}

		rec := serve(ctrl, http.MethodPut, "/orders/42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderController_Delete(t *testing.T) {
	t.Run("returns a confirmation message", func(t *testing.T) {
		ctrl, _, _, _, _, del, _ := newTestController()
		del.ExecuteFunc = func(ctx context.Context, id uint) error {
			return nil
		}

		rec := serve(ctrl, http.MethodDelete, "/orders/42", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.DeleteOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Order 42 deleted successfully", resp.Message)
	})

	t.Run("returns 404 for an unknown order", func(t *testing.T) {
		ctrl, _, _, _, _, del, _ := newTestController()
		del.ExecuteFunc = func(ctx context.Context, id uint) error {
			return apperrors.NewNotFoundError("order with id 99 not found")
		}

		rec := serve(ctrl, http.MethodDelete, "/orders/99", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOrderController_RequestPayment(t *testing.T) {
	t.Run("returns 202 with the awaiting payment status", func(t *testing.T) {
		ctrl, _, _, _, _, _, pay := newTestController()
		pay.ExecuteFunc = func(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error) {
			return &dto.PaymentRequestedResponse{OrderID: id, Status: domain.OrderStatusAwaitingPayment}, nil
		}

		rec := serve(ctrl, http.MethodPost, "/orders/42/payment", "")

		require.Equal(t, http.StatusAccepted, rec.Code)
		var resp dto.PaymentRequestedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, uint(42), resp.OrderID)
		assert.Equal(t, domain.OrderStatusAwaitingPayment, resp.Status)
	})

	t.Run("returns 503 when the broker is down", func(t *testing.T) {
		ctrl, _, _, _, _, _, pay := newTestController()
		pay.ExecuteFunc = func(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error) {
			return nil, apperrors.NewUnavailableError("payment broker unavailable", nil)
		}

		rec := serve(ctrl, http.MethodPost, "/orders/42/payment", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
