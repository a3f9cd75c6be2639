package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type CreateOrderUseCase interface {
	Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
}

type ListOrdersUseCase interface {
	Execute(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error)
}

type GetOrderUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.OrderResponse, error)
}

type UpdateOrderStatusUseCase interface {
	Execute(ctx context.Context, id uint, status string) (*dto.OrderResponse, error)
}

type DeleteOrderUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type RequestPaymentUseCase interface {
	Execute(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error)
}

const (
	defaultListLimit  = 10
	defaultListOffset = 0
)

type OrderController struct {
	createOrder    CreateOrderUseCase
	listOrders     ListOrdersUseCase
	getOrder       GetOrderUseCase
	updateStatus   UpdateOrderStatusUseCase
	deleteOrder    DeleteOrderUseCase
	requestPayment RequestPaymentUseCase
	logger         *zap.Logger
}

func NewOrderController(
	createOrder CreateOrderUseCase,
	listOrders ListOrdersUseCase,
	getOrder GetOrderUseCase,
	updateStatus UpdateOrderStatusUseCase,
	deleteOrder DeleteOrderUseCase,
	requestPayment RequestPaymentUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		createOrder:    createOrder,
		listOrders:     listOrders,
		getOrder:       getOrder,
		updateStatus:   updateStatus,
		deleteOrder:    deleteOrder,
		requestPayment: requestPayment,
		logger:         logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, logger, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	view, err := c.createOrder.Execute(r.Context(), req)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, view)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	limit := queryInt(r, "limit", defaultListLimit)
	offset := queryInt(r, "offset", defaultListOffset)

	views, err := c.listOrders.Execute(r.Context(), limit, offset)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, views)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	view, err := c.getOrder.Execute(r.Context(), id)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, view)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		c.writeError(w, logger, apperrors.NewValidationError("status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status query parameter is required",
		}))
		return
	}

	view, err := c.updateStatus.Execute(r.Context(), id, status)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, view)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	if err := c.deleteOrder.Execute(r.Context(), id); err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteOrderResponse{
		Message: fmt.Sprintf("Order %d deleted successfully", id),
	})
}

func (c *OrderController) RequestPayment(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, logger)
	if !ok {
		return
	}

	resp, err := c.requestPayment.Execute(r.Context(), id)
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	c.writeJSON(w, http.StatusAccepted, resp)
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (uint, bool) {
	idStr := chi.URLParam(r, "orderId")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", idStr))
		c.writeError(w, logger, apperrors.NewValidationError("invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		}))
		return 0, false
	}
	return uint(id), true
}

type errorResponse struct {
	Error   string                       `json:"error"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func (c *OrderController) writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, errorResponse{Error: ve.Message, Details: ve.Details})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, errorResponse{Error: nfe.Message})
		return
	}
	if ue, ok := apperrors.IsUnavailableError(err); ok {
		logger.Warn("downstream dependency unavailable", zap.Error(ue))
		c.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: ue.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("writing response", zap.Error(err))
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
