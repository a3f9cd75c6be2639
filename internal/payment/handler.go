package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// OrderStatusUpdater applies a payment outcome to an order. In production
// this is an HTTP call back onto the order service's update endpoint.
type OrderStatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID uint, status string) error
}

// ResponseHandler processes payment_responses messages. Every return path
// acknowledges the message: malformed and unmapped messages would loop
// forever if retried, and an update failure is not the broker's problem.
type ResponseHandler struct {
	updater OrderStatusUpdater
	logger  *zap.Logger
}

func NewResponseHandler(updater OrderStatusUpdater, logger *zap.Logger) *ResponseHandler {
	return &ResponseHandler{updater: updater, logger: logger}
}

func (h *ResponseHandler) Handle(ctx context.Context, message []byte) (err error) {
	defer func() {
		// a panicking message is dropped, never redelivered
		if r := recover(); r != nil {
			err = fmt.Errorf("panic handling payment response: %v", r)
		}
	}()

	var resp Response
	if unmarshalErr := json.Unmarshal(message, &resp); unmarshalErr != nil {
		h.logger.Error("discarding undecodable payment response",
			zap.ByteString("message", message),
			zap.Error(unmarshalErr))
		return nil
	}

	if resp.OrderID == 0 || resp.Status == "" {
		h.logger.Error("discarding payment response missing order_id or status",
			zap.ByteString("message", message))
		return nil
	}

	status, ok := OrderStatusForOutcome(resp.Status)
	if !ok {
		h.logger.Warn("discarding payment response with unmapped outcome",
			zap.Uint("orderId", resp.OrderID),
			zap.String("outcome", resp.Status))
		return nil
	}

	h.logger.Info("applying payment outcome",
		zap.Uint("orderId", resp.OrderID),
		zap.String("outcome", resp.Status),
		zap.String("orderStatus", status))

	if updateErr := h.updater.UpdateOrderStatus(ctx, resp.OrderID, status); updateErr != nil {
		// acknowledged anyway: redelivering will not fix the order service
		h.logger.Error("order status update failed",
			zap.Uint("orderId", resp.OrderID),
			zap.String("orderStatus", status),
			zap.Error(updateErr))
	}

	return nil
}
