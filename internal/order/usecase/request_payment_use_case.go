package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
	"ordersvc/internal/payment"
)

// RequestPaymentUseCase publishes a payment request and flips the order to
// AWAITING_PAYMENT. Publish and status transition are a unit: if the publish
// fails, the order keeps its current status so it is never silently marked
// as awaiting a payment nobody will process.
type RequestPaymentUseCase struct {
	orderRepo    OrderRepository
	publisher    PaymentPublisher
	requestQueue string
	logger       *zap.Logger
}

func NewRequestPaymentUseCase(orderRepo OrderRepository, publisher PaymentPublisher, requestQueue string, logger *zap.Logger) *RequestPaymentUseCase {
	return &RequestPaymentUseCase{
		orderRepo:    orderRepo,
		publisher:    publisher,
		requestQueue: requestQueue,
		logger:       logger,
	}
}

func (uc *RequestPaymentUseCase) Execute(ctx context.Context, id uint) (*dto.PaymentRequestedResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request := payment.Request{
		OrderID: order.ID,
		Amount:  order.TotalPrice,
		CustomerInfo: payment.CustomerInfo{
			Name:  order.UserName,
			Email: order.UserEmail,
			CPF:   order.UserCPF,
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, apperrors.NewInternalError("encoding payment request", err)
	}

	if err := uc.publisher.Publish(ctx, uc.requestQueue, body); err != nil {
		uc.logger.Error("payment request publish failed, order status unchanged",
			zap.Uint("orderId", id),
			zap.Error(err))
		return nil, apperrors.NewUnavailableError("payment broker unavailable", err)
	}

	order.Status = domain.OrderStatusAwaitingPayment
	updated, err := uc.orderRepo.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment requested",
		zap.Uint("orderId", id),
		zap.Float64("amount", order.TotalPrice))

	return &dto.PaymentRequestedResponse{
		OrderID: updated.ID,
		Status:  updated.Status,
	}, nil
}
