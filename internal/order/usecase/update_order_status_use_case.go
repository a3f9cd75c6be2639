package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

// UpdateOrderStatusUseCase overwrites an order's status. The target value
// must be a member of the status enum, but no legality check is made against
// the current status: any known value is accepted from any state. The
// payment worker relies on this when applying queue outcomes.
type UpdateOrderStatusUseCase struct {
	orderRepo OrderRepository
	views     OrderViewBuilder
	logger    *zap.Logger
}

func NewUpdateOrderStatusUseCase(orderRepo OrderRepository, views OrderViewBuilder, logger *zap.Logger) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo: orderRepo,
		views:     views,
		logger:    logger,
	}
}

func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, id uint, status string) (*dto.OrderResponse, error) {
	if !domain.IsValidOrderStatus(status) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid order status %q", status))
	}

	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = status

	updated, err := uc.orderRepo.Update(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", id),
		zap.String("from", previous),
		zap.String("to", status))

	return uc.views.BuildOrderView(ctx, updated)
}
