package usecase

import (
	"context"

	"go.uber.org/zap"
)

type DeleteOrderUseCase struct {
	orderRepo OrderRepository
	logger    *zap.Logger
}

func NewDeleteOrderUseCase(orderRepo OrderRepository, logger *zap.Logger) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *DeleteOrderUseCase) Execute(ctx context.Context, id uint) error {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.orderRepo.Delete(ctx, order); err != nil {
		return err
	}

	uc.logger.Info("order deleted", zap.Uint("orderId", id))
	return nil
}
