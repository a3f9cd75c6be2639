package usecase

import (
	"context"

	"ordersvc/internal/dto"
)

type GetOrderUseCase struct {
	orderRepo OrderRepository
	views     OrderViewBuilder
}

func NewGetOrderUseCase(orderRepo OrderRepository, views OrderViewBuilder) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, views: views}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.views.BuildOrderView(ctx, order)
}
