package usecase

import (
	"context"

	"ordersvc/internal/dto"
)

type ListOrdersUseCase struct {
	orderRepo OrderRepository
	views     OrderViewBuilder
}

func NewListOrdersUseCase(orderRepo OrderRepository, views OrderViewBuilder) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo, views: views}
}

func (uc *ListOrdersUseCase) Execute(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		view, err := uc.views.BuildOrderView(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}
