package usecase

import (
	"context"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) (*domain.Order, error)
	Delete(ctx context.Context, order *domain.Order) error
}

type ProductGateway interface {
	GetMany(ctx context.Context, ids []int) ([]domain.Product, error)
}

type UserGateway interface {
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
}

// OrderViewBuilder is the aggregation service seen from the read paths.
type OrderViewBuilder interface {
	BuildOrderView(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error)
}

// PaymentPublisher is the broker seen from the payment-request path.
type PaymentPublisher interface {
	Publish(ctx context.Context, queue string, message []byte) error
}
