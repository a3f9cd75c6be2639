package usecase

import (
	"context"
	"fmt"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

// Mock implementations shared by the use case tests.

type mockOrderRepository struct {
	SaveFunc     func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Order, error)
	ListFunc     func(ctx context.Context, limit, offset int) ([]domain.Order, error)
	UpdateFunc   func(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteFunc   func(ctx context.Context, order *domain.Order) error

	SaveCalls   int
	UpdateCalls int
	DeleteCalls int
}

func (m *mockOrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.SaveCalls++
	return m.SaveFunc(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	return m.ListFunc(ctx, limit, offset)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	m.UpdateCalls++
	return m.UpdateFunc(ctx, order)
}

func (m *mockOrderRepository) Delete(ctx context.Context, order *domain.Order) error {
	m.DeleteCalls++
	return m.DeleteFunc(ctx, order)
}

type mockProductGateway struct {
	GetManyFunc func(ctx context.Context, ids []int) ([]domain.Product, error)
}

func (m *mockProductGateway) GetMany(ctx context.Context, ids []int) ([]domain.Product, error) {
	return m.GetManyFunc(ctx, ids)
}

type mockUserGateway struct {
	GetByCPFFunc func(ctx context.Context, cpf string) (*domain.User, error)
}

func (m *mockUserGateway) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	return m.GetByCPFFunc(ctx, cpf)
}

type mockViewBuilder struct {
	BuildOrderViewFunc func(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error)
}

func (m *mockViewBuilder) BuildOrderView(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error) {
	if m.BuildOrderViewFunc != nil {
		return m.BuildOrderViewFunc(ctx, order)
	}
	return &dto.OrderResponse{
		ID:         order.ID,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
	}, nil
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, queue string, message []byte) error

	PublishCalls int
	LastQueue    string
	LastMessage  []byte
}

func (m *mockPublisher) Publish(ctx context.Context, queue string, message []byte) error {
	m.PublishCalls++
	m.LastQueue = queue
	m.LastMessage = message
	return m.PublishFunc(ctx, queue, message)
}

func notFoundRepo() *mockOrderRepository {
	return &mockOrderRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
		},
		DeleteFunc: func(ctx context.Context, order *domain.Order) error {
			return nil
		},
	}
}

func strPtr(s string) *string { return &s }
