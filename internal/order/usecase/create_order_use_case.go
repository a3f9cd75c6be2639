package usecase

import (
	"context"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
)

// CreateOrderUseCase prices and persists a new order. Product resolution is
// mandatory: without exact prices no order is created. Customer resolution
// is optional: a failed or empty lookup just leaves the snapshot absent.
type CreateOrderUseCase struct {
	orderRepo OrderRepository
	products  ProductGateway
	users     UserGateway
	logger    *zap.Logger
}

func NewCreateOrderUseCase(orderRepo OrderRepository, products ProductGateway, users UserGateway, logger *zap.Logger) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		products:  products,
		users:     users,
		logger:    logger,
	}
}

func (uc *CreateOrderUseCase) Execute(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := dto.ValidateCreateOrderRequest(req); err != nil {
		return nil, err
	}

	products, err := uc.products.GetMany(ctx, req.ProductIDs)
	if err != nil {
		uc.logger.Warn("product resolution failed, aborting order creation", zap.Error(err))
		return nil, err
	}

	totalPrice := 0.0
	details := make([]dto.ProductDetail, 0, len(products))
	for _, p := range products {
		totalPrice += p.Price
		details = append(details, dto.ProductDetail{ID: p.ID, Name: p.Name, Price: p.Price})
	}

	order := &domain.Order{
		TotalPrice: totalPrice,
		ProductIDs: domain.JoinProductIDs(req.ProductIDs),
		Status:     domain.OrderStatusReceived,
	}

	if req.CPF != nil {
		user, err := uc.users.GetByCPF(ctx, *req.CPF)
		if err != nil {
			// customer enrichment never blocks creation
			uc.logger.Warn("customer lookup failed, creating order without customer info", zap.Error(err))
		} else if user != nil {
			order.UserName = &user.Username
			order.UserEmail = &user.Email
			order.UserCPF = &user.CPF
		}
	}

	saved, err := uc.orderRepo.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.Uint("orderId", saved.ID),
		zap.Float64("totalPrice", saved.TotalPrice),
		zap.Bool("hasCustomerInfo", saved.UserName != nil))

	view := &dto.OrderResponse{
		ID:         saved.ID,
		TotalPrice: saved.TotalPrice,
		Status:     saved.Status,
		Products:   details,
		CreatedAt:  saved.CreatedAt,
		UpdatedAt:  saved.UpdatedAt,
	}
	if saved.UserName != nil || saved.UserEmail != nil {
		view.UserInfo = &dto.UserInfo{
			Name:  saved.UserName,
			Email: saved.UserEmail,
		}
	}

	return view, nil
}
