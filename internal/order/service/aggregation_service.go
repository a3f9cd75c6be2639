package service

import (
	"context"

	"go.uber.org/zap"

	"ordersvc/internal/domain"
	"ordersvc/internal/dto"
	apperrors "ordersvc/internal/errors"
)

type ProductGateway interface {
	GetMany(ctx context.Context, ids []int) ([]domain.Product, error)
}

const placeholderProductName = "Unknown"

// AggregationService composes the public order view from a stored order plus
// a live catalog lookup. Reads must stay available when the catalog is down,
// so lookup failures degrade to placeholder entries instead of erroring.
// Order creation is the opposite: it refuses to price without real data.
type AggregationService struct {
	products ProductGateway
	logger   *zap.Logger
}

func NewAggregationService(products ProductGateway, logger *zap.Logger) *AggregationService {
	return &AggregationService{
		products: products,
		logger:   logger,
	}
}

func (s *AggregationService) BuildOrderView(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error) {
	ids, err := domain.ParseProductIDs(order.ProductIDs)
	if err != nil {
		return nil, apperrors.NewInternalError("stored product id list is malformed", err)
	}

	details := make([]dto.ProductDetail, 0, len(ids))
	if len(ids) > 0 {
		products, err := s.products.GetMany(ctx, ids)
		if err != nil {
			s.logger.Warn("product lookup failed, substituting placeholders",
				zap.Uint("orderId", order.ID),
				zap.Error(err))
			for _, id := range ids {
				details = append(details, dto.ProductDetail{ID: id, Name: placeholderProductName, Price: 0})
			}
		} else {
			for _, p := range products {
				details = append(details, dto.ProductDetail{ID: p.ID, Name: p.Name, Price: p.Price})
			}
		}
	}

	view := &dto.OrderResponse{
		ID:         order.ID,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		Products:   details,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}

	// the customer snapshot was captured at creation time and is never
	// re-fetched
	if order.UserName != nil || order.UserEmail != nil {
		view.UserInfo = &dto.UserInfo{
			Name:  order.UserName,
			Email: order.UserEmail,
		}
	}

	return view, nil
}
