package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"ordersvc/internal/breaker"
	"ordersvc/internal/domain"
	apperrors "ordersvc/internal/errors"
)

// ProductGateway resolves catalog products from the products service.
// Product data is mandatory for pricing, so every failure here is hard:
// callers get an error, never a partial result.
type ProductGateway interface {
	Get(ctx context.Context, id int) (*domain.Product, error)
	GetMany(ctx context.Context, ids []int) ([]domain.Product, error)
}

// HTTPProductGateway talks to the products service directly. The service
// only exposes a full-list endpoint; selection by id happens client-side.
type HTTPProductGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPProductGateway(baseURL string, client *http.Client, logger *zap.Logger) *HTTPProductGateway {
	return &HTTPProductGateway{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

func (g *HTTPProductGateway) fetchAll(ctx context.Context) ([]domain.Product, error) {
	url := g.baseURL + "/products/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("building products request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("products service call failed", zap.String("url", url), zap.Error(err))
		return nil, apperrors.NewUnavailableError("cannot connect to products service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("products service returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewUnavailableError(
			fmt.Sprintf("products service returned status %d", resp.StatusCode), nil)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, apperrors.NewUnavailableError("decoding products response", err)
	}

	return products, nil
}

func (g *HTTPProductGateway) Get(ctx context.Context, id int) (*domain.Product, error) {
	products, err := g.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
}

// GetMany resolves every requested id or fails. Order pricing must be exact,
// so a single missing id aborts the whole lookup.
func (g *HTTPProductGateway) GetMany(ctx context.Context, ids []int) ([]domain.Product, error) {
	all, err := g.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]domain.Product, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
		}
		products = append(products, p)
	}

	return products, nil
}

// BreakerProductGateway guards a ProductGateway with a shared circuit
// breaker. A rejected call surfaces as UnavailableError so callers treat it
// like any other downstream outage.
type BreakerProductGateway struct {
	next ProductGateway
	cb   *breaker.CircuitBreaker
}

func NewBreakerProductGateway(next ProductGateway, cb *breaker.CircuitBreaker) *BreakerProductGateway {
	return &BreakerProductGateway{next: next, cb: cb}
}

func (g *BreakerProductGateway) Get(ctx context.Context, id int) (*domain.Product, error) {
	var product *domain.Product
	err := g.cb.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		product, opErr = g.next.Get(ctx, id)
		return opErr
	})
	if err != nil {
		if breaker.IsCircuitOpen(err) {
			return nil, apperrors.NewUnavailableError("product service is currently unavailable", err)
		}
		return nil, err
	}
	return product, nil
}

func (g *BreakerProductGateway) GetMany(ctx context.Context, ids []int) ([]domain.Product, error) {
	var products []domain.Product
	err := g.cb.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		products, opErr = g.next.GetMany(ctx, ids)
		return opErr
	})
	if err != nil {
		if breaker.IsCircuitOpen(err) {
			return nil, apperrors.NewUnavailableError("product service is currently unavailable", err)
		}
		return nil, err
	}
	return products, nil
}
