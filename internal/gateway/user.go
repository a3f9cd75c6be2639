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

// UserGateway looks up customers by CPF. Customer data only enriches an
// order, so the resilient variant absorbs every failure and reports
// "no user" instead.
type UserGateway interface {
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
}

type HTTPUserGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPUserGateway(baseURL string, client *http.Client, logger *zap.Logger) *HTTPUserGateway {
	return &HTTPUserGateway{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// GetByCPF returns (nil, nil) when the user does not exist; a 404 from the
// users service is an answer, not a failure.
func (g *HTTPUserGateway) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	url := fmt.Sprintf("%s/users/cpf/%s", g.baseURL, cpf)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewInternalError("building user request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("users service call failed", zap.String("url", url), zap.Error(err))
		return nil, apperrors.NewUnavailableError("cannot connect to users service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("users service returned error status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewUnavailableError(
			fmt.Sprintf("users service returned status %d", resp.StatusCode), nil)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperrors.NewUnavailableError("decoding user response", err)
	}

	return &user, nil
}

// BreakerUserGateway guards a UserGateway with a shared circuit breaker.
// Unlike the product side, nothing propagates: circuit-open and underlying
// failures both degrade to a missing user, because customer enrichment must
// never block an order.
type BreakerUserGateway struct {
	next   UserGateway
	cb     *breaker.CircuitBreaker
	logger *zap.Logger
}

func NewBreakerUserGateway(next UserGateway, cb *breaker.CircuitBreaker, logger *zap.Logger) *BreakerUserGateway {
	return &BreakerUserGateway{next: next, cb: cb, logger: logger}
}

func (g *BreakerUserGateway) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	var user *domain.User
	err := g.cb.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		user, opErr = g.next.GetByCPF(ctx, cpf)
		return opErr
	})
	if err != nil {
		g.logger.Warn("user lookup degraded, continuing without customer info", zap.Error(err))
		return nil, nil
	}
	return user, nil
}
