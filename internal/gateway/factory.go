package gateway

import (
	"net/http"

	"go.uber.org/zap"

	"ordersvc/internal/breaker"
	"ordersvc/internal/config"
)

const resilienceModeNone = "none"

// NewProductGateway selects the product gateway variant at construction
// time. The breaker instance is owned by the caller so that every gateway
// for the same dependency shares one failure counter.
func NewProductGateway(cfg config.ServicesConfig, mode string, cb *breaker.CircuitBreaker, logger *zap.Logger) ProductGateway {
	httpGateway := NewHTTPProductGateway(cfg.ProductsURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)

	if mode == resilienceModeNone {
		return httpGateway
	}
	return NewBreakerProductGateway(httpGateway, cb)
}

func NewUserGateway(cfg config.ServicesConfig, mode string, cb *breaker.CircuitBreaker, logger *zap.Logger) UserGateway {
	httpGateway := NewHTTPUserGateway(cfg.UsersURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger)

	if mode == resilienceModeNone {
		return httpGateway
	}
	return NewBreakerUserGateway(httpGateway, cb, logger)
}
