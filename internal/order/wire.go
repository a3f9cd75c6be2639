package order

import (
	"database/sql"

	"go.uber.org/zap"

	"ordersvc/internal/breaker"
	"ordersvc/internal/config"
	"ordersvc/internal/gateway"
	"ordersvc/internal/infrastructure/kafka"
	"ordersvc/internal/order/controller"
	"ordersvc/internal/order/repository"
	"ordersvc/internal/order/service"
	"ordersvc/internal/order/usecase"
)

// NewModule wires the order feature. Exactly one breaker is created per
// downstream dependency here; the gateways only borrow them, so every call
// site shares the same failure counters.
func NewModule(db *sql.DB, cfg *config.Config, producer kafka.Producer, logger *zap.Logger) *controller.OrderController {
	productBreaker := breaker.New("products",
		cfg.Breaker.FailureThreshold, cfg.Breaker.RecoveryTimeout, cfg.Breaker.HalfOpenSuccesses, logger)
	userBreaker := breaker.New("users",
		cfg.Breaker.FailureThreshold, cfg.Breaker.RecoveryTimeout, cfg.Breaker.HalfOpenSuccesses, logger)

	productGateway := gateway.NewProductGateway(cfg.Services, cfg.Breaker.Mode, productBreaker, logger)
	userGateway := gateway.NewUserGateway(cfg.Services, cfg.Breaker.Mode, userBreaker, logger)

	orderRepo := repository.NewMySQLOrderRepository(db)
	views := service.NewAggregationService(productGateway, logger)

	return controller.NewOrderController(
		usecase.NewCreateOrderUseCase(orderRepo, productGateway, userGateway, logger),
		usecase.NewListOrdersUseCase(orderRepo, views),
		usecase.NewGetOrderUseCase(orderRepo, views),
		usecase.NewUpdateOrderStatusUseCase(orderRepo, views, logger),
		usecase.NewDeleteOrderUseCase(orderRepo, logger),
		usecase.NewRequestPaymentUseCase(orderRepo, producer, cfg.Kafka.PaymentRequests, logger),
		logger,
	)
}
