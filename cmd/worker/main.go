package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ordersvc/internal/commons"
	"ordersvc/internal/config"
	"ordersvc/internal/infrastructure/kafka"
	"ordersvc/internal/infrastructure/logger"
	"ordersvc/internal/payment"
)

// The payment response worker is a separate process from the API server. It
// owns a single consumer on the payment_responses queue, handles one message
// at a time and applies outcomes through the order service's HTTP API.
func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	updater := payment.NewHTTPOrderUpdater(
		cfg.Services.OrdersURL,
		&http.Client{Timeout: cfg.Services.HTTPTimeout},
		zapLogger,
	)
	handler := payment.NewResponseHandler(updater, zapLogger)

	consumer := kafka.NewConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.PaymentResponses,
		cfg.Kafka.ResponseGroupID,
		zapLogger,
	)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger.Info("payment response worker started",
		zap.String("queue", cfg.Kafka.PaymentResponses))

	if err := consumer.Run(ctx, handler.Handle); err != nil {
		zapLogger.Fatal("consumer stopped with error", zap.Error(err))
	}

	zapLogger.Info("payment response worker stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
