package payment

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// HTTPOrderUpdater drives order status transitions through the order
// service's own update endpoint, keyed by order id with the new status as a
// query parameter.
type HTTPOrderUpdater struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPOrderUpdater(baseURL string, client *http.Client, logger *zap.Logger) *HTTPOrderUpdater {
	return &HTTPOrderUpdater{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

func (u *HTTPOrderUpdater) UpdateOrderStatus(ctx context.Context, orderID uint, status string) error {
	url := fmt.Sprintf("%s/orders/%d?status=%s", u.baseURL, orderID, status)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return fmt.Errorf("building order update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	u.logger.Debug("order status updated via order service",
		zap.Uint("orderId", orderID),
		zap.String("status", status))
	return nil
}
