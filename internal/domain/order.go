package domain

import (
	"strconv"
	"strings"
	"time"
)

// Order is a stored purchase. ProductIDs and TotalPrice are fixed at
// creation time; only Status and UpdatedAt change afterwards.
type Order struct {
	ID         uint
	TotalPrice float64
	ProductIDs string
	Status     string
	UserName   *string
	UserEmail  *string
	UserCPF    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const (
	OrderStatusReceived        = "RECEIVED"
	OrderStatusPreparing       = "PREPARING"
	OrderStatusReady           = "READY"
	OrderStatusFinished        = "FINISHED"
	OrderStatusAwaitingPayment = "AWAITING_PAYMENT"
	OrderStatusPaid            = "PAID"
	OrderStatusPaymentFailed   = "PAYMENT_FAILED"
	OrderStatusPaymentError    = "PAYMENT_ERROR"
)

var orderStatuses = map[string]struct{}{
	OrderStatusReceived:        {},
	OrderStatusPreparing:       {},
	OrderStatusReady:           {},
	OrderStatusFinished:        {},
	OrderStatusAwaitingPayment: {},
	OrderStatusPaid:            {},
	OrderStatusPaymentFailed:   {},
	OrderStatusPaymentError:    {},
}

// IsValidOrderStatus reports whether s is a member of the status enum.
// Transition legality between statuses is deliberately not checked anywhere.
func IsValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}

// JoinProductIDs serializes product ids into the comma-delimited form the
// store uses. Order and duplicates are preserved.
func JoinProductIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// ParseProductIDs is the inverse of JoinProductIDs. An empty string yields
// an empty slice.
func ParseProductIDs(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, len(parts))
	for i, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
