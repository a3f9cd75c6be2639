package payment

import "ordersvc/internal/domain"

// Queue names shared by this service and the payment processor.
const (
	RequestQueue  = "payment_requests"
	ResponseQueue = "payment_responses"
)

type CustomerInfo struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	CPF   *string `json:"cpf"`
}

// Request is the wire record published when payment is solicited for an
// order. Customer fields are whatever snapshot the order carries; each is
// independently nullable.
type Request struct {
	OrderID      uint         `json:"order_id"`
	Amount       float64      `json:"amount"`
	CustomerInfo CustomerInfo `json:"customer_info"`
}

// Response is the wire record the payment processor publishes with the
// outcome for an order.
type Response struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// Payment outcome codes as sent by the payment processor.
const (
	OutcomeApproved = "APPROVED"
	OutcomePending  = "PENDING"
	OutcomeRejected = "REJECTED"
	OutcomeError    = "ERROR"
)

var outcomeToOrderStatus = map[string]string{
	OutcomeApproved: domain.OrderStatusPaid,
	OutcomePending:  domain.OrderStatusAwaitingPayment,
	OutcomeRejected: domain.OrderStatusPaymentFailed,
	OutcomeError:    domain.OrderStatusPaymentError,
}

// OrderStatusForOutcome maps a payment outcome code onto an order status.
// Unmapped codes report ok=false and must not drive any status change.
func OrderStatusForOutcome(code string) (string, bool) {
	status, ok := outcomeToOrderStatus[code]
	return status, ok
}
