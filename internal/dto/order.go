package dto

import "time"

type CreateOrderRequest struct {
	ProductIDs []int   `json:"product_ids" validate:"required,min=1,dive,gt=0"`
	CPF        *string `json:"cpf,omitempty" validate:"omitempty,len=11,numeric"`
}

type ProductDetail struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UserInfo struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	CPF   *string `json:"cpf,omitempty"`
}

// OrderResponse is the externally visible order view: local order state plus
// whatever downstream data was reachable when it was built.
type OrderResponse struct {
	ID         uint            `json:"id"`
	TotalPrice float64         `json:"total_price"`
	Status     string          `json:"status"`
	Products   []ProductDetail `json:"products"`
	UserInfo   *UserInfo       `json:"user_info,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type DeleteOrderResponse struct {
	Message string `json:"message"`
}

type PaymentRequestedResponse struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}
