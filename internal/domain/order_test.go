package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	updatedAt := time.Now()
	name := "John Doe"
	email := "john@example.com"

	order := Order{
		ID:         1,
		TotalPrice: 30.0,
		ProductIDs: "1,2",
		Status:     OrderStatusReceived,
		UserName:   &name,
		UserEmail:  &email,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, 30.0, order.TotalPrice)
	assert.Equal(t, "1,2", order.ProductIDs)
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Equal(t, &name, order.UserName)
	assert.Equal(t, &email, order.UserEmail)
	assert.Nil(t, order.UserCPF)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, updatedAt, order.UpdatedAt)
}

func TestOrder_WithoutCustomerSnapshot(t *testing.T) {
	order := Order{
		ID:         2,
		TotalPrice: 10.0,
		ProductIDs: "5",
		Status:     OrderStatusReceived,
	}

	assert.Nil(t, order.UserName)
	assert.Nil(t, order.UserEmail)
	assert.Nil(t, order.UserCPF)
}

func TestIsValidOrderStatus(t *testing.T) {
	valid := []string{
		OrderStatusReceived,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusFinished,
		OrderStatusAwaitingPayment,
		OrderStatusPaid,
		OrderStatusPaymentFailed,
		OrderStatusPaymentError,
	}
	for _, s := range valid {
		assert.True(t, IsValidOrderStatus(s), s)
	}

	assert.False(t, IsValidOrderStatus("BOGUS"))
	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("received"))
}

func TestJoinProductIDs(t *testing.T) {
	assert.Equal(t, "1,2,3", JoinProductIDs([]int{1, 2, 3}))
	assert.Equal(t, "7", JoinProductIDs([]int{7}))
	assert.Equal(t, "", JoinProductIDs(nil))
	// order and duplicates are preserved
	assert.Equal(t, "2,1,2", JoinProductIDs([]int{2, 1, 2}))
}

func TestParseProductIDs(t *testing.T) {
	ids, err := ParseProductIDs("5,6")
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 6}, ids)

	ids, err = ParseProductIDs("")
	assert.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = ParseProductIDs(" 1, 2 ")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	_, err = ParseProductIDs("1,x")
	assert.Error(t, err)
}
