package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	updatedAt := time.Now()
	address := "42 Baker Street"
	summary := "2x widgets"

	order := Order{
		ID:              1,
		ExternalOrderID: "ext-1",
		CompanyID:       10,
		CustomerName:    "John Doe",
		CustomerEmail:   "john@example.com",
		DeliveryAddress: &address,
		ItemSummary:     &summary,
		CurrentStatus:   OrderStatusPending,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "ext-1", order.ExternalOrderID)
	assert.Equal(t, uint(10), order.CompanyID)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.Equal(t, "john@example.com", order.CustomerEmail)
	assert.Equal(t, &address, order.DeliveryAddress)
	assert.Equal(t, &summary, order.ItemSummary)
	assert.Equal(t, OrderStatusPending, order.CurrentStatus)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, updatedAt, order.UpdatedAt)
}

func TestOrder_NullableFields(t *testing.T) {
	order := Order{
		ID:              1,
		ExternalOrderID: "ext-2",
		CompanyID:       10,
		CustomerName:    "Jane Smith",
		CustomerEmail:   "jane@example.com",
		DeliveryAddress: nil,
		ItemSummary:     nil,
		CurrentStatus:   OrderStatusDelivered,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	assert.Nil(t, order.DeliveryAddress)
	assert.Nil(t, order.ItemSummary)
}

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, "PENDING", OrderStatusPending)
	assert.Equal(t, "IN_TRANSIT", OrderStatusInTransit)
	assert.Equal(t, "OUT_FOR_DELIVERY", OrderStatusOutForDelivery)
	assert.Equal(t, "DELIVERED", OrderStatusDelivered)
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPending))
	assert.True(t, IsValidOrderStatus(OrderStatusInTransit))
	assert.True(t, IsValidOrderStatus(OrderStatusOutForDelivery))
	assert.True(t, IsValidOrderStatus(OrderStatusDelivered))

	assert.False(t, IsValidOrderStatus("SHIPPED"))
	assert.False(t, IsValidOrderStatus("pending"))
	assert.False(t, IsValidOrderStatus(""))
}
