package dto

import "time"

type CreateOrderRequest struct {
	ExternalOrderID string `json:"external_order_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	DeliveryAddress string `json:"delivery_address"`
	ItemSummary     string `json:"item_summary"`
	InitialStatus   string `json:"initial_status"`
	BusinessEmail   string `json:"business_email"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type StatusUpdateRequest struct {
	ExternalOrderID string     `json:"external_order_id"`
	NewStatus       string     `json:"new_status"`
	Note            string     `json:"note"`
	Timestamp       *time.Time `json:"timestamp"`
}

type StatusUpdateResponse struct {
	Message   string `json:"message"`
	OrderID   string `json:"order_id"`
	NewStatus string `json:"new_status"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StatusEventResponse struct {
	Status    string    `json:"status"`
	Note      *string   `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderResponse struct {
	OrderID         string                `json:"order_id"`
	Customer        CustomerResponse      `json:"customer"`
	DeliveryAddress *string               `json:"delivery_address"`
	ItemSummary     *string               `json:"item_summary"`
	CurrentStatus   string                `json:"current_status"`
	CreatedAt       time.Time             `json:"created_at"`
	StatusHistory   []StatusEventResponse `json:"status_history"`
}
