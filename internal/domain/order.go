package domain

import "time"

type Order struct {
	ID              uint
	ExternalOrderID string
	CompanyID       uint
	CustomerName    string
	CustomerEmail   string
	DeliveryAddress *string
	ItemSummary     *string
	CurrentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const (
	OrderStatusPending        = "PENDING"
	OrderStatusInTransit      = "IN_TRANSIT"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
)

var validOrderStatuses = map[string]bool{
	OrderStatusPending:        true,
	OrderStatusInTransit:      true,
	OrderStatusOutForDelivery: true,
	OrderStatusDelivered:      true,
}

// IsValidOrderStatus reports whether s is a member of the fixed status
// enumeration.
func IsValidOrderStatus(s string) bool {
	return validOrderStatuses[s]
}
