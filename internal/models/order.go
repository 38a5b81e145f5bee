package models

const (
	OrderStatusPending   = "pending"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is read-only for this service: orders are created by the storefront
// flow, the accounting side only aggregates them.
type Order struct {
	ID           string `gorm:"primaryKey;size:64" json:"id"`
	ClientID     string `gorm:"size:64;index" json:"clientId"`
	Status       string `gorm:"size:20;index" json:"status"`
	Total        Amount `json:"total"`
	DeliveryDate string `gorm:"size:10" json:"deliveryDate"`
	CreatedAt    string `gorm:"size:40" json:"createdAt"`
}

type DeliveredOrder struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	OrderID     string `gorm:"size:64;index" json:"orderId"`
	PaidAmount  Amount `json:"paidAmount"`
	DeliveredAt string `gorm:"size:40;index" json:"deliveredAt"` // RFC3339
}
