package models

import (
	"time"
)

// Order statuses. Pending orders move forward to delivered, or to
// cancelled before fulfillment. Delivered is terminal.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is an immutable record of a committed purchase. Only the status
// field changes after creation.
type Order struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderNumber string `json:"order_number" gorm:"uniqueIndex"`
	UserID      uint   `json:"user_id" gorm:"index"`

	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`

	Items  []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	Total  float64     `json:"total"`
	Status string      `json:"status" gorm:"default:pending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a frozen copy of product name and price at order time,
// insulated from later product edits.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   uint    `json:"-" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
