package models

import (
	"time"
)

// CartItem represents one line of a user's shopping cart. Price is a
// snapshot taken when the item was added; checkout re-resolves the live
// price and ignores it.
type CartItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	UserID    uint    `json:"-" gorm:"uniqueIndex:idx_cart_line"`
	ProductID uint    `json:"product_id" gorm:"uniqueIndex:idx_cart_line"`
	Size      string  `json:"size,omitempty" gorm:"uniqueIndex:idx_cart_line"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItemInput holds data for adding/updating cart items
type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is the snapshot price times quantity, for display only.
func (i *CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
