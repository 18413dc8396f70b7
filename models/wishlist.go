package models

import (
	"time"
)

// WishlistItem links a user to a saved product. At most one entry per
// (user, product) pair.
type WishlistItem struct {
	ID        uint `json:"-" gorm:"primaryKey"`
	UserID    uint `json:"-" gorm:"uniqueIndex:idx_wishlist_entry"`
	ProductID uint `json:"product_id" gorm:"uniqueIndex:idx_wishlist_entry"`

	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`

	CreatedAt time.Time `json:"created_at"`
}

// WishlistInput identifies the product to add or remove
type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}
