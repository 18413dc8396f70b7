package models

import (
	"time"
)

// User represents user data in the system
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-"`
	Role         string `json:"role" gorm:"default:user"`
	Phone        string `json:"phone,omitempty"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	Cart     []CartItem     `json:"cart,omitempty" gorm:"foreignKey:UserID"`
	Wishlist []WishlistItem `json:"wishlist,omitempty" gorm:"foreignKey:UserID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRegister holds data needed for registration
type UserRegister struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserLogin holds data needed for login
type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
