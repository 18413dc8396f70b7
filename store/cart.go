package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/SickWater/clothing-store/models"
)

// CartStore is the gorm-backed cart store. Each user's cart is the set of
// cart_items rows keyed by user id.
type CartStore struct {
	db *gorm.DB
}

// NewCartStore creates a cart store over the given connection.
func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

func (s *CartStore) ItemsByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").Preload("Product.Sizes").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartStore) SaveItem(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Omit("Product").Save(item).Error
}

func (s *CartStore) RemoveItem(ctx context.Context, userID, productID uint, size string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		Delete(&models.CartItem{}).Error
}

func (s *CartStore) Clear(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
