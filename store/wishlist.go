package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SickWater/clothing-store/models"
)

// WishlistStore is the gorm-backed wishlist store.
type WishlistStore struct {
	db *gorm.DB
}

// NewWishlistStore creates a wishlist store over the given connection.
func NewWishlistStore(db *gorm.DB) *WishlistStore {
	return &WishlistStore{db: db}
}

func (s *WishlistStore) ItemsByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Product").Preload("Product.Sizes").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *WishlistStore) Add(ctx context.Context, userID, productID uint) error {
	// Duplicate adds are silently absorbed by the unique pair index.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.WishlistItem{UserID: userID, ProductID: productID}).Error
}

func (s *WishlistStore) Remove(ctx context.Context, userID, productID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

func (s *WishlistStore) Clear(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.WishlistItem{}).Error
}
