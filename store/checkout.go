package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

// CheckoutStore runs checkout and cancellation units of work inside a
// single database transaction. Product reads take FOR UPDATE row locks so
// the stock re-check holds until commit.
type CheckoutStore struct {
	db *gorm.DB
}

// NewCheckoutStore creates a checkout store over the given connection.
func NewCheckoutStore(db *gorm.DB) *CheckoutStore {
	return &CheckoutStore{db: db}
}

func (s *CheckoutStore) Transact(ctx context.Context, fn func(tx services.CheckoutTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutTx{tx: tx})
	})
}

type checkoutTx struct {
	tx *gorm.DB
}

func (t *checkoutTx) ProductForUpdate(id uint) (*models.Product, error) {
	var product models.Product
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Sizes").
		First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (t *checkoutTx) SaveProduct(p *models.Product) error {
	return saveProduct(t.tx, p)
}

func (t *checkoutTx) CreateOrder(o *models.Order) error {
	return t.tx.Create(o).Error
}

func (t *checkoutTx) FindOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (t *checkoutTx) UpdateOrderStatus(id uint, status string) error {
	return t.tx.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (t *checkoutTx) ClearCart(userID uint) error {
	return t.tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
