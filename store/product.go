package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

// ProductStore is the gorm-backed catalog store.
type ProductStore struct {
	db *gorm.DB
}

// NewProductStore creates a product store over the given connection.
func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Preload("Sizes").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, services.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductStore) ListActive(ctx context.Context, filter services.ProductFilter) ([]models.Product, error) {
	query := s.db.WithContext(ctx).Preload("Sizes").
		Where("is_active = ?", true).
		Order("created_at DESC")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.OnSale != nil {
		query = query.Where("sale = ?", *filter.OnSale)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Save(ctx context.Context, p *models.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveProduct(tx, p)
	})
}

func (s *ProductStore) IncrementViews(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// saveProduct persists the product and makes its size rows match the
// in-memory slice exactly, dropping variants that were removed.
func saveProduct(tx *gorm.DB, p *models.Product) error {
	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error; err != nil {
		return err
	}

	keep := make([]uint, 0, len(p.Sizes))
	for _, size := range p.Sizes {
		if size.ID != 0 {
			keep = append(keep, size.ID)
		}
	}
	query := tx.Where("product_id = ?", p.ID)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	return query.Delete(&models.ProductSize{}).Error
}
