package services

import (
	"context"

	"github.com/SickWater/clothing-store/models"
)

// CatalogService manages product records. Public reads see active
// products only; deletion is a soft flag so historical orders keep
// resolving.
type CatalogService struct {
	products ProductStore
}

// NewCatalogService creates a catalog service over the given store.
func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// List returns active products newest first, optionally filtered.
func (s *CatalogService) List(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	return s.products.ListActive(ctx, filter)
}

// GetActive returns one active product and bumps its view counter.
func (s *CatalogService) GetActive(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrNotFound
	}
	if err := s.products.IncrementViews(ctx, id); err == nil {
		product.Views++
	}
	return product, nil
}

// Create adds a new product to the catalog.
func (s *CatalogService) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if input.Sale && input.SalePrice <= 0 {
		return nil, Validationf("sale price is required for products on sale")
	}

	product := &models.Product{
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Sale:         input.Sale,
		SalePrice:    input.SalePrice,
		Category:     input.Category,
		ClothingType: input.ClothingType,
		Brand:        input.Brand,
		Image:        input.Image,
		IsActive:     true,
	}
	for _, size := range input.Sizes {
		product.Sizes = append(product.Sizes, models.ProductSize{
			Size:  size.Size,
			Stock: size.Stock,
		})
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	} else if len(product.Sizes) == 0 {
		product.InStock = true
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update overwrites a product's editable fields, sizes included.
func (s *CatalogService) Update(ctx context.Context, id uint, input models.ProductInput) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Sale = input.Sale
	product.SalePrice = input.SalePrice
	if input.Category != "" {
		product.Category = input.Category
	}
	if input.ClothingType != "" {
		product.ClothingType = input.ClothingType
	}
	product.Brand = input.Brand
	if input.Image != "" {
		product.Image = input.Image
	}
	if input.Sizes != nil {
		product.Sizes = product.Sizes[:0]
		for _, size := range input.Sizes {
			product.Sizes = append(product.Sizes, models.ProductSize{
				ProductID: product.ID,
				Size:      size.Size,
				Stock:     size.Stock,
			})
		}
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SoftDelete deactivates a product without removing it. Orders that
// reference it keep their snapshots.
func (s *CatalogService) SoftDelete(ctx context.Context, id uint) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	product.IsActive = false
	return s.products.Save(ctx, product)
}
