package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/SickWater/clothing-store/metrics"
	"github.com/SickWater/clothing-store/models"
)

// StockService mutates a product's per-size stock counts, independent of
// any cart or order flow. Fulfillment and restocking use it directly.
type StockService struct {
	products ProductStore
}

// NewStockService creates a stock service over the given store.
func NewStockService(products ProductStore) *StockService {
	return &StockService{products: products}
}

// Decrease reduces the stock of one size by quantity, flooring at zero,
// and records the units as purchased. Products without sizes are
// persisted unchanged; their InStock flag is managed manually.
func (s *StockService) Decrease(ctx context.Context, productID uint, size string, quantity int) (*models.Product, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if len(product.Sizes) > 0 {
		entry := product.SizeEntry(size)
		if entry == nil {
			return nil, fmt.Errorf("size %s: %w", size, ErrNotFound)
		}
		entry.Stock -= quantity
		if entry.Stock < 0 {
			entry.Stock = 0
		}
		product.PurchaseCount += quantity
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	metrics.StockAdjustments.WithLabelValues("decrease").Inc()
	log.WithFields(log.Fields{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}).Info("stock decreased")

	return product, nil
}

// Increase raises the stock of one size by quantity, for restocking.
// Same size rules as Decrease.
func (s *StockService) Increase(ctx context.Context, productID uint, size string, quantity int) (*models.Product, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if len(product.Sizes) > 0 {
		entry := product.SizeEntry(size)
		if entry == nil {
			return nil, fmt.Errorf("size %s: %w", size, ErrNotFound)
		}
		entry.Stock += quantity
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	metrics.StockAdjustments.WithLabelValues("increase").Inc()
	log.WithFields(log.Fields{
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}).Info("stock increased")

	return product, nil
}
