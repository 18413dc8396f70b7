package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/SickWater/clothing-store/models"
)

// CartService maintains a stock-aware list of intended purchases for one
// user. Every operation works on the caller's cart only.
type CartService struct {
	carts    CartStore
	products ProductStore
}

// NewCartService creates a cart service over the given stores.
func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the user's cart lines with product data populated.
func (s *CartService) Get(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.carts.ItemsByUser(ctx, userID)
}

// Add puts quantity units of a product (and size, when the product has
// sizes) into the cart. Adding an existing (product, size) pair merges
// into the existing line instead of duplicating it. The line's price is
// snapshotted from the product's current price at add time.
func (s *CartService) Add(ctx context.Context, userID, productID uint, size string, quantity int) ([]models.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, Validationf("quantity must be at least 1")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrNotFound
	}

	// Work out what quantity the cart line would hold after the add, so
	// the stock check covers the merged total, not just the increment.
	items, err := s.carts.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing := findCartItem(items, productID, size)

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if len(product.Sizes) > 0 {
		if size == "" {
			return nil, Validationf("size is required for %s", product.Name)
		}
		entry := product.SizeEntry(size)
		if entry == nil {
			return nil, Validationf("size %s not available for %s", size, product.Name)
		}
		if entry.Stock < newQuantity {
			return nil, ErrInsufficientStock
		}
	} else if !product.InStock {
		return nil, ErrInsufficientStock
	}

	if existing != nil {
		existing.Quantity = newQuantity
		err = s.carts.SaveItem(ctx, existing)
	} else {
		err = s.carts.SaveItem(ctx, &models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Size:      size,
			Quantity:  quantity,
			Price:     product.CurrentPrice(),
		})
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"user_id":    userID,
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	}).Info("cart item added")

	return s.carts.ItemsByUser(ctx, userID)
}

// Update sets the quantity of an existing cart line. A quantity of zero
// or less removes the line.
func (s *CartService) Update(ctx context.Context, userID, productID uint, size string, quantity int) ([]models.CartItem, error) {
	items, err := s.carts.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	item := findCartItem(items, productID, size)
	if item == nil {
		return nil, ErrNotFound
	}

	if quantity <= 0 {
		if err := s.carts.RemoveItem(ctx, userID, productID, size); err != nil {
			return nil, err
		}
		return s.carts.ItemsByUser(ctx, userID)
	}

	// Re-check stock against the new quantity. If the product or its size
	// entry has disappeared since the add, the line is left unconstrained
	// and checkout settles it.
	product, err := s.products.FindByID(ctx, productID)
	if err == nil && len(product.Sizes) > 0 {
		if entry := product.SizeEntry(size); entry != nil && entry.Stock < quantity {
			return nil, ErrInsufficientStock
		}
	}

	item.Quantity = quantity
	if err := s.carts.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return s.carts.ItemsByUser(ctx, userID)
}

// Clear empties the cart. Clearing an already empty cart is a no-op.
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.carts.Clear(ctx, userID)
}

func findCartItem(items []models.CartItem, productID uint, size string) *models.CartItem {
	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size {
			return &items[i]
		}
	}
	return nil
}
