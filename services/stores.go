package services

import (
	"context"

	"github.com/SickWater/clothing-store/models"
)

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	OnSale   *bool
}

// ProductStore provides read access and whole-product persistence for the
// catalog. Implementations return ErrNotFound for missing products and
// must run the model's save-time hooks (InStock recompute) on Save.
type ProductStore interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	ListActive(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	Save(ctx context.Context, p *models.Product) error
	IncrementViews(ctx context.Context, id uint) error
}

// CartStore persists one user's cart lines as a unit.
type CartStore interface {
	// ItemsByUser returns the cart lines with Product populated,
	// oldest first.
	ItemsByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	SaveItem(ctx context.Context, item *models.CartItem) error
	RemoveItem(ctx context.Context, userID, productID uint, size string) error
	Clear(ctx context.Context, userID uint) error
}

// OrderStore provides read access and status updates for orders.
type OrderStore interface {
	// List returns orders newest first, optionally filtered by status,
	// along with the total count for pagination.
	List(ctx context.Context, status string, limit, offset int) ([]models.Order, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// CheckoutTx is the unit of work available inside a checkout or
// cancellation transaction. Product reads take a row lock so the stock
// re-check holds until commit.
type CheckoutTx interface {
	ProductForUpdate(id uint) (*models.Product, error)
	SaveProduct(p *models.Product) error
	CreateOrder(o *models.Order) error
	FindOrder(id uint) (*models.Order, error)
	UpdateOrderStatus(id uint, status string) error
	ClearCart(userID uint) error
}

// CheckoutStore runs fn atomically: either every write inside fn is
// persisted or none are.
type CheckoutStore interface {
	Transact(ctx context.Context, fn func(tx CheckoutTx) error) error
}

// UserStore persists user accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// WishlistStore persists a user's saved products.
type WishlistStore interface {
	ItemsByUser(ctx context.Context, userID uint) ([]models.WishlistItem, error)
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}
