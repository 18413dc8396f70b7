package services_test

import (
	"context"
	"sort"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

// In-memory stores backing the service tests.

type fakeProductStore struct {
	products map[uint]*models.Product
}

func newFakeProductStore(products ...*models.Product) *fakeProductStore {
	s := &fakeProductStore{products: make(map[uint]*models.Product)}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeProductStore) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return p, nil
}

func (s *fakeProductStore) ListActive(ctx context.Context, filter services.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range s.products {
		if !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.OnSale != nil && p.Sale != *filter.OnSale {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeProductStore) Save(ctx context.Context, p *models.Product) error {
	// Mirror the save-time hook the gorm store runs.
	p.RefreshInStock()
	s.products[p.ID] = p
	return nil
}

func (s *fakeProductStore) IncrementViews(ctx context.Context, id uint) error {
	if p, ok := s.products[id]; ok {
		p.Views++
	}
	return nil
}

func cloneProduct(p *models.Product) *models.Product {
	clone := *p
	clone.Sizes = append([]models.ProductSize(nil), p.Sizes...)
	return &clone
}

type fakeCartStore struct {
	items  []models.CartItem
	nextID uint
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{nextID: 1}
}

func (s *fakeCartStore) ItemsByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeCartStore) SaveItem(ctx context.Context, item *models.CartItem) error {
	for i := range s.items {
		if s.items[i].UserID == item.UserID &&
			s.items[i].ProductID == item.ProductID &&
			s.items[i].Size == item.Size {
			id := s.items[i].ID
			s.items[i] = *item
			s.items[i].ID = id
			return nil
		}
	}
	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, *item)
	return nil
}

func (s *fakeCartStore) RemoveItem(ctx context.Context, userID, productID uint, size string) error {
	for i := range s.items {
		if s.items[i].UserID == userID && s.items[i].ProductID == productID && s.items[i].Size == size {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *fakeCartStore) Clear(ctx context.Context, userID uint) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

type fakeOrderStore struct {
	orders map[uint]*models.Order
	nextID uint
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint]*models.Order), nextID: 1}
}

func (s *fakeOrderStore) List(ctx context.Context, status string, limit, offset int) ([]models.Order, int64, error) {
	var all []models.Order
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		all = append(all, *o)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (s *fakeOrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *fakeOrderStore) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return o, nil
}

func (s *fakeOrderStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	o, ok := s.orders[id]
	if !ok {
		return services.ErrNotFound
	}
	o.Status = status
	return nil
}

// fakeCheckoutStore runs the callback against the same in-memory state
// the other fakes share, restoring a snapshot when the callback fails so
// the all-or-nothing contract holds in tests too.
type fakeCheckoutStore struct {
	products *fakeProductStore
	orders   *fakeOrderStore
	carts    *fakeCartStore
}

func (s *fakeCheckoutStore) Transact(ctx context.Context, fn func(tx services.CheckoutTx) error) error {
	productSnapshot := make(map[uint]*models.Product, len(s.products.products))
	for id, p := range s.products.products {
		productSnapshot[id] = cloneProduct(p)
	}
	orderSnapshot := make(map[uint]*models.Order, len(s.orders.orders))
	for id, o := range s.orders.orders {
		clone := *o
		clone.Items = append([]models.OrderItem(nil), o.Items...)
		orderSnapshot[id] = &clone
	}
	cartSnapshot := append([]models.CartItem(nil), s.carts.items...)

	err := fn(&fakeCheckoutTx{store: s})
	if err != nil {
		s.products.products = productSnapshot
		s.orders.orders = orderSnapshot
		s.carts.items = cartSnapshot
	}
	return err
}

type fakeCheckoutTx struct {
	store *fakeCheckoutStore
}

func (t *fakeCheckoutTx) ProductForUpdate(id uint) (*models.Product, error) {
	return t.store.products.FindByID(context.Background(), id)
}

func (t *fakeCheckoutTx) SaveProduct(p *models.Product) error {
	return t.store.products.Save(context.Background(), p)
}

func (t *fakeCheckoutTx) CreateOrder(o *models.Order) error {
	o.ID = t.store.orders.nextID
	t.store.orders.nextID++
	t.store.orders.orders[o.ID] = o
	return nil
}

func (t *fakeCheckoutTx) FindOrder(id uint) (*models.Order, error) {
	return t.store.orders.FindByID(context.Background(), id)
}

func (t *fakeCheckoutTx) UpdateOrderStatus(id uint, status string) error {
	return t.store.orders.UpdateStatus(context.Background(), id, status)
}

func (t *fakeCheckoutTx) ClearCart(userID uint) error {
	return t.store.carts.Clear(context.Background(), userID)
}
