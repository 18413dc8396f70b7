package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SickWater/clothing-store/models"
	"github.com/SickWater/clothing-store/services"
)

const testUserID = uint(7)

func newTestProduct(id uint, price float64, sizes ...models.ProductSize) *models.Product {
	p := &models.Product{
		ID:       id,
		Name:     "Test Hoodie",
		Price:    price,
		IsActive: true,
		InStock:  true,
		Sizes:    sizes,
	}
	p.RefreshInStock()
	return p
}

func newCartFixture(products ...*models.Product) (*services.CartService, *fakeCartStore, *fakeProductStore) {
	carts := newFakeCartStore()
	store := newFakeProductStore(products...)
	return services.NewCartService(carts, store), carts, store
}

func TestCartAddMergesByProductAndSize(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)

	items, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartAddDifferentSizesStaySeparate(t *testing.T) {
	product := newTestProduct(1, 100,
		models.ProductSize{Size: "M", Stock: 10},
		models.ProductSize{Size: "L", Stock: 10},
	)
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)
	items, err := svc.Add(ctx, testUserID, 1, "L", 1)
	require.NoError(t, err)

	assert.Len(t, items, 2)
}

func TestCartAddSnapshotsSalePrice(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 5})
	product.Sale = true
	product.SalePrice = 60
	svc, _, _ := newCartFixture(product)

	items, err := svc.Add(context.Background(), testUserID, 1, "M", 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 60.0, items[0].Price)
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 5})
	svc, _, _ := newCartFixture(product)

	items, err := svc.Add(context.Background(), testUserID, 1, "M", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartAddRejectsMissingProduct(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.Add(context.Background(), testUserID, 99, "M", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartAddRejectsInactiveProduct(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 5})
	product.IsActive = false
	svc, _, _ := newCartFixture(product)

	_, err := svc.Add(context.Background(), testUserID, 1, "M", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartAddRejectsUnknownSize(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 5})
	svc, _, _ := newCartFixture(product)

	_, err := svc.Add(context.Background(), testUserID, 1, "XXL", 1)
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
}

func TestCartAddRejectsInsufficientStock(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "L", Stock: 0})
	svc, _, _ := newCartFixture(product)

	_, err := svc.Add(context.Background(), testUserID, 1, "L", 1)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestCartAddChecksStockAgainstMergedQuantity(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 3})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 2)
	require.NoError(t, err)

	_, err = svc.Add(ctx, testUserID, 1, "M", 2)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestCartAddNoSizeProductUsesInStockFlag(t *testing.T) {
	product := newTestProduct(1, 100)
	svc, _, _ := newCartFixture(product)

	items, err := svc.Add(context.Background(), testUserID, 1, "", 2)
	require.NoError(t, err)
	require.Len(t, items, 1)

	product.InStock = false
	_, err = svc.Add(context.Background(), testUserID+1, 1, "", 1)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestCartUpdateSetsQuantity(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)

	items, err := svc.Update(ctx, testUserID, 1, "M", 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartUpdateToZeroRemovesItem(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 2)
	require.NoError(t, err)

	items, err := svc.Update(ctx, testUserID, 1, "M", 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartUpdateMissingItemIsNotFound(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)

	_, err := svc.Update(context.Background(), testUserID, 1, "M", 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartUpdateRechecksStock(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 4})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 2)
	require.NoError(t, err)

	_, err = svc.Update(ctx, testUserID, 1, "M", 9)
	assert.ErrorIs(t, err, services.ErrInsufficientStock)
}

func TestCartClearIsIdempotent(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, testUserID))
	items, err := svc.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Second clear on an already empty cart must not fail.
	require.NoError(t, svc.Clear(ctx, testUserID))
	items, err = svc.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartIsPerUser(t *testing.T) {
	product := newTestProduct(1, 100, models.ProductSize{Size: "M", Stock: 10})
	svc, _, _ := newCartFixture(product)
	ctx := context.Background()

	_, err := svc.Add(ctx, testUserID, 1, "M", 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, testUserID+1, 1, "M", 3)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, testUserID))

	other, err := svc.Get(ctx, testUserID+1)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 3, other[0].Quantity)
}
