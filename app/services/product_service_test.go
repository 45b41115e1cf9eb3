package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/app/services"
	"github.com/priyankmodi/storefront/pkg/apperr"
)

// newProductService wires the service without a cache so every call hits
// the store directly.
func newProductService(store *fakeProductStore) *services.ProductService {
	return services.NewProductService(store, nil, 0)
}

func TestProductUpdateMergesPatch(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	p := store.add(models.Product{Name: "Kettle", Description: "steel", Price: 30, Stock: 4})

	newPrice := 25.5
	updated, err := svc.Update(context.Background(), p.ID.Hex(), models.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 25.5, updated.Price)
	assert.Equal(t, "Kettle", updated.Name, "omitted fields keep their value")
	assert.Equal(t, 4, updated.Stock)
}

func TestProductListExcludesDeleted(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	kept := store.add(models.Product{Name: "Kettle", Price: 30, Stock: 4})
	gone := store.add(models.Product{Name: "Toaster", Price: 45, Stock: 2})

	require.NoError(t, svc.Delete(context.Background(), gone.ID.Hex()))

	page, err := svc.List(context.Background(), models.ProductFilter{})
	require.NoError(t, err)

	require.Len(t, page.Products, 1)
	assert.Equal(t, kept.ID, page.Products[0].ID)
}

func TestProductDeleteIdempotent(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	p := store.add(models.Product{Name: "Kettle", Price: 30, Stock: 4})

	require.NoError(t, svc.Delete(context.Background(), p.ID.Hex()))
	assert.NoError(t, svc.Delete(context.Background(), p.ID.Hex()), "repeat delete succeeds")

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestProductListPagination(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	for i := 0; i < 25; i++ {
		store.add(models.Product{Name: fmt.Sprintf("item-%02d", i), Price: float64(i), Stock: 1})
	}

	page, err := svc.List(context.Background(), models.ProductFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Products, 10)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)

	last, err := svc.List(context.Background(), models.ProductFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, last.Products, 5)
	assert.Equal(t, 3, last.CurrentPage)

	empty, err := svc.List(context.Background(), models.ProductFilter{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, empty.Products)
	assert.Equal(t, int64(3), empty.TotalPages)
}

func TestProductListFilters(t *testing.T) {
	store := &fakeProductStore{}
	svc := newProductService(store)

	cheap := store.add(models.Product{Name: "Spoon", Price: 3, Stock: 10})
	store.add(models.Product{Name: "Kettle", Price: 30, Stock: 0})
	dear := store.add(models.Product{Name: "Mixer", Price: 120, Stock: 2})

	t.Run("price range", func(t *testing.T) {
		min, max := 1.0, 10.0
		page, err := svc.List(context.Background(), models.ProductFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, cheap.ID, page.Products[0].ID)
	})

	t.Run("in stock only", func(t *testing.T) {
		page, err := svc.List(context.Background(), models.ProductFilter{InStock: true})
		require.NoError(t, err)
		require.Len(t, page.Products, 2)
	})

	t.Run("combined", func(t *testing.T) {
		min := 100.0
		page, err := svc.List(context.Background(), models.ProductFilter{MinPrice: &min, InStock: true})
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, dear.ID, page.Products[0].ID)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		page, err := svc.List(context.Background(), models.ProductFilter{Search: "KETT"})
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, "Kettle", page.Products[0].Name)

		page, err = svc.List(context.Background(), models.ProductFilter{Search: "ixe"})
		require.NoError(t, err)
		require.Len(t, page.Products, 1)
		assert.Equal(t, dear.ID, page.Products[0].ID)

		page, err = svc.List(context.Background(), models.ProductFilter{Search: "kettleX"})
		require.NoError(t, err)
		assert.Empty(t, page.Products)
	})
}

func TestProductFilterNormalize(t *testing.T) {
	f := models.ProductFilter{}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	f = models.ProductFilter{Page: -3, Limit: 0}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
}
