package services

import (
	"context"
	"fmt"
	"time"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/cache"
	"github.com/priyankmodi/storefront/pkg/metrics"
)

// ProductStore is the persistence surface of the catalogue.
type ProductStore interface {
	Create(ctx context.Context, p *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error)
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, int64, error)
	SoftDelete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, qty int) error
}

const productGenKey = "products:gen"

// ProductService implements catalogue management. Listings are served
// through a short-TTL Redis cache keyed by a generation counter that every
// catalogue write bumps, so a soft delete is visible immediately.
type ProductService struct {
	products ProductStore
	cache    *cache.Store // nil disables caching
	ttl      time.Duration
}

func NewProductService(products ProductStore, c *cache.Store, ttl time.Duration) *ProductService {
	return &ProductService{products: products, cache: c, ttl: ttl}
}

// Create persists a new product as submitted.
func (s *ProductService) Create(ctx context.Context, p *models.Product) error {
	if err := s.products.Create(ctx, p); err != nil {
		return err
	}
	s.cache.Incr(ctx, productGenKey)
	return nil
}

// Update applies a partial merge to the product.
func (s *ProductService) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	p, err := s.products.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.cache.Incr(ctx, productGenKey)
	return p, nil
}

// List returns one page of non-deleted products matching the filter.
func (s *ProductService) List(ctx context.Context, f models.ProductFilter) (*models.ProductPage, error) {
	f.Normalize()

	key := ""
	if s.ttl > 0 {
		gen := s.cache.GetInt(ctx, productGenKey)
		key = fmt.Sprintf("products:%d:%s", gen, f.CacheKey())

		var page models.ProductPage
		if s.cache.Get(ctx, key, &page) {
			metrics.CacheHits.Inc()
			return &page, nil
		}
		metrics.CacheMisses.Inc()
	}

	products, count, err := s.products.List(ctx, f)
	if err != nil {
		return nil, err
	}

	page := &models.ProductPage{
		Products:    products,
		TotalPages:  (count + int64(f.Limit) - 1) / int64(f.Limit),
		CurrentPage: f.Page,
	}

	if key != "" {
		_ = s.cache.Set(ctx, key, page, s.ttl)
	}
	return page, nil
}

// Delete soft-deletes the product. Repeating the call on an already
// soft-deleted product succeeds; a never-existing id is NotFound.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Incr(ctx, productGenKey)
	return nil
}
