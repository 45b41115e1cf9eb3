package services_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/apperr"
)

// In-memory stands-ins for the Mongo repositories. They reproduce the
// repository contracts (error kinds, soft-delete visibility, conditional
// decrement) so the services can be exercised without a database.

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperr.Conflict("email already registered")
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	f.users = append(f.users, user)
	return nil
}

type fakeProductStore struct {
	products []*models.Product
}

func (f *fakeProductStore) add(p models.Product) *models.Product {
	p.ID = primitive.NewObjectID()
	stored := p
	f.products = append(f.products, &stored)
	return &stored
}

func (f *fakeProductStore) find(id string) *models.Product {
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return p
		}
	}
	return nil
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	stored := *p
	f.products = append(f.products, &stored)
	return nil
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	if p := f.find(id); p != nil {
		copied := *p
		return &copied, nil
	}
	return nil, apperr.NotFound("product %s not found", id)
}

func (f *fakeProductStore) Update(_ context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	p := f.find(id)
	if p == nil {
		return nil, apperr.NotFound("product %s not found", id)
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProductStore) List(_ context.Context, filter models.ProductFilter) ([]models.Product, int64, error) {
	var matched []models.Product
	for _, p := range f.products {
		if p.IsDeleted {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.InStock && p.Stock <= 0 {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *p)
	}

	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		return []models.Product{}, int64(len(matched)), nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], int64(len(matched)), nil
}

func (f *fakeProductStore) SoftDelete(_ context.Context, id string) error {
	p := f.find(id)
	if p == nil {
		return apperr.NotFound("product %s not found", id)
	}
	p.IsDeleted = true
	return nil
}

func (f *fakeProductStore) DecrementStock(_ context.Context, id string, qty int) error {
	p := f.find(id)
	if p == nil {
		return apperr.NotFound("product %s not found", id)
	}
	if p.Stock < qty {
		return apperr.InvalidState("insufficient stock for product %s", id)
	}
	p.Stock -= qty
	return nil
}

type fakeOrderStore struct {
	orders []*models.Order
}

func (f *fakeOrderStore) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now().UTC()
	stored := *order
	f.orders = append(f.orders, &stored)
	return nil
}

func (f *fakeOrderStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id, status string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID.Hex() == id {
			o.Status = status
			copied := *o
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("order not found")
}

func (f *fakeOrderStore) Delete(_ context.Context, id string) error {
	for i, o := range f.orders {
		if o.ID.Hex() == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("order not found")
}
