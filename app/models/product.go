package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalogue entry. Deletion is a soft flag so order history
// stays addressable.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	IsDeleted   bool               `bson:"is_deleted" json:"isDeleted"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// ProductFilter selects and paginates catalogue listings.
type ProductFilter struct {
	Page     int
	Limit    int
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	Search   string
}

// Normalize applies the listing defaults (page 1, limit 10). There is no
// upper bound on Limit.
func (f *ProductFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

// CacheKey renders the filter into a stable cache key fragment.
func (f ProductFilter) CacheKey() string {
	min, max := "", ""
	if f.MinPrice != nil {
		min = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		max = fmt.Sprintf("%g", *f.MaxPrice)
	}
	return fmt.Sprintf("p=%d:l=%d:min=%s:max=%s:stock=%t:q=%s",
		f.Page, f.Limit, min, max, f.InStock, f.Search)
}

// ProductPage is one page of listing results.
type ProductPage struct {
	Products    []Product `json:"products"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}
