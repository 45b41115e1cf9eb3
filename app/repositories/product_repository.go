package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/apperr"
	"github.com/priyankmodi/storefront/pkg/database"
)

// ProductRepository handles the products collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection(database.ProductsCollection)}
}

// Create persists a new product.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return apperr.Internal(err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// FindByID returns a product by id, whether soft-deleted or not, so order
// history stays addressable.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("product %s not found", id)
	}

	var p models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("product %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &p, nil
}

// Update applies a partial merge and returns the updated record.
func (r *ProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NotFound("product %s not found", id)
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("product %s not found", id)
		}
		return nil, apperr.Internal(err)
	}
	return &p, nil
}

// List returns one page of non-deleted products matching the filter plus
// the total match count.
func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, int64, error) {
	query := bson.M{"is_deleted": false}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	if f.InStock {
		query["stock"] = bson.M{"$gt": 0}
	}

	if f.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}

	opts := options.Find().
		SetSkip(int64(f.Page-1) * int64(f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, 0, apperr.Internal(err)
	}

	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}

	return products, count, nil
}

// SoftDelete flips is_deleted. Flipping an already-deleted product
// succeeds; only a missing id is NotFound.
func (r *ProductRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("product %s not found", id)
	}

	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now().UTC()}}
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("product %s not found", id)
		}
		return apperr.Internal(err)
	}
	return nil
}

// DecrementStock atomically subtracts qty from the product's stock. The
// $gte floor in the filter makes the decrement conditional: stock can
// never go negative even under concurrent orders.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, qty int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NotFound("product %s not found", id)
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
	)
	if err != nil {
		return apperr.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperr.InvalidState("insufficient stock for product %s", id)
	}
	return nil
}
