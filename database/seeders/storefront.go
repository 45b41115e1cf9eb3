package seeders

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/config"
	"github.com/priyankmodi/storefront/pkg/auth"
	"github.com/priyankmodi/storefront/pkg/database"
)

func init() {
	Register("admin-user", SeedAdminUser)
	Register("catalog", SeedCatalog)
}

// SeedAdminUser upserts the administrator account. Email and password come
// from ADMIN_EMAIL / ADMIN_PASSWORD; the defaults are for local use only.
func SeedAdminUser(ctx context.Context, db *mongo.Database) error {
	email := config.Get("ADMIN_EMAIL", "admin@storefront.local")
	password := config.Get("ADMIN_PASSWORD", "admin123")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Collection(database.UsersCollection).UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": bson.M{
			"name":       "Administrator",
			"email":      email,
			"password":   hash,
			"role":       models.RoleAdmin,
			"created_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// SeedCatalog inserts a small sample catalogue when the collection is empty.
func SeedCatalog(ctx context.Context, db *mongo.Database) error {
	col := db.Collection(database.ProductsCollection)

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	samples := []interface{}{
		models.Product{Name: "Walnut desk organiser", Description: "Five-slot organiser in oiled walnut", Price: 39.50, Stock: 25, CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Brass pour-over kettle", Description: "900 ml gooseneck kettle", Price: 64.00, Stock: 12, CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Linen notebook A5", Description: "Dot grid, 192 pages", Price: 15.00, Stock: 80, CreatedAt: now, UpdatedAt: now},
		models.Product{Name: "Ceramic mug 350ml", Description: "Stoneware, speckled glaze", Price: 18.00, Stock: 0, CreatedAt: now, UpdatedAt: now},
	}

	_, err = col.InsertMany(ctx, samples)
	return err
}
