package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Admin-settable labels: any value may follow any other,
// no transition graph is enforced.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderItem is one line item: a product reference plus quantity.
// Product is populated on read from the current catalogue record; it is
// never persisted with the order.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Product   *Product           `bson:"-" json:"product,omitempty"`
}

// Order is a purchase record. TotalAmount is computed once at creation
// from the unit prices at order time and never recomputed.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	Items       []OrderItem        `bson:"products" json:"products"`
	TotalAmount float64            `bson:"total_amount" json:"totalAmount"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
