package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/apperr"
	"github.com/priyankmodi/storefront/pkg/logger"
	"github.com/priyankmodi/storefront/pkg/metrics"
)

// OrderStore is the persistence surface for orders.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

// LineItem is one requested (product, quantity) pair at checkout.
type LineItem struct {
	ProductID string
	Quantity  int
}

// OrderService implements order placement and administration.
type OrderService struct {
	orders   OrderStore
	products ProductStore
}

func NewOrderService(orders OrderStore, products ProductStore) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Create validates and places an order for userID.
//
// Line items are processed strictly in the submitted order: look up the
// product, check stock, accumulate the total at current unit price, then
// decrement that product's stock immediately. Each decrement is an atomic
// conditional update at the store, so a single product's stock can never
// go negative under concurrent orders. There is NO transaction across
// items: when item N fails, items 1..N-1 have already had their stock
// decremented and are not rolled back. Callers must treat a failed
// creation as potentially having partially mutated inventory.
func (s *OrderService) Create(ctx context.Context, userID string, lines []LineItem) (*models.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Unauthorized("invalid token subject")
	}

	var total float64
	items := make([]models.OrderItem, 0, len(lines))

	for _, line := range lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if product.Stock < line.Quantity {
			return nil, apperr.InvalidState("insufficient stock for product %s", product.Name)
		}

		total += product.Price * float64(line.Quantity)

		if err := s.products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			// Lost a concurrent race between the check above and the
			// conditional decrement.
			if apperr.Is(err, apperr.KindInvalidState) {
				return nil, apperr.InvalidState("insufficient stock for product %s", product.Name)
			}
			return nil, err
		}

		product.Stock -= line.Quantity
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Product:   product,
		})
	}

	order := &models.Order{
		UserID:      uid,
		Items:       items,
		TotalAmount: total,
		Status:      models.StatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	logger.WithCtx(ctx).Info("order created",
		"order_id", order.ID.Hex(),
		"user_id", userID,
		"total", order.TotalAmount,
		"items", len(order.Items),
	)
	return order, nil
}

// ListForUser returns the caller's orders newest first, with every line
// item's product reference expanded to the current catalogue record.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.Unauthorized("invalid token subject")
	}

	orders, err := s.orders.FindByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	// Resolve each referenced product once.
	resolved := map[string]*models.Product{}
	for oi := range orders {
		for ii := range orders[oi].Items {
			item := &orders[oi].Items[ii]
			id := item.ProductID.Hex()

			product, ok := resolved[id]
			if !ok {
				product, err = s.products.FindByID(ctx, id)
				if err != nil {
					if apperr.Is(err, apperr.KindNotFound) {
						// Product physically removed; leave the item unexpanded.
						resolved[id] = nil
						continue
					}
					return nil, err
				}
				resolved[id] = product
			}
			item.Product = product
		}
	}

	return orders, nil
}

// UpdateStatus sets the order's status. Any enumerated value may follow
// any other; no transition graph is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	return s.orders.UpdateStatus(ctx, id, status)
}

// Delete removes the order. Stock decremented at placement is not
// restored; whether it should be is an open product decision.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}
