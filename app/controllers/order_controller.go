package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/priyankmodi/storefront/app/services"
	"github.com/priyankmodi/storefront/pkg/bind"
	"github.com/priyankmodi/storefront/pkg/middleware"
	"github.com/priyankmodi/storefront/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type orderItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	Products []orderItemRequest `json:"products" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,in=pending,processing,shipped,delivered,cancelled"`
}

// Create handles POST /api/orders (authenticated).
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body createOrderRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}
	// Per-item rules: the validator covers flat fields, line items are
	// checked here.
	for i, item := range body.Products {
		if item.Product == "" {
			errs[fmt.Sprintf("products[%d].product", i)] = "The product field is required."
		}
		if item.Quantity < 1 {
			errs[fmt.Sprintf("products[%d].quantity", i)] = "The quantity must be at least 1."
		}
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	lines := make([]services.LineItem, 0, len(body.Products))
	for _, item := range body.Products {
		lines = append(lines, services.LineItem{ProductID: item.Product, Quantity: item.Quantity})
	}

	order, err := c.service.Create(r.Context(), userID, lines)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Created(w, order)
}

// List handles GET /api/orders (authenticated): the caller's orders,
// newest first, products expanded.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.service.ListForUser(r.Context(), userID)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, orders)
}

// UpdateStatus handles PUT /api/orders/{id}/status (admin).
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body updateStatusRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, order)
}

// Delete handles DELETE /api/orders/{id} (admin).
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Err(w, err)
		return
	}

	response.Message(w, "order deleted successfully")
}
