package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/app/services"
	"github.com/priyankmodi/storefront/pkg/bind"
	"github.com/priyankmodi/storefront/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,numeric,gte=0"`
	Stock       *int     `json:"stock" validate:"required,integer,gte=0"`
}

type updateProductRequest struct {
	Name        *string  `json:"name" validate:"nullable,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"nullable,numeric,gte=0"`
	Stock       *int     `json:"stock" validate:"nullable,integer,gte=0"`
}

// Create handles POST /api/products (admin).
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product := &models.Product{
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		Stock:       *body.Stock,
	}
	if err := c.service.Create(r.Context(), product); err != nil {
		response.Err(w, err)
		return
	}

	response.Created(w, product)
}

// Update handles PUT /api/products/{id} (admin). Only supplied fields change.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var body updateProductRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	patch := models.ProductPatch{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Stock:       body.Stock,
	}
	product, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, product)
}

// List handles GET /api/products (public).
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.ProductFilter{
		Search:  q.Get("search"),
		InStock: q.Get("inStock") == "true",
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if min, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filter.MinPrice = &min
	}
	if max, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filter.MaxPrice = &max
	}

	page, err := c.service.List(r.Context(), filter)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.JSON(w, page)
}

// Delete handles DELETE /api/products/{id} (admin); soft delete.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.Err(w, err)
		return
	}

	response.Message(w, "product deleted successfully")
}
