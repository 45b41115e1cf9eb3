// Package routes defines the HTTP route table.
package routes

import (
	"github.com/priyankmodi/storefront/app/controllers"
	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/auth"
	"github.com/priyankmodi/storefront/pkg/middleware"
	"github.com/priyankmodi/storefront/pkg/rbac"
	"github.com/priyankmodi/storefront/pkg/router"
)

// Deps carries everything the route table needs.
type Deps struct {
	Issuer   *auth.Issuer
	Auth     *controllers.AuthController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
}

// RegisterAPI mounts the API under /api.
//
// Three trust levels: public, authenticated user, and administrator.
// Administration is a role check at the gateway, not a branch inside the
// services.
func RegisterAPI(r *router.Router, d Deps) {
	authed := middleware.Auth(d.Issuer)
	admin := rbac.HasRole(models.RoleAdmin)

	api := r.Group("/api")

	// Public.
	api.Post("/users/register", "users.register", d.Auth.Register)
	api.Post("/users/login", "users.login", d.Auth.Login)
	api.Get("/products", "products.list", d.Products.List)

	// Authenticated users.
	user := api.Group("", authed)
	user.Post("/orders", "orders.create", d.Orders.Create)
	user.Get("/orders", "orders.list", d.Orders.List)

	// Administrators.
	adm := api.Group("", authed, admin)
	adm.Post("/products", "products.create", d.Products.Create)
	adm.Put("/products/{id}", "products.update", d.Products.Update)
	adm.Delete("/products/{id}", "products.delete", d.Products.Delete)
	adm.Put("/orders/{id}/status", "orders.update_status", d.Orders.UpdateStatus)
	adm.Delete("/orders/{id}", "orders.delete", d.Orders.Delete)
}
