package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyankmodi/storefront/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupsJoinPaths(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "products.list", ok)

	adm := api.Group("", func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Guard", "1")
			next.ServeHTTP(w, req)
		})
	})
	adm.Post("/products", "products.create", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Guard"))

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Guard"), "group middleware runs for its routes")
}

func TestRoutesTable(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "products.list", ok)
	api.Put("/orders/{id}/status", "orders.update_status", ok)

	routes := r.Routes()
	require.Len(t, routes, 2)

	byName := map[string]router.RouteInfo{}
	for _, rt := range routes {
		byName[rt.Name] = rt
	}
	assert.Equal(t, "GET", byName["products.list"].Method)
	assert.Equal(t, "/api/products", byName["products.list"].Path)
	assert.Equal(t, "/api/orders/{id}/status", byName["orders.update_status"].Path)
}

func TestURLFillsParams(t *testing.T) {
	r := router.New()
	r.Put("/api/orders/{id}/status", "orders.update_status", ok)

	url, err := r.URL("orders.update_status", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/42/status", url)

	_, err = r.URL("orders.update_status", nil)
	assert.Error(t, err, "missing params are an error")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}
