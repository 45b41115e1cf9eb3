// Package server boots the HTTP API: configuration, logging, stores,
// wiring, and the listen/shutdown lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/priyankmodi/storefront/app/controllers"
	"github.com/priyankmodi/storefront/app/repositories"
	"github.com/priyankmodi/storefront/app/routes"
	"github.com/priyankmodi/storefront/app/services"
	"github.com/priyankmodi/storefront/config"
	"github.com/priyankmodi/storefront/pkg/auth"
	"github.com/priyankmodi/storefront/pkg/cache"
	"github.com/priyankmodi/storefront/pkg/database"
	"github.com/priyankmodi/storefront/pkg/logger"
	"github.com/priyankmodi/storefront/pkg/metrics"
	"github.com/priyankmodi/storefront/pkg/middleware"
	"github.com/priyankmodi/storefront/pkg/reqid"
	"github.com/priyankmodi/storefront/pkg/response"
	"github.com/priyankmodi/storefront/pkg/router"
)

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func Start() error {
	config.Load()
	closeLogs := logger.Setup()
	defer closeLogs()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	db, disconnect, err := database.Connect(connectCtx)
	cancel()
	if err != nil {
		return err
	}
	defer disconnect(context.Background()) //nolint:errcheck

	store, err := cache.Connect(config.RedisAddr(), config.RedisPassword())
	if err != nil {
		// The cache is an optimisation; run without it.
		logger.Warn("cache disabled", "error", err)
		store = nil
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           BuildHandler(db, store),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// BuildHandler wires repositories, services, controllers, and middleware
// into the root http.Handler.
func BuildHandler(db *mongo.Database, store *cache.Store) http.Handler {
	issuer := auth.NewIssuer(config.JWTSecret())

	users := repositories.NewUserRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)

	cacheTTL := time.Duration(config.CacheTTLSeconds()) * time.Second

	deps := routes.Deps{
		Issuer:   issuer,
		Auth:     controllers.NewAuthController(services.NewAuthService(users, issuer)),
		Products: controllers.NewProductController(services.NewProductService(products, store, cacheTTL)),
		Orders:   controllers.NewOrderController(services.NewOrderService(orders, products)),
	}

	r := router.New()

	// Outermost to innermost: metrics, panic recovery, request ID,
	// request log, CORS, rate limit.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimitPerMinute(), time.Minute))

	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, "ok")
	})

	routes.RegisterAPI(r, deps)

	return r.Handler()
}
