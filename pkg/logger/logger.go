// Package logger provides the structured, levelled logger built on log/slog.
//
// Handlers are chosen by environment: JSON in production for log
// aggregators, plain text for development. When LOG_MONGO_URI is set the
// records are additionally fanned out to a MongoDB collection through an
// asynchronous handler (see mongo_handler.go).
//
// Request handlers use WithCtx to get a logger pre-tagged with the
// request_id injected by the logging middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", order.ID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/priyankmodi/storefront/config"
)

var L *slog.Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

// Setup builds the process logger from configuration. It returns a close
// function that flushes the Mongo handler, or a no-op when none is wired.
func Setup() func() {
	var level slog.Level
	switch config.AppEnv() {
	case "production", "prod":
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if config.AppEnv() == "production" || config.AppEnv() == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	closeFn := func() {}
	if uri := config.LogMongoURI(); uri != "" {
		mh, err := NewMongoHandler(uri, config.LogMongoDatabase(), "logs")
		if err != nil {
			// Mongo logging is best-effort; keep the stdout handler.
			slog.New(handler).Warn("mongo log handler disabled", "error", err)
		} else {
			handler = NewMultiHandler(handler, mh)
			closeFn = mh.Close
		}
	}

	L = slog.New(handler)
	slog.SetDefault(L)
	return closeFn
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger stored in ctx, or the base
// logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped *slog.Logger into ctx. Called by the
// logging middleware; application code normally only reads via WithCtx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level on the base logger.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level on the base logger.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level on the base logger.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level on the base logger.
func Error(msg string, args ...any) { L.Error(msg, args...) }
