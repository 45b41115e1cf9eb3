// Package config holds process-wide configuration loaded once at startup.
//
// Values come from the environment, optionally seeded from a .env file in
// the working directory. Every accessor falls back to a development default
// so the server boots with zero configuration against local Mongo/Redis.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultMongoURI  = "mongodb://localhost:27017"
	defaultMongoDB   = "storefront"
	defaultRedisAddr = "localhost:6379"
	defaultJWTSecret = "change-me-in-production"
	defaultAppPort   = "8080"
	defaultAppEnv    = "local"
)

var loadOnce sync.Once

// Load reads the optional .env file into the process environment.
// Safe to call from every accessor; the file is only read once.
func Load() {
	loadOnce.Do(func() {
		// Missing .env is fine — env vars and defaults still apply.
		_ = godotenv.Load()
	})
}

func get(key, fallback string) string {
	Load()
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func MongoURI() string { return get("MONGO_URI", defaultMongoURI) }

func MongoDatabase() string { return get("MONGO_DB", defaultMongoDB) }

func RedisAddr() string { return get("REDIS_ADDR", defaultRedisAddr) }

func RedisPassword() string { return get("REDIS_PASSWORD", "") }

func JWTSecret() string { return get("JWT_SECRET", defaultJWTSecret) }

func AppPort() string { return get("APP_PORT", defaultAppPort) }

func AppEnv() string { return get("APP_ENV", defaultAppEnv) }

// LogMongoURI enables the async Mongo log handler when non-empty.
func LogMongoURI() string { return get("LOG_MONGO_URI", "") }

func LogMongoDatabase() string { return get("LOG_MONGO_DB", MongoDatabase()) }

// CacheTTLSeconds is the product-listing cache TTL. Zero disables caching.
func CacheTTLSeconds() int { return getInt("CACHE_TTL_SECONDS", 30) }

// RateLimitPerMinute caps requests per client IP per minute.
func RateLimitPerMinute() int { return getInt("RATE_LIMIT_PER_MINUTE", 200) }

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(get(key, ""))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	return get(key, fallback)
}
