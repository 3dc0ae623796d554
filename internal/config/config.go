package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr             string
	BackendURL           string
	RedisAddr            string
	CartCookie           string
	CORSOrigins          []string
	BackendTimeout       time.Duration
	SessionLookupTimeout time.Duration
	ShutdownTimeout      time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty REDIS_ADDR disables the session cache.
func FromEnv() Config {
	return Config{
		HTTPAddr:             envOrDefault("HTTP_ADDR", ":8080"),
		BackendURL:           envOrDefault("BACKEND_URL", "http://localhost:5000"),
		RedisAddr:            envOrDefault("REDIS_ADDR", ""),
		CartCookie:           envOrDefault("CART_COOKIE", "medicare_cart"),
		CORSOrigins:          envList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		BackendTimeout:       envDuration("BACKEND_TIMEOUT_SECONDS", 10*time.Second),
		SessionLookupTimeout: envDuration("SESSION_LOOKUP_TIMEOUT_SECONDS", 3*time.Second),
		ShutdownTimeout:      envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
