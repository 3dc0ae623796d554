package backend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"medicare-gateway/internal/domain"
)

const (
	sessionKeyPrefix = "session:"

	// sessionTTL bounds how stale a cached session may be. Short on
	// purpose: a revoked session must stop passing the gate within this
	// window.
	sessionTTL = 30 * time.Second
)

// RedisSessionCache caches resolved sessions in Redis, keyed by a digest of
// the cookie string so raw session tokens never appear in cache keys.
type RedisSessionCache struct {
	client *redis.Client
	logger *log.Logger
}

// NewRedisSessionCache builds a cache on an existing Redis client.
func NewRedisSessionCache(client *redis.Client, logger *log.Logger) *RedisSessionCache {
	return &RedisSessionCache{client: client, logger: logger}
}

// Get returns the cached session for the cookie, if present. Cache errors
// are logged and reported as misses so the lookup falls through to the auth
// backend.
func (rc *RedisSessionCache) Get(ctx context.Context, cookie string) (*domain.Session, bool) {
	raw, err := rc.client.Get(ctx, cacheKey(cookie)).Bytes()
	if err != nil {
		if err != redis.Nil {
			rc.logger.Printf("session cache get: %v", err)
		}
		return nil, false
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		rc.logger.Printf("session cache decode: %v", err)
		return nil, false
	}
	return &session, true
}

// Set stores a successfully resolved session. Failures are logged and
// ignored; the cache is an optimization, not a source of truth.
func (rc *RedisSessionCache) Set(ctx context.Context, cookie string, session *domain.Session) {
	if session == nil {
		return
	}
	raw, err := json.Marshal(session)
	if err != nil {
		rc.logger.Printf("session cache encode: %v", err)
		return
	}
	if err := rc.client.Set(ctx, cacheKey(cookie), raw, sessionTTL).Err(); err != nil {
		rc.logger.Printf("session cache set: %v", err)
	}
}

func cacheKey(cookie string) string {
	sum := sha256.Sum256([]byte(cookie))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}
