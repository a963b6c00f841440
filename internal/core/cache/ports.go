package cache

import (
	"context"
	"errors"
	"time"
)

// KeyPrefix is prepended to every response-cache key so that pattern
// invalidation can target cached responses without touching other Redis data.
const KeyPrefix = "cache:"

// PatternAll matches every response-cache entry.
const PatternAll = KeyPrefix + "*"

var (
	// ErrNotFound indicates the key is absent from the cache.
	ErrNotFound = errors.New("cache: key not found")

	// ErrUnavailable indicates the cache backend is currently unreachable.
	// Callers must treat it as a miss, never as a request failure.
	ErrUnavailable = errors.New("cache: backend unavailable")
)

// Key derives the cache key for a request from its original path and query,
// e.g. Key("/api/items?page=2") -> "cache:/api/items?page=2".
func Key(originalURL string) string {
	return KeyPrefix + originalURL
}

// Pattern wraps a domain fragment with the key prefix and wildcards, e.g.
// Pattern("items") matches every cached response whose URL contains "items".
// An empty fragment yields PatternAll.
func Pattern(fragment string) string {
	if fragment == "" {
		return PatternAll
	}
	return KeyPrefix + "*" + fragment + "*"
}

// Store defines the response-cache operations following hexagonal architecture.
// This is a port that can be implemented by different cache providers.
// Every operation is a best-effort no-op while the backend is unreachable.
type Store interface {
	// Get retrieves the stored payload for key.
	// Returns ErrNotFound on a miss and ErrUnavailable while the backend is down.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under key with the specified TTL.
	// TTL of 0 means no expiration. Silently a no-op while the backend is down.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPattern removes every key matching the glob pattern in one bulk
	// operation and returns the number removed. Returns (0, nil) while the
	// backend is down.
	DeleteByPattern(ctx context.Context, pattern string) (int64, error)

	// Available reports the current backend reachability. It reads a cached
	// flag and performs no I/O.
	Available() bool

	// Ping checks if the cache backend is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
