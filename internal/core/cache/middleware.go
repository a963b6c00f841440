package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"shop-api/internal/core/logger"
)

// DefaultTTL is applied by the read-through gate when no TTL is configured.
const DefaultTTL = 300 * time.Second

// Config configures the read-through gate middleware.
type Config struct {
	// Store is the backing cache. A nil store disables caching entirely.
	Store Store
	// TTL is applied to every entry written by this gate. Default 300s.
	TTL time.Duration
}

// New returns a read-through middleware for GET routes: on a hit the stored
// JSON payload is replayed verbatim and the handler never runs; on a miss the
// handler executes and its response is stored when it is a successful JSON
// response. Every cache failure degrades to "no cache" - correctness is never
// affected, only latency.
func New(cfg Config) fiber.Handler {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	store := cfg.Store

	return func(c *fiber.Ctx) error {
		if store == nil || c.Method() != fiber.MethodGet || !store.Available() {
			return c.Next()
		}

		key := Key(c.OriginalURL())

		payload, err := store.Get(context.Background(), key)
		if err == nil {
			if json.Valid(payload) {
				Hits.Inc()
				logger.Get().Debug("Cache hit", zap.String("key", key))
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.Send(payload)
			}
			// A corrupted entry behaves like a miss; the handler re-populates it.
			logger.Get().Warn("Malformed cache entry, treating as miss", zap.String("key", key))
			Errors.WithLabelValues("get").Inc()
		} else if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUnavailable) {
			Misses.Inc()
			logger.Get().Debug("Cache miss", zap.String("key", key))
		} else {
			Errors.WithLabelValues("get").Inc()
			logger.Get().Warn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return nil
		}
		contentType := string(c.Response().Header.ContentType())
		if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return nil
		}

		// fasthttp reuses the response buffer once the request finishes.
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		// The write uses a background context: its purpose is keeping the
		// cache populated, which does not depend on the client still listening.
		if err := store.Set(context.Background(), key, body, ttl); err != nil {
			Errors.WithLabelValues("set").Inc()
			logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
}

// Invalidate returns a middleware for mutation routes. After the wrapped
// handler responds with a 2xx status every configured pattern is cleared;
// failed mutations leave the cache untouched, so readers never see entries
// invalidated for a change that did not commit. Each pattern is cleared
// independently and best-effort. Clears are awaited before the response is
// transmitted, which keeps the ordering deterministic.
func Invalidate(store Store, patterns ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			return nil
		}
		if store == nil || !store.Available() {
			return nil
		}

		for _, pattern := range patterns {
			removed, err := store.DeleteByPattern(context.Background(), pattern)
			if err != nil {
				Errors.WithLabelValues("invalidate").Inc()
				logger.Get().Warn("Cache invalidation failed",
					zap.String("pattern", pattern),
					zap.Error(err),
				)
				continue
			}
			if removed > 0 {
				Invalidations.Add(float64(removed))
				logger.Get().Debug("Cache invalidated",
					zap.String("pattern", pattern),
					zap.Int64("removed", removed),
				)
			}
		}
		return nil
	}
}
