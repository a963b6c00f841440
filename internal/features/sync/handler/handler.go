package handler

import (
	"context"
	"net/http"
	"time"

	"shop-api/internal/core/cache"
	"shop-api/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SyncHandler exposes the administrative cache surface: clearing entries by
// pattern and reporting whether caching is active.
type SyncHandler struct {
	store cache.Store
	ttl   time.Duration
}

// NewSyncHandler creates a new SyncHandler. A nil store means the cache
// subsystem is disabled; the endpoints then report unavailable and clear 0.
func NewSyncHandler(store cache.Store, ttl time.Duration) *SyncHandler {
	return &SyncHandler{
		store: store,
		ttl:   ttl,
	}
}

// ClearCacheRequest represents the optional request body for a cache clear.
type ClearCacheRequest struct {
	// Pattern is a domain fragment such as "items"; empty clears everything.
	Pattern string `json:"pattern"`
}

// ClearCache handles POST /api/sync/cache/clear.
// Clearing is best-effort and idempotent: a second identical clear removes 0.
// @Summary Clear cached responses
// @Description Removes cached responses matching the optional pattern fragment; clears everything when no pattern is given.
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body ClearCacheRequest false "Pattern fragment"
// @Success 200 {object} map[string]interface{}
// @Router /api/sync/cache/clear [post]
func (h *SyncHandler) ClearCache(c *fiber.Ctx) error {
	pattern := cache.PatternAll
	if len(c.Body()) > 0 {
		var req ClearCacheRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
		pattern = cache.Pattern(req.Pattern)
	}

	var cleared int64
	if h.store != nil {
		removed, err := h.store.DeleteByPattern(context.Background(), pattern)
		if err != nil {
			// Best-effort: the failure is logged, the caller still gets a count.
			logger.Get().Warn("Cache clear failed",
				zap.String("pattern", pattern),
				zap.Error(err),
			)
		}
		cleared = removed
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":      true,
		"itemsCleared": cleared,
	})
}

// CacheStatus handles GET /api/sync/cache/status.
// @Summary Report cache subsystem state
// @Tags Sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/sync/cache/status [get]
func (h *SyncHandler) CacheStatus(c *fiber.Ctx) error {
	available := h.store != nil && h.store.Available()

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"available":  available,
		"ttlSeconds": int(h.ttl.Seconds()),
	})
}
