package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-api/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(store cache.Store) *fiber.App {
	app := fiber.New()
	handler := NewSyncHandler(store, 5*time.Minute)
	app.Post("/api/sync/cache/clear", handler.ClearCache)
	app.Get("/api/sync/cache/status", handler.CacheStatus)
	return app
}

func newTestStore(t *testing.T, addr string) *cache.RedisStore {
	t.Helper()

	store := cache.NewRedisStore(cache.Options{
		Addr:           addr,
		ConnectTimeout: time.Second,
		RetryDelay:     10 * time.Millisecond,
	})
	t.Cleanup(func() { store.Close() })
	require.Eventually(t, store.Available, 2*time.Second, 5*time.Millisecond)
	return store
}

func clearResponse(t *testing.T, app *fiber.App, body []byte) (bool, float64) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/sync/cache/clear", bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed["success"].(bool), parsed["itemsCleared"].(float64)
}

func TestClearCache_EmptyCache(t *testing.T) {
	mr := miniredis.RunT(t)
	app := setupApp(newTestStore(t, mr.Addr()))

	success, cleared := clearResponse(t, app, nil)
	assert.True(t, success)
	assert.Zero(t, cleared)
}

func TestClearCache_ByPattern(t *testing.T) {
	mr := miniredis.RunT(t)
	store := newTestStore(t, mr.Addr())
	app := setupApp(store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cache.Key("/api/items"), []byte(`{}`), time.Minute))
	require.NoError(t, store.Set(ctx, cache.Key("/api/items/42"), []byte(`{}`), time.Minute))
	require.NoError(t, store.Set(ctx, cache.Key("/api/categories"), []byte(`{}`), time.Minute))

	success, cleared := clearResponse(t, app, []byte(`{"pattern":"items"}`))
	assert.True(t, success)
	assert.Equal(t, float64(2), cleared)
	assert.True(t, mr.Exists(cache.Key("/api/categories")))

	// Clearing again removes nothing.
	success, cleared = clearResponse(t, app, []byte(`{"pattern":"items"}`))
	assert.True(t, success)
	assert.Zero(t, cleared)
}

func TestClearCache_NoPatternClearsEverything(t *testing.T) {
	mr := miniredis.RunT(t)
	store := newTestStore(t, mr.Addr())
	app := setupApp(store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cache.Key("/api/items"), []byte(`{}`), time.Minute))
	require.NoError(t, store.Set(ctx, cache.Key("/api/categories"), []byte(`{}`), time.Minute))

	success, cleared := clearResponse(t, app, []byte(`{}`))
	assert.True(t, success)
	assert.Equal(t, float64(2), cleared)
}

func TestClearCache_InvalidBody(t *testing.T) {
	mr := miniredis.RunT(t)
	app := setupApp(newTestStore(t, mr.Addr()))

	req := httptest.NewRequest(http.MethodPost, "/api/sync/cache/clear", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClearCache_DisabledCache(t *testing.T) {
	app := setupApp(nil)

	success, cleared := clearResponse(t, app, nil)
	assert.True(t, success)
	assert.Zero(t, cleared)
}

func TestCacheStatus(t *testing.T) {
	mr := miniredis.RunT(t)
	app := setupApp(newTestStore(t, mr.Addr()))

	req := httptest.NewRequest(http.MethodGet, "/api/sync/cache/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, true, parsed["available"])
	assert.Equal(t, float64(300), parsed["ttlSeconds"])
}

func TestCacheStatus_DisabledCache(t *testing.T) {
	app := setupApp(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/sync/cache/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, false, parsed["available"])
}
