package main

import (
	"log"
	"time"

	"shop-api/internal/core/cache"
	"shop-api/internal/core/config"
	"shop-api/internal/core/database"
	"shop-api/internal/core/logger"
	"shop-api/internal/core/server"
	categoryadapter "shop-api/internal/features/categories/adapters"
	categoryhandler "shop-api/internal/features/categories/handler"
	categoryservice "shop-api/internal/features/categories/service"
	itemadapter "shop-api/internal/features/items/adapters"
	itemhandler "shop-api/internal/features/items/handler"
	itemservice "shop-api/internal/features/items/service"
	orderadapter "shop-api/internal/features/orders/adapters"
	orderhandler "shop-api/internal/features/orders/handler"
	orderservice "shop-api/internal/features/orders/service"
	synchandler "shop-api/internal/features/sync/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Shop API
// @version 1.0
// @description E-commerce backend with a pattern-invalidated HTTP response cache.
// @contact.name API Support
// @contact.email support@shop-api.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Open the document store and make sure collections exist.
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		l.Fatal("Failed to open document store", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureCollections(db, "items", "categories", "orders"); err != nil {
		l.Fatal("Failed to prepare collections", zap.Error(err))
	}

	// The cache store connects in the background; the API serves uncached
	// responses until (and unless) the backend becomes available.
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	var store cache.Store
	if cfg.Cache.Enabled {
		store = cache.NewRedisStore(cache.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
		})
	} else {
		l.Info("Response cache disabled by configuration")
	}

	// Initialize feature services and handlers.
	itemRepo := itemadapter.NewCloverItemRepository(db)
	itemSvc := itemservice.NewItemService(itemRepo)
	itemHdl := itemhandler.NewItemHandler(itemSvc)

	categoryRepo := categoryadapter.NewCloverCategoryRepository(db)
	categorySvc := categoryservice.NewCategoryService(categoryRepo)
	categoryHdl := categoryhandler.NewCategoryHandler(categorySvc)

	orderRepo := orderadapter.NewCloverOrderRepository(db)
	orderSvc := orderservice.NewOrderService(orderRepo, itemRepo)
	orderHdl := orderhandler.NewOrderHandler(orderSvc)

	syncHdl := synchandler.NewSyncHandler(store, ttl)

	srv := server.New(cfg)

	srv.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"cache":  store != nil && store.Available(),
		})
	})

	// Register routes. Read routes go through the read-through gate; mutation
	// routes clear the matching cached responses after a successful commit.
	readCached := cache.New(cache.Config{Store: store, TTL: ttl})
	invalidateItems := cache.Invalidate(store, cache.Pattern("items"))
	invalidateCategories := cache.Invalidate(store, cache.Pattern("categories"))
	// Placing an order reserves item stock, so both domains are cleared.
	invalidateOrders := cache.Invalidate(store, cache.Pattern("orders"), cache.Pattern("items"))

	api := srv.App.Group("/api")

	items := api.Group("/items")
	items.Get("/", readCached, itemHdl.ListItems)
	items.Get("/:id", readCached, itemHdl.GetItem)
	items.Post("/", invalidateItems, itemHdl.CreateItem)
	items.Put("/:id", invalidateItems, itemHdl.UpdateItem)
	items.Delete("/:id", invalidateItems, itemHdl.DeleteItem)

	categories := api.Group("/categories")
	categories.Get("/", readCached, categoryHdl.ListCategories)
	categories.Post("/", invalidateCategories, categoryHdl.CreateCategory)
	categories.Delete("/:id", invalidateCategories, categoryHdl.DeleteCategory)

	orders := api.Group("/orders")
	orders.Get("/", readCached, orderHdl.ListOrders)
	orders.Get("/:id", readCached, orderHdl.GetOrder)
	orders.Post("/", invalidateOrders, orderHdl.PlaceOrder)

	sync := api.Group("/sync")
	sync.Post("/cache/clear", syncHdl.ClearCache)
	sync.Get("/cache/status", syncHdl.CacheStatus)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
