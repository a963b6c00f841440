package handler

import (
	"errors"
	"net/http"

	"shop-api/internal/core/logger"
	"shop-api/internal/features/items/domain"
	"shop-api/internal/features/items/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	service ports.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// ItemRequest represents the request body for creating or updating an item.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // Cents
	CategoryID  string `json:"category_id"`
	Stock       int    `json:"stock"`
}

// ListItems handles GET /api/items.
// @Summary List catalog items
// @Description Lists all items, optionally filtered by category.
// @Tags Items
// @Produce json
// @Param category query string false "Category ID filter"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), c.Query("category"))
	if err != nil {
		logger.Get().Error("Failed to list items", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"items": items,
	})
}

// GetItem handles GET /api/items/:id.
// @Summary Get a catalog item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		logger.Get().Error("Failed to get item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(item)
}

// CreateItem handles POST /api/items.
// @Summary Create a catalog item
// @Tags Items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item details"
// @Success 201 {object} domain.Item
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.service.CreateItem(c.Context(), req.Name, req.Description, req.Price, req.CategoryID, req.Stock)
	if err != nil {
		if isValidationError(err) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to create item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateItem handles PUT /api/items/:id.
// @Summary Update a catalog item
// @Tags Items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body ItemRequest true "Item details"
// @Success 200 {object} domain.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var req ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.service.UpdateItem(c.Context(), c.Params("id"), req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrItemNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		case isValidationError(err):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to update item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(item)
}

// DeleteItem handles DELETE /api/items/:id.
// @Summary Delete a catalog item
// @Tags Items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Item not found",
			})
		}
		logger.Get().Error("Failed to delete item", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Item deleted successfully",
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrInvalidStock)
}
