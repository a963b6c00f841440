package handler

import (
	"errors"
	"net/http"

	"shop-api/internal/core/logger"
	itemdomain "shop-api/internal/features/items/domain"
	"shop-api/internal/features/orders/domain"
	"shop-api/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// PlaceOrderRequest represents the request body for placing an order.
type PlaceOrderRequest struct {
	Lines []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one requested item position.
type OrderLineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrder handles POST /api/orders.
// @Summary Place an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body PlaceOrderRequest true "Order lines"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	lines := make([]ports.OrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, ports.OrderLineInput{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), lines)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, itemdomain.ErrItemNotFound):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Order references an unknown item",
			})
		case errors.Is(err, itemdomain.ErrInsufficient):
			return c.Status(http.StatusConflict).JSON(fiber.Map{
				"error": "Insufficient stock",
			})
		}
		logger.Get().Error("Failed to place order", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// ListOrders handles GET /api/orders.
// @Summary List orders
// @Tags Orders
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.Context())
	if err != nil {
		logger.Get().Error("Failed to list orders", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"orders": orders,
	})
}

// GetOrder handles GET /api/orders/:id.
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		logger.Get().Error("Failed to get order", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}
