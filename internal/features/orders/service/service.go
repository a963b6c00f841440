package service

import (
	"context"
	"fmt"

	"shop-api/internal/core/logger"
	itemdomain "shop-api/internal/features/items/domain"
	itemports "shop-api/internal/features/items/ports"
	"shop-api/internal/features/orders/domain"
	"shop-api/internal/features/orders/ports"

	"go.uber.org/zap"
)

// OrderServiceImpl implements ports.OrderService. Placing an order reserves
// stock on the referenced items, so order mutations also invalidate cached
// item responses at the route layer.
type OrderServiceImpl struct {
	orders ports.OrderRepository
	items  itemports.ItemRepository
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(orders ports.OrderRepository, items itemports.ItemRepository) *OrderServiceImpl {
	return &OrderServiceImpl{
		orders: orders,
		items:  items,
	}
}

// PlaceOrder validates the requested lines against the catalog, reserves
// stock and stores the order. Prices are captured from the catalog at order
// time. All lines are validated and reserved in memory before anything is
// written, so a rejected line leaves the catalog untouched; if a write fails
// midway, stock already persisted is released again.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, lines []ports.OrderLineInput) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// Reserve in memory only. Repeated item IDs share one loaded copy so
	// their quantities reserve against the same remaining stock.
	loaded := make(map[string]*itemdomain.Item, len(lines))
	reserved := make(map[string]int, len(lines))
	orderLines := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}

		item, ok := loaded[line.ItemID]
		if !ok {
			var err error
			item, err = s.items.FindByID(ctx, line.ItemID)
			if err != nil {
				return nil, err
			}
			loaded[line.ItemID] = item
		}

		if err := item.Reserve(line.Quantity); err != nil {
			return nil, err
		}
		reserved[item.ID] += line.Quantity

		orderLines = append(orderLines, domain.OrderLine{
			ItemID:    item.ID,
			Quantity:  line.Quantity,
			UnitPrice: item.Price,
		})
	}

	order, err := domain.NewOrder(orderLines)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusConfirmed

	// Persist the reservations, releasing any already written when a later
	// write fails.
	persisted := make([]*itemdomain.Item, 0, len(loaded))
	for _, item := range loaded {
		if err := s.items.Update(ctx, item); err != nil {
			s.releaseReservations(ctx, persisted, reserved)
			return nil, fmt.Errorf("service: failed to reserve stock for item %s: %w", item.ID, err)
		}
		persisted = append(persisted, item)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		s.releaseReservations(ctx, persisted, reserved)
		return nil, fmt.Errorf("service: failed to save order: %w", err)
	}

	return order, nil
}

// releaseReservations restores stock on items whose reservation was already
// written. Best-effort: a failed restore is logged, the original error still
// reaches the caller.
func (s *OrderServiceImpl) releaseReservations(ctx context.Context, items []*itemdomain.Item, reserved map[string]int) {
	for _, item := range items {
		item.Release(reserved[item.ID])
		if err := s.items.Update(ctx, item); err != nil {
			logger.Get().Error("Failed to restore stock after aborted order",
				zap.String("item_id", item.ID),
				zap.Error(err),
			)
		}
	}
}

// GetOrder retrieves a single order.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves all orders.
func (s *OrderServiceImpl) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	return orders, nil
}
