package ports

import (
	"context"

	"shop-api/internal/features/orders/domain"
)

// OrderLineInput is the caller-supplied shape of one order position.
type OrderLineInput struct {
	ItemID   string
	Quantity int
}

// OrderService defines the primary port for order operations.
type OrderService interface {
	PlaceOrder(ctx context.Context, lines []OrderLineInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]*domain.Order, error)
}
