package ports

import (
	"context"

	"shop-api/internal/features/items/domain"
)

// ItemService defines the primary port for catalog operations.
type ItemService interface {
	CreateItem(ctx context.Context, name, description string, price int64, categoryID string, stock int) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, categoryID string) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, id, name, description string, price int64, stock int) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// ItemRepository defines the secondary port for catalog storage.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	FindAll(ctx context.Context, categoryID string) ([]*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
