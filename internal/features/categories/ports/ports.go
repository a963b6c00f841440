package ports

import (
	"context"

	"shop-api/internal/features/categories/domain"
)

// CategoryService defines the primary port for category operations.
type CategoryService interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryRepository defines the secondary port for category storage.
type CategoryRepository interface {
	Save(ctx context.Context, category *domain.Category) error
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
