package service

import (
	"context"
	"fmt"

	"shop-api/internal/features/categories/domain"
	"shop-api/internal/features/categories/ports"
)

// CategoryServiceImpl implements ports.CategoryService.
type CategoryServiceImpl struct {
	repo ports.CategoryRepository
}

// NewCategoryService creates a new CategoryServiceImpl.
func NewCategoryService(repo ports.CategoryRepository) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		repo: repo,
	}
}

// CreateCategory validates and stores a new category.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("service: failed to save category: %w", err)
	}

	return category, nil
}

// ListCategories retrieves all categories.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
