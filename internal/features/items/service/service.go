package service

import (
	"context"
	"fmt"

	"shop-api/internal/features/items/domain"
	"shop-api/internal/features/items/ports"
)

// ItemServiceImpl implements ports.ItemService.
type ItemServiceImpl struct {
	repo ports.ItemRepository
}

// NewItemService creates a new ItemServiceImpl.
func NewItemService(repo ports.ItemRepository) *ItemServiceImpl {
	return &ItemServiceImpl{
		repo: repo,
	}
}

// CreateItem validates and stores a new catalog item.
func (s *ItemServiceImpl) CreateItem(ctx context.Context, name, description string, price int64, categoryID string, stock int) (*domain.Item, error) {
	item, err := domain.NewItem(name, description, price, categoryID, stock)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("service: failed to save item: %w", err)
	}

	return item, nil
}

// GetItem retrieves a single item.
func (s *ItemServiceImpl) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListItems retrieves all items, optionally filtered by category.
func (s *ItemServiceImpl) ListItems(ctx context.Context, categoryID string) ([]*domain.Item, error) {
	items, err := s.repo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}

	return items, nil
}

// UpdateItem applies new fields to an existing item.
func (s *ItemServiceImpl) UpdateItem(ctx context.Context, id, name, description string, price int64, stock int) (*domain.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Apply(name, description, price, stock); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("service: failed to update item: %w", err)
	}

	return item, nil
}

// DeleteItem removes an item.
func (s *ItemServiceImpl) DeleteItem(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	return nil
}
