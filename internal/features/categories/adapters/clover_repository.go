package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ostafen/clover"

	"shop-api/internal/features/categories/domain"
)

const categoriesCollection = "categories"

// CloverCategoryRepository implements ports.CategoryRepository on the
// CloverDB document store.
type CloverCategoryRepository struct {
	db *clover.DB
}

// NewCloverCategoryRepository creates a new CloverCategoryRepository.
func NewCloverCategoryRepository(db *clover.DB) *CloverCategoryRepository {
	return &CloverCategoryRepository{db: db}
}

// Save stores a new category document.
func (r *CloverCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	data, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("failed to encode category: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to encode category: %w", err)
	}

	doc := clover.NewDocument()
	for key, value := range fields {
		doc.Set(key, value)
	}

	if err := r.db.Insert(categoriesCollection, doc); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// FindAll lists all categories in name order.
func (r *CloverCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	docs, err := r.db.Query(categoriesCollection).
		Sort(clover.SortOption{Field: "name", Direction: 1}).
		FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	categories := make([]*domain.Category, 0, len(docs))
	for _, doc := range docs {
		var category domain.Category
		if err := doc.Unmarshal(&category); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, &category)
	}
	return categories, nil
}

// Delete removes a category by its ID.
func (r *CloverCategoryRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Query(categoriesCollection).Where(clover.Field("id").Eq(id))

	count, err := query.Count()
	if err != nil {
		return fmt.Errorf("failed to look up category %s: %w", id, err)
	}
	if count == 0 {
		return domain.ErrCategoryNotFound
	}

	if err := query.Delete(); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}
