package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ostafen/clover"

	"shop-api/internal/features/items/domain"
)

const itemsCollection = "items"

// CloverItemRepository implements ports.ItemRepository on the CloverDB
// document store.
type CloverItemRepository struct {
	db *clover.DB
}

// NewCloverItemRepository creates a new CloverItemRepository.
func NewCloverItemRepository(db *clover.DB) *CloverItemRepository {
	return &CloverItemRepository{db: db}
}

// Save stores a new item document.
func (r *CloverItemRepository) Save(ctx context.Context, item *domain.Item) error {
	doc, err := toDocument(item)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}

	if err := r.db.Insert(itemsCollection, doc); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// Update replaces the fields of an existing item document.
func (r *CloverItemRepository) Update(ctx context.Context, item *domain.Item) error {
	fields, err := toFields(item)
	if err != nil {
		return fmt.Errorf("failed to encode item: %w", err)
	}

	query := r.db.Query(itemsCollection).Where(clover.Field("id").Eq(item.ID))

	count, err := query.Count()
	if err != nil {
		return fmt.Errorf("failed to look up item %s: %w", item.ID, err)
	}
	if count == 0 {
		return domain.ErrItemNotFound
	}

	if err := query.Update(fields); err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.ID, err)
	}
	return nil
}

// FindByID retrieves a single item by its ID.
func (r *CloverItemRepository) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	docs, err := r.db.Query(itemsCollection).Where(clover.Field("id").Eq(id)).Limit(1).FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query item %s: %w", id, err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrItemNotFound
	}

	var item domain.Item
	if err := docs[0].Unmarshal(&item); err != nil {
		return nil, fmt.Errorf("failed to decode item %s: %w", id, err)
	}
	return &item, nil
}

// FindAll lists items, optionally filtered by category, newest first.
func (r *CloverItemRepository) FindAll(ctx context.Context, categoryID string) ([]*domain.Item, error) {
	query := r.db.Query(itemsCollection)
	if categoryID != "" {
		query = query.Where(clover.Field("category_id").Eq(categoryID))
	}
	query = query.Sort(clover.SortOption{Field: "created_at", Direction: -1})

	docs, err := query.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	items := make([]*domain.Item, 0, len(docs))
	for _, doc := range docs {
		var item domain.Item
		if err := doc.Unmarshal(&item); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		items = append(items, &item)
	}
	return items, nil
}

// Delete removes an item by its ID.
func (r *CloverItemRepository) Delete(ctx context.Context, id string) error {
	query := r.db.Query(itemsCollection).Where(clover.Field("id").Eq(id))

	count, err := query.Count()
	if err != nil {
		return fmt.Errorf("failed to look up item %s: %w", id, err)
	}
	if count == 0 {
		return domain.ErrItemNotFound
	}

	if err := query.Delete(); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", id, err)
	}
	return nil
}

// toFields converts a value into the flat map CloverDB updates expect,
// via its JSON representation.
func toFields(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// toDocument converts a value into a CloverDB document via its JSON
// representation.
func toDocument(v interface{}) (*clover.Document, error) {
	fields, err := toFields(v)
	if err != nil {
		return nil, err
	}
	doc := clover.NewDocument()
	for key, value := range fields {
		doc.Set(key, value)
	}
	return doc, nil
}
