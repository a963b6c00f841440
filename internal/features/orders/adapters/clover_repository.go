package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ostafen/clover"

	"shop-api/internal/features/orders/domain"
)

const ordersCollection = "orders"

// CloverOrderRepository implements ports.OrderRepository on the CloverDB
// document store.
type CloverOrderRepository struct {
	db *clover.DB
}

// NewCloverOrderRepository creates a new CloverOrderRepository.
func NewCloverOrderRepository(db *clover.DB) *CloverOrderRepository {
	return &CloverOrderRepository{db: db}
}

// Save stores a new order document.
func (r *CloverOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	doc := clover.NewDocument()
	for key, value := range fields {
		doc.Set(key, value)
	}

	if err := r.db.Insert(ordersCollection, doc); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// FindByID retrieves a single order by its ID.
func (r *CloverOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	docs, err := r.db.Query(ordersCollection).Where(clover.Field("id").Eq(id)).Limit(1).FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query order %s: %w", id, err)
	}
	if len(docs) == 0 {
		return nil, domain.ErrOrderNotFound
	}

	var order domain.Order
	if err := docs[0].Unmarshal(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order %s: %w", id, err)
	}
	return &order, nil
}

// FindAll lists orders, newest first.
func (r *CloverOrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	docs, err := r.db.Query(ordersCollection).
		Sort(clover.SortOption{Field: "created_at", Direction: -1}).
		FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(docs))
	for _, doc := range docs {
		var order domain.Order
		if err := doc.Unmarshal(&order); err != nil {
			return nil, fmt.Errorf("failed to decode order: %w", err)
		}
		orders = append(orders, &order)
	}
	return orders, nil
}
