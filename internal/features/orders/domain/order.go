package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyOrder      = errors.New("order must contain at least one line")
	ErrInvalidQuantity = errors.New("order line quantity must be positive")
)

// OrderStatus tracks the lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderLine is one item position within an order. UnitPrice is captured at
// order time so later catalog price changes do not affect placed orders.
type OrderLine struct {
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// Order represents a placed customer order.
type Order struct {
	ID        string      `json:"id"`
	Lines     []OrderLine `json:"lines"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewOrder creates a pending Order from the given lines and computes its total.
func NewOrder(lines []OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	var total int64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		total += line.UnitPrice * int64(line.Quantity)
	}

	return &Order{
		ID:        uuid.NewString(),
		Lines:     lines,
		Total:     total,
		Status:    OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}, nil
}
