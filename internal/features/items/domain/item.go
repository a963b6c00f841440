package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrNameRequired = errors.New("item name is required")
	ErrInvalidPrice = errors.New("item price must be positive")
	ErrInvalidStock = errors.New("item stock cannot be negative")
	ErrInsufficient = errors.New("insufficient stock")
)

// Item represents a product in the catalog. Price is stored in cents to
// avoid floating point rounding in totals.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	CategoryID  string    `json:"category_id,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates a new Item and validates it.
func NewItem(name, description string, price int64, categoryID string, stock int) (*Item, error) {
	if err := validate(name, price, stock); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply validates and applies the given fields to the item.
func (i *Item) Apply(name, description string, price int64, stock int) error {
	if err := validate(name, price, stock); err != nil {
		return err
	}

	i.Name = name
	i.Description = description
	i.Price = price
	i.Stock = stock
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Reserve decrements stock by quantity, failing when not enough is left.
func (i *Item) Reserve(quantity int) error {
	if quantity > i.Stock {
		return ErrInsufficient
	}
	i.Stock -= quantity
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Release returns previously reserved stock to the item.
func (i *Item) Release(quantity int) {
	i.Stock += quantity
	i.UpdatedAt = time.Now().UTC()
}

func validate(name string, price int64, stock int) error {
	if name == "" {
		return ErrNameRequired
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}
