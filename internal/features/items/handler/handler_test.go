package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-api/internal/features/items/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockItemService is a mock implementation of ports.ItemService
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, name, description string, price int64, categoryID string, stock int) (*domain.Item, error) {
	args := m.Called(ctx, name, description, price, categoryID, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context, categoryID string) ([]*domain.Item, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, id, name, description string, price int64, stock int) (*domain.Item, error) {
	args := m.Called(ctx, id, name, description, price, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupApp(service *MockItemService) *fiber.App {
	app := fiber.New()
	handler := NewItemHandler(service)
	app.Get("/api/items", handler.ListItems)
	app.Get("/api/items/:id", handler.GetItem)
	app.Post("/api/items", handler.CreateItem)
	app.Put("/api/items/:id", handler.UpdateItem)
	app.Delete("/api/items/:id", handler.DeleteItem)
	return app
}

func TestItemHandler_ListItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		item, _ := domain.NewItem("Keyboard", "", 4999, "", 10)
		mockService.On("ListItems", mock.Anything, "").Return([]*domain.Item{item}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string][]domain.Item
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body["items"], 1)
		mockService.AssertExpectations(t)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		mockService.On("ListItems", mock.Anything, "cat-1").Return([]*domain.Item{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items?category=cat-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		mockService.On("ListItems", mock.Anything, "").Return(nil, errors.New("db error")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandler_GetItem(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		mockService.On("GetItem", mock.Anything, "missing").Return(nil, domain.ErrItemNotFound).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/items/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandler_CreateItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		reqBody := ItemRequest{Name: "Keyboard", Price: 4999, Stock: 10}
		body, _ := json.Marshal(reqBody)

		created, _ := domain.NewItem(reqBody.Name, "", reqBody.Price, "", reqBody.Stock)
		mockService.On("CreateItem", mock.Anything, reqBody.Name, "", reqBody.Price, "", reqBody.Stock).
			Return(created, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		body, _ := json.Marshal(ItemRequest{Price: 4999})
		mockService.On("CreateItem", mock.Anything, "", "", int64(4999), "", 0).
			Return(nil, domain.ErrNameRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		body, _ := json.Marshal(ItemRequest{Name: "Keyboard", Price: 4999, Stock: 10})
		mockService.On("UpdateItem", mock.Anything, "missing", "Keyboard", "", int64(4999), 10).
			Return(nil, domain.ErrItemNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/items/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		mockService.On("DeleteItem", mock.Anything, "item-1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/items/item-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockItemService)
		app := setupApp(mockService)

		mockService.On("DeleteItem", mock.Anything, "missing").Return(domain.ErrItemNotFound).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/items/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
