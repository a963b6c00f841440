package adapters

import (
	"context"
	"testing"

	"shop-api/internal/features/items/domain"

	"github.com/ostafen/clover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *CloverItemRepository {
	t.Helper()

	db, err := clover.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.CreateCollection(itemsCollection))
	return NewCloverItemRepository(db)
}

func TestCloverItemRepository_SaveAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item, err := domain.NewItem("Keyboard", "Mechanical", 4999, "cat-1", 10)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
	assert.Equal(t, "Keyboard", found.Name)
	assert.Equal(t, int64(4999), found.Price)
	assert.Equal(t, 10, found.Stock)
}

func TestCloverItemRepository_FindByID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCloverItemRepository_FindAll_CategoryFilter(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	keyboard, _ := domain.NewItem("Keyboard", "", 4999, "peripherals", 10)
	monitor, _ := domain.NewItem("Monitor", "", 19999, "displays", 5)
	require.NoError(t, repo.Save(ctx, keyboard))
	require.NoError(t, repo.Save(ctx, monitor))

	all, err := repo.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := repo.FindAll(ctx, "peripherals")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, keyboard.ID, filtered[0].ID)
}

func TestCloverItemRepository_Update(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item, _ := domain.NewItem("Keyboard", "", 4999, "", 10)
	require.NoError(t, repo.Save(ctx, item))

	require.NoError(t, item.Apply("Keyboard Pro", "", 5999, 8))
	require.NoError(t, repo.Update(ctx, item))

	found, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard Pro", found.Name)
	assert.Equal(t, int64(5999), found.Price)
	assert.Equal(t, 8, found.Stock)
}

func TestCloverItemRepository_Update_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	item, _ := domain.NewItem("Keyboard", "", 4999, "", 10)
	err := repo.Update(context.Background(), item)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCloverItemRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item, _ := domain.NewItem("Keyboard", "", 4999, "", 10)
	require.NoError(t, repo.Save(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID), domain.ErrItemNotFound)
}
