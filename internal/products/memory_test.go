package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateOnEmptyStartsAtOne(t *testing.T) {
	repo := NewMemoryRepo()
	id, err := repo.Create(context.Background(), Product{Name: "Caneca", Status: StatusIn})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestMemoryCreateAssignsMaxPlusOne(t *testing.T) {
	repo := NewMemoryRepo(Product{ID: 3, Name: "a"}, Product{ID: 7, Name: "b"})
	id, err := repo.Create(context.Background(), Product{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestMemoryUpdateReplacesInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(
		Product{ID: 1, Name: "a"},
		Product{ID: 2, Name: "b"},
		Product{ID: 3, Name: "c"},
	)
	err := repo.Update(ctx, 2, Product{Name: "b2", Quantity: 5})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 3}, idsOf(items))
	assert.Equal(t, "b2", items[1].Name)
	assert.Equal(t, 5, items[1].Quantity)
}

func TestMemoryUpdateMissingID(t *testing.T) {
	repo := NewMemoryRepo(Product{ID: 1})
	err := repo.Update(context.Background(), 9, Product{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(Product{ID: 1}, Product{ID: 2})
	require.NoError(t, repo.Delete(ctx, 9))
	items, _ := repo.List(ctx)
	assert.Len(t, items, 2)
}

func TestMemoryDeleteManyPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(
		Product{ID: 1}, Product{ID: 2}, Product{ID: 3},
		Product{ID: 4}, Product{ID: 5},
	)
	require.NoError(t, repo.DeleteMany(ctx, []int64{1, 3, 5}))
	items, _ := repo.List(ctx)
	assert.Equal(t, []int64{2, 4}, idsOf(items))
}

func TestMemoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo(Product{ID: 1, Name: "a"})
	items, _ := repo.List(ctx)
	items[0].Name = "mutated"
	fresh, _ := repo.List(ctx)
	assert.Equal(t, "a", fresh[0].Name)
}

func idsOf(items []Product) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
