package memory_test

import (
	"context"
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionRepository_GetAllKeepsCatalogOrder(t *testing.T) {
	repos := memory.NewRepositories(catalog.Default())

	champions, err := repos.Champion.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, champions, 125)
	assert.Equal(t, "aatrox", champions[0].ID)
	assert.Equal(t, "zyra", champions[len(champions)-1].ID)
}

func TestChampionRepository_GetByID(t *testing.T) {
	repos := memory.NewRepositories(catalog.Default())
	ctx := context.Background()

	zed, err := repos.Champion.GetByID(ctx, "zed")
	require.NoError(t, err)
	assert.Equal(t, "Zed", zed.Name)

	_, err = repos.Champion.GetByID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	repos := memory.NewRepositories(catalog.Default())
	ctx := context.Background()

	ie, err := repos.Item.GetByID(ctx, "infinity_edge")
	require.NoError(t, err)
	ie.Tags[0] = domain.TagHeal
	ie.Cost = 1

	again, err := repos.Item.GetByID(ctx, "infinity_edge")
	require.NoError(t, err)
	assert.Equal(t, domain.TagBurst, again.Tags[0])
	assert.Equal(t, 3400, again.Cost)
}

func TestItemRepository_UpsertMany(t *testing.T) {
	repos := memory.NewRepositories(catalog.Default())
	ctx := context.Background()

	err := repos.Item.UpsertMany(ctx, []*domain.Item{
		{ID: "infinity_edge", Name: "Infinity Edge", Cost: 3500, Category: domain.CategoryOffensivePhysical},
		{ID: "doran_blade", Name: "Doran's Blade", Cost: 450, Category: domain.CategoryOffensivePhysical},
	})
	require.NoError(t, err)

	items, err := repos.Item.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 46)
	assert.Equal(t, "infinity_edge", items[0].ID)
	assert.Equal(t, 3500, items[0].Cost)
	assert.Equal(t, "doran_blade", items[45].ID)
}

func TestRuneRepository(t *testing.T) {
	repos := memory.NewRepositories(catalog.Default())
	ctx := context.Background()

	runes, err := repos.Rune.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, runes, 10)

	got, err := repos.Rune.GetByID(ctx, "conqueror")
	require.NoError(t, err)
	assert.Equal(t, "Conqueror", got.Name)

	_, err = repos.Rune.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRuneNotFound)
}
