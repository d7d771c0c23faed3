package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/repository"
	"github.com/dom/rift-companion/internal/repository/postgres"
	"github.com/dom/rift-companion/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampionRepository_UpsertMany(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	first := testutil.NewChampionBuilder().WithID("zeta").WithPosition(0).Value()
	second := testutil.NewChampionBuilder().WithID("alpha").WithPosition(1).Value()

	require.NoError(t, repo.UpsertMany(ctx, []*domain.Champion{&first, &second}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// position wins over ID
	assert.Equal(t, "zeta", all[0].ID)
	assert.Equal(t, "alpha", all[1].ID)

	second.Archetype = domain.ArchetypeTank
	second.DamageType = domain.DamageMagical
	require.NoError(t, repo.UpsertMany(ctx, []*domain.Champion{&second}))

	got, err := repo.GetByID(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, domain.ArchetypeTank, got.Archetype)
	assert.Equal(t, domain.DamageMagical, got.DamageType)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.UpsertMany(ctx, nil))
}

func TestChampionRepository_GetByIDNotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewChampionRepository(testDB.DB)

	_, err := repo.GetByID(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)
}

func TestItemRepository_JSONColumns(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewItemRepository(testDB.DB)
	ctx := context.Background()

	built := testutil.NewItemBuilder().
		WithTags(domain.TagCountersTank, domain.TagSustained).
		WithStats(domain.StatBlock{AttackDamage: 40, AttackSpeed: 25}).
		Build(t, testDB.DB)

	got, err := repo.GetByID(ctx, built.ID)
	require.NoError(t, err)
	assert.Equal(t, built.Stats, got.Stats)
	assert.True(t, got.HasTag(domain.TagCountersTank))
	assert.True(t, got.HasTag(domain.TagSustained))
	assert.Len(t, got.Tags, 2)

	_, err = repo.GetByID(ctx, "missing_item")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSeed_Postgres(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()
	cat := catalog.MustLoad()

	result, err := repository.Seed(ctx, repos, cat)
	require.NoError(t, err)
	assert.Equal(t, 125, result.Champions)
	assert.Equal(t, 45, result.Items)
	assert.Equal(t, 10, result.Runes)
	assert.Equal(t, catalog.Version, result.Version)

	// seeding twice updates in place
	_, err = repository.Seed(ctx, repos, cat)
	require.NoError(t, err)

	champions, err := repos.Champion.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, champions, 125)
	assert.Equal(t, cat.Champions[0].ID, champions[0].ID)
	assert.Equal(t, cat.Champions[124].ID, champions[124].ID)

	items, err := repos.Item.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 45)
	for i, item := range items {
		assert.Equal(t, cat.Items[i].ID, item.ID)
		assert.ElementsMatch(t, cat.Items[i].Tags, item.Tags, item.ID)
	}

	runes, err := repos.Rune.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, runes, 10)

	_, err = repos.Rune.GetByID(ctx, "unknown_rune")
	assert.ErrorIs(t, err, domain.ErrRuneNotFound)

	testDB.Truncate(t)
	champions, err = repos.Champion.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, champions)

	_, err = repository.Seed(ctx, repos, cat)
	require.NoError(t, err)
	zed, err := repos.Champion.GetByID(ctx, "zed")
	require.NoError(t, err)
	assert.Equal(t, domain.ArchetypeAssassin, zed.Archetype)
}
