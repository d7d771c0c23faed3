package catalog_test

import (
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	c := catalog.Default()

	require.NoError(t, catalog.Validate(c))
	assert.Len(t, c.Champions, 125)
	assert.Len(t, c.Items, 45)
	assert.Len(t, c.Runes, 10)

	for i, ch := range c.Champions {
		assert.Equal(t, i, ch.Position, "champion %s", ch.ID)
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	first := catalog.Default()
	first.Champions[0].Name = "Changed"
	first.Items[0].Tags[0] = domain.TagHeal
	first.Items[0].Cost = 1

	second := catalog.Default()
	assert.Equal(t, "Aatrox", second.Champions[0].Name)
	assert.Equal(t, domain.TagBurst, second.Items[0].Tags[0])
	assert.Equal(t, 3400, second.Items[0].Cost)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *catalog.Catalog)
	}{
		{
			name:   "uppercase champion id",
			mutate: func(c *catalog.Catalog) { c.Champions[0].ID = "Aatrox" },
		},
		{
			name:   "duplicate champion id",
			mutate: func(c *catalog.Catalog) { c.Champions[1].ID = c.Champions[0].ID },
		},
		{
			name:   "invalid archetype",
			mutate: func(c *catalog.Catalog) { c.Champions[0].Archetype = "wizard" },
		},
		{
			name:   "zero cost item",
			mutate: func(c *catalog.Catalog) { c.Items[0].Cost = 0 },
		},
		{
			name:   "unknown category",
			mutate: func(c *catalog.Catalog) { c.Items[0].Category = "trinket" },
		},
		{
			name:   "unknown tag",
			mutate: func(c *catalog.Catalog) { c.Items[0].Tags = append(c.Items[0].Tags, "lifesteal") },
		},
		{
			name:   "duplicate rune id",
			mutate: func(c *catalog.Catalog) { c.Runes[1].ID = c.Runes[0].ID },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := catalog.Default()
			tt.mutate(c)

			err := catalog.Validate(c)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestLookups(t *testing.T) {
	c := catalog.MustLoad()

	zed, err := c.Champion("zed")
	require.NoError(t, err)
	assert.Equal(t, domain.ArchetypeAssassin, zed.Archetype)

	_, err = c.Champion("teemo_the_great")
	assert.ErrorIs(t, err, domain.ErrChampionNotFound)

	ie, err := c.Item("infinity_edge")
	require.NoError(t, err)
	assert.True(t, ie.HasTag(domain.TagCrit))

	_, err = c.Item("doran_blade")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = c.Rune("nope")
	assert.ErrorIs(t, err, domain.ErrRuneNotFound)
}

func TestSearchChampions(t *testing.T) {
	c := catalog.Default()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := catalog.SearchChampions(c.Champions, "  MUNDO ", nil)
		require.Len(t, got, 1)
		assert.Equal(t, "dr_mundo", got[0].ID)
	})

	t.Run("excludes picked champions", func(t *testing.T) {
		all := catalog.SearchChampions(c.Champions, "", nil)
		filtered := catalog.SearchChampions(c.Champions, "", []string{"zed", "ahri"})
		assert.Len(t, filtered, len(all)-2)
		for _, ch := range filtered {
			assert.NotEqual(t, "zed", ch.ID)
			assert.NotEqual(t, "ahri", ch.ID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got := catalog.SearchChampions(c.Champions, "xyzzy", nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestItemsByCategory(t *testing.T) {
	c := catalog.Default()

	boots := catalog.ItemsByCategory(c.Items, domain.CategoryBoots)
	require.Len(t, boots, 2)
	assert.Equal(t, "boots_mana", boots[0].ID)
	assert.Equal(t, "boots_dynamism", boots[1].ID)
}
