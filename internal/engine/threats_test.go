package engine_test

import (
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(t *testing.T, ids ...string) []domain.Champion {
	t.Helper()

	c := catalog.Default()
	team := make([]domain.Champion, 0, len(ids))
	for _, id := range ids {
		ch, err := c.Champion(id)
		require.NoError(t, err)
		team = append(team, ch)
	}
	return team
}

func TestAggregateThreats_EmptyRoster(t *testing.T) {
	assert.Equal(t, domain.ThreatProfile{}, engine.AggregateThreats(nil))
	assert.Equal(t, domain.ThreatProfile{}, engine.AggregateThreats([]domain.Champion{}))
}

func TestAggregateThreats(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		expected domain.ThreatProfile
	}{
		{
			name:     "physical assassin",
			ids:      []string{"zed"},
			expected: domain.ThreatProfile{Physical: 1, Burst: 1},
		},
		{
			name:     "mixed tank",
			ids:      []string{"ornn"},
			expected: domain.ThreatProfile{Physical: 0.5, Magical: 0.5, CrowdControl: 1, Durability: 1},
		},
		{
			name:     "true damage marksman",
			ids:      []string{"vayne"},
			expected: domain.ThreatProfile{Physical: 0.3, Magical: 0.3, CrowdControl: 0.5},
		},
		{
			name:     "fighter counts half durability",
			ids:      []string{"darius", "garen"},
			expected: domain.ThreatProfile{Physical: 2, CrowdControl: 0.5, Durability: 1},
		},
		{
			name:     "three tanks",
			ids:      []string{"malphite", "braum", "sion"},
			expected: domain.ThreatProfile{Physical: 0.5, Magical: 2.5, CrowdControl: 2.5, Durability: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.AggregateThreats(roster(t, tt.ids...))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAggregateThreats_OrderIndependent(t *testing.T) {
	forward := roster(t, "vayne", "ornn", "zed", "lux", "amumu")
	reversed := roster(t, "amumu", "lux", "zed", "ornn", "vayne")
	shuffled := roster(t, "zed", "amumu", "vayne", "lux", "ornn")

	expected := engine.AggregateThreats(forward)
	assert.Equal(t, expected, engine.AggregateThreats(reversed))
	assert.Equal(t, expected, engine.AggregateThreats(shuffled))
}

func TestAggregateThreats_DoesNotMutateCatalog(t *testing.T) {
	champions := catalog.Default().Champions
	snapshot := catalog.Default().Champions

	first := engine.AggregateThreats(champions[:5])
	second := engine.AggregateThreats(champions[:5])

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, champions)
}
