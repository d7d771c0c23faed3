package engine_test

import (
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameContext(t *testing.T, own string, gold int, minutes float64, standing domain.Standing, opponents ...string) domain.GameContext {
	t.Helper()

	return domain.GameContext{
		Own:            roster(t, own)[0],
		Opponents:      roster(t, opponents...),
		Gold:           gold,
		ElapsedMinutes: minutes,
		Standing:       standing,
	}
}

func recommendationIDs(recs []domain.Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.Item.ID
	}
	return ids
}

func TestRecommendBuild_TwoTanks(t *testing.T) {
	items := catalog.Default().Items
	gc := gameContext(t, "zed", 5000, 20, domain.StandingEven, "malphite", "braum")

	recs := engine.RecommendBuild(gc, items)

	assert.Equal(t, []string{"blade_of_the_ruined_king", "divine_sunderer", "terminus", "liandrys_torment"}, recommendationIDs(recs))
	assert.InDelta(t, 27.0, recs[0].Score, 1e-9)
	assert.InDelta(t, 17.0, recs[3].Score, 1e-9)
	assert.Equal(t, domain.CategoryOffensivePhysical, recs[0].Item.Category)
	assert.Equal(t, "Durable enemies detected. Percent-health damage or penetration needed.", recs[0].Reason)
}

func TestRecommendBuild_NoOpponents(t *testing.T) {
	items := catalog.Default().Items

	t.Run("nothing clears the threshold", func(t *testing.T) {
		recs := engine.RecommendBuild(gameContext(t, "zed", 0, 20, domain.StandingEven), items)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("scaling items without threat reasons", func(t *testing.T) {
		recs := engine.RecommendBuild(gameContext(t, "lux", 10000, 10, domain.StandingEven), items)

		require.Equal(t, []string{"rabadons_deathcap", "psychic_projector"}, recommendationIDs(recs))
		for _, r := range recs {
			assert.InDelta(t, 23.0, r.Score, 1e-9)
			assert.Equal(t, "Scaling item, ideal to pick up during the early and mid game.", r.Reason)
		}
	})
}

func TestScoreItem_ThreatGatesAreStrict(t *testing.T) {
	c := catalog.Default()
	witsEnd, err := c.Item("wits_end")
	require.NoError(t, err)

	gc := gameContext(t, "garen", 5000, 20, domain.StandingEven, "ahri", "annie")
	tp := engine.AggregateThreats(gc.Opponents)
	require.Equal(t, 2.0, tp.Magical)

	score, reason := engine.ScoreItem(witsEnd, gc, tp)
	assert.InDelta(t, 15.0, score, 1e-9)
	assert.Empty(t, reason)

	gc = gameContext(t, "garen", 5000, 20, domain.StandingEven, "ahri", "annie", "lux")
	tp = engine.AggregateThreats(gc.Opponents)

	score, reason = engine.ScoreItem(witsEnd, gc, tp)
	assert.InDelta(t, 30.0, score, 1e-9)
	assert.Equal(t, "High magical threat detected (3 magic-damage champions).", reason)
}

func TestRecommendBuild_SingleMagicThreatDoesNotTriggerCounter(t *testing.T) {
	items := catalog.Default().Items
	gc := gameContext(t, "lux", 10000, 20, domain.StandingAhead, "ahri")

	tp := engine.AggregateThreats(gc.Opponents)
	require.Equal(t, 1.0, tp.Magical)

	recs := engine.RecommendBuild(gc, items)

	// only magic burst items clear the threshold: affinity + affordable + ahead
	require.Equal(t, []string{"rabadons_deathcap", "ludens_echo", "infinity_orb", "horizon_focus"}, recommendationIDs(recs))
	for _, r := range recs {
		assert.Equal(t, domain.CategoryOffensiveMagical, r.Item.Category)
		assert.InDelta(t, 22.0, r.Score, 1e-9)
		assert.Equal(t, "You are ahead. Pressing the lead with burst damage.", r.Reason)
	}

	c := catalog.Default()
	forceOfNature, err := c.Item("force_of_nature")
	require.NoError(t, err)
	score, reason := engine.ScoreItem(forceOfNature, gc, tp)
	assert.InDelta(t, 5.0, score, 1e-9)
	assert.Empty(t, reason)
}

func TestScoreItem_Standing(t *testing.T) {
	c := catalog.Default()
	thornmail, _ := c.Item("thornmail")
	infinityEdge, _ := c.Item("infinity_edge")

	tests := []struct {
		name     string
		item     domain.Item
		standing domain.Standing
		score    float64
		reason   string
	}{
		{"behind buys defense", thornmail, domain.StandingBehind, 12, "You are behind. Prioritising survivability to stabilise."},
		{"even buys nothing extra", thornmail, domain.StandingEven, 5, ""},
		{"ahead presses crit", infinityEdge, domain.StandingAhead, 22, "You are ahead. Pressing the lead with burst damage."},
		{"behind ignores crit", infinityEdge, domain.StandingBehind, 15, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := gameContext(t, "jinx", 5000, 20, tt.standing)
			score, reason := engine.ScoreItem(tt.item, gc, engine.AggregateThreats(gc.Opponents))
			assert.InDelta(t, tt.score, score, 1e-9)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestRecommendBuild_RankedAndCapped(t *testing.T) {
	items := catalog.Default().Items
	gc := gameContext(t, "jinx", 10000, 20, domain.StandingAhead, "zed", "darius", "garen", "draven", "caitlyn")

	recs := engine.RecommendBuild(gc, items)

	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), engine.MaxRecommendations)
	for i, r := range recs {
		assert.Greater(t, r.Score, engine.InclusionThreshold)
		assert.NotEmpty(t, r.Reason)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Score, r.Score)
		}
	}
}

func TestRecommendBuild_Deterministic(t *testing.T) {
	items := catalog.Default().Items
	gc := gameContext(t, "ezreal", 3000, 12, domain.StandingBehind, "malphite", "lux", "zed", "vayne")

	first := engine.RecommendBuild(gc, items)
	second := engine.RecommendBuild(gc, items)

	assert.Equal(t, first, second)
}

func TestRecommendBuild_DoesNotMutateCatalog(t *testing.T) {
	items := catalog.Default().Items
	snapshot := catalog.Default().Items
	gc := gameContext(t, "zed", 5000, 10, domain.StandingAhead, "malphite", "braum", "sion")

	first := engine.RecommendBuild(gc, items)
	second := engine.RecommendBuild(gc, items)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, items)
}

func TestRecommendBuild_TiesKeepCatalogOrder(t *testing.T) {
	items := make([]domain.Item, 0, 8)
	for _, id := range []string{"h", "g", "f", "e", "d", "c", "b", "a"} {
		items = append(items, domain.Item{
			ID:       id,
			Cost:     100,
			Category: domain.CategoryOffensivePhysical,
		})
	}
	gc := domain.GameContext{
		Own:      domain.Champion{DamageType: domain.DamagePhysical},
		Gold:     1000,
		Standing: domain.StandingEven,
	}

	recs := engine.RecommendBuild(gc, items)

	// 10 affinity + 5 affordable lands exactly on the threshold
	assert.Empty(t, recs)

	for i := range items {
		items[i].Tags = []domain.ItemTag{domain.TagScaling}
	}
	recs = engine.RecommendBuild(gc, items)

	assert.Equal(t, []string{"h", "g", "f", "e", "d", "c"}, recommendationIDs(recs))
	for _, r := range recs {
		assert.Equal(t, "Scaling item, ideal to pick up during the early and mid game.", r.Reason)
	}
}
