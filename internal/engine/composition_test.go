package engine_test

import (
	"testing"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestBuildTeamProfile(t *testing.T) {
	p := engine.BuildTeamProfile(roster(t, "jinx", "malphite", "darius"))

	assert.Equal(t, 6.0, p.Damage)
	assert.Equal(t, 6.0, p.Durability)
	assert.Equal(t, 6.0, p.CrowdControl)
	assert.Equal(t, 3.0, p.Mobility)
	assert.Equal(t, 7.0, p.Scaling)
	assert.Equal(t, domain.DamageTally{Physical: 2, Magical: 1}, p.DamageTypes)
}

func TestWinProbability(t *testing.T) {
	jinx := engine.BuildTeamProfile(roster(t, "jinx"))
	zed := engine.BuildTeamProfile(roster(t, "zed"))

	assert.InDelta(t, 52.25, engine.WinProbability(jinx, zed), 1e-9)
	assert.InDelta(t, 47.75, engine.WinProbability(zed, jinx), 1e-9)
	assert.InDelta(t, 50.0, engine.WinProbability(zed, zed), 1e-9)
}

func TestWinProbability_Clamped(t *testing.T) {
	strong := engine.BuildTeamProfile(roster(t, "malphite", "amumu", "ornn", "sion", "jinx"))
	empty := engine.BuildTeamProfile(nil)

	assert.Equal(t, engine.MaxWinProbability, engine.WinProbability(strong, empty))
	assert.Equal(t, engine.MinWinProbability, engine.WinProbability(empty, strong))
}

func TestSimulateComposition_ProfileIsSideAgnostic(t *testing.T) {
	a := roster(t, "zed", "lux", "garen")
	b := roster(t, "jinx", "braum")

	asOwn := engine.SimulateComposition(a, b)
	asOpposing := engine.SimulateComposition(b, a)

	assert.Equal(t, engine.BuildTeamProfile(a), asOwn.Profile)
	assert.Equal(t, engine.BuildTeamProfile(b), asOpposing.Profile)
	assert.InDelta(t, 100.0, asOwn.WinProbability+asOpposing.WinProbability, 1e-9)
}

func TestSimulateComposition_WinConditions(t *testing.T) {
	tests := []struct {
		name     string
		own      []string
		opposing []string
		expected string
	}{
		{
			name:     "out-scaling wins late",
			own:      []string{"jinx"},
			opposing: []string{"zed"},
			expected: engine.WinConditionLateGame,
		},
		{
			name:     "mobile damage picks off",
			own:      []string{"zed", "akali", "ekko", "evelynn"},
			opposing: []string{"jinx", "vayne", "amumu"},
			expected: engine.WinConditionPickOff,
		},
		{
			name:     "frontline above eight",
			own:      []string{"malphite", "braum", "leona"},
			opposing: []string{"jinx", "vayne"},
			expected: engine.WinConditionFrontToBack,
		},
		{
			name:     "frontline of exactly eight falls through",
			own:      []string{"malphite", "braum", "garen"},
			opposing: []string{"jinx", "vayne"},
			expected: engine.WinConditionObjectives,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.SimulateComposition(roster(t, tt.own...), roster(t, tt.opposing...))
			assert.Equal(t, tt.expected, result.WinCondition)
		})
	}
}

func TestSimulateComposition_Findings(t *testing.T) {
	result := engine.SimulateComposition(
		roster(t, "zed", "akali", "ekko", "evelynn"),
		roster(t, "jinx", "vayne", "amumu"),
	)

	assert.Equal(t, []string{engine.StrengthBurst, engine.StrengthMobility}, result.Strengths)
	assert.Equal(t, []string{engine.VulnerabilityLowCC}, result.Vulnerabilities)

	result = engine.SimulateComposition(
		roster(t, "jinx", "draven", "caitlyn", "zed"),
		roster(t, "malphite"),
	)

	// four squishies still count as a frontline of exactly four
	assert.NotContains(t, result.Vulnerabilities, engine.VulnerabilityFrontline)
	assert.Contains(t, result.Vulnerabilities, engine.VulnerabilityPhysical)
	assert.NotContains(t, result.Vulnerabilities, engine.VulnerabilityMagical)

	result = engine.SimulateComposition(roster(t, "jinx", "lux"), roster(t, "malphite"))
	assert.Contains(t, result.Vulnerabilities, engine.VulnerabilityFrontline)
}

func TestSimulateComposition_EmptyFindingsAreNotNil(t *testing.T) {
	result := engine.SimulateComposition(
		roster(t, "malphite", "leona", "amumu"),
		roster(t, "zed"),
	)

	assert.NotNil(t, result.Strengths)
	assert.NotNil(t, result.Vulnerabilities)
}

func TestSimulateComposition_FrontlineVersusCarries(t *testing.T) {
	carries := []string{"jinx", "vayne", "zed"}

	tests := []struct {
		name       string
		own        []string
		durability float64
		expected   string
	}{
		{
			name:       "three tanks clear eight",
			own:        []string{"malphite", "braum", "leona"},
			durability: 9,
			expected:   engine.WinConditionFrontToBack,
		},
		{
			name:       "two tanks and a fighter stay at eight",
			own:        []string{"malphite", "braum", "garen"},
			durability: 8,
			expected:   engine.WinConditionObjectives,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opposing := roster(t, carries...)
			result := engine.SimulateComposition(roster(t, tt.own...), opposing)

			assert.Equal(t, tt.durability, result.Profile.Durability)
			assert.Greater(t, result.Profile.Durability, engine.BuildTeamProfile(opposing).Durability)
			assert.Equal(t, tt.expected, result.WinCondition)
		})
	}
}

func TestSimulateComposition_DoesNotMutateCatalog(t *testing.T) {
	champions := catalog.Default().Champions
	snapshot := catalog.Default().Champions

	first := engine.SimulateComposition(champions[:5], champions[5:10])
	second := engine.SimulateComposition(champions[:5], champions[5:10])

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, champions)
}
