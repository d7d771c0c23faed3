// Package engine holds the deterministic scoring core: threat aggregation,
// item recommendation and team composition simulation. Every function is a
// pure function of its arguments; nothing here reads global state or logs.
package engine

import "github.com/dom/rift-companion/internal/domain"

// Threat contributions are counted in tenths so the sums are exact and do
// not depend on roster order.
const (
	threatFull  = 10
	threatHalf  = 5
	threatTrace = 3
)

// AggregateThreats reduces an opposing roster to threat scores. An empty
// roster yields the zero profile.
func AggregateThreats(opponents []domain.Champion) domain.ThreatProfile {
	var physical, magical, cc, durability, burst int

	for _, c := range opponents {
		switch c.DamageType {
		case domain.DamagePhysical:
			physical += threatFull
		case domain.DamageMagical:
			magical += threatFull
		case domain.DamageMixed:
			physical += threatHalf
			magical += threatHalf
		case domain.DamageTrue:
			physical += threatTrace
			magical += threatTrace
		}

		switch c.CCDensity {
		case domain.LevelHigh:
			cc += threatFull
		case domain.LevelMedium:
			cc += threatHalf
		}

		switch c.Archetype {
		case domain.ArchetypeTank:
			durability += threatFull
		case domain.ArchetypeFighter:
			durability += threatHalf
		case domain.ArchetypeAssassin, domain.ArchetypeMage:
			burst += threatFull
		}
	}

	return domain.ThreatProfile{
		Physical:     tenths(physical),
		Magical:      tenths(magical),
		CrowdControl: tenths(cc),
		Durability:   tenths(durability),
		Burst:        tenths(burst),
	}
}

func tenths(n int) float64 {
	return float64(n) / 10
}
