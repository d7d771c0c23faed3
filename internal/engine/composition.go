package engine

import (
	"math"

	"github.com/dom/rift-companion/internal/domain"
)

const (
	// MinWinProbability and MaxWinProbability bound every estimate
	MinWinProbability = 10.0
	MaxWinProbability = 90.0
)

// Win conditions, in precedence order
const (
	WinConditionLateGame    = "Play for the late game. Avoid early risks and prioritise farm."
	WinConditionPickOff     = "Pick-off and snowball. Force fights with a numbers advantage."
	WinConditionFrontToBack = "Front-to-back teamfights. Protect your carries and lean on your durability."
	WinConditionObjectives  = "Focus objectives and avoid unnecessary fights."
)

// Findings
const (
	VulnerabilityFrontline = "Insufficient frontline."
	VulnerabilityLowCC     = "Low group control (CC)."
	VulnerabilityPhysical  = "Mostly physical damage. Easy to itemize against."
	VulnerabilityMagical   = "Mostly magic damage. Easy to itemize against."

	StrengthBurst    = "High burst damage potential."
	StrengthScaling  = "Strong late-game scaling."
	StrengthMobility = "High mobility and pick-off potential."
)

var curveWeights = map[domain.PowerCurve]float64{
	domain.CurveEarly:  1,
	domain.CurveLinear: 2,
	domain.CurveMid:    2.5,
	domain.CurveLate:   4,
}

func levelWeight(l domain.Level) float64 {
	switch l {
	case domain.LevelLow:
		return 1
	case domain.LevelMedium:
		return 2
	case domain.LevelHigh:
		return 3
	}
	return 0
}

// BuildTeamProfile aggregates a roster. The per-champion contribution does not
// depend on which side the roster is on.
func BuildTeamProfile(team []domain.Champion) domain.TeamProfile {
	var p domain.TeamProfile

	for _, c := range team {
		switch c.Archetype {
		case domain.ArchetypeMarksman, domain.ArchetypeAssassin:
			p.Damage += 3
		case domain.ArchetypeMage, domain.ArchetypeFighter:
			p.Damage += 2
		default:
			p.Damage += 1
		}

		switch c.Archetype {
		case domain.ArchetypeTank:
			p.Durability += 3
		case domain.ArchetypeFighter:
			p.Durability += 2
		default:
			p.Durability += 1
		}

		p.CrowdControl += levelWeight(c.CCDensity)
		p.Mobility += levelWeight(c.Mobility)
		p.Scaling += curveWeights[c.PowerCurve]

		switch c.DamageType {
		case domain.DamagePhysical:
			p.DamageTypes.Physical++
		case domain.DamageMagical:
			p.DamageTypes.Magical++
		case domain.DamageTrue:
			p.DamageTypes.True++
		case domain.DamageMixed:
			p.DamageTypes.Mixed++
		}
	}

	return p
}

// WinProbability estimates the own side's chance in percent, clamped to
// [MinWinProbability, MaxWinProbability]. The value is not rounded, so
// fractional percentages such as 52.25 are returned as is. Mobility does not
// contribute.
func WinProbability(own, opposing domain.TeamProfile) float64 {
	p := 50.0
	p += (own.Damage - opposing.Damage) * 2
	p += (own.Durability - opposing.Durability) * 2
	p += (own.CrowdControl - opposing.CrowdControl) * 2
	p += (own.Scaling - opposing.Scaling) * 1.5

	return math.Min(math.Max(p, MinWinProbability), MaxWinProbability)
}

// SimulateComposition compares two rosters. Callers must pass non-empty
// rosters; an empty side is scored as all zeros and pins the estimate to a
// clamp boundary.
func SimulateComposition(own, opposing []domain.Champion) domain.SimulationResult {
	ownProfile := BuildTeamProfile(own)
	oppProfile := BuildTeamProfile(opposing)

	vulnerabilities := []string{}
	if ownProfile.Durability < 4 {
		vulnerabilities = append(vulnerabilities, VulnerabilityFrontline)
	}
	if ownProfile.CrowdControl < 6 {
		vulnerabilities = append(vulnerabilities, VulnerabilityLowCC)
	}
	if ownProfile.DamageTypes.Physical > 3 {
		vulnerabilities = append(vulnerabilities, VulnerabilityPhysical)
	}
	if ownProfile.DamageTypes.Magical > 3 {
		vulnerabilities = append(vulnerabilities, VulnerabilityMagical)
	}

	strengths := []string{}
	if ownProfile.Damage > 10 {
		strengths = append(strengths, StrengthBurst)
	}
	if ownProfile.Scaling > 12 {
		strengths = append(strengths, StrengthScaling)
	}
	if ownProfile.Mobility > 10 {
		strengths = append(strengths, StrengthMobility)
	}

	return domain.SimulationResult{
		WinProbability:  WinProbability(ownProfile, oppProfile),
		Profile:         ownProfile,
		Strengths:       strengths,
		Vulnerabilities: vulnerabilities,
		WinCondition:    winCondition(ownProfile, oppProfile),
	}
}

func winCondition(own, opposing domain.TeamProfile) string {
	switch {
	case own.Scaling > opposing.Scaling:
		return WinConditionLateGame
	case own.Damage > opposing.Damage && own.Mobility > 10:
		return WinConditionPickOff
	case own.Durability > 8:
		return WinConditionFrontToBack
	default:
		return WinConditionObjectives
	}
}
