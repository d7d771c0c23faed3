package engine

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dom/rift-companion/internal/domain"
)

const (
	// MaxRecommendations caps the ranked list
	MaxRecommendations = 6
	// InclusionThreshold is the score an item must exceed to be listed
	InclusionThreshold = 15.0
	// LateGameMinute is the last minute at which scaling items get their nudge
	LateGameMinute = 15.0

	// DefaultReason is used when an item qualifies without triggering any reasoned bonus
	DefaultReason = "Solid all-round synergy with your champion."
)

// buildRule is one scoring bonus. Rules are evaluated in slice order; the
// first triggered rule carrying a reason supplies the recommendation's reason.
type buildRule struct {
	applies func(item domain.Item, gc domain.GameContext, tp domain.ThreatProfile) bool
	bonus   func(tp domain.ThreatProfile) float64
	reason  func(tp domain.ThreatProfile) string
}

func flat(v float64) func(domain.ThreatProfile) float64 {
	return func(domain.ThreatProfile) float64 { return v }
}

func fixed(msg string) func(domain.ThreatProfile) string {
	return func(domain.ThreatProfile) string { return msg }
}

// formatThreat renders a threat value the way a person would write it: 3, 2.5, 0.9
func formatThreat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var buildRules = []buildRule{
	// Damage-type affinity
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return gc.Own.DamageType == domain.DamagePhysical && item.Category == domain.CategoryOffensivePhysical
		},
		bonus: flat(10),
	},
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return gc.Own.DamageType == domain.DamageMagical && item.Category == domain.CategoryOffensiveMagical
		},
		bonus: flat(10),
	},
	{
		applies: func(_ domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return gc.Own.DamageType == domain.DamageMixed
		},
		bonus: flat(5),
	},

	// Threat-reactive bonuses
	{
		applies: func(item domain.Item, _ domain.GameContext, tp domain.ThreatProfile) bool {
			return item.HasTag(domain.TagCountersPhysical) && tp.Physical > 2
		},
		bonus: func(tp domain.ThreatProfile) float64 { return tp.Physical * 5 },
		reason: func(tp domain.ThreatProfile) string {
			return fmt.Sprintf("High physical threat detected (%s physical-damage champions).", formatThreat(tp.Physical))
		},
	},
	{
		applies: func(item domain.Item, _ domain.GameContext, tp domain.ThreatProfile) bool {
			return item.HasTag(domain.TagCountersMagical) && tp.Magical > 2
		},
		bonus: func(tp domain.ThreatProfile) float64 { return tp.Magical * 5 },
		reason: func(tp domain.ThreatProfile) string {
			return fmt.Sprintf("High magical threat detected (%s magic-damage champions).", formatThreat(tp.Magical))
		},
	},
	{
		applies: func(item domain.Item, _ domain.GameContext, tp domain.ThreatProfile) bool {
			return item.HasTag(domain.TagCountersTank) && tp.Durability > 1.5
		},
		bonus:  func(tp domain.ThreatProfile) float64 { return tp.Durability * 6 },
		reason: fixed("Durable enemies detected. Percent-health damage or penetration needed."),
	},
	{
		applies: func(item domain.Item, _ domain.GameContext, tp domain.ThreatProfile) bool {
			return item.HasTag(domain.TagCountersBurst) && tp.Burst > 2
		},
		bonus:  func(tp domain.ThreatProfile) float64 { return tp.Burst * 4 },
		reason: fixed("Elevated burst risk. Survivability items recommended."),
	},

	// Game phase
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return item.HasTag(domain.TagScaling) && gc.ElapsedMinutes <= LateGameMinute
		},
		bonus:  flat(8),
		reason: fixed("Scaling item, ideal to pick up during the early and mid game."),
	},

	// Affordability
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return item.Cost <= gc.Gold
		},
		bonus: flat(5),
	},

	// Relative standing
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return gc.Standing == domain.StandingBehind && item.Category == domain.CategoryDefensive
		},
		bonus:  flat(7),
		reason: fixed("You are behind. Prioritising survivability to stabilise."),
	},
	{
		applies: func(item domain.Item, gc domain.GameContext, _ domain.ThreatProfile) bool {
			return gc.Standing == domain.StandingAhead && (item.HasTag(domain.TagBurst) || item.HasTag(domain.TagCrit))
		},
		bonus:  flat(7),
		reason: fixed("You are ahead. Pressing the lead with burst damage."),
	},
}

// ScoreItem returns the summed bonus for one item and the first triggered reason,
// or the empty string when no reasoned bonus fired.
func ScoreItem(item domain.Item, gc domain.GameContext, tp domain.ThreatProfile) (float64, string) {
	var score float64
	var reason string

	for _, rule := range buildRules {
		if !rule.applies(item, gc, tp) {
			continue
		}
		score += rule.bonus(tp)
		if reason == "" && rule.reason != nil {
			reason = rule.reason(tp)
		}
	}

	return score, reason
}

// RecommendBuild scores every item in the catalog against the game context and
// returns at most MaxRecommendations entries scoring above InclusionThreshold,
// best first. Equal scores keep catalog order. An empty result is valid.
func RecommendBuild(gc domain.GameContext, items []domain.Item) []domain.Recommendation {
	tp := AggregateThreats(gc.Opponents)
	recs := make([]domain.Recommendation, 0, MaxRecommendations)

	for _, item := range items {
		score, reason := ScoreItem(item, gc, tp)
		if score <= InclusionThreshold {
			continue
		}
		if reason == "" {
			reason = DefaultReason
		}
		recs = append(recs, domain.Recommendation{
			Item:   item,
			Score:  score,
			Reason: reason,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	return recs
}
