package catalog

import "github.com/dom/rift-companion/internal/domain"

var runes = []domain.Rune{
	{ID: "electrocute", Name: "Electrocute", Tree: "keystone", ScalingType: "flat", Description: "Burst damage on 3 hits."},
	{ID: "conqueror", Name: "Conqueror", Tree: "keystone", ScalingType: "stacking", Description: "Adaptive force and healing on stacks."},
	{ID: "kraken_slayer", Name: "Kraken Slayer", Tree: "keystone", ScalingType: "flat", Description: "True damage on every 3rd attack."},
	{ID: "first_strike", Name: "First Strike", Tree: "keystone", ScalingType: "percentage", Description: "Bonus damage and gold on initial hit."},
	{ID: "lethal_tempo", Name: "Lethal Tempo", Tree: "keystone", ScalingType: "stacking", Description: "Stacking attack speed."},
	{ID: "grasp_undying", Name: "Grasp of the Undying", Tree: "keystone", ScalingType: "stacking", Description: "Health and damage on attack every 4s."},
	{ID: "aftershock", Name: "Aftershock", Tree: "keystone", ScalingType: "flat", Description: "Resistances and burst after CC."},
	{ID: "aery", Name: "Summon Aery", Tree: "keystone", ScalingType: "flat", Description: "Poke or shield allies."},
	{ID: "phase_rush", Name: "Phase Rush", Tree: "keystone", ScalingType: "flat", Description: "Movement speed on 3 hits."},
	{ID: "fleet_footwork", Name: "Fleet Footwork", Tree: "keystone", ScalingType: "flat", Description: "Heal and speed on energized attack."},
}
