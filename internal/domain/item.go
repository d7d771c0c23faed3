package domain

import (
	"fmt"

	"gorm.io/datatypes"
)

// Item is a purchasable upgrade from the static catalog.
type Item struct {
	ID          string                       `json:"id" gorm:"primaryKey"`
	Name        string                       `json:"name" gorm:"not null"`
	Cost        int                          `json:"cost" gorm:"not null"`
	Category    ItemCategory                 `json:"category" gorm:"type:varchar(32);not null"`
	Stats       StatBlock                    `json:"stats" gorm:"type:jsonb;serializer:json"`
	Tags        datatypes.JSONSlice[ItemTag] `json:"tags" gorm:"type:jsonb"`
	Description string                       `json:"description"`
	Position    int                          `json:"-" gorm:"not null;default:0"` // catalog order
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// HasTag reports whether the item carries the given capability tag
func (i Item) HasTag(tag ItemTag) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// StatBlock is the sparse stat line of an item. Zero stats are omitted on the wire.
type StatBlock struct {
	AttackDamage int `json:"ad,omitempty"`
	AbilityPower int `json:"ap,omitempty"`
	Health       int `json:"hp,omitempty"`
	Armor        int `json:"armor,omitempty"`
	MagicResist  int `json:"mr,omitempty"`
	AttackSpeed  int `json:"as,omitempty"`
	AbilityHaste int `json:"ah,omitempty"`
	CritChance   int `json:"crit,omitempty"`
	Penetration  int `json:"pen,omitempty"`
	Omnivamp     int `json:"omnivamp,omitempty"`
}

// ItemCategory groups items by what they are bought for
type ItemCategory string

const (
	CategoryOffensivePhysical ItemCategory = "offensive-physical"
	CategoryOffensiveMagical  ItemCategory = "offensive-magical"
	CategoryDefensive         ItemCategory = "defensive"
	CategoryBoots             ItemCategory = "mobility-boot"
	CategoryEnchantment       ItemCategory = "consumable-enchantment"
)

// AllItemCategories contains all valid categories
var AllItemCategories = []ItemCategory{
	CategoryOffensivePhysical,
	CategoryOffensiveMagical,
	CategoryDefensive,
	CategoryBoots,
	CategoryEnchantment,
}

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryOffensivePhysical, CategoryOffensiveMagical, CategoryDefensive, CategoryBoots, CategoryEnchantment:
		return true
	}
	return false
}

// ItemTag is a capability tag. The vocabulary is closed: catalogs carrying an
// unknown tag fail validation instead of silently never matching.
type ItemTag string

const (
	TagCountersPhysical    ItemTag = "counters-physical"
	TagCountersMagical     ItemTag = "counters-magical"
	TagCountersTank        ItemTag = "counters-tank"
	TagCountersBurst       ItemTag = "counters-burst"
	TagCountersHealing     ItemTag = "counters-healing"
	TagCountersShields     ItemTag = "counters-shields"
	TagCountersArmor       ItemTag = "counters-armor"
	TagCountersAttackSpeed ItemTag = "counters-attack-speed"
	TagCountersCrit        ItemTag = "counters-crit"
	TagBurst               ItemTag = "burst"
	TagCrit                ItemTag = "crit"
	TagSustained           ItemTag = "sustained"
	TagScaling             ItemTag = "scaling"
	TagExecute             ItemTag = "execute"
	TagRevive              ItemTag = "revive"
	TagDefense             ItemTag = "defense"
	TagShield              ItemTag = "shield"
	TagWaveclear           ItemTag = "waveclear"
	TagMobility            ItemTag = "mobility"
	TagHybridPen           ItemTag = "hybrid-pen"
	TagHaste               ItemTag = "haste"
	TagSlow                ItemTag = "slow"
	TagUltimateHaste       ItemTag = "ultimate-haste"
	TagSnowball            ItemTag = "snowball"
	TagTrueDamage          ItemTag = "true-damage"
	TagUtility             ItemTag = "utility"
	TagZoneControl         ItemTag = "zone-control"
	TagVision              ItemTag = "vision"
	TagHybridResist        ItemTag = "hybrid-resist"
	TagTenacity            ItemTag = "tenacity"
	TagHeal                ItemTag = "heal"
	TagTeamHeal            ItemTag = "team-heal"
	TagMagicPen            ItemTag = "magic-pen"
	TagArmorPen            ItemTag = "armor-pen"
	TagMana                ItemTag = "mana"
	TagInvulnerable        ItemTag = "invulnerable"
	TagActive              ItemTag = "active"
	TagCleanse             ItemTag = "cleanse"
)

var knownItemTags = map[ItemTag]struct{}{
	TagCountersPhysical: {}, TagCountersMagical: {}, TagCountersTank: {}, TagCountersBurst: {},
	TagCountersHealing: {}, TagCountersShields: {}, TagCountersArmor: {}, TagCountersAttackSpeed: {},
	TagCountersCrit: {}, TagBurst: {}, TagCrit: {}, TagSustained: {}, TagScaling: {}, TagExecute: {},
	TagRevive: {}, TagDefense: {}, TagShield: {}, TagWaveclear: {}, TagMobility: {}, TagHybridPen: {},
	TagHaste: {}, TagSlow: {}, TagUltimateHaste: {}, TagSnowball: {}, TagTrueDamage: {}, TagUtility: {},
	TagZoneControl: {}, TagVision: {}, TagHybridResist: {}, TagTenacity: {}, TagHeal: {}, TagTeamHeal: {},
	TagMagicPen: {}, TagArmorPen: {}, TagMana: {}, TagInvulnerable: {}, TagActive: {}, TagCleanse: {},
}

func (t ItemTag) IsValid() bool {
	_, ok := knownItemTags[t]
	return ok
}

// ParseItemTag converts a raw tag into the closed vocabulary
func ParseItemTag(s string) (ItemTag, error) {
	tag := ItemTag(s)
	if !tag.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownItemTag, s)
	}
	return tag, nil
}

// Rune is a keystone or secondary rune. Runes are listed for reference only.
type Rune struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Tree        string `json:"tree" gorm:"type:varchar(20);not null"`
	ScalingType string `json:"scalingType" gorm:"type:varchar(20);not null"`
	Description string `json:"description"`
	Position    int    `json:"-" gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Rune) TableName() string {
	return "runes"
}
