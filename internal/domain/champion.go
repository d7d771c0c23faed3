package domain

// Champion is a selectable character from the static roster.
type Champion struct {
	ID         string     `json:"id" gorm:"primaryKey"` // lowercase slug, e.g. "miss_fortune"
	Name       string     `json:"name" gorm:"not null"`
	Role       Role       `json:"role" gorm:"type:varchar(10);not null"`
	DamageType DamageType `json:"damageType" gorm:"type:varchar(10);not null"`
	Archetype  Archetype  `json:"archetype" gorm:"type:varchar(10);not null"`
	PowerCurve PowerCurve `json:"powerCurve" gorm:"type:varchar(10);not null"`
	Range      Range      `json:"range" gorm:"type:varchar(10);not null"`
	CCDensity  Level      `json:"ccDensity" gorm:"type:varchar(10);not null"`
	Mobility   Level      `json:"mobility" gorm:"type:varchar(10);not null"`
	Position   int        `json:"-" gorm:"not null;default:0"` // catalog order
}

// TableName returns the table name for GORM
func (Champion) TableName() string {
	return "champions"
}

// DamageType is a champion's primary damage category
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	DamageMixed    DamageType = "mixed"
	DamageTrue     DamageType = "true"
)

// AllDamageTypes contains every damage category in tally order
var AllDamageTypes = []DamageType{DamagePhysical, DamageMagical, DamageTrue, DamageMixed}

func (d DamageType) IsValid() bool {
	switch d {
	case DamagePhysical, DamageMagical, DamageMixed, DamageTrue:
		return true
	}
	return false
}

// Archetype is a champion's combat class
type Archetype string

const (
	ArchetypeAssassin Archetype = "assassin"
	ArchetypeFighter  Archetype = "fighter"
	ArchetypeMage     Archetype = "mage"
	ArchetypeMarksman Archetype = "marksman"
	ArchetypeSupport  Archetype = "support"
	ArchetypeTank     Archetype = "tank"
)

func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeAssassin, ArchetypeFighter, ArchetypeMage, ArchetypeMarksman, ArchetypeSupport, ArchetypeTank:
		return true
	}
	return false
}

// PowerCurve classifies when a champion peaks
type PowerCurve string

const (
	CurveEarly  PowerCurve = "early"
	CurveLinear PowerCurve = "linear"
	CurveMid    PowerCurve = "mid"
	CurveLate   PowerCurve = "late"
)

func (p PowerCurve) IsValid() bool {
	switch p {
	case CurveEarly, CurveLinear, CurveMid, CurveLate:
		return true
	}
	return false
}

// Range is a champion's engagement range. A few champions swap between forms and are "mixed".
type Range string

const (
	RangeMelee  Range = "melee"
	RangeRanged Range = "ranged"
	RangeMixed  Range = "mixed"
)

func (r Range) IsValid() bool {
	switch r {
	case RangeMelee, RangeRanged, RangeMixed:
		return true
	}
	return false
}

// Level is a three-step rating used for crowd-control density and mobility
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}
