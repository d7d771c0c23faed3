package domain

// Standing is the player's relative position in the match
type Standing string

const (
	StandingAhead  Standing = "ahead"
	StandingEven   Standing = "even"
	StandingBehind Standing = "behind"
)

func (s Standing) IsValid() bool {
	switch s {
	case StandingAhead, StandingEven, StandingBehind:
		return true
	}
	return false
}

// GameContext is a snapshot of the match used to score items. It is built per
// request and never stored.
type GameContext struct {
	Own            Champion
	Opponents      []Champion
	Gold           int
	ElapsedMinutes float64
	Standing       Standing
}

// ThreatProfile summarises an opposing roster. Values are plain sums over the
// roster, not averages.
type ThreatProfile struct {
	Physical     float64 `json:"physical"`
	Magical      float64 `json:"magical"`
	CrowdControl float64 `json:"crowdControl"`
	Durability   float64 `json:"durability"`
	Burst        float64 `json:"burst"`
}

// Recommendation is a scored catalog item with the reason it ranked
type Recommendation struct {
	Item   Item    `json:"item"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// DamageTally counts champions per damage category
type DamageTally struct {
	Physical int `json:"physical"`
	Magical  int `json:"magical"`
	True     int `json:"true"`
	Mixed    int `json:"mixed"`
}

// TeamProfile is the aggregate of a roster's per-champion contributions
type TeamProfile struct {
	Damage       float64     `json:"damage"`
	Durability   float64     `json:"durability"`
	CrowdControl float64     `json:"crowdControl"`
	Mobility     float64     `json:"mobility"`
	Scaling      float64     `json:"scaling"`
	DamageTypes  DamageTally `json:"damageTypes"`
}

// SimulationResult is the outcome of comparing two rosters. Only the own
// side's profile is exposed.
type SimulationResult struct {
	WinProbability  float64     `json:"winProbability"`
	Profile         TeamProfile `json:"profile"`
	Strengths       []string    `json:"strengths"`
	Vulnerabilities []string    `json:"vulnerabilities"`
	WinCondition    string      `json:"winCondition"`
}
