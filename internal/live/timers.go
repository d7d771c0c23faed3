package live

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dom/rift-companion/internal/domain"
)

// Spell is a summoner spell tracked on an enemy laner
type Spell string

const (
	SpellFlash   Spell = "flash"
	SpellIgnite  Spell = "ignite"
	SpellHeal    Spell = "heal"
	SpellExhaust Spell = "exhaust"
	SpellSmite   Spell = "smite"
)

// SpellCooldowns in seconds
var SpellCooldowns = map[Spell]int{
	SpellFlash:   150,
	SpellIgnite:  90,
	SpellHeal:    120,
	SpellExhaust: 105,
	SpellSmite:   90,
}

// Objective is a neutral monster with a respawn timer
type Objective string

const (
	ObjectiveDragon Objective = "dragon"
	ObjectiveBaron  Objective = "baron"
)

// ObjectiveRespawns in seconds
var ObjectiveRespawns = map[Objective]int{
	ObjectiveDragon: 300,
	ObjectiveBaron:  210,
}

// TimerState is one running countdown as sent to the client
type TimerState struct {
	Key       string      `json:"key"`
	Lane      domain.Role `json:"lane,omitempty"`
	Spell     Spell       `json:"spell,omitempty"`
	Objective Objective   `json:"objective,omitempty"`
	Remaining int         `json:"remaining"`
}

type countdown struct {
	state   TimerState
	expires time.Time
}

// TimerBoard holds the cooldowns of one live session. Time is passed in so
// callers decide the clock.
type TimerBoard struct {
	timers map[string]*countdown
	mu     sync.Mutex
}

func NewTimerBoard() *TimerBoard {
	return &TimerBoard{timers: make(map[string]*countdown)}
}

func spellKey(lane domain.Role, spell Spell) string {
	return fmt.Sprintf("%s:%s", lane, spell)
}

func objectiveKey(objective Objective) string {
	return "objective:" + string(objective)
}

// StartSpell starts (or restarts) a summoner spell cooldown for a lane
func (b *TimerBoard) StartSpell(lane domain.Role, spell Spell, now time.Time) (TimerState, error) {
	lane, err := domain.ParseRole(string(lane))
	if err != nil {
		return TimerState{}, err
	}
	seconds, ok := SpellCooldowns[spell]
	if !ok {
		return TimerState{}, fmt.Errorf("unknown spell %q", spell)
	}

	state := TimerState{Key: spellKey(lane, spell), Lane: lane, Spell: spell, Remaining: seconds}
	b.start(state, now)
	return state, nil
}

// StartObjective starts (or restarts) an objective respawn timer
func (b *TimerBoard) StartObjective(objective Objective, now time.Time) (TimerState, error) {
	seconds, ok := ObjectiveRespawns[objective]
	if !ok {
		return TimerState{}, fmt.Errorf("unknown objective %q", objective)
	}

	state := TimerState{Key: objectiveKey(objective), Objective: objective, Remaining: seconds}
	b.start(state, now)
	return state, nil
}

func (b *TimerBoard) start(state TimerState, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.timers[state.Key] = &countdown{
		state:   state,
		expires: now.Add(time.Duration(state.Remaining) * time.Second),
	}
}

// CancelSpell stops a spell cooldown. It reports whether one was running.
func (b *TimerBoard) CancelSpell(lane domain.Role, spell Spell) bool {
	lane, err := domain.ParseRole(string(lane))
	if err != nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := spellKey(lane, spell)
	if _, ok := b.timers[key]; !ok {
		return false
	}
	delete(b.timers, key)
	return true
}

// Tick advances the board to now. It returns the still-running timers and the
// ones that expired since the previous tick, each sorted by key.
func (b *TimerBoard) Tick(now time.Time) (active, ready []TimerState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, cd := range b.timers {
		remaining := cd.expires.Sub(now)
		if remaining <= 0 {
			state := cd.state
			state.Remaining = 0
			ready = append(ready, state)
			delete(b.timers, key)
			continue
		}

		state := cd.state
		state.Remaining = int((remaining + time.Second - 1) / time.Second)
		active = append(active, state)
	}

	sort.Slice(active, func(i, j int) bool { return active[i].Key < active[j].Key })
	sort.Slice(ready, func(i, j int) bool { return ready[i].Key < ready[j].Key })
	return active, ready
}

// Len returns the number of running timers
func (b *TimerBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.timers)
}
