package live_test

import (
	"testing"
	"time"

	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/live"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerBoard_SpellCooldowns(t *testing.T) {
	tests := []struct {
		spell    live.Spell
		expected int
	}{
		{live.SpellFlash, 150},
		{live.SpellIgnite, 90},
		{live.SpellHeal, 120},
		{live.SpellExhaust, 105},
		{live.SpellSmite, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.spell), func(t *testing.T) {
			board := live.NewTimerBoard()
			state, err := board.StartSpell(domain.RoleMid, tt.spell, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, state.Remaining)
			assert.Equal(t, "mid:"+string(tt.spell), state.Key)
		})
	}
}

func TestTimerBoard_TickAndExpire(t *testing.T) {
	board := live.NewTimerBoard()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := board.StartSpell(domain.RoleADC, live.SpellHeal, start)
	require.NoError(t, err)
	_, err = board.StartObjective(live.ObjectiveBaron, start)
	require.NoError(t, err)

	active, ready := board.Tick(start.Add(30 * time.Second))
	assert.Empty(t, ready)
	require.Len(t, active, 2)
	assert.Equal(t, "adc:heal", active[0].Key)
	assert.Equal(t, 90, active[0].Remaining)
	assert.Equal(t, "objective:baron", active[1].Key)
	assert.Equal(t, 180, active[1].Remaining)

	// partial seconds round up
	active, _ = board.Tick(start.Add(30*time.Second + 400*time.Millisecond))
	assert.Equal(t, 90, active[0].Remaining)

	active, ready = board.Tick(start.Add(120 * time.Second))
	require.Len(t, ready, 1)
	assert.Equal(t, "adc:heal", ready[0].Key)
	assert.Equal(t, 0, ready[0].Remaining)
	require.Len(t, active, 1)
	assert.Equal(t, 1, board.Len())

	// expirations are reported once
	_, ready = board.Tick(start.Add(121 * time.Second))
	assert.Empty(t, ready)
}

func TestTimerBoard_RestartAndCancel(t *testing.T) {
	board := live.NewTimerBoard()
	start := time.Now()

	_, err := board.StartSpell(domain.RoleTop, live.SpellFlash, start)
	require.NoError(t, err)
	_, err = board.StartSpell(domain.RoleTop, live.SpellFlash, start.Add(100*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, board.Len())

	active, _ := board.Tick(start.Add(100 * time.Second))
	require.Len(t, active, 1)
	assert.Equal(t, 150, active[0].Remaining)

	assert.True(t, board.CancelSpell(domain.RoleTop, live.SpellFlash))
	assert.False(t, board.CancelSpell(domain.RoleTop, live.SpellFlash))
	assert.Equal(t, 0, board.Len())
}

func TestTimerBoard_RejectsUnknown(t *testing.T) {
	board := live.NewTimerBoard()

	_, err := board.StartSpell("bot", live.SpellFlash, time.Now())
	assert.Error(t, err)

	_, err = board.StartSpell(domain.RoleMid, "teleport", time.Now())
	assert.Error(t, err)

	_, err = board.StartObjective("herald", time.Now())
	assert.Error(t, err)

	assert.Equal(t, 0, board.Len())
}

func TestTimerBoard_LaneAliases(t *testing.T) {
	board := live.NewTimerBoard()

	state, err := board.StartSpell("dragon", live.SpellFlash, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "adc:flash", state.Key)
	assert.Equal(t, domain.RoleADC, state.Lane)

	assert.True(t, board.CancelSpell("ADC", live.SpellFlash))
}
