package live_test

import (
	"testing"
	"time"

	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/live"
	"github.com/dom/rift-companion/internal/service"
	"github.com/dom/rift-companion/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wait = 3 * time.Second

func connect(t *testing.T, ts *testutil.TestServer) *testutil.WSClient {
	t.Helper()

	client := testutil.NewWSClient(t, ts.LiveURL())

	var session live.SessionPayload
	client.ExpectPayload(live.MessageTypeSession, wait, &session)
	_, err := uuid.Parse(session.SessionID)
	require.NoError(t, err)

	return client
}

func TestLive_UpdateContext(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.LiveUpdateBurst = 10
	ts := testutil.NewTestServerWithConfig(t, cfg)
	client := connect(t, ts)

	client.Send(live.MessageTypeUpdateContext, service.BuildRequest{
		ChampionID:     "zed",
		OpponentIDs:    []string{"malphite", "braum"},
		Gold:           5000,
		ElapsedMinutes: 20,
	})

	var result service.BuildResult
	client.ExpectPayload(live.MessageTypeRecommendations, wait, &result)
	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "blade_of_the_ruined_king", result.Recommendations[0].Item.ID)

	client.Send(live.MessageTypeUpdateContext, service.BuildRequest{ChampionID: "nobody"})
	assert.Equal(t, live.ErrCodeNotFound, client.ExpectError(wait))

	client.Send(live.MessageTypeUpdateContext, service.BuildRequest{ChampionID: "zed", Gold: -5})
	assert.Equal(t, live.ErrCodeBadRequest, client.ExpectError(wait))
}

func TestLive_RateLimited(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.LiveUpdateRate = 0.001
	cfg.LiveUpdateBurst = 1
	ts := testutil.NewTestServerWithConfig(t, cfg)
	client := connect(t, ts)

	req := service.BuildRequest{ChampionID: "lux", ElapsedMinutes: 10, Gold: 10000}
	client.Send(live.MessageTypeUpdateContext, req)
	client.ExpectMessage(live.MessageTypeRecommendations, wait)

	client.Send(live.MessageTypeUpdateContext, req)
	assert.Equal(t, live.ErrCodeRateLimited, client.ExpectError(wait))

	// timers are not throttled
	client.Send(live.MessageTypeStartObjective, live.ObjectivePayload{Objective: live.ObjectiveDragon})
	client.ExpectMessage(live.MessageTypeCooldownTick, wait)
}

func TestLive_Cooldowns(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := connect(t, ts)

	client.Send(live.MessageTypeStartCooldown, live.CooldownPayload{Lane: domain.RoleSupport, Spell: live.SpellExhaust})

	var tick live.CooldownTickPayload
	client.ExpectPayload(live.MessageTypeCooldownTick, wait, &tick)
	require.Len(t, tick.Timers, 1)
	assert.Equal(t, "support:exhaust", tick.Timers[0].Key)
	assert.Equal(t, 105, tick.Timers[0].Remaining)

	// the session keeps ticking on its own
	client.ExpectPayload(live.MessageTypeCooldownTick, wait, &tick)
	require.Len(t, tick.Timers, 1)
	assert.LessOrEqual(t, tick.Timers[0].Remaining, 105)

	client.Send(live.MessageTypeCancelCooldown, live.CooldownPayload{Lane: domain.RoleSupport, Spell: live.SpellExhaust})
	for {
		client.ExpectPayload(live.MessageTypeCooldownTick, wait, &tick)
		if len(tick.Timers) == 0 {
			break
		}
	}

	client.Send(live.MessageTypeCancelCooldown, live.CooldownPayload{Lane: domain.RoleSupport, Spell: live.SpellExhaust})
	assert.Equal(t, live.ErrCodeNotFound, client.ExpectError(wait))

	client.Send(live.MessageTypeStartCooldown, live.CooldownPayload{Lane: domain.RoleMid, Spell: "teleport"})
	assert.Equal(t, live.ErrCodeBadRequest, client.ExpectError(wait))
}

func TestLive_BadMessages(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := connect(t, ts)

	client.SendRaw([]byte("{not json"))
	assert.Equal(t, live.ErrCodeInvalidPayload, client.ExpectError(wait))

	client.Send("DANCE", nil)
	assert.Equal(t, live.ErrCodeUnknownType, client.ExpectError(wait))
}

func TestHub_TracksSessions(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := connect(t, ts)

	assert.Eventually(t, func() bool { return ts.Hub.ClientCount() == 1 }, wait, 20*time.Millisecond)

	client.Close()
	assert.Eventually(t, func() bool { return ts.Hub.ClientCount() == 0 }, wait, 20*time.Millisecond)
}
