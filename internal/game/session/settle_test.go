package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/status"
)

func TestSettleRound_DamageFormula(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.NoError(t, s.Start(card.Dog))

	s.state.HP = 10
	s.state.HungerBonus = 1
	s.state.Status.Add(status.Choked)
	s.state.Status.Add(status.Choked)

	s.settleRound()

	// base 1 + hunger bonus 1 + choked 2*1 = 4
	snap := s.Snapshot()
	assert.Equal(t, 6, snap.HP)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, 2, snap.RoundsToNextEvent)
	assert.Equal(t, PhaseRoundActive, s.Phase())
}

func TestSettleRound_DeathByHunger(t *testing.T) {
	t.Parallel()

	var (
		cause  string
		rounds int
	)
	s := newTestSession(WithDeathHandler(func(c string, r int) {
		cause = c
		rounds = r
	}))
	require.NoError(t, s.Start(card.Rat))

	s.state.HP = 1
	s.settleRound()

	assert.Equal(t, PhaseDead, s.Phase())
	assert.Equal(t, 0, s.Snapshot().HP)
	assert.Equal(t, CauseHunger, cause)
	assert.Equal(t, 2, rounds)
	assert.Empty(t, s.CurrentRoundCards())
}

func TestSettleRound_TriggersEventWhenCountdownExpires(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.NoError(t, s.Start(card.Dog))

	s.state.HP = 10
	s.state.RoundsToNextEvent = 1
	s.settleRound()

	assert.Equal(t, PhaseEventActive, s.Phase())
	event, token, ok := s.PendingEventCard()
	require.True(t, ok)
	assert.NotEmpty(t, token)
	assert.Contains(t, s.Snapshot().UsedEventIDs, event.ID)
	// the countdown resets immediately on trigger
	assert.Equal(t, 3, s.Snapshot().RoundsToNextEvent)
}

func TestSettleRound_NoEventWhenCatalogExhausted(t *testing.T) {
	t.Parallel()

	s := newTestSession()
	require.NoError(t, s.Start(card.Dog))

	for _, e := range card.Default().Events {
		s.state.UsedEventIDs[e.ID] = true
	}
	s.state.HP = 10
	s.state.RoundsToNextEvent = 1
	s.settleRound()

	// no event left: the next round starts directly
	assert.Equal(t, PhaseRoundActive, s.Phase())
	_, _, ok := s.PendingEventCard()
	assert.False(t, ok)
	assert.Equal(t, 3, s.Snapshot().RoundsToNextEvent)
}
