package ui

import (
	"math/rand/v2"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/session"
	"github.com/straypaws/stray-survival/internal/game/status"
	"github.com/straypaws/stray-survival/internal/sound"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))
	return NewModel(card.Default(), sound.NewSoundManager(), session.WithRand(rng))
}

func TestModel_NicknameEntry(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, phaseNickname, m.phase)

	// Letters go to the input, not to global shortcuts
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(*Model)
	assert.Equal(t, phaseNickname, m.phase)
	assert.Equal(t, "q", m.nameInput.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)
	assert.Equal(t, phaseFactionSelect, m.phase)
	assert.Equal(t, "q", m.nickname)
}

func TestModel_NicknameEntry_EmptyGetsDefault(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)
	assert.Equal(t, phaseFactionSelect, m.phase)
	assert.Equal(t, "无名流浪者", m.nickname)
}

func TestModel_FactionNavigation(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 0, m.factionIdx)

	m.handleFactionKey("down")
	assert.Equal(t, 1, m.factionIdx)

	m.factionIdx = len(card.Factions) - 1
	m.handleFactionKey("down")
	assert.Equal(t, 0, m.factionIdx)

	m.handleFactionKey("up")
	assert.Equal(t, len(card.Factions)-1, m.factionIdx)
}

func TestModel_StartGame(t *testing.T) {
	m := newTestModel(t)

	m.startGame(card.Dog)

	assert.Equal(t, phaseRound, m.phase)
	assert.NotEmpty(t, m.cards)
	assert.LessOrEqual(t, len(m.cards), 4)
	assert.NotEmpty(t, m.logLines)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model := updated.(*Model)

	assert.Equal(t, 100, model.width)
	assert.Equal(t, 40, model.height)
}

func TestModel_CardNavigationWraps(t *testing.T) {
	m := newTestModel(t)
	m.startGame(card.Cat)

	m.cardIdx = 0
	m.handleRoundKey("left")
	assert.Equal(t, len(m.cards)-1, m.cardIdx)

	m.handleRoundKey("right")
	assert.Equal(t, 0, m.cardIdx)
}

// pickWorstCard selects the most harmful card on the table, so a run
// is guaranteed to end inside the test's iteration budget.
func pickWorstCard(m *Model, faction card.Faction) {
	worst, worstScore := 0, 1<<30
	for i, fc := range m.cards {
		eff := fc.Effects[faction]
		score := eff.HP
		if eff.IsDead() {
			score = -1000
		}
		if score < worstScore {
			worst, worstScore = i, score
		}
	}
	m.cardIdx = worst
}

func TestModel_ViewsRenderAllPhases(t *testing.T) {
	m := newTestModel(t)
	m.width = 80

	assert.NotEmpty(t, m.View())

	m.startGame(card.Dog)
	assert.NotEmpty(t, m.View())

	// Drive the run forward until every modal has been seen at least once,
	// always eating the first card on the table.
	seenHazard, seenEvent := false, false
	for i := 0; i < 500 && m.phase != phaseGameOver; i++ {
		switch m.phase {
		case phaseRound:
			pickWorstCard(m, card.Dog)
			m.chooseCard()
		case phaseHazard:
			seenHazard = true
			assert.NotEmpty(t, m.View())
			m.ackHazard()
		case phaseEvent:
			seenEvent = true
			assert.NotEmpty(t, m.View())
			m.ackEvent()
		}
	}

	require.Equal(t, phaseGameOver, m.phase)
	assert.True(t, seenHazard || seenEvent, "a long run should hit at least one modal")
	assert.GreaterOrEqual(t, m.roundsSurvived, 1)
	assert.NotEmpty(t, m.View())
}

func TestModel_RestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m.startGame(card.Rat)

	for i := 0; i < 500 && m.phase != phaseGameOver; i++ {
		switch m.phase {
		case phaseRound:
			pickWorstCard(m, card.Rat)
			m.chooseCard()
		case phaseHazard:
			m.ackHazard()
		case phaseEvent:
			m.ackEvent()
		}
	}
	require.Equal(t, phaseGameOver, m.phase)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	model := updated.(*Model)
	assert.Equal(t, phaseFactionSelect, model.phase)
	assert.Empty(t, model.logLines)
}

func TestModel_HazardAck_StalePrompt(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.startGame(card.Dog)
	require.Equal(t, phaseRound, m.phase)

	// A confirmation the engine is no longer waiting for must not
	// strand the UI on the coin-flip modal.
	m.phase = phaseHazard
	m.hazardPrompt = &session.HazardPrompt{Token: "stale", Status: status.Choked}

	m.ackHazard()

	assert.NotEmpty(t, m.errText)
	assert.Equal(t, phaseRound, m.phase)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestModel_QuitKeys(t *testing.T) {
	m := newTestModel(t)
	m.phase = phaseFactionSelect

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
