// Package ui 提供本地单人模式的终端界面，对局引擎直接内嵌运行。
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/session"
	"github.com/straypaws/stray-survival/internal/sound"
)

// uiPhase 界面阶段，与引擎阶段一一对应（外加开局选择）
type uiPhase int

const (
	phaseNickname uiPhase = iota
	phaseFactionSelect
	phaseRound
	phaseHazard
	phaseEvent
	phaseGameOver
)

// maxLogLines 叙事日志保留的行数
const maxLogLines = 6

// Model 本地模式的根模型
type Model struct {
	catalog *card.Catalog
	sound   *sound.SoundManager
	engine  *session.Session

	// 测试注入引擎随机源等
	sessionOpts []session.Option

	phase  uiPhase
	width  int
	height int

	// 开局选择
	nameInput  textinput.Model
	nickname   string
	factionIdx int

	// 回合状态
	cards   []card.FoodCard
	cardIdx int

	// 待确认的掷硬币
	hazardPrompt  *session.HazardPrompt
	hazardHPDelta int
	hazardCardID  int

	// 待确认的事件卡
	eventCard  *card.EventCard
	eventToken string

	// 对局结束
	deathCause     string
	roundsSurvived int

	logLines []string
	errText  string
}

// NewModel 创建根模型
func NewModel(catalog *card.Catalog, sm *sound.SoundManager, opts ...session.Option) *Model {
	nameInput := textinput.New()
	nameInput.Placeholder = "给自己起个名字..."
	nameInput.CharLimit = 12
	nameInput.Width = 20
	nameInput.Focus()

	return &Model{
		catalog:     catalog,
		sound:       sm,
		sessionOpts: opts,
		phase:       phaseNickname,
		nameInput:   nameInput,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update 处理按键和窗口变化
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	// 昵称输入阶段把字母键留给输入框
	if key == "q" && m.phase != phaseNickname {
		return m, tea.Quit
	}
	m.errText = ""

	switch m.phase {
	case phaseNickname:
		return m.handleNicknameKey(msg)
	case phaseFactionSelect:
		return m.handleFactionKey(key)
	case phaseRound:
		return m.handleRoundKey(key)
	case phaseHazard:
		if key == "enter" || key == " " {
			m.ackHazard()
		}
	case phaseEvent:
		if key == "enter" || key == " " {
			m.ackEvent()
		}
	case phaseGameOver:
		if key == "r" || key == "enter" {
			m.phase = phaseFactionSelect
			m.logLines = nil
		}
	}
	return m, nil
}

func (m *Model) handleNicknameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = "无名流浪者"
		}
		m.nickname = name
		m.phase = phaseFactionSelect
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handleFactionKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.factionIdx--
		if m.factionIdx < 0 {
			m.factionIdx = len(card.Factions) - 1
		}
	case "down", "j":
		m.factionIdx++
		if m.factionIdx >= len(card.Factions) {
			m.factionIdx = 0
		}
	case "enter", " ":
		m.startGame(card.Factions[m.factionIdx])
	}
	return m, nil
}

func (m *Model) handleRoundKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h", "up":
		m.cardIdx--
		if m.cardIdx < 0 {
			m.cardIdx = len(m.cards) - 1
		}
	case "right", "l", "down":
		m.cardIdx++
		if m.cardIdx >= len(m.cards) {
			m.cardIdx = 0
		}
	case "enter", " ":
		m.chooseCard()
	}
	return m, nil
}

// startGame 重建对局引擎并开始新一局
func (m *Model) startGame(faction card.Faction) {
	opts := append([]session.Option{}, m.sessionOpts...)
	opts = append(opts, session.WithDeathHandler(func(cause string, rounds int) {
		m.deathCause = cause
		m.roundsSurvived = rounds
	}))
	m.engine = session.NewSession(m.catalog, opts...)

	if err := m.engine.Start(faction); err != nil {
		m.errText = err.Error()
		return
	}
	m.logLines = nil
	m.pushLog(fmt.Sprintf("%s 开始流浪求生！", faction.Emoji()))
	m.syncFromEngine()
}

// chooseCard 把当前选中的卡交给引擎结算
func (m *Model) chooseCard() {
	if len(m.cards) == 0 || m.cardIdx >= len(m.cards) {
		return
	}
	chosen := m.cards[m.cardIdx]

	outcome, err := m.engine.ChooseCard(chosen.ID)
	if err != nil {
		m.errText = err.Error()
		return
	}

	if outcome.Kind == session.OutcomeAwaitingHazardAck {
		m.hazardPrompt = outcome.Hazard
		m.hazardHPDelta = outcome.HPDelta
		m.hazardCardID = chosen.ID
		m.phase = phaseHazard
		m.sound.Play(sound.CueCoin)
		m.pushLog(fmt.Sprintf("吃下 %s（%+d HP），掷硬币判定 %s...",
			chosen.Name, outcome.HPDelta, outcome.Hazard.Status.Name()))
		return
	}

	m.sound.PlayForDelta(outcome.HPDelta)
	m.pushLog(fmt.Sprintf("吃下 %s（%+d HP）", chosen.Name, outcome.HPDelta))
	m.syncFromEngine()
}

// ackHazard 确认掷硬币结果
func (m *Model) ackHazard() {
	if m.hazardPrompt == nil {
		return
	}
	result, err := m.engine.AcknowledgeHazard(m.hazardPrompt.Token)
	if err != nil {
		// 引擎已不在等待这次确认，跟随引擎阶段走，
		// 提示数据保留到界面切走为止
		m.errText = err.Error()
		m.syncFromEngine()
		return
	}
	m.hazardPrompt = nil

	if result.StatusApplied {
		m.sound.Play(sound.CueStatus)
		m.pushLog(fmt.Sprintf("%s 缠上了你！（%s ×%d）",
			result.Status.Icon(), result.Status.Name(), result.Stacks))
	} else {
		m.pushLog(fmt.Sprintf("运气不错，躲过了 %s", result.Status.Name()))
	}
	m.syncFromEngine()
}

// ackEvent 确认事件卡并结算效果
func (m *Model) ackEvent() {
	if m.eventCard == nil {
		return
	}
	token := m.eventToken
	m.eventCard = nil
	m.eventToken = ""

	if err := m.engine.AcknowledgeEvent(token); err != nil {
		m.errText = err.Error()
	}
	m.syncFromEngine()
}

// syncFromEngine 根据引擎阶段切换界面阶段并拉取回合数据
func (m *Model) syncFromEngine() {
	switch m.engine.Phase() {
	case session.PhaseRoundActive:
		m.enterRound()

	case session.PhaseEventActive:
		event, token, ok := m.engine.PendingEventCard()
		if !ok {
			return
		}
		m.eventCard = event
		m.eventToken = token
		m.phase = phaseEvent
		m.sound.Play(sound.CueEvent)
		m.pushLog(fmt.Sprintf("%s 事件：%s", EventIcon, event.Name))

	case session.PhaseDead:
		m.phase = phaseGameOver
		m.sound.Play(sound.CueDeath)
		m.pushLog(fmt.Sprintf("%s 没能撑过第 %d 回合", SkullIcon, m.roundsSurvived))
	}
}

// enterRound 进入选卡阶段，把回合构建信息写进日志
func (m *Model) enterRound() {
	m.cards = m.engine.CurrentRoundCards()
	if m.cardIdx >= len(m.cards) {
		m.cardIdx = 0
	}
	m.phase = phaseRound

	info := m.engine.RoundInfo()
	if info.Carried != nil {
		m.pushLog(fmt.Sprintf("上回合剩下的 %s 还摆在那里", info.Carried.Name))
	}
	if info.Swapped != nil {
		m.pushLog(fmt.Sprintf("场上的食物全变成了 %s", info.Swapped.Name))
	}
	for _, p := range info.Preempted {
		m.pushLog(fmt.Sprintf("%s 抢先叼走了 %s", p.Faction.Emoji(), p.Card.Name))
	}
}

// pushLog 追加一行叙事日志，只保留最近几行
func (m *Model) pushLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}
