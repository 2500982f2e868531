// Package session 实现求生对局的核心引擎：回合推进、事件调度、
// 状态结算与死亡判定。Session 是 GameState 的唯一持有者和修改者，
// 表现层只读取快照并调用选卡/确认两类操作。
package session

import (
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"

	"github.com/straypaws/stray-survival/internal/apperrors"
	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/status"
)

const (
	baseHandSize     = 4 // 每回合基础抽卡数
	eventCountdown   = 3 // 事件触发倒数初始值
	baseHungerDamage = 1 // 每回合基础饥饿扣血
)

// Session 对局控制器
type Session struct {
	catalog *card.Catalog
	rng     *rand.Rand
	flip    func() bool // 掷硬币判定，true 表示躲过风险

	phase    Phase
	state    GameState
	cards    []card.FoodCard // 本回合呈现给玩家的卡（预抢占之后）
	leftover *card.FoodCard
	info     RoundInfo

	pendingHazard *PendingHazard
	pendingEvent  *PendingEvent

	onDeath func(cause string, roundsSurvived int)
}

// Option 配置 Session
type Option func(*Session)

// WithRand 注入随机源（测试用）
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithDeathHandler 注册死亡回调，每局最多触发一次
func WithDeathHandler(fn func(cause string, roundsSurvived int)) Option {
	return func(s *Session) { s.onDeath = fn }
}

// NewSession 创建一个空闲状态的对局控制器
func NewSession(catalog *card.Catalog, opts ...Option) *Session {
	s := &Session{
		catalog: catalog,
		phase:   PhaseIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.flip == nil {
		s.flip = func() bool { return s.rng.IntN(2) == 0 }
	}
	return s
}

// Start 开始新对局。之前的对局状态（包括未确认的掷硬币/事件）全部作废。
func (s *Session) Start(faction card.Faction) error {
	if !faction.Valid() {
		return apperrors.ErrUnknownFaction
	}

	stats := faction.Stats()
	factionHP := make(map[card.Faction]int, len(card.Factions))
	for _, f := range card.Factions {
		factionHP[f] = f.Stats().InitialHP
	}

	s.state = GameState{
		Faction:           faction,
		HP:                stats.InitialHP,
		MaxHP:             stats.MaxHP,
		Round:             1,
		Status:            status.NewLedger(),
		RoundsToNextEvent: eventCountdown,
		UsedEventIDs:      make(map[int]bool),
		FactionHP:         factionHP,
	}
	s.leftover = nil
	s.cards = nil
	s.pendingHazard = nil
	s.pendingEvent = nil

	s.startRound()
	return nil
}

// OnDeath 注册死亡回调
func (s *Session) OnDeath(fn func(cause string, roundsSurvived int)) {
	s.onDeath = fn
}

// Phase 返回当前阶段
func (s *Session) Phase() Phase {
	return s.phase
}

// Snapshot 返回只读状态投影
func (s *Session) Snapshot() Snapshot {
	usedIDs := make([]int, 0, len(s.state.UsedEventIDs))
	for id := range s.state.UsedEventIDs {
		usedIDs = append(usedIDs, id)
	}
	sort.Ints(usedIDs)

	factionHP := make(map[card.Faction]int, len(s.state.FactionHP))
	for f, hp := range s.state.FactionHP {
		factionHP[f] = hp
	}

	var leftover *card.FoodCard
	if s.leftover != nil {
		copied := *s.leftover
		leftover = &copied
	}

	return Snapshot{
		Phase:             s.phase.String(),
		Faction:           s.state.Faction,
		FactionEmoji:      s.state.Faction.Emoji(),
		HP:                s.state.HP,
		MaxHP:             s.state.MaxHP,
		Round:             s.state.Round,
		Status:            s.state.Status.Active(),
		TurnPosition:      s.state.TurnPosition,
		RoundsToNextEvent: s.state.RoundsToNextEvent,
		UsedEventIDs:      usedIDs,
		DrawBonus:         s.state.DrawBonus,
		HungerBonus:       s.state.HungerBonus,
		PendingSwapCardID: s.state.PendingSwapCardID,
		Leftover:          leftover,
		FactionHP:         factionHP,
	}
}

// CurrentRoundCards 返回本回合可选的卡（预抢占之后、选卡之前）
func (s *Session) CurrentRoundCards() []card.FoodCard {
	cards := make([]card.FoodCard, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// RoundInfo 返回本回合构建过程的附加信息
func (s *Session) RoundInfo() RoundInfo {
	return s.info
}

// PendingEventCard 返回等待确认的事件卡及其确认 token
func (s *Session) PendingEventCard() (*card.EventCard, string, bool) {
	if s.pendingEvent == nil {
		return nil, "", false
	}
	return s.pendingEvent.Event, s.pendingEvent.Token, true
}

// ChooseCard 结算玩家选中的食物卡。
// 带负面状态的卡会挂起等待确认，其余情况一次性结算完毕并推进到下一回合。
func (s *Session) ChooseCard(id int) (Outcome, error) {
	switch s.phase {
	case PhaseRoundActive:
	case PhaseIdle:
		return Outcome{}, apperrors.ErrNotStarted
	case PhaseDead:
		return Outcome{}, apperrors.ErrSessionDead
	default:
		// 等待确认时拒绝重入
		return Outcome{}, apperrors.ErrInvalidTransition
	}

	food, ok := s.catalog.Food(id)
	if !ok {
		return Outcome{}, apperrors.ErrUnknownCard
	}
	idx := -1
	for i := range s.cards {
		if s.cards[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Outcome{}, apperrors.ErrCardNotOffered
	}

	effect := food.Effects[s.state.Faction]

	switch {
	case effect.IsCure():
		// 净化：无条件清空可恢复状态，再结算 HP
		s.state.Status.Clear(status.CureList...)
		delta := s.applyHP(effect.HP)
		s.finishChoice(idx)
		return Outcome{Kind: OutcomeResolved, HPDelta: delta}, nil

	case effect.IsDead():
		// 致命陷阱：HP 直接归零，不做裁剪也不叠加卡面数值
		old := s.state.HP
		s.state.HP = 0
		s.state.FactionHP[s.state.Faction] = 0
		s.finishChoice(idx)
		return Outcome{Kind: OutcomeResolved, HPDelta: -old}, nil
	}

	if kind, hazardous := effect.HazardStatus(); hazardous {
		// 先结算 HP，再掷硬币；状态的实际生效推迟到确认时
		delta := s.applyHP(effect.HP)
		s.pendingHazard = &PendingHazard{
			Token:     uuid.NewString(),
			CardID:    id,
			Status:    kind,
			Avoided:   s.flip(),
			HPDelta:   delta,
			chosenIdx: idx,
		}
		s.phase = PhaseAwaitingHazardAck
		return Outcome{
			Kind:    OutcomeAwaitingHazardAck,
			HPDelta: delta,
			Hazard: &HazardPrompt{
				Token:   s.pendingHazard.Token,
				Status:  kind,
				Avoided: s.pendingHazard.Avoided,
			},
		}, nil
	}

	delta := s.applyHP(effect.HP)
	s.finishChoice(idx)
	return Outcome{Kind: OutcomeResolved, HPDelta: delta}, nil
}

// AcknowledgeHazard 确认掷硬币结果，失败侧在此时叠加状态层数。
// token 不匹配（包括重复确认和旧会话的确认）一律拒绝。
func (s *Session) AcknowledgeHazard(token string) (HazardResult, error) {
	if s.phase != PhaseAwaitingHazardAck || s.pendingHazard == nil || s.pendingHazard.Token != token {
		return HazardResult{}, apperrors.ErrInvalidTransition
	}

	ph := s.pendingHazard
	s.pendingHazard = nil

	if !ph.Avoided {
		s.state.Status.Add(ph.Status)
	}
	result := HazardResult{
		Status:        ph.Status,
		StatusApplied: !ph.Avoided,
		Stacks:        s.state.Status.Count(ph.Status),
	}

	s.finishChoice(ph.chosenIdx)
	return result, nil
}

// AcknowledgeEvent 确认事件卡，结算其效果并开始下一回合
func (s *Session) AcknowledgeEvent(token string) error {
	if s.phase != PhaseEventActive || s.pendingEvent == nil || s.pendingEvent.Token != token {
		return apperrors.ErrInvalidTransition
	}

	event := s.pendingEvent.Event
	s.pendingEvent = nil

	s.applyEventEffect(event)
	// 事件回合本身不推进回合数，也不做死亡判定
	s.startRound()
	return nil
}

// applyHP 结算 HP 变化并裁剪到 [0, MaxHP]，返回实际变化量
func (s *Session) applyHP(delta int) int {
	old := s.state.HP
	hp := s.state.HP + delta
	if hp > s.state.MaxHP {
		hp = s.state.MaxHP
	}
	if hp < 0 {
		hp = 0
	}
	s.state.HP = hp
	s.state.FactionHP[s.state.Faction] = hp
	return hp - old
}

// die 终结对局，回调只触发一次
func (s *Session) die(cause string) {
	if s.state.HP < 0 {
		s.state.HP = 0
		s.state.FactionHP[s.state.Faction] = 0
	}
	s.phase = PhaseDead
	s.cards = nil
	s.pendingHazard = nil
	s.pendingEvent = nil

	if s.onDeath != nil {
		s.onDeath(cause, s.state.Round)
	}
}
