package session

import (
	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/status"
)

// Phase 对局阶段
type Phase int

const (
	PhaseIdle             Phase = iota // 未开局
	PhaseRoundActive                   // 回合进行中，等待玩家选卡
	PhaseAwaitingHazardAck             // 等待玩家确认掷硬币结果
	PhaseEventActive                   // 等待玩家确认事件卡
	PhaseDead                          // 对局结束（唯一终态）
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRoundActive:
		return "round_active"
	case PhaseAwaitingHazardAck:
		return "awaiting_hazard_ack"
	case PhaseEventActive:
		return "event_active"
	case PhaseDead:
		return "dead"
	}
	return "unknown"
}

// GameState 单局可变状态，由 Session 独占持有和修改
type GameState struct {
	Faction card.Faction
	HP      int
	MaxHP   int
	Round   int

	Status status.Ledger

	TurnPosition      int // 本回合顺位 1/2/3，每回合重新判定
	RoundsToNextEvent int // 距离下次事件触发的回合数
	UsedEventIDs      map[int]bool

	DrawBonus   int // 下回合额外抽卡数，使用一次后归零
	HungerBonus int // 永久叠加到基础饥饿扣血

	PendingSwapCardID int // 下回合卡池替换目标，0 表示无

	// 三个阵营各自的当前生命值，玩家条目与 HP 同步
	// 初始属性表保持不变，全体治疗/伤害只改这里
	FactionHP map[card.Faction]int
}

// Snapshot 只读状态投影，供表现层渲染
type Snapshot struct {
	Phase             string               `json:"phase"`
	Faction           card.Faction         `json:"faction"`
	FactionEmoji      string               `json:"faction_emoji"`
	HP                int                  `json:"hp"`
	MaxHP             int                  `json:"max_hp"`
	Round             int                  `json:"round"`
	Status            map[status.Kind]int  `json:"status"`
	TurnPosition      int                  `json:"turn_position"`
	RoundsToNextEvent int                  `json:"rounds_to_next_event"`
	UsedEventIDs      []int                `json:"used_event_ids"`
	DrawBonus         int                  `json:"draw_bonus"`
	HungerBonus       int                  `json:"hunger_bonus"`
	PendingSwapCardID int                  `json:"pending_swap_card_id,omitempty"`
	Leftover          *card.FoodCard       `json:"leftover,omitempty"`
	FactionHP         map[card.Faction]int `json:"faction_hp"`
}

// Preemption 记录某个对手阵营抢先吃掉的卡
type Preemption struct {
	Faction card.Faction  `json:"faction"`
	Card    card.FoodCard `json:"card"`
}

// RoundInfo 本回合构建过程的附加信息，供表现层写日志
type RoundInfo struct {
	Carried   *card.FoodCard `json:"carried,omitempty"`   // 上回合留存的卡
	Swapped   *card.FoodCard `json:"swapped,omitempty"`   // 卡池被替换成的目标卡
	Preempted []Preemption   `json:"preempted,omitempty"` // 被对手抢走的卡
}

// PendingHazard 已判定但尚未确认的掷硬币结果
// 确认必须携带相同的 token，防止旧会话的确认被误用
type PendingHazard struct {
	Token     string
	CardID    int
	Status    status.Kind
	Avoided   bool // 掷硬币成功，状态不会生效
	HPDelta   int  // 选卡时已实际结算的 HP 变化
	chosenIdx int
}

// PendingEvent 已抽出但效果尚未结算的事件卡
type PendingEvent struct {
	Token string
	Event *card.EventCard
}

// OutcomeKind 选卡结果类型
type OutcomeKind int

const (
	OutcomeResolved          OutcomeKind = iota // 已完全结算
	OutcomeAwaitingHazardAck                    // 等待掷硬币确认
)

// Outcome 选卡操作的返回结果
type Outcome struct {
	Kind    OutcomeKind
	HPDelta int           // 已实际结算的 HP 变化（上下限裁剪后）
	Hazard  *HazardPrompt // Kind 为 OutcomeAwaitingHazardAck 时非空
}

// HazardPrompt 交给表现层展示的掷硬币信息
type HazardPrompt struct {
	Token   string      `json:"token"`
	Status  status.Kind `json:"status"`
	Avoided bool        `json:"avoided"`
}

// HazardResult 掷硬币确认后的最终结果
type HazardResult struct {
	Status        status.Kind `json:"status"`
	StatusApplied bool        `json:"status_applied"`
	Stacks        int         `json:"stacks"` // 确认后该状态的层数
}

// 死亡原因标识，表现层负责映射为展示文案
const (
	CauseHunger = "hunger" // 饥饿与状态伤害
	CauseFood   = "food"   // 食物中毒/受伤/致命陷阱
)
