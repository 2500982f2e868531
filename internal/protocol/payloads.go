package protocol

import (
	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/session"
)

// --- 客户端请求 Payloads ---

// StartSessionPayload 开局请求
type StartSessionPayload struct {
	Faction  card.Faction `json:"faction"`
	Nickname string       `json:"nickname,omitempty"` // 排行榜展示用
}

// ChooseCardPayload 选卡请求
type ChooseCardPayload struct {
	CardID int `json:"card_id"`
}

// AckPayload 确认请求（掷硬币/事件共用）
type AckPayload struct {
	Token string `json:"token"`
}

// GetLeaderboardPayload 获取排行榜请求
type GetLeaderboardPayload struct {
	Limit int `json:"limit,omitempty"`
}

// --- 服务端响应 Payloads ---

// ConnectedPayload 连接成功响应
type ConnectedPayload struct {
	ClientID string `json:"client_id"`
}

// SessionStartedPayload 开局成功响应
type SessionStartedPayload struct {
	Snapshot session.Snapshot `json:"snapshot"`
}

// RoundStartedPayload 新回合信息
type RoundStartedPayload struct {
	Snapshot session.Snapshot  `json:"snapshot"`
	Cards    []card.FoodCard   `json:"cards"`
	Info     session.RoundInfo `json:"info"`
}

// CardResolvedPayload 选卡结算结果
type CardResolvedPayload struct {
	CardID   int              `json:"card_id"`
	HPDelta  int              `json:"hp_delta"`
	Snapshot session.Snapshot `json:"snapshot"`
}

// HazardPromptPayload 掷硬币结果待确认
type HazardPromptPayload struct {
	CardID  int                  `json:"card_id"`
	HPDelta int                  `json:"hp_delta"`
	Prompt  session.HazardPrompt `json:"prompt"`
}

// HazardResolvedPayload 掷硬币确认完毕
type HazardResolvedPayload struct {
	Result   session.HazardResult `json:"result"`
	Snapshot session.Snapshot     `json:"snapshot"`
}

// EventTriggeredPayload 事件卡触发待确认
type EventTriggeredPayload struct {
	Event card.EventCard `json:"event"`
	Token string         `json:"token"`
}

// SnapshotPayload 状态快照
type SnapshotPayload struct {
	Snapshot session.Snapshot `json:"snapshot"`
}

// GameOverPayload 对局结束
type GameOverPayload struct {
	Cause          string `json:"cause"`
	RoundsSurvived int    `json:"rounds_survived"`
}

// SurvivalEntry 排行榜条目
type SurvivalEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	BestRounds int    `json:"best_rounds"`
	TotalRuns  int    `json:"total_runs"`
}

// LeaderboardPayload 排行榜数据
type LeaderboardPayload struct {
	Entries []SurvivalEntry `json:"entries"`
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
