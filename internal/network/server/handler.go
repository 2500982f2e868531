package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/straypaws/stray-survival/internal/apperrors"
	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/game/session"
	"github.com/straypaws/stray-survival/internal/protocol"
)

// Handler 消息处理器。所有操作都由客户端的读协程串行调用，
// 同一对局不存在并发访问。
type Handler struct {
	server *Server
}

// NewHandler 创建处理器
func NewHandler(s *Server) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client *Client, msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgStartSession:
		h.handleStartSession(client, msg)
	case protocol.MsgChooseCard:
		h.handleChooseCard(client, msg)
	case protocol.MsgAckHazard:
		h.handleAckHazard(client, msg)
	case protocol.MsgAckEvent:
		h.handleAckEvent(client, msg)
	case protocol.MsgGetSnapshot:
		h.handleGetSnapshot(client)
	case protocol.MsgGetLeaderboard:
		h.handleGetLeaderboard(client, msg)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.Name, client.ID)
		h.sendError(client, apperrors.ErrUnknown)
	}
}

// handleStartSession 开局：创建（或重建）该连接专属的对局
func (h *Handler) handleStartSession(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.StartSessionPayload](msg)
	if err != nil {
		h.sendError(client, apperrors.ErrInvalidMsg)
		return
	}
	if payload.Nickname != "" {
		client.Name = payload.Nickname
	}

	if client.session == nil {
		client.session = session.NewSession(card.Default(), session.WithDeathHandler(func(cause string, rounds int) {
			h.recordRun(client, cause, rounds)
			client.gameOver = &protocol.GameOverPayload{
				Cause:          cause,
				RoundsSurvived: rounds,
			}
		}))
	}

	if err := client.session.Start(payload.Faction); err != nil {
		h.sendError(client, err)
		return
	}
	client.gameOver = nil

	client.SendMessage(protocol.MustNewMessage(protocol.MsgSessionStarted, protocol.SessionStartedPayload{
		Snapshot: client.session.Snapshot(),
	}))
	h.pushState(client)
}

// handleChooseCard 选卡
func (h *Handler) handleChooseCard(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChooseCardPayload](msg)
	if err != nil {
		h.sendError(client, apperrors.ErrInvalidMsg)
		return
	}
	if client.session == nil {
		h.sendError(client, apperrors.ErrNotStarted)
		return
	}

	outcome, err := client.session.ChooseCard(payload.CardID)
	if err != nil {
		h.sendError(client, err)
		return
	}

	if outcome.Kind == session.OutcomeAwaitingHazardAck {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgHazardPrompt, protocol.HazardPromptPayload{
			CardID:  payload.CardID,
			HPDelta: outcome.HPDelta,
			Prompt:  *outcome.Hazard,
		}))
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgCardResolved, protocol.CardResolvedPayload{
		CardID:   payload.CardID,
		HPDelta:  outcome.HPDelta,
		Snapshot: client.session.Snapshot(),
	}))
	h.pushState(client)
}

// handleAckHazard 确认掷硬币结果
func (h *Handler) handleAckHazard(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AckPayload](msg)
	if err != nil {
		h.sendError(client, apperrors.ErrInvalidMsg)
		return
	}
	if client.session == nil {
		h.sendError(client, apperrors.ErrNotStarted)
		return
	}

	result, err := client.session.AcknowledgeHazard(payload.Token)
	if err != nil {
		h.sendError(client, err)
		return
	}

	client.SendMessage(protocol.MustNewMessage(protocol.MsgHazardResolved, protocol.HazardResolvedPayload{
		Result:   result,
		Snapshot: client.session.Snapshot(),
	}))
	h.pushState(client)
}

// handleAckEvent 确认事件卡
func (h *Handler) handleAckEvent(client *Client, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.AckPayload](msg)
	if err != nil {
		h.sendError(client, apperrors.ErrInvalidMsg)
		return
	}
	if client.session == nil {
		h.sendError(client, apperrors.ErrNotStarted)
		return
	}

	if err := client.session.AcknowledgeEvent(payload.Token); err != nil {
		h.sendError(client, err)
		return
	}
	h.pushState(client)
}

// handleGetSnapshot 获取状态快照
func (h *Handler) handleGetSnapshot(client *Client) {
	if client.session == nil {
		h.sendError(client, apperrors.ErrNotStarted)
		return
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgSnapshot, protocol.SnapshotPayload{
		Snapshot: client.session.Snapshot(),
	}))
}

// handleGetLeaderboard 获取生存排行榜
func (h *Handler) handleGetLeaderboard(client *Client, msg *protocol.Message) {
	limit := h.server.config.Game.LeaderboardSize
	if len(msg.Payload) > 0 {
		if payload, err := protocol.ParsePayload[protocol.GetLeaderboardPayload](msg); err == nil && payload.Limit > 0 {
			limit = payload.Limit
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	entries, err := h.server.leaderboard.GetLeaderboard(ctx, limit)
	if err != nil {
		log.Printf("获取排行榜失败: %v", err)
		h.sendError(client, apperrors.ErrUnknown)
		return
	}

	resp := make([]protocol.SurvivalEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, protocol.SurvivalEntry{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			PlayerName: e.PlayerName,
			BestRounds: e.BestRounds,
			TotalRuns:  e.TotalRuns,
		})
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgLeaderboard, protocol.LeaderboardPayload{
		Entries: resp,
	}))
}

// pushState 根据引擎当前阶段推送后续消息
func (h *Handler) pushState(client *Client) {
	switch client.session.Phase() {
	case session.PhaseRoundActive:
		client.SendMessage(protocol.MustNewMessage(protocol.MsgRoundStarted, protocol.RoundStartedPayload{
			Snapshot: client.session.Snapshot(),
			Cards:    client.session.CurrentRoundCards(),
			Info:     client.session.RoundInfo(),
		}))

	case session.PhaseEventActive:
		event, token, ok := client.session.PendingEventCard()
		if !ok {
			return
		}
		client.SendMessage(protocol.MustNewMessage(protocol.MsgEventTriggered, protocol.EventTriggeredPayload{
			Event: *event,
			Token: token,
		}))

	case session.PhaseDead:
		if client.gameOver == nil {
			return
		}
		client.SendMessage(protocol.MustNewMessage(protocol.MsgGameOver, *client.gameOver))
		client.gameOver = nil
	}
}

// recordRun 把一局结果写入排行榜
func (h *Handler) recordRun(client *Client, cause string, rounds int) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := h.server.leaderboard.RecordRun(ctx, client.ID, client.Name, rounds, cause); err != nil {
		log.Printf("记录对局结果失败 (玩家: %s): %v", client.ID, err)
	}
}

// sendError 把错误映射为错误消息发送给客户端
func (h *Handler) sendError(client *Client, err error) {
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(protocol.NewErrorMessage(gameErr.Code, gameErr.Message))
		return
	}
	client.SendMessage(protocol.NewErrorMessage(apperrors.CodeUnknown, apperrors.ErrUnknown.Message))
}
