package session

import (
	"github.com/google/uuid"

	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/logger"
)

// triggerEvent 事件倒数归零时抽取一张未使用的事件卡。
// 事件卡用完后不再触发，直接开始下一回合。
func (s *Session) triggerEvent() {
	// 无论结果如何，倒数先重置
	s.state.RoundsToNextEvent = eventCountdown

	available := make([]*card.EventCard, 0, len(s.catalog.Events))
	for i := range s.catalog.Events {
		if !s.state.UsedEventIDs[s.catalog.Events[i].ID] {
			available = append(available, &s.catalog.Events[i])
		}
	}
	if len(available) == 0 {
		s.startRound()
		return
	}

	chosen := available[s.rng.IntN(len(available))]
	s.state.UsedEventIDs[chosen.ID] = true

	// 效果结算推迟到事件卡被确认之后
	s.pendingEvent = &PendingEvent{
		Token: uuid.NewString(),
		Event: chosen,
	}
	s.phase = PhaseEventActive
}

// applyEventEffect 结算单张事件卡的效果
func (s *Session) applyEventEffect(event *card.EventCard) {
	switch event.EffectType {
	case card.DrawBonus:
		s.state.DrawBonus += event.Value

	case card.StatusClear:
		s.state.Status.Clear(event.TargetStatuses...)

	case card.TurnDelay:
		s.state.RoundsToNextEvent += event.Value

	case card.TurnAdvance:
		s.state.RoundsToNextEvent -= event.Value
		if s.state.RoundsToNextEvent < 1 {
			s.state.RoundsToNextEvent = 1
		}

	case card.HungerIncrease:
		s.state.HungerBonus += event.Value

	case card.HealAll:
		// 所有阵营按各自上限回血，玩家 HP 同步更新
		for _, f := range card.Factions {
			hp := s.state.FactionHP[f] + event.Value
			if max := f.Stats().MaxHP; hp > max {
				hp = max
			}
			s.state.FactionHP[f] = hp
		}
		s.state.HP = s.state.FactionHP[s.state.Faction]

	case card.StatusDurationIncrease:
		s.state.Status.ExtendAll(event.Value)

	case card.DamageAll:
		// 不裁剪下限，死亡在下次回合结算时判定
		for _, f := range card.Factions {
			s.state.FactionHP[f] -= event.Value
		}
		s.state.HP = s.state.FactionHP[s.state.Faction]

	case card.CardSwap:
		s.state.PendingSwapCardID = event.TargetCardID

	default:
		// 卡池校验会在加载期拦住未知类型，这里兜底为无操作
		logger.LogWarn("未知的事件效果类型: %s (事件 %d)", event.EffectType, event.ID)
	}
}
