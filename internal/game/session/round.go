package session

import (
	"github.com/straypaws/stray-survival/internal/game/card"
)

// startRound 构建新回合的卡池：判定顺位、合入留存卡、
// 处理卡池替换、随机抽卡、模拟对手预抢占。
func (s *Session) startRound() {
	s.phase = PhaseRoundActive
	s.info = RoundInfo{}

	// 顺位判定，三档各占三分之一
	s.state.TurnPosition = s.rng.IntN(3) + 1

	var pool []card.FoodCard

	// 留存卡占一个卡位
	if s.leftover != nil {
		carried := *s.leftover
		pool = append(pool, carried)
		s.info.Carried = &carried
		s.leftover = nil
	}

	need := baseHandSize + s.state.DrawBonus - len(pool)

	if s.state.PendingSwapCardID != 0 {
		if target, ok := s.catalog.Food(s.state.PendingSwapCardID); ok {
			// 替换：所有新抽卡位填充同一张目标卡
			for i := 0; i < need; i++ {
				pool = append(pool, *target)
			}
			swapped := *target
			s.info.Swapped = &swapped
		} else {
			// 目标卡不在卡池中时回退为普通抽卡
			pool = append(pool, s.drawFoods(need, pool)...)
		}
		s.state.PendingSwapCardID = 0
	} else {
		pool = append(pool, s.drawFoods(need, pool)...)
	}

	// 抽卡奖励只生效一次
	s.state.DrawBonus = 0

	// 预抢占：顺位越靠后，被对手先吃掉的卡越多
	preemptCount := s.state.TurnPosition - 1
	rivals := append([]card.Faction(nil), s.state.Faction.Rivals()...)
	s.rng.Shuffle(len(rivals), func(i, j int) {
		rivals[i], rivals[j] = rivals[j], rivals[i]
	})
	for i := 0; i < preemptCount && len(pool) > 0; i++ {
		j := s.rng.IntN(len(pool))
		eaten := pool[j]
		pool = append(pool[:j], pool[j+1:]...)

		// 两次抢占尽量归属不同的对手阵营
		rival := rivals[i%len(rivals)]
		s.info.Preempted = append(s.info.Preempted, Preemption{Faction: rival, Card: eaten})
	}

	s.cards = pool
}

// drawFoods 从卡池中不放回地均匀抽取 n 张，排除已占卡位的 ID
func (s *Session) drawFoods(n int, exclude []card.FoodCard) []card.FoodCard {
	excluded := make(map[int]bool, len(exclude))
	for _, c := range exclude {
		excluded[c.ID] = true
	}

	candidates := make([]card.FoodCard, 0, len(s.catalog.Foods))
	for _, f := range s.catalog.Foods {
		if !excluded[f.ID] {
			candidates = append(candidates, f)
		}
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n:n]
}

// finishChoice 选卡（及掷硬币确认）之后的收尾：
// 死亡判定、弃牌与留存结算，然后进入回合结束阶段。
func (s *Session) finishChoice(chosenIdx int) {
	if s.state.HP <= 0 {
		s.die(CauseFood)
		return
	}

	unpicked := make([]card.FoodCard, 0, len(s.cards))
	for i := range s.cards {
		if i != chosenIdx {
			unpicked = append(unpicked, s.cards[i])
		}
	}

	// 只留一张：多余的全部弃掉，留存卡在未选卡中均匀抽取
	switch len(unpicked) {
	case 0:
		s.leftover = nil
	case 1:
		kept := unpicked[0]
		s.leftover = &kept
	default:
		kept := unpicked[s.rng.IntN(len(unpicked))]
		s.leftover = &kept
	}

	s.cards = nil
	s.settleRound()
}
