package session

// settleRound 回合结束结算：唯一递增回合数的地方。
// 饥饿扣血 + 状态伤害 → 死亡判定 → 事件倒数 → 事件触发或下一回合。
func (s *Session) settleRound() {
	s.state.Round++

	base := baseHungerDamage + s.state.HungerBonus
	statusDamage := s.state.Status.TotalDamage()
	total := base + statusDamage

	// 允许瞬时越过下限，死亡判定在裁剪之前
	s.state.HP -= total
	s.state.FactionHP[s.state.Faction] = s.state.HP

	if s.state.HP <= 0 {
		s.die(CauseHunger)
		return
	}

	s.state.RoundsToNextEvent--
	if s.state.RoundsToNextEvent <= 0 {
		s.triggerEvent()
		return
	}
	s.startRound()
}
