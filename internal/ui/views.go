package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/straypaws/stray-survival/internal/game/card"
)

func (m *Model) View() string {
	var body string
	switch m.phase {
	case phaseNickname:
		body = m.nicknameView()
	case phaseFactionSelect:
		body = m.factionView()
	case phaseRound:
		body = m.roundView()
	case phaseHazard:
		body = m.hazardView()
	case phaseEvent:
		body = m.eventView()
	case phaseGameOver:
		body = m.gameOverView()
	}

	if m.errText != "" {
		body += "\n" + errorStyle.Render(m.errText)
	}
	return docStyle.Render(body)
}

func (m *Model) nicknameView() string {
	var sb strings.Builder

	title := titleStyle("🐾 流浪求生")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	box := boxStyle.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		"你是谁？",
		"",
		m.nameInput.View(),
		"",
		dimStyle.Render("回车确认 | ctrl+c 退出"),
	))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box))

	return sb.String()
}

func (m *Model) factionView() string {
	var sb strings.Builder

	title := titleStyle("🐾 流浪求生")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var lines []string
	lines = append(lines, "选择你的出身:", "")
	for i, f := range card.Factions {
		prefix := "  "
		if i == m.factionIdx {
			prefix = "▶ "
		}
		stats := f.Stats()
		lines = append(lines, fmt.Sprintf("%s%s %s  (体力 %d/%d)",
			prefix, f.Emoji(), factionName(f), stats.InitialHP, stats.MaxHP))
	}
	lines = append(lines, "", dimStyle.Render("↑↓ 选择 | 回车确认 | q 退出"))

	menu := boxStyle.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))

	return sb.String()
}

func (m *Model) roundView() string {
	var sb strings.Builder

	sb.WriteString(m.statusBar())
	sb.WriteString("\n\n")

	snap := m.engine.Snapshot()
	var cardLines []string
	cardLines = append(cardLines, fmt.Sprintf("第 %d 回合 · 顺位 %d · 今天吃什么？", snap.Round, snap.TurnPosition), "")
	for i, fc := range m.cards {
		prefix := "  "
		if i == m.cardIdx {
			prefix = "▶ "
		}
		eff := fc.Effects[snap.Faction]
		cardLines = append(cardLines, fmt.Sprintf("%s%s  %s", prefix, fc.Name, effectHint(eff)))
	}
	cardLines = append(cardLines, "", dimStyle.Render("↑↓ 选择 | 回车吃下 | q 退出"))

	cardBox := boxStyle.Padding(0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, cardLines...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, cardBox))

	sb.WriteString("\n")
	sb.WriteString(m.logView())
	return sb.String()
}

func (m *Model) hazardView() string {
	var sb strings.Builder
	sb.WriteString(m.statusBar())
	sb.WriteString("\n\n")

	prompt := m.hazardPrompt
	var lines []string
	lines = append(lines, fmt.Sprintf("%s 掷硬币！", CoinIcon), "")
	if fc, ok := m.catalog.Food(m.hazardCardID); ok {
		lines = append(lines, fmt.Sprintf("%s（体力 %+d）", fc.Name, m.hazardHPDelta), "")
	}
	if prompt.Avoided {
		lines = append(lines, healStyle.Render(fmt.Sprintf("正面朝上，躲过了 %s %s",
			prompt.Status.Icon(), prompt.Status.Name())))
	} else {
		lines = append(lines, damageStyle.Render(fmt.Sprintf("反面朝上，%s %s 找上门了",
			prompt.Status.Icon(), prompt.Status.Name())))
	}
	lines = append(lines, "", dimStyle.Render("回车继续"))

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal))

	sb.WriteString("\n")
	sb.WriteString(m.logView())
	return sb.String()
}

func (m *Model) eventView() string {
	var sb strings.Builder
	sb.WriteString(m.statusBar())
	sb.WriteString("\n\n")

	event := m.eventCard
	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", EventIcon, event.Name), "")
	if event.Desc != "" {
		lines = append(lines, event.Desc)
	}
	lines = append(lines, "", dimStyle.Render("回车继续"))

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal))

	sb.WriteString("\n")
	sb.WriteString(m.logView())
	return sb.String()
}

func (m *Model) gameOverView() string {
	var sb strings.Builder

	title := titleStyle(fmt.Sprintf("%s 游戏结束", SkullIcon))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var lines []string
	lines = append(lines, causeText(m.deathCause), "")
	lines = append(lines, fmt.Sprintf("一共撑过了 %d 个回合", m.roundsSurvived))
	lines = append(lines, "", dimStyle.Render("r 再来一局 | q 退出"))

	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal))

	sb.WriteString("\n")
	sb.WriteString(m.logView())
	return sb.String()
}

// statusBar 顶部状态栏：体力、状态、事件倒数
func (m *Model) statusBar() string {
	snap := m.engine.Snapshot()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s  ", snap.FactionEmoji, m.nickname))
	sb.WriteString(hearts(snap.HP, snap.MaxHP))
	sb.WriteString(fmt.Sprintf(" %d/%d", snap.HP, snap.MaxHP))

	if len(snap.Status) > 0 {
		var parts []string
		for kind, stacks := range snap.Status {
			parts = append(parts, fmt.Sprintf("%s%s×%d", kind.Icon(), kind.Name(), stacks))
		}
		sb.WriteString("  " + statusStyle.Render(strings.Join(parts, " ")))
	}

	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s距下次事件 %d 回合", EventIcon, snap.RoundsToNextEvent)))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, sb.String())
}

// logView 最近几行叙事日志
func (m *Model) logView() string {
	if len(m.logLines) == 0 {
		return ""
	}
	content := dimStyle.Render(strings.Join(m.logLines, "\n"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

// hearts 用实心/空心爱心渲染体力条
func hearts(hp, maxHP int) string {
	if hp < 0 {
		hp = 0
	}
	var sb strings.Builder
	for i := 0; i < maxHP; i++ {
		if i < hp {
			sb.WriteString(HeartIcon)
		} else {
			sb.WriteString(EmptyHeartIcon)
		}
	}
	return sb.String()
}

// effectHint 把卡面效果渲染成简短提示
func effectHint(eff card.Effect) string {
	switch {
	case eff.IsDead():
		return damageStyle.Render("☠ 致命")
	case eff.IsCure():
		return healStyle.Render(fmt.Sprintf("净化 %+d", eff.HP))
	}

	hint := fmt.Sprintf("%+d", eff.HP)
	if eff.HP >= 0 {
		hint = healStyle.Render(hint)
	} else {
		hint = damageStyle.Render(hint)
	}
	if kind, ok := eff.HazardStatus(); ok {
		hint += statusStyle.Render(fmt.Sprintf(" %s?", kind.Icon()))
	}
	return hint
}

// factionName 阵营展示名
func factionName(f card.Faction) string {
	switch f {
	case card.Dog:
		return "流浪狗"
	case card.Cat:
		return "流浪猫"
	case card.Rat:
		return "老鼠"
	}
	return string(f)
}

// causeText 死亡原因展示文案
func causeText(cause string) string {
	switch cause {
	case "food":
		return "吃坏了肚子，倒在了垃圾桶旁"
	default:
		return "又饿又病，没能熬过这一晚"
	}
}
