package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/straypaws/stray-survival/internal/game/card"
	"github.com/straypaws/stray-survival/internal/logger"
	"github.com/straypaws/stray-survival/internal/sound"
	"github.com/straypaws/stray-survival/internal/ui"
)

func main() {
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("日志初始化失败: %v", err)
	}
	defer logger.Close()

	sm := sound.NewSoundManager()
	if !*mute {
		if err := sm.Init(); err != nil {
			logger.LogWarn("音效初始化失败: %v", err)
		}
	}
	defer sm.Close()

	model := ui.NewModel(card.Default(), sm)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
