package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	HeartIcon      = "❤️"
	EmptyHeartIcon = "🖤"
	CoinIcon       = "🪙"
	EventIcon      = "⚡"
	SkullIcon      = "💀"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	modalStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 3)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	healStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	damageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
