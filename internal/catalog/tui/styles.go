package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	categoryStyle = lipgloss.NewStyle().Bold(true)
	outOfStock    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
