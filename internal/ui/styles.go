package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gxespino/timemann/internal/model"
)

var (
	colorPurple = lipgloss.Color("#7C3AED")
	colorGreen  = lipgloss.Color("#10B981")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#F59E0B")
	colorGray   = lipgloss.Color("#6B7280")
	colorDimmed = lipgloss.Color("#4B5563")
	colorWhite  = lipgloss.Color("#F9FAFB")
	colorBar    = lipgloss.Color("#1F2937")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPurple).
			PaddingLeft(1)

	fpsStyle = lipgloss.NewStyle().
			Foreground(colorDimmed).
			PaddingRight(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorPurple).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Background(colorBar)

	footerStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			PaddingLeft(1)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple)

	timerStyles = map[model.Mode]lipgloss.Style{
		model.ModeRunning: lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		model.ModeStopped: lipgloss.NewStyle().Foreground(colorRed),
		model.ModeSetup:   lipgloss.NewStyle().Foreground(colorYellow),
	}
)

func timerStyle(m model.Mode) lipgloss.Style {
	if s, ok := timerStyles[m]; ok {
		return s
	}
	return timerStyles[model.ModeStopped]
}
