package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/togglebit/togglebit/internal/ui"
)

// Widget colors, picked from the shared palette
const (
	ColorBorder  = ui.ColorGlassEdge
	ColorOn      = ui.ColorNeonGreen
	ColorOff     = ui.ColorPurpleGray
	ColorCarnage = ui.ColorHotRed
	ColorWarning = ui.ColorWarning
	ColorAccent  = ui.ColorNeonPink

	ColorTextPrimary   = ui.ColorPrimary
	ColorTextSecondary = ui.ColorSecondary
	ColorTextMuted     = ui.ColorMuted
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	CarnageBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorTextPrimary).
				Background(ColorCarnage).
				Bold(true).
				Padding(0, 1)

	BitFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 3)

	BitOnStyle = lipgloss.NewStyle().
			Foreground(ColorOn).
			Bold(true)

	BitOffStyle = lipgloss.NewStyle().
			Foreground(ColorOff)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	ReadyStyle = lipgloss.NewStyle().
			Foreground(ColorOn)

	CoolingStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)
)

// frameStyle picks the border color for the current state.
func frameStyle(enabled bool) lipgloss.Style {
	if enabled {
		return BitFrameStyle.BorderForeground(ColorAccent)
	}
	return BitFrameStyle
}

// bitStyle picks the glyph color for the current state.
func bitStyle(enabled bool) lipgloss.Style {
	if enabled {
		return BitOnStyle
	}
	return BitOffStyle
}
