package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Neon palette shared by the widget and command output.
const (
	ColorNeonGreen  lipgloss.Color = "#39FF14"
	ColorNeonPink   lipgloss.Color = "#FF2E97"
	ColorNeonAmber  lipgloss.Color = "#FFAA00"
	ColorHotRed     lipgloss.Color = "#FF0055"
	ColorNeonCyan   lipgloss.Color = "#00FFFF"
	ColorGlassEdge  lipgloss.Color = "#2A2A4A"
	ColorPurpleGray lipgloss.Color = "#6B6B8D"
)

// Semantic colors for status indication
const (
	ColorSuccess = ColorNeonGreen
	ColorError   = ColorHotRed
	ColorWarning = ColorNeonAmber
	ColorInfo    = ColorNeonCyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "#FFFFFF"
	ColorSecondary lipgloss.Color = "#B4B4D0"
	ColorMuted                    = ColorPurpleGray
)

// SuccessStyle returns the style for success markers.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for failure markers.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// DisableColors switches lipgloss to plain output (--no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
