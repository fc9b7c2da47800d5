package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/togglebit/togglebit/internal/ui"
)

const cooldownBarWidth = 20

// render lays out the title, the framed bit, the status line and the help.
func (m Model) render() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderBit())
	sections = append(sections, m.renderStatus())
	if bar := m.renderCooldown(); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.help.View(keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTitle() string {
	title := TitleStyle.Render("togglebit")
	if m.state.Carnage() {
		title = lipgloss.JoinHorizontal(lipgloss.Center, title, CarnageBadgeStyle.Render("CARNAGE"))
	}
	return title
}

func (m Model) renderBit() string {
	enabled := m.state.Enabled()
	text := bitStyle(enabled).Render(m.state.Text())
	return frameStyle(enabled).Render(text)
}

// renderStatus shows state, click count, corruption chance and readiness.
func (m Model) renderStatus() string {
	state := ui.SymbolOff + " off"
	if m.state.Enabled() {
		state = ui.SymbolOn + " on"
	}

	parts := []string{
		LabelStyle.Render("bit ") + ValueStyle.Render(state),
		LabelStyle.Render("clicks ") + ValueStyle.Render(fmt.Sprintf("%d", m.state.Clicks())),
		LabelStyle.Render("decay ") + ValueStyle.Render(fmt.Sprintf("%.0f%%", m.state.CorruptionChance()*100)),
	}
	if n := m.state.Corruptions(); n > 0 {
		parts = append(parts, LabelStyle.Render("flips ")+ValueStyle.Render(fmt.Sprintf("%d", n)))
	}
	if m.state.CooldownLength() > 0 {
		if m.state.Ready() {
			parts = append(parts, ReadyStyle.Render("ready"))
		} else {
			parts = append(parts, CoolingStyle.Render("cooling"))
		}
	}

	return FooterStyle.Render(strings.Join(parts, LabelStyle.Render(" · ")))
}

// renderCooldown draws the remaining cooldown as a shrinking bar.
// Returns "" when the cooldown is disabled.
func (m Model) renderCooldown() string {
	total := m.state.CooldownLength()
	if total == 0 {
		return ""
	}
	remaining := float64(m.state.Cooldown()) / float64(total)
	return m.cooldown.ViewAs(remaining)
}
