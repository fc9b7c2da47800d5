package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/togglebit/togglebit/internal/toggle"
)

// keyMap defines the keyboard bindings of the widget.
type keyMap struct {
	Toggle     key.Binding
	Quit       key.Binding
	ToggleHelp key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit, k.ToggleHelp}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, clickBinding},
		{k.Quit, k.ToggleHelp},
	}
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "toggle"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
}

// clickBinding documents the mouse in the full help. No key press is named
// "click", so it never matches.
var clickBinding = key.NewBinding(
	key.WithKeys("click"),
	key.WithHelp("click", "toggle"),
)

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, keys.Toggle):
		return true, m.activate(toggle.InputKeyboard)
	}

	return false, nil
}

// HandleMouseMsg turns a left-button press into an activation.
func (m *Model) HandleMouseMsg(msg tea.MouseMsg) (bool, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return false, nil
	}
	return true, m.activate(toggle.InputMouse)
}

// QuitFilter turns the quit keys into tea.QuitMsg at program level, so q
// always stops the program no matter what the model is doing.
func QuitFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Quit) {
		return tea.QuitMsg{}
	}
	return msg
}
