package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/togglebit/togglebit/internal/logger"
	"github.com/togglebit/togglebit/internal/toggle"
)

// DefaultInterval is the tick interval used when none is given.
const DefaultInterval = 50 * time.Millisecond

// Options configures a Model.
type Options struct {
	// Interval is how often the cooldown ticks.
	Interval time.Duration
	Logger   logger.Logger
}

// Model is the Bubble Tea model for the bit widget.
type Model struct {
	state    *toggle.State
	interval time.Duration
	log      logger.Logger

	help     help.Model
	cooldown progress.Model

	width    int
	height   int
	quitting bool
	err      error
}

// tickMsg signals a cooldown tick.
type tickMsg time.Time

// NewModel creates a model driving state.
func NewModel(state *toggle.State, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	h := help.New()
	h.Styles.ShortKey = LabelStyle
	h.Styles.ShortDesc = FooterStyle
	h.Styles.FullKey = LabelStyle
	h.Styles.FullDesc = FooterStyle

	return Model{
		state:    state,
		interval: interval,
		log:      log,
		help:     h,
		cooldown: progress.New(
			progress.WithSolidFill(string(ColorWarning)),
			progress.WithoutPercentage(),
			progress.WithWidth(cooldownBarWidth),
		),
	}
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if handled, cmd := m.HandleMouseMsg(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.state.Tick()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the widget.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// State returns the state machine the model drives.
func (m Model) State() *toggle.State {
	return m.state
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// activate forwards an activation to the state machine. A mutator error
// stops the program.
func (m *Model) activate(in toggle.Input) tea.Cmd {
	accepted, err := m.state.Activate(in)
	if err != nil {
		m.log.Error("activation failed: %v", err)
		m.err = err
		m.quitting = true
		return tea.Quit
	}
	if !accepted {
		m.log.Debug("%s activation swallowed by cooldown", in)
	}
	return nil
}

// tickCmd returns a command that sends a tick after the interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
