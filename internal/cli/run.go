package cli

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/togglebit/togglebit/internal/app"
	"github.com/togglebit/togglebit/internal/assets"
	"github.com/togglebit/togglebit/internal/config"
	"github.com/togglebit/togglebit/internal/errors"
	"github.com/togglebit/togglebit/internal/logger"
	"github.com/togglebit/togglebit/internal/mutate"
	"github.com/togglebit/togglebit/internal/toggle"
	"golang.org/x/term"
)

// LogFileName receives log output while the widget owns the terminal.
const LogFileName = "togglebit.log"

// runCommand loads config, builds the state machine and runs the program.
func runCommand(cmd *cobra.Command, flags *RunFlags) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	if err := ApplyRunFlags(cmd, flags, cfg); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	appLog := logger.NewEnvLogger("[togglebit]")
	if path != "" {
		appLog.Debug("loaded config from %s", path)
	}

	seed := SeedFor(cmd, flags, time.Now())
	appLog.Debug("seed %d", seed)

	state, err := BuildState(cfg, rand.New(rand.NewSource(seed)), appLog)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTUI,
			"togglebit needs a terminal",
			"Run it directly in a terminal, not through a pipe or redirect")
	}

	model := app.NewModel(state, app.Options{
		Interval: cfg.Tick(),
		Logger:   appLog,
	})

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFilter(app.QuitFilter),
	)

	final, err := program.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTUI,
			"The terminal program stopped unexpectedly",
			"Run with --verbose and check "+LogFileName)
	}

	if m, ok := final.(app.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// BuildState turns a validated config into a toggle state.
func BuildState(cfg *config.Config, src mutate.Source, l logger.Logger) (*toggle.State, error) {
	initial, err := toggle.ParseInitial(cfg.Initial)
	if err != nil {
		return nil, err
	}
	bypass, err := toggle.ParseBypass(cfg.Cooldown.Bypass)
	if err != nil {
		return nil, err
	}
	display, err := assets.ParseDisplay(cfg.Display)
	if err != nil {
		return nil, err
	}

	set, err := assets.Load(display, assets.Overrides{Off: cfg.Assets.Off, On: cfg.Assets.On})
	if err != nil {
		return nil, err
	}

	cooldown := cfg.Cooldown.Ticks
	if cooldown < 0 {
		cooldown = 0
	}

	return toggle.New(toggle.Options{
		Initial:              initial,
		Carnage:              cfg.Carnage,
		CooldownTicks:        uint(cooldown),
		Bypass:               bypass,
		DegradationThreshold: cfg.DegradationThreshold,
		OffText:              set.Off,
		OnText:               set.On,
		MaxAttempts:          cfg.MaxAttempts,
		Logger:               l,
	}, src)
}

// setupLogging keeps the standard logger off the screen while the TUI runs:
// debug output goes to LogFileName, everything else is dropped.
func setupLogging() (func(), error) {
	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(LogFileName, "togglebit")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open "+LogFileName+" for debug output",
			"Check you can write to the current directory, or drop --verbose")
	}
	return func() {
		f.Close()
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
	}, nil
}
