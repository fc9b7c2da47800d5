package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/togglebit/togglebit/internal/config"
	"github.com/togglebit/togglebit/internal/errors"
)

// RunFlags holds the flags that override config values for the widget.
type RunFlags struct {
	Carnage  bool
	Initial  string
	Display  string
	Cooldown int
	Bypass   string
	Tick     string
	Seed     int64
}

// AddRunFlags registers the widget flags on a command.
func AddRunFlags(cmd *cobra.Command, flags *RunFlags) {
	AddConfigFlags(cmd, flags)
	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "seed the random source for a reproducible run")
}

// AddConfigFlags registers the flags that mirror config keys.
func AddConfigFlags(cmd *cobra.Command, flags *RunFlags) {
	cmd.Flags().BoolVar(&flags.Carnage, "carnage", false, "let corruption break and create newlines")
	cmd.Flags().StringVar(&flags.Initial, "initial", "", "starting state: on, off or random")
	cmd.Flags().StringVar(&flags.Display, "display", "", "built-in texts: art or label")
	cmd.Flags().IntVar(&flags.Cooldown, "cooldown", 0, "ticks to ignore activations after a toggle (0 disables)")
	cmd.Flags().StringVar(&flags.Bypass, "bypass", "", "inputs that skip the cooldown: none, keyboard, mouse or both")
	cmd.Flags().StringVar(&flags.Tick, "tick", "", "cooldown tick interval (e.g., 50ms)")
}

// ApplyRunFlags copies every flag the user actually set onto cfg.
func ApplyRunFlags(cmd *cobra.Command, flags *RunFlags, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("carnage") {
		cfg.Carnage = flags.Carnage
	}
	if f.Changed("initial") {
		cfg.Initial = flags.Initial
	}
	if f.Changed("display") {
		cfg.Display = flags.Display
	}
	if f.Changed("cooldown") {
		cfg.Cooldown.Ticks = flags.Cooldown
	}
	if f.Changed("bypass") {
		cfg.Cooldown.Bypass = flags.Bypass
	}
	if f.Changed("tick") {
		d, err := ParseTickInterval(flags.Tick)
		if err != nil {
			return err
		}
		cfg.TickInterval = d.String()
	}
	return nil
}

// SeedFor returns the seed to use: the --seed value when set, otherwise now.
func SeedFor(cmd *cobra.Command, flags *RunFlags, now time.Time) int64 {
	if cmd.Flags().Changed("seed") {
		return flags.Seed
	}
	return now.UnixNano()
}

// ParseTickInterval parses a tick interval flag.
func ParseTickInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid tick interval", flag),
			"Try something like 50ms or 100ms.")
	}
	if d < config.MinTickInterval {
		return 0, errors.New(errors.ErrConfig,
			"Tick interval too short",
			fmt.Sprintf("Minimum tick interval is %s", config.MinTickInterval))
	}
	return d, nil
}
