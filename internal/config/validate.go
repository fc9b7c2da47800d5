package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/togglebit/togglebit/internal/errors"
)

// MinTickInterval keeps the tick command from flooding the event loop.
const MinTickInterval = 10 * time.Millisecond

var (
	validInitial = map[string]bool{"on": true, "off": true, "random": true}
	validDisplay = map[string]bool{"art": true, "label": true}
	validBypass  = map[string]bool{"none": true, "keyboard": true, "mouse": true, "both": true}
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but togglebit only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade togglebit or lower the version in .togglebit.yaml")
	}

	if err := validateEnum("initial", cfg.Initial, validInitial); err != nil {
		return err
	}
	if err := validateEnum("display", cfg.Display, validDisplay); err != nil {
		return err
	}
	if err := validateEnum("cooldown.bypass", cfg.Cooldown.Bypass, validBypass); err != nil {
		return err
	}

	if err := validateTickInterval(cfg.TickInterval); err != nil {
		return err
	}

	if cfg.DegradationThreshold <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("degradation_threshold must be positive, got %g", cfg.DegradationThreshold),
			"Set it to the click count at which every toggle corrupts, like 100")
	}

	if cfg.MaxAttempts <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("max_attempts must be positive, got %d", cfg.MaxAttempts),
			fmt.Sprintf("The default is %d", DefaultMaxAttempts))
	}

	if cfg.Cooldown.Ticks < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("cooldown.ticks can't be negative, got %d", cfg.Cooldown.Ticks),
			"Use 0 to turn the cooldown off")
	}

	return nil
}

func validateEnum(key, value string, allowed map[string]bool) error {
	if allowed[strings.ToLower(strings.TrimSpace(value))] {
		return nil
	}
	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	sort.Strings(names)
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a valid value for %s", value, key),
		"Use one of: "+strings.Join(names, ", "))
}

func validateTickInterval(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid tick_interval", s),
			"Try something like 50ms or 100ms.")
	}
	if d < MinTickInterval {
		return errors.New(errors.ErrConfig,
			"tick_interval too short",
			fmt.Sprintf("Minimum tick_interval is %s", MinTickInterval))
	}
	return nil
}
