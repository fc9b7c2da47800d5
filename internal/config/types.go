package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .togglebit.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Carnage lets corruption break and create newlines.
	Carnage bool `yaml:"carnage" mapstructure:"carnage"`

	// Initial is the starting state: on, off or random.
	Initial string `yaml:"initial" mapstructure:"initial"`

	// Display picks the built-in texts: art or label.
	Display string `yaml:"display" mapstructure:"display"`

	// TickInterval is how often the cooldown counts down (e.g. "50ms").
	TickInterval string `yaml:"tick_interval" mapstructure:"tick_interval"`

	// DegradationThreshold is the click count at which every toggle corrupts.
	DegradationThreshold float64 `yaml:"degradation_threshold" mapstructure:"degradation_threshold"`

	// MaxAttempts caps the corruption retry loops.
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`

	Cooldown CooldownConfig `yaml:"cooldown" mapstructure:"cooldown"`
	Assets   AssetsConfig   `yaml:"assets" mapstructure:"assets"`
}

// CooldownConfig controls how long activations are refused after a toggle.
type CooldownConfig struct {
	// Ticks is the cooldown length. 0 disables the cooldown.
	Ticks int `yaml:"ticks" mapstructure:"ticks"`

	// Bypass lists the inputs that ignore the cooldown: none, keyboard, mouse or both.
	Bypass string `yaml:"bypass" mapstructure:"bypass"`
}

// AssetsConfig points at files replacing the built-in texts.
type AssetsConfig struct {
	Off string `yaml:"off,omitempty" mapstructure:"off"`
	On  string `yaml:"on,omitempty" mapstructure:"on"`
}

// Defaults
const (
	DefaultInitial              = "on"
	DefaultDisplay              = "art"
	DefaultTickInterval         = "50ms"
	DefaultDegradationThreshold = 100.0
	DefaultMaxAttempts          = 4096
	DefaultCooldownTicks        = 15
	DefaultBypass               = "none"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:              CurrentConfigVersion,
		Carnage:              false,
		Initial:              DefaultInitial,
		Display:              DefaultDisplay,
		TickInterval:         DefaultTickInterval,
		DegradationThreshold: DefaultDegradationThreshold,
		MaxAttempts:          DefaultMaxAttempts,
		Cooldown: CooldownConfig{
			Ticks:  DefaultCooldownTicks,
			Bypass: DefaultBypass,
		},
	}
}

// Tick returns the parsed tick interval, falling back to the default when unset or invalid.
func (c *Config) Tick() time.Duration {
	return parseDuration(c.TickInterval, 50*time.Millisecond)
}
