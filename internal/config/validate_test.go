package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglebit/togglebit/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:   "upper case enums",
			modify: func(c *Config) { c.Initial = "RANDOM"; c.Cooldown.Bypass = "Mouse" },
		},
		{
			name:   "cooldown off",
			modify: func(c *Config) { c.Cooldown.Ticks = 0 },
		},
		{
			name:        "future version",
			modify:      func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr:     true,
			errContains: "from the future",
		},
		{
			name:        "bad initial",
			modify:      func(c *Config) { c.Initial = "sideways" },
			wantErr:     true,
			errContains: "Use one of: off, on, random",
		},
		{
			name:        "bad display",
			modify:      func(c *Config) { c.Display = "sixel" },
			wantErr:     true,
			errContains: "valid value for display",
		},
		{
			name:        "bad bypass",
			modify:      func(c *Config) { c.Cooldown.Bypass = "trackpad" },
			wantErr:     true,
			errContains: "cooldown.bypass",
		},
		{
			name:        "unparseable tick",
			modify:      func(c *Config) { c.TickInterval = "fast" },
			wantErr:     true,
			errContains: "valid tick_interval",
		},
		{
			name:        "tick too short",
			modify:      func(c *Config) { c.TickInterval = "1ms" },
			wantErr:     true,
			errContains: "too short",
		},
		{
			name:        "zero threshold",
			modify:      func(c *Config) { c.DegradationThreshold = 0 },
			wantErr:     true,
			errContains: "degradation_threshold",
		},
		{
			name:        "zero attempts",
			modify:      func(c *Config) { c.MaxAttempts = 0 },
			wantErr:     true,
			errContains: "max_attempts",
		},
		{
			name:        "negative cooldown",
			modify:      func(c *Config) { c.Cooldown.Ticks = -1 },
			wantErr:     true,
			errContains: "can't be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.Error(t, Validate(nil))
}
