package toggle

import (
	"fmt"
	"strings"

	"github.com/togglebit/togglebit/internal/errors"
)

// Input identifies the device an activation came from.
type Input int

const (
	InputKeyboard Input = iota
	InputMouse
)

// String returns a human-readable label for the input.
func (i Input) String() string {
	switch i {
	case InputKeyboard:
		return "keyboard"
	case InputMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Bypass selects which inputs ignore the cooldown.
type Bypass int

const (
	BypassNone Bypass = iota
	BypassKeyboard
	BypassMouse
	BypassBoth
)

// String returns the config spelling of the bypass policy.
func (b Bypass) String() string {
	switch b {
	case BypassNone:
		return "none"
	case BypassKeyboard:
		return "keyboard"
	case BypassMouse:
		return "mouse"
	case BypassBoth:
		return "both"
	default:
		return "none"
	}
}

// Allows reports whether activations from in skip the cooldown.
func (b Bypass) Allows(in Input) bool {
	switch b {
	case BypassBoth:
		return true
	case BypassKeyboard:
		return in == InputKeyboard
	case BypassMouse:
		return in == InputMouse
	default:
		return false
	}
}

// ParseBypass converts a config value into a Bypass. Empty means none.
func ParseBypass(s string) (Bypass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BypassNone, nil
	case "keyboard", "key":
		return BypassKeyboard, nil
	case "mouse":
		return BypassMouse, nil
	case "both", "all":
		return BypassBoth, nil
	}
	return BypassNone, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a cooldown bypass mode", s),
		"Use one of: none, keyboard, mouse, both")
}

// Initial selects the state the bit starts in.
type Initial int

const (
	InitialOn Initial = iota
	InitialOff
	InitialRandom
)

// String returns the config spelling of the initial mode.
func (i Initial) String() string {
	switch i {
	case InitialOn:
		return "on"
	case InitialOff:
		return "off"
	case InitialRandom:
		return "random"
	default:
		return "on"
	}
}

// ParseInitial converts a config value into an Initial. Empty means on.
func ParseInitial(s string) (Initial, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "on", "true", "1":
		return InitialOn, nil
	case "off", "false", "0":
		return InitialOff, nil
	case "random":
		return InitialRandom, nil
	}
	return InitialOn, errors.New(errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a valid initial state", s),
		"Use one of: on, off, random")
}
