// Package toggle holds the state machine behind the bit widget.
//
// A State flips between off and on when activated, counts accepted
// activations, and optionally refuses activations for a number of ticks after
// each accepted one. Every accepted activation may corrupt the art of the new
// state, with a chance that grows with the click count.
//
// The package knows nothing about terminals: the host feeds Activate and Tick
// calls in and reads Text out.
package toggle

import (
	"github.com/togglebit/togglebit/internal/errors"
	"github.com/togglebit/togglebit/internal/logger"
	"github.com/togglebit/togglebit/internal/mutate"
)

const (
	// DefaultCooldownTicks is how many ticks an accepted activation blocks for.
	DefaultCooldownTicks = 15
	// DefaultDegradationThreshold is the click count at which every toggle corrupts.
	DefaultDegradationThreshold = 100.0
)

// Options configures a State.
type Options struct {
	Initial Initial
	Carnage bool

	// CooldownTicks is the cooldown length. Zero disables the cooldown.
	CooldownTicks uint
	Bypass        Bypass

	// DegradationThreshold scales the corruption chance. Values <= 0 use the default.
	DegradationThreshold float64

	OffText string
	OnText  string

	MaxAttempts int
	Logger      logger.Logger
}

// DefaultOptions returns options matching the cooldown variant of the widget.
func DefaultOptions() Options {
	return Options{
		Initial:              InitialOn,
		CooldownTicks:        DefaultCooldownTicks,
		Bypass:               BypassNone,
		DegradationThreshold: DefaultDegradationThreshold,
		MaxAttempts:          mutate.DefaultMaxAttempts,
	}
}

// State is the toggle state machine. It is not safe for concurrent use.
type State struct {
	enabled     bool
	clicks      uint32
	cooldown    uint
	cooldownLen uint
	bypass      Bypass
	threshold   float64
	carnage     bool
	corruptions int

	// buffers[0] is the off art, buffers[1] the on art
	buffers [2][]rune
	text    string

	rng     mutate.Source
	mutator *mutate.Mutator
	log     logger.Logger
}

// New builds a State from opts drawing randomness from src.
// Both texts must be non-empty.
func New(opts Options, src mutate.Source) (*State, error) {
	if opts.OffText == "" {
		return nil, errors.New(errors.ErrAsset,
			"The off art is empty",
			"Point assets.off at a file with at least one character")
	}
	if opts.OnText == "" {
		return nil, errors.New(errors.ErrAsset,
			"The on art is empty",
			"Point assets.on at a file with at least one character")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	threshold := opts.DegradationThreshold
	if threshold <= 0 {
		threshold = DefaultDegradationThreshold
	}

	enabled := opts.Initial != InitialOff
	if opts.Initial == InitialRandom {
		enabled = src.Intn(2) == 1
	}

	s := &State{
		enabled:     enabled,
		cooldownLen: opts.CooldownTicks,
		bypass:      opts.Bypass,
		threshold:   threshold,
		carnage:     opts.Carnage,
		buffers:     [2][]rune{[]rune(opts.OffText), []rune(opts.OnText)},
		rng:         src,
		mutator:     mutate.New(src, mutate.WithMaxAttempts(opts.MaxAttempts), mutate.WithLogger(log)),
		log:         log,
	}
	s.text = string(s.current())
	return s, nil
}

func (s *State) current() []rune {
	if s.enabled {
		return s.buffers[1]
	}
	return s.buffers[0]
}

// Activate requests a toggle from the given input.
//
// It returns false when the activation was swallowed by the cooldown. A
// mutator error is returned after the toggle has been applied.
func (s *State) Activate(in Input) (bool, error) {
	bypassed := s.bypass.Allows(in)
	if !bypassed && !s.Ready() {
		s.log.Debug("ignored %s activation, %d ticks left", in, s.cooldown)
		return false, nil
	}

	s.enabled = !s.enabled
	s.clicks++

	var err error
	if s.rng.Float64() < float64(s.clicks)/s.threshold {
		if _, err = s.mutator.Corrupt(s.current(), s.carnage); err == nil {
			s.corruptions++
		}
	}
	s.text = string(s.current())

	if !bypassed {
		s.cooldown = s.cooldownLen
	}

	s.log.Debug("%s activation accepted: enabled=%t clicks=%d", in, s.enabled, s.clicks)
	return true, err
}

// Tick advances the cooldown by one step.
func (s *State) Tick() {
	if s.cooldown > 0 {
		s.cooldown--
	}
}

// Enabled returns the current logical state.
func (s *State) Enabled() bool { return s.enabled }

// Clicks returns the number of accepted activations, modulo 2^32.
func (s *State) Clicks() uint32 { return s.clicks }

// Cooldown returns the ticks left before keyboard/mouse activations are accepted again.
func (s *State) Cooldown() uint { return s.cooldown }

// CooldownLength returns the configured cooldown length in ticks.
func (s *State) CooldownLength() uint { return s.cooldownLen }

// Ready reports whether a non-bypassing activation would be accepted.
func (s *State) Ready() bool { return s.cooldown == 0 }

// Carnage reports whether newlines may be corrupted.
func (s *State) Carnage() bool { return s.carnage }

// Corruptions returns how many times the art has been corrupted.
func (s *State) Corruptions() int { return s.corruptions }

// Text returns the display text for the current state.
func (s *State) Text() string { return s.text }

// CorruptionChance returns the probability that the next accepted activation
// corrupts the art, capped at 1.
func (s *State) CorruptionChance() float64 {
	p := float64(s.clicks+1) / s.threshold
	if p > 1 {
		return 1
	}
	return p
}
