// Package mutate corrupts display glyphs by flipping a single random bit of one
// character's code point.
package mutate

import (
	"unicode/utf8"

	"github.com/togglebit/togglebit/internal/errors"
	"github.com/togglebit/togglebit/internal/logger"
)

// DefaultMaxAttempts caps each retry loop in Corrupt.
const DefaultMaxAttempts = 4096

// codePointBits is the width of a code point as seen by the bit flipper.
const codePointBits = 32

// Source is the randomness a Mutator draws from. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

var (
	// ErrEmptyBuffer is returned when Corrupt is handed nothing to corrupt.
	ErrEmptyBuffer = errors.New(errors.ErrMutate,
		"Can't corrupt an empty buffer",
		"Use art with at least one character")

	// ErrAttemptsExhausted is returned when no eligible index or bit was found
	// within the attempt cap.
	ErrAttemptsExhausted = errors.New(errors.ErrMutate,
		"Gave up looking for a glyph to corrupt",
		"Use art that isn't only newlines, raise max_attempts, or run with --carnage")
)

// Mutator flips bits in rune buffers.
type Mutator struct {
	src         Source
	maxAttempts int
	log         logger.Logger
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithMaxAttempts sets the retry cap for both the index and the bit loop.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(m *Mutator) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(m *Mutator) {
		if l != nil {
			m.log = l
		}
	}
}

// New creates a Mutator drawing from src.
func New(src Source, opts ...Option) *Mutator {
	m := &Mutator{
		src:         src,
		maxAttempts: DefaultMaxAttempts,
		log:         logger.Noop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MaxAttempts returns the retry cap.
func (m *Mutator) MaxAttempts() int {
	return m.maxAttempts
}

// Corrupt replaces exactly one character of buf in place and returns its index.
//
// Unless carnage is set, newline characters are never picked and a flip that
// would produce a newline is rejected. Once an index is chosen it stays fixed;
// only the bit position is re-rolled when the flipped value is not a valid
// Unicode scalar value.
func (m *Mutator) Corrupt(buf []rune, carnage bool) (int, error) {
	if len(buf) == 0 {
		return -1, ErrEmptyBuffer
	}

	idx, err := m.pickIndex(buf, carnage)
	if err != nil {
		return -1, err
	}

	flipped, err := m.pickFlip(buf[idx], carnage)
	if err != nil {
		return -1, err
	}

	m.log.Debug("corrupt [%d] %U -> %U", idx, buf[idx], flipped)
	buf[idx] = flipped
	return idx, nil
}

func (m *Mutator) pickIndex(buf []rune, carnage bool) (int, error) {
	for i := 0; i < m.maxAttempts; i++ {
		idx := m.src.Intn(len(buf))
		if carnage || buf[idx] != '\n' {
			return idx, nil
		}
	}
	return -1, ErrAttemptsExhausted
}

func (m *Mutator) pickFlip(r rune, carnage bool) (rune, error) {
	for i := 0; i < m.maxAttempts; i++ {
		flipped := FlipBit(r, m.src.Intn(codePointBits))
		if Acceptable(flipped, carnage) {
			return flipped, nil
		}
	}
	return r, ErrAttemptsExhausted
}

// FlipBit XORs bit (0-31) of r's code point.
func FlipBit(r rune, bit int) rune {
	return rune(uint32(r) ^ (1 << uint(bit)))
}

// Acceptable reports whether r may be written back into a buffer.
func Acceptable(r rune, carnage bool) bool {
	if !utf8.ValidRune(r) {
		return false
	}
	return carnage || r != '\n'
}
