// Package lfsr implements linear-feedback shift registers as repeated
// multiplication by a fixed field element, the GF(2^n) reformulation of
// a classical bit-shift LFSR: stepping state by x corresponds to a
// single-bit shift with feedback taps given by the field's irreducible
// polynomial, and stepping by alpha instead walks the full multiplicative
// group in generator order.
package lfsr

import "github.com/rizkytaufiq/gf2n/gf2n"

// Step names which element the register multiplies by on each pull.
type Step int

const (
	// StepAlpha steps by the field's primitive generator, visiting every
	// nonzero element exactly once over a full period.
	StepAlpha Step = iota
	// StepX steps by x (the element with raw word 2): a classical
	// bit-shift LFSR with taps given by the field's irreducible
	// polynomial.
	StepX
)

// LFSR wraps a gf2n.Element as shift-register state.
type LFSR struct {
	state gf2n.Element
	step  gf2n.Element
	inv   gf2n.Element
}

// Option configures an LFSR at construction.
type Option func(*lfsrConfig)

type lfsrConfig struct {
	step Step
}

// WithStep selects which fixed element the register multiplies by.
// Default is StepAlpha.
func WithStep(s Step) Option {
	return func(c *lfsrConfig) { c.step = s }
}

// New creates an LFSR over f starting at the given nonzero seed.
func New(f *gf2n.Field, seed uint64, opts ...Option) *LFSR {
	cfg := lfsrConfig{step: StepAlpha}
	for _, opt := range opts {
		opt(&cfg)
	}
	var step gf2n.Element
	switch cfg.step {
	case StepX:
		step = f.FromUint64(2)
	default:
		step = f.FromUint64(f.Generator())
	}
	inv, err := step.Inverse()
	if err != nil {
		// step is either x or the field's generator, both nonzero by
		// construction (NewField rejects a zero generator); a failure
		// here means that invariant was violated.
		panic("lfsr: step element has no inverse")
	}
	return &LFSR{
		state: f.FromUint64(seed),
		step:  step,
		inv:   inv,
	}
}

// Next advances the register by one pull (state *= step) and returns the
// new state's raw word.
func (l *LFSR) Next() uint64 {
	l.state = l.state.Mul(l.step)
	return l.state.Uint64()
}

// Prev reverses one pull (state *= step^-1) and returns the new state's
// raw word; Prev undoes the most recent Next, so running Prev the same
// number of times Next was run returns to the original seed.
func (l *LFSR) Prev() uint64 {
	l.state = l.state.Mul(l.inv)
	return l.state.Uint64()
}

// State returns the current raw state word without advancing.
func (l *LFSR) State() uint64 { return l.state.Uint64() }

// NextN pulls n successive values, advancing the register n times.
func (l *LFSR) NextN(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = l.Next()
	}
	return out
}

// FastLFSR advances a StepX register eight bits at a time: each pull is
// a single field multiplication by x^8, equivalent to eight StepX pulls
// of an LFSR (the register's feedback taps come directly from the
// field's irreducible polynomial). The multiplication goes through the
// field's resolved strategy; FastLFSR does not read the field's byte
// remainder table itself.
type FastLFSR struct {
	field *gf2n.Field
	state uint64
}

// NewFast creates a FastLFSR over f, seeded at seed, stepping by x eight
// bits at a time. f must have width >= 8.
func NewFast(f *gf2n.Field, seed uint64) *FastLFSR {
	return &FastLFSR{field: f, state: seed & widthMask(f.Width())}
}

// Next advances the register by a full byte-width step and returns the
// new state.
func (l *FastLFSR) Next() uint64 {
	l.state = l.field.FromUint64(l.state).Mul(xToTheEight(l.field)).Uint64()
	return l.state
}

// State returns the current raw state word.
func (l *FastLFSR) State() uint64 { return l.state }

func xToTheEight(f *gf2n.Field) gf2n.Element {
	x := f.FromUint64(2)
	return x.Pow(8)
}

func widthMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}
