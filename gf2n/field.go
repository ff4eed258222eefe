package gf2n

import (
	"fmt"
	"math/bits"
)

// Field is an instantiation of GF(2^n): an irreducible polynomial g, a
// primitive generator alpha, and the constants and tables derived from
// them. Fields are immutable once constructed (spec.md §3 "Lifecycle")
// and safe for unsynchronized concurrent reads from any number of
// goroutines, since nothing about a *Field mutates after NewField
// returns.
type Field struct {
	n       uint
	gLow    uint64 // g's bits 0..n-1; the implicit x^n leading term is added back by fullG
	alpha   uint64
	nonzero uint64 // 2^n - 1

	strategy     Strategy
	constantTime bool

	mu u128 // Barret constant, floor(x^2n / g), degree <= n

	exp []uint64 // present iff n <= 16: exp[i] = alpha^i
	log []int64  // present iff n <= 16: log[x] = discrete log of x base alpha, -1 if undefined

	rem  [256]uint64 // R[b] = (b * x^n) mod g, always built; read by the rem_table strategy
	rem4 [16]uint64  // R4[b] = (b * x^n) mod g for nibble b, always built

	mul  mulFunc
	xmul xmulFunc // this field's resolved carry-less multiplier: hardware unless WithoutXmul forced it off
}

type mulFunc func(f *Field, a, b uint64) uint64
type xmulFunc func(a, b uint64) (hi, lo uint64)

// Option configures a Field at construction time, corresponding to
// spec.md §6's field declaration (mode, constant_time, usexmul, table
// budget).
type Option func(*fieldConfig)

type fieldConfig struct {
	strategy     Strategy
	constantTime bool
	tableBudget  TableBudget
	forceNoXmul  bool
}

// WithMode forces a specific multiplication strategy instead of letting
// NewField pick one via pickStrategy.
func WithMode(s Strategy) Option {
	return func(c *fieldConfig) { c.strategy = s }
}

// WithConstantTime requests the constant-time discipline of spec.md §5;
// it forces Barret regardless of any other option.
func WithConstantTime(v bool) Option {
	return func(c *fieldConfig) { c.constantTime = v }
}

// WithTableBudget sets the table-memory budget pickStrategy weighs when
// NewField picks a strategy. It does not change which tables NewField
// builds: the byte and nibble remainder tables are always built, and
// the log/antilog tables whenever n <= 16.
func WithTableBudget(b TableBudget) Option {
	return func(c *fieldConfig) { c.tableBudget = b }
}

// WithoutXmul forces this field's own carry-less multiplies (naive and
// Barret reduce a widened product directly, rem_table/small_rem_table
// widen before folding through their lookup tables; the table strategy
// does no carry-less multiply) to use the branch-free software
// implementation even when the process detected a hardware intrinsic,
// without affecting HasXmul or any other field's choice (spec.md §6's
// usexmul per-field override).
func WithoutXmul() Option {
	return func(c *fieldConfig) { c.forceNoXmul = true }
}

// NewField validates g and alpha and derives every constant and table
// described in spec.md §3/§4.5, using only naive, closed-form Poly
// arithmetic so the derivation remains usable in restricted, non-table
// contexts.
//
// g is supplied as the polynomial's low n bits; its implicit x^n leading
// coefficient (always 1, since g has degree exactly n) is added back
// internally. For n<64 this means the conventional "integer with its top
// bit set" form from spec.md §6 (e.g. 0x11d for n=8) must have that top
// bit cleared before calling NewField — Default8 (presets.go) does this once so
// callers using the packaged default fields never need to.
func NewField(n uint, gLow, alpha uint64, opts ...Option) (*Field, error) {
	switch n {
	case 8, 16, 32, 64:
	default:
		return nil, fmt.Errorf("gf2n: unsupported field width %d (must be 8, 16, 32 or 64)", n)
	}

	nonzero := widthMask(n)
	if gLow&^nonzero != 0 {
		return nil, newFieldError(InvalidPolynomial, n, gLow)
	}
	if alpha == 0 || alpha&^nonzero != 0 {
		return nil, newFieldError(InvalidGenerator, n, alpha)
	}

	if !checkIrreducible(gLow, n) {
		return nil, newFieldError(InvalidPolynomial, n, gLow)
	}
	if !checkPrimitive(alpha, gLow, n, nonzero) {
		return nil, newFieldError(InvalidGenerator, n, alpha)
	}

	cfg := fieldConfig{strategy: StrategyAuto, tableBudget: TableBudgetFull}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field{
		n:            n,
		gLow:         gLow,
		alpha:        alpha,
		nonzero:      nonzero,
		constantTime: cfg.constantTime,
	}

	// xmul resolution is per-field, not process-wide: WithoutXmul only
	// forces this one field onto the naive software multiplier, leaving
	// HasXmul and every other field's choice untouched.
	f.xmul = xmul64
	if cfg.forceNoXmul {
		f.xmul = xmul64Naive
	}

	f.mu = barretMu(gLow, n)
	copy(f.rem[:], buildRemTable(gLow, n, 256))
	var rem4 [16]uint64
	copy(rem4[:], buildRemTable(gLow, n, 16))
	f.rem4 = rem4

	if n <= 16 {
		f.buildLogTables()
	}

	hasXmul := HasXmul && !cfg.forceNoXmul
	strategy := cfg.strategy
	if strategy == StrategyAuto {
		strategy = pickStrategy(n, hasXmul, cfg.constantTime, cfg.tableBudget)
	}
	if strategy == StrategyTable && f.exp == nil {
		// table strategy requires log/antilog tables; fall back to
		// rem_table rather than panicking on a user-forced mode.
		strategy = StrategyRemTable
	}
	f.strategy = strategy
	f.mul = adapterFor(strategy)

	return f, nil
}

func adapterFor(s Strategy) mulFunc {
	switch s {
	case StrategyNaive:
		return naiveMul
	case StrategyTable:
		return tableMul
	case StrategyRemTable:
		return remTableMul
	case StrategySmallRemTable:
		return smallRemTableMul
	case StrategyBarret:
		return barretMul
	default:
		panic("gf2n: no adapter for strategy " + s.String())
	}
}

func (f *Field) buildLogTables() {
	size := int(f.nonzero)
	f.exp = make([]uint64, size)
	f.log = make([]int64, size+1)
	for i := range f.log {
		f.log[i] = -1
	}
	val := uint64(1)
	for i := 0; i < size; i++ {
		f.exp[i] = val
		f.log[val] = int64(i)
		val = mulModNaive(val, f.alpha, f.gLow, f.n)
	}
}

// Width returns the field's bit width n.
func (f *Field) Width() uint { return f.n }

// Strategy returns the multiplication strategy this field resolved to.
func (f *Field) Strategy() Strategy { return f.strategy }

// ConstantTime reports whether this field was constructed with the
// constant-time discipline of spec.md §5.
func (f *Field) ConstantTime() bool { return f.constantTime }

// Nonzero returns 2^n - 1, the order of the multiplicative group.
func (f *Field) Nonzero() uint64 { return f.nonzero }

// Generator returns alpha as a raw word.
func (f *Field) Generator() uint64 { return f.alpha }

// widthMask returns 2^n - 1 without overflowing uint64 at n=64.
func widthMask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

// fullG reconstructs g's (n+1)-bit representation (gLow plus its
// implicit leading x^n term) as a u128, since that leading bit does not
// fit in a uint64 when n=64.
func fullG(gLow uint64, n uint) u128 {
	g := u128{lo: gLow}
	if n < 64 {
		g.lo |= uint64(1) << n
	} else {
		g.hi |= 1
	}
	return g
}

// reduceWide reduces a 2n-bit (or narrower) value z modulo the full
// irreducible polynomial, by repeatedly xor-ing shifted copies of full
// until the degree drops below n. This is the naive, closed-form
// reduction spec.md §4.3's "naive" strategy and the constant generator
// both rely on.
func reduceWide(z, full u128, n uint) uint64 {
	for {
		d := z.degree()
		if d < int(n) {
			return z.lo
		}
		shift := uint(d) - n
		z = z.xor(full.shl(shift))
	}
}

// mulModNaive multiplies a and b and reduces modulo g using the
// branch-free software carry-less multiplier, independent of whatever
// xmul implementation the process resolved HasXmul to. It is the
// closed-form primitive the constant generator (table/mu construction,
// irreducibility/primitivity checks) uses throughout §4.5, and is also
// the implementation behind the runtime "naive" strategy.
func mulModNaive(a, b, gLow uint64, n uint) uint64 {
	hi, lo := xmul64Naive(a, b)
	return reduceWide(u128{hi, lo}, fullG(gLow, n), n)
}

func powModNaive(base, exp, gLow uint64, n uint) uint64 {
	result := uint64(1)
	b := base
	for e := exp; e != 0; e >>= 1 {
		if e&1 == 1 {
			result = mulModNaive(result, b, gLow, n)
		}
		b = mulModNaive(b, b, gLow, n)
	}
	return result
}

func buildRemTable(gLow uint64, n uint, size int) []uint64 {
	full := fullG(gLow, n)
	t := make([]uint64, size)
	for b := 0; b < size; b++ {
		z := u128{lo: uint64(b)}.shl(n)
		t[b] = reduceWide(z, full, n)
	}
	return t
}

// nonzeroPrimeFactors lists the distinct prime factors of 2^n-1 for each
// supported width, used to validate that alpha has multiplicative order
// exactly 2^n-1 (spec.md §4.5 step 2).
var nonzeroPrimeFactors = map[uint][]uint64{
	8:  {3, 5, 17},
	16: {3, 5, 17, 257},
	32: {3, 5, 17, 257, 65537},
	64: {3, 5, 17, 257, 65537, 641, 6700417},
}

func checkPrimitive(alpha, gLow uint64, n uint, nonzero uint64) bool {
	if alpha == 0 {
		return false
	}
	if powModNaive(alpha, nonzero, gLow, n) != 1 {
		return false
	}
	for _, p := range nonzeroPrimeFactors[n] {
		if powModNaive(alpha, nonzero/p, gLow, n) == 1 {
			return false
		}
	}
	return true
}

// checkIrreducible applies Rabin's irreducibility test specialized to
// the widths this package supports (8, 16, 32, 64), every one of which
// is a power of two, so 2 is n's only prime factor: g(x) of degree n is
// irreducible over GF(2) iff x^(2^n) = x (mod g) and
// gcd(x^(2^(n/2)) - x, g) = 1. Combined with g having no root in GF(2)
// (checked first, and implied by the two conditions above, but cheap
// enough to check directly and fail fast on), this is spec.md §4.5 step
// 1's "irreducibility... established for the widths used".
func checkIrreducible(gLow uint64, n uint) bool {
	if gLow&1 == 0 {
		return false // g(0) == 0: x divides g
	}
	if (bits.OnesCount64(gLow)+1)%2 == 0 {
		return false // g(1) == 0: (x+1) divides g
	}

	x := uint64(2)
	s := x
	for i := uint(0); i < n; i++ {
		s = mulModNaive(s, s, gLow, n)
	}
	if s != x {
		return false
	}

	t := x
	for i := uint(0); i < n/2; i++ {
		t = mulModNaive(t, t, gLow, n)
	}
	d := t ^ x
	if d == 0 {
		return false
	}

	full := fullG(gLow, n)
	g := polyGCDWide(u128{lo: d}, full)
	return g.degree() == 0
}

func polyDivModWide(a, b u128) (quotient, remainder u128) {
	db := b.degree()
	remainder = a
	for remainder.degree() >= db {
		shift := uint(remainder.degree() - db)
		quotient = quotient.xor(u128{lo: 1}.shl(shift))
		remainder = remainder.xor(b.shl(shift))
	}
	return quotient, remainder
}

func polyGCDWide(a, b u128) u128 {
	for !b.isZero() {
		_, r := polyDivModWide(a, b)
		a, b = b, r
	}
	return a
}
