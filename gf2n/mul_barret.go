package gf2n

// barretMul implements spec.md §4.3's "barret" strategy: reduction using
// only carry-less multiplies against the precomputed constant mu =
// floor(x^(2n)/g), with no data-dependent table lookups or branches
// beyond the single correction below — the strategy pickStrategy forces
// whenever a field requests the constant-time discipline.
//
// Given z = xmul(a, b):
//
//	t = xmul(z >> n, mu) >> n
//	r = z xor xmul(t, g)
//
// z has degree <= 2n-2 and t has degree <= n-2, so xmul(t, g) has degree
// <= 2n-1 and r has degree <= n: at most one further xor of g brings r
// below degree n.
func barretMul(f *Field, a, b uint64) uint64 {
	n := f.n
	hi, lo := f.xmul(a, b)
	z := u128{hi, lo}

	zHigh := z.shr(n).lo & widthMask(n)
	tWide := mulU64U128(f.xmul, zHigh, f.mu)
	t := tWide.shr(n).lo & widthMask(n)

	full := fullG(f.gLow, n)
	r := z.xor(mulU64U128(f.xmul, t, full))
	if r.degree() >= int(n) {
		r = r.xor(full)
	}
	return r.lo & widthMask(n)
}

// mulU64U128 returns the carry-less product of a (a polynomial of degree
// < 64) and m (a polynomial of degree <= 64, represented as a u128 whose
// hi word is at most a single bit at position 0, standing for x^64),
// using the supplied field's resolved xmul implementation rather than
// the process-wide one. Used for the two widened multiplies Barret
// reduction needs against mu and g, both of which can carry that one
// extra bit of degree at n=64.
func mulU64U128(xmulFn xmulFunc, a uint64, m u128) u128 {
	hi, lo := xmulFn(a, m.lo)
	prod := u128{hi, lo}
	if m.hi&1 != 0 {
		prod = prod.xor(u128{hi: a})
	}
	return prod
}
