package gf2n

import "math/big"

// bigpoly.go holds the one construction-time helper that genuinely needs
// more than 128 bits of scratch space: deriving the Barret constant mu =
// floor(x^(2n)/g) requires dividing a degree-2n dividend (up to degree
// 128 for n=64) by a degree-n divisor, and x^128 does not fit in the
// u128 scratch type used everywhere else. math/big's bit-vector view
// (SetBit/Xor/Lsh/BitLen) is the natural, idiomatic stdlib tool for a
// one-shot, construction-time GF(2)[x] long division; no example repo in
// the corpus carries a GF(2)[x] bignum package, and wiring one in purely
// to avoid this single call would be the wrong trade. Every other
// construction-time computation (irreducibility, primitivity, table
// construction) stays within u128/uint64.
//
// Treated as a GF(2)[x] bit-vector, a big.Int addition must be XOR, not
// the arithmetic add big.Int.Add performs — so division here reimplements
// long division bit by bit using Xor instead of Sub.

// polyDivBig returns floor(a/b) for GF(2)[x] polynomials a, b represented
// as big.Int bit-vectors (bit i is the coefficient of x^i). b must be
// nonzero.
func polyDivBig(a, b *big.Int) *big.Int {
	db := b.BitLen() - 1
	r := new(big.Int).Set(a)
	q := new(big.Int)
	for r.Sign() != 0 {
		dr := r.BitLen() - 1
		if dr < db {
			break
		}
		shift := uint(dr - db)
		q.SetBit(q, int(shift), 1)
		shifted := new(big.Int).Lsh(b, shift)
		r.Xor(r, shifted)
	}
	return q
}

// barretMu computes mu = floor(x^(2n) / g) where g is the full (n+1)-bit
// irreducible polynomial (gLow plus its implicit x^n leading term), and
// returns it as a u128 (mu always has degree <= n <= 64, so it fits).
func barretMu(gLow uint64, n uint) u128 {
	full := fullG(gLow, n)
	gBig := u128ToBig(full)
	dividend := new(big.Int).SetBit(new(big.Int), int(2*n), 1)
	q := polyDivBig(dividend, gBig)
	return bigToU128(q)
}

func u128ToBig(x u128) *big.Int {
	b := new(big.Int).SetUint64(x.hi)
	b.Lsh(b, 64)
	lo := new(big.Int).SetUint64(x.lo)
	b.Or(b, lo)
	return b
}

func bigToU128(b *big.Int) u128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(b, mask)
	hi := new(big.Int).Rsh(b, 64)
	hi.And(hi, mask)
	return u128{hi: hi.Uint64(), lo: lo.Uint64()}
}
