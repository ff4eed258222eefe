package gf2n

// naiveMul computes z = f.xmul(a, b) — the field's own resolved
// carry-less multiplier, hardware-backed unless the field was built
// with WithoutXmul — and reduces it modulo g by repeated xor of
// shifted copies of g. Not constant-time: the reduction loop stops as
// soon as the degree drops below n, so its round count (bounded by n)
// depends on the operand values — see mul_barret.go for the
// constant-time alternative.
func naiveMul(f *Field, a, b uint64) uint64 {
	hi, lo := f.xmul(a, b)
	return reduceWide(u128{hi, lo}, fullG(f.gLow, f.n), f.n)
}
