package gf2n

// remTableMul implements spec.md §4.3's "remainder-table" strategy.
// xmul(a,b) produces a 2n-bit product z = H*x^n + L, where H and L are
// its high and low n-bit halves. Since L already has degree < n, z mod g
// = (H*x^n mod g) xor L. The table R[c] = (c * x^n) mod g lets H*x^n mod
// g be folded in one chunk of H at a time, most significant chunk first
// — the same shift-register recurrence spec.md §6 uses for CRC, with
// H's chunks standing in for the incoming byte stream.
// Not constant-time: R is indexed by data-dependent chunks.
func remTableMul(f *Field, a, b uint64) uint64 {
	hi, lo := f.xmul(a, b)
	return reduceByTable(hi, lo, f.rem[:], f.n, 8)
}

// smallRemTableMul is the nibble-table (16-entry) variant: half the
// memory of remTableMul, twice the rounds.
func smallRemTableMul(f *Field, a, b uint64) uint64 {
	hi, lo := f.xmul(a, b)
	return reduceByTable(hi, lo, f.rem4[:], f.n, 4)
}

// reduceByTable reduces the widened value z = (hi, lo) modulo the field's
// g using a table of (chunkBits)-wide remainders: table[c] = (c * x^n)
// mod g. z's low n bits pass through unreduced; its high n bits are
// folded in chunkBits at a time, starting from the most significant
// chunk, via the standard register recurrence
//
//	acc = table[(acc >> (n-chunkBits)) xor chunk] xor (acc << chunkBits)
//
// n must be a multiple of chunkBits, true for every (n, chunkBits) pair
// this package uses (8/16/32/64 against 8 or 4).
func reduceByTable(hi, lo uint64, table []uint64, n, chunkBits uint) uint64 {
	z := u128{hi, lo}
	maskN := widthMask(n)
	low := z.lo & maskN
	high := z.shr(n).lo & maskN

	chunkMask := uint64(1)<<chunkBits - 1
	chunks := n / chunkBits

	var acc uint64
	for j := int(chunks) - 1; j >= 0; j-- {
		chunk := (high >> (uint(j) * chunkBits)) & chunkMask
		idx := ((acc >> (n - chunkBits)) & chunkMask) ^ chunk
		acc = (table[idx] ^ (acc << chunkBits)) & maskN
	}
	return acc ^ low
}
