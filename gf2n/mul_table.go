package gf2n

// tableMul implements spec.md §4.3's "table" strategy: full log/antilog
// tables reduce multiplication to three lookups and a modular add. Not
// constant-time (table lookups are indexed by secret values). Requires
// f.exp/f.log, which NewField only builds for n<=16.
func tableMul(f *Field, a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	sum := f.log[a] + f.log[b]
	if uint64(sum) >= f.nonzero {
		sum -= int64(f.nonzero)
	}
	return f.exp[sum]
}
