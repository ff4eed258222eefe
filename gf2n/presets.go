package gf2n

import "sync"

// Default8 returns the package's standard GF(2^8) field: g = x^8+x^4+x^3+x^2+1
// (0x11d, the AES/Reed-Solomon polynomial) and generator alpha=0x02. This
// is the field spec.md §8 scenario 1 exercises and the one the shamir
// package builds its secret sharing on.
func Default8() *Field {
	defaultFieldsOnce.Do(initDefaultFields)
	return default8
}

// Default16 returns a standard GF(2^16) field: g = x^16+x^12+x^3+x+1
// (0x1100b, gLow 0x100b) and generator alpha=0x02.
func Default16() *Field {
	defaultFieldsOnce.Do(initDefaultFields)
	return default16
}

// Default32 returns a standard GF(2^32) field: g = x^32+x^7+x^3+x^2+1
// (gLow 0x8d) and generator alpha=0x03 (x itself, 0x02, is not
// primitive modulo this g).
func Default32() *Field {
	defaultFieldsOnce.Do(initDefaultFields)
	return default32
}

// Default64 returns a standard GF(2^64) field: g = x^64+x^4+x^3+x+1
// (gLow 0x1b) and generator alpha=0x02.
func Default64() *Field {
	defaultFieldsOnce.Do(initDefaultFields)
	return default64
}

var (
	defaultFieldsOnce    sync.Once
	default8, default16  *Field
	default32, default64 *Field
)

func initDefaultFields() {
	default8 = mustField(8, 0x1d, 0x02)
	default16 = mustField(16, 0x100b, 0x02)
	default32 = mustField(32, 0x8d, 0x03)
	default64 = mustField(64, 0x1b, 0x02)
}

func mustField(n uint, gLow, alpha uint64) *Field {
	f, err := NewField(n, gLow, alpha)
	if err != nil {
		panic(err)
	}
	return f
}
