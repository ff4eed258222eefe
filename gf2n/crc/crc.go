// Package crc implements byte-at-a-time cyclic redundancy checks backed
// by a gf2n.Field's remainder table, generalizing hash/crc32's
// single-polynomial design to any field width the gf2n package supports.
package crc

import (
	"hash"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

// Table is the precomputed 256-entry byte remainder table for a
// particular field: Table[b] = (b * x^n) mod g. It holds the same values
// as the table a gf2n.Field builds for its rem_table multiplication
// strategy, but NewTable derives its own copy through the field's
// public arithmetic.
type Table struct {
	field   *gf2n.Field
	entries [256]uint64
	refin   bool
	refout  bool
	xorOut  uint64
}

// Option configures a Table at construction, corresponding to the
// pre/post bit-reverse and xor-mask parameters common to named CRC
// variants (reflected input, reflected output, final xor).
type Option func(*Table)

// WithReflectIn reverses each input byte's bits before folding it in,
// matching CRC variants defined with a reflected input (e.g. CRC-32).
func WithReflectIn(v bool) Option { return func(t *Table) { t.refin = v } }

// WithReflectOut reverses the final register's bits before the xor mask
// is applied.
func WithReflectOut(v bool) Option { return func(t *Table) { t.refout = v } }

// WithXorOut xors the final register with mask before returning it.
func WithXorOut(mask uint64) Option { return func(t *Table) { t.xorOut = mask } }

// NewTable builds a Table over f, deriving every entry (b * x^n) mod g
// by multiplying b by x n times with f's own multiplication, for every
// width; f's internal remainder table is not read.
func NewTable(f *gf2n.Field, opts ...Option) *Table {
	t := &Table{field: f}
	for b := 0; b < 256; b++ {
		v := f.FromUint64(uint64(b))
		shifted := v
		for i := 0; i < int(f.Width()); i++ {
			shifted = shifted.Mul(f.FromUint64(2))
		}
		t.entries[b] = shifted.Uint64()
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func reflect8(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// Checksum computes the CRC of data in a single call, starting from the
// all-zero register.
func (t *Table) Checksum(data []byte) uint64 {
	return t.Update(0, data)
}

// Update folds data into an in-progress register crc, the way
// hash/crc32.Update folds bytes into a running checksum — callers that
// need incremental checksums keep crc across calls instead of holding a
// *Table's internal state.
func (t *Table) Update(crc uint64, data []byte) uint64 {
	n := t.field.Width()
	reg := crc
	if t.refout {
		reg = bitReverse(reg, n)
	}
	reg ^= t.xorOut
	for _, b := range data {
		in := b
		if t.refin {
			in = reflect8(in)
		}
		idx := byte(reg>>(n-8)) ^ in
		reg = (reg<<8)&mask(n) ^ t.entries[idx]
	}
	reg ^= t.xorOut
	if t.refout {
		reg = bitReverse(reg, n)
	}
	return reg
}

func mask(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

func bitReverse(v uint64, n uint) uint64 {
	var r uint64
	for i := uint(0); i < n; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

// hash32 adapts a Table over a GF(2^32) (or narrower, zero-extended)
// field to the standard library's hash.Hash32 interface, so a crc.Table
// slots wherever code already accepts one.
type hash32 struct {
	t   *Table
	reg uint32
}

// New32 wraps t as a hash.Hash32. t's field must have width <= 32.
func New32(t *Table) hash.Hash32 {
	return &hash32{t: t}
}

func (h *hash32) Write(p []byte) (int, error) {
	h.reg = uint32(h.t.Update(uint64(h.reg), p))
	return len(p), nil
}
func (h *hash32) Sum(b []byte) []byte {
	s := h.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
func (h *hash32) Reset()         { h.reg = 0 }
func (h *hash32) Size() int      { return 4 }
func (h *hash32) BlockSize() int { return 1 }
func (h *hash32) Sum32() uint32  { return h.reg }

// CRC32C is the Castagnoli CRC-32 variant (polynomial 0x1edc6f41,
// reflected input and output, final xor 0xffffffff), matching spec.md
// §8 scenario 4's literal checksum of "Hello World!".
//
// The entries table is built canonically, MSB-first, directly from the
// polynomial (a CRC's generator is an arbitrary degree-n polynomial, not
// necessarily irreducible, so this does not go through gf2n.Field at
// all); Update's refin/refout wrapping converts to and from the
// conventional reflected CRC-32C representation.
func CRC32C() *Table {
	const poly = uint32(0x1edc6f41)
	t := &Table{field: gf2n.Default32(), refin: true, refout: true, xorOut: 0xffffffff}
	for b := 0; b < 256; b++ {
		crc := uint32(b) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t.entries[b] = uint64(crc)
	}
	return t
}
