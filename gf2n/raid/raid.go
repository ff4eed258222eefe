// Package raid implements RAID-style parity over a gf2n.Field: plain
// XOR parity (a RAID-4/5 analogue), dual parity evaluated at successive
// powers of the field's generator (a RAID-6 analogue), and a third
// parity row completing the Vandermonde matrix for triple-parity
// schemes. All three are specializations of the same erasure-coding
// technique gf2n/reedsolomon uses, restricted to at most three parity
// rows and exposed with disk/stripe-oriented names.
package raid

import (
	"errors"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

// ErrMismatchedLength indicates the input disks are not all the same
// length.
var ErrMismatchedLength = errors.New("raid: all disks must have the same length")

// ErrTooManyMissing indicates more disks are missing than the parity
// scheme used can recover.
var ErrTooManyMissing = errors.New("raid: more disks missing than available parity")

// checkLengths returns the common length of every non-nil disk (a nil
// entry marks a missing disk and is skipped, not required to match).
func checkLengths(disks [][]byte) (int, error) {
	n := -1
	for _, d := range disks {
		if d == nil {
			continue
		}
		if n == -1 {
			n = len(d)
			continue
		}
		if len(d) != n {
			return 0, ErrMismatchedLength
		}
	}
	if n == -1 {
		return 0, nil
	}
	return n, nil
}

// Parity1 computes plain XOR parity across disks: the degenerate
// GF(2^n) case where every coefficient is 1, equivalent to repeated +.
func Parity1(disks [][]byte) ([]byte, error) {
	n, err := checkLengths(disks)
	if err != nil {
		return nil, err
	}
	p := make([]byte, n)
	for _, d := range disks {
		for i, b := range d {
			p[i] ^= b
		}
	}
	return p, nil
}

// Parity2 computes RAID-6-style dual parity: p is XOR parity, q is the
// field-weighted sum Σ f.Generator()^i · diskᵢ (a Vandermonde row),
// recoverable alongside p by solving a 2x2 linear system over f when any
// two of {disks..., p, q} are lost.
func Parity2(f *gf2n.Field, disks [][]byte) (p, q []byte, err error) {
	n, err := checkLengths(disks)
	if err != nil {
		return nil, nil, err
	}
	p = make([]byte, n)
	q = make([]byte, n)
	coeffs := vandermondeRow(f, len(disks), 1)
	for d := range disks {
		c := coeffs[d]
		for i, b := range disks[d] {
			p[i] ^= b
			q[i] = byte(f.FromUint64(uint64(q[i])).Add(c.Mul(f.FromUint64(uint64(b)))).Uint64())
		}
	}
	return p, q, nil
}

// Parity3 computes a third parity row r, evaluated at the generator's
// square powers, completing the Vandermonde matrix for triple-parity
// recovery (p, q, r can together recover any three missing disks).
func Parity3(f *gf2n.Field, disks [][]byte) (p, q, r []byte, err error) {
	n, err := checkLengths(disks)
	if err != nil {
		return nil, nil, nil, err
	}
	p, q, err = Parity2(f, disks)
	if err != nil {
		return nil, nil, nil, err
	}
	r = make([]byte, n)
	coeffs := vandermondeRow(f, len(disks), 2)
	for d := range disks {
		c := coeffs[d]
		for i, b := range disks[d] {
			r[i] = byte(f.FromUint64(uint64(r[i])).Add(c.Mul(f.FromUint64(uint64(b)))).Uint64())
		}
	}
	return p, q, r, nil
}

// vandermondeRow returns [g^(0*power), g^(1*power), ..., g^((count-1)*power)]
// for the field's generator, used as the coefficient row for the
// power-th parity disk (power=1 for q, power=2 for r).
func vandermondeRow(f *gf2n.Field, count int, power int) []gf2n.Element {
	row := make([]gf2n.Element, count)
	g := f.FromUint64(f.Generator())
	for i := 0; i < count; i++ {
		row[i] = g.Pow(uint64(i * power))
	}
	return row
}

// Reconstruct recovers up to len(parity) missing data disks given
// the surviving data disks (with nil placeholders at missing indices),
// the surviving parity rows (in p,[q,[r]] order, as many as were
// computed), and the indices of missing data disks. It solves the
// Vandermonde system restricted to the missing columns via gf2n.Element
// arithmetic; it does not attempt to recover a missing parity disk
// itself, since a missing parity row is simply a row to skip when
// re-deriving it from the (now complete) data set.
func Reconstruct(f *gf2n.Field, disks [][]byte, parity [][]byte, missing []int) error {
	if len(missing) == 0 {
		return nil
	}
	if len(missing) > len(parity) {
		return ErrTooManyMissing
	}
	n, err := checkLengths(append(append([][]byte{}, disks...), parity...))
	if err != nil {
		return err
	}

	// Build the coefficient matrix: one row per parity stream used, one
	// column per missing disk, using exactly len(missing) parity rows
	// (a square system).
	rows := make([][]gf2n.Element, len(missing))
	for r := range rows {
		rows[r] = make([]gf2n.Element, len(missing))
		coeffs := vandermondeRow(f, len(disks), r)
		for c, idx := range missing {
			rows[r][c] = coeffs[idx]
		}
	}

	for byteIdx := 0; byteIdx < n; byteIdx++ {
		// Right-hand side: parity value minus (xor) the contribution of
		// every surviving disk.
		rhs := make([]gf2n.Element, len(missing))
		for r := range rhs {
			acc := f.FromUint64(uint64(parity[r][byteIdx]))
			coeffs := vandermondeRow(f, len(disks), r)
			for d, disk := range disks {
				if disk == nil {
					continue
				}
				acc = acc.Sub(coeffs[d].Mul(f.FromUint64(uint64(disk[byteIdx]))))
			}
			rhs[r] = acc
		}

		sol, err := solveLinearSystem(f, cloneRows(rows), rhs)
		if err != nil {
			return err
		}
		for c, idx := range missing {
			if disks[idx] == nil {
				disks[idx] = make([]byte, n)
			}
			disks[idx][byteIdx] = byte(sol[c].Uint64())
		}
	}
	return nil
}

func cloneRows(rows [][]gf2n.Element) [][]gf2n.Element {
	out := make([][]gf2n.Element, len(rows))
	for i, row := range rows {
		out[i] = append([]gf2n.Element{}, row...)
	}
	return out
}

// solveLinearSystem solves A·x = b over f via Gauss-Jordan elimination
// with GF(2^n) arithmetic in place of real-number arithmetic.
func solveLinearSystem(f *gf2n.Field, a [][]gf2n.Element, b []gf2n.Element) ([]gf2n.Element, error) {
	k := len(b)
	for col := 0; col < k; col++ {
		pivot := -1
		for row := col; row < k; row++ {
			if !a[row][col].IsZero() {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, errors.New("raid: singular recovery matrix")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		inv, err := a[col][col].Inverse()
		if err != nil {
			// Unreachable: the pivot search above already rejected a
			// zero entry at a[col][col].
			return nil, errors.New("raid: singular recovery matrix")
		}
		for c := 0; c < k; c++ {
			a[col][c] = a[col][c].Mul(inv)
		}
		b[col] = b[col].Mul(inv)

		for row := 0; row < k; row++ {
			if row == col || a[row][col].IsZero() {
				continue
			}
			factor := a[row][col]
			for c := 0; c < k; c++ {
				a[row][c] = a[row][c].Sub(factor.Mul(a[col][c]))
			}
			b[row] = b[row].Sub(factor.Mul(b[col]))
		}
	}
	return b, nil
}
