package shamir

import "github.com/rizkytaufiq/gf2n/gf2n"

// field is the GF(256) instance every Galois Field helper in this
// package delegates to, replacing the hand-rolled duplicate
// exp/log tables the teacher carried in two separate files
// (field.go and gf256.go) with the package's single generic
// substrate, matching spec.md §8 scenario 1's literal defaults
// (g=0x11d, alpha=0x02).
var field = gf2n.Default8()

// gfAdd performs Galois Field addition (XOR).
func gfAdd(a, b byte) byte {
	return a ^ b
}

func gfMult(a, b byte) byte {
	return byte(field.FromUint64(uint64(a)).Mul(field.FromUint64(uint64(b))).Uint64())
}

// gfDiv performs Galois Field division. It returns 0 whenever a is 0,
// even for b == 0; it panics when a is nonzero and b is zero.
func gfDiv(a, b byte) byte {
	if a == 0 {
		return 0
	}
	return byte(field.FromUint64(uint64(a)).Div(field.FromUint64(uint64(b))).Uint64())
}

// gfInv computes the multiplicative inverse in GF(256); panics on zero,
// matching the teacher's own gfInv contract.
func gfInv(a byte) byte {
	inv, err := field.FromUint64(uint64(a)).Inverse()
	if err != nil {
		panic("shamir: gfInv of zero")
	}
	return byte(inv.Uint64())
}

// gfMultSlice scales every byte of a by the scalar b, writing into dst.
func gfMultSlice(dst, a []byte, b byte) {
	if b == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if b == 1 {
		copy(dst, a)
		return
	}
	scalar := field.FromUint64(uint64(b))
	for i, v := range a {
		dst[i] = byte(field.FromUint64(uint64(v)).Mul(scalar).Uint64())
	}
}

// gfAddSlice xors a and b element-wise into dst.
func gfAddSlice(dst, a, b []byte) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// gfPolyEval evaluates a single-byte polynomial (coeffs[0] is the
// constant term) at x via Horner's method.
func gfPolyEval(coeffs []byte, x byte) byte {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = gfMult(result, x) ^ coeffs[i]
	}
	return result
}

// gfPolyEvalSlice evaluates len(dst) independent polynomials
// simultaneously: coeffs[i][byteIdx] is the degree-i coefficient of the
// polynomial for output byte byteIdx. Used by Split to evaluate the
// whole secret's worth of random polynomials at one share's x-coordinate
// in a single pass.
func gfPolyEvalSlice(dst []byte, coeffs [][]byte, x byte) {
	if len(coeffs) == 0 || len(dst) == 0 {
		return
	}
	copy(dst, coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		gfMultSlice(dst, dst, x)
		gfAddSlice(dst, dst, coeffs[i])
	}
}
