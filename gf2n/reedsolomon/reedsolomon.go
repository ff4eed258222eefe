// Package reedsolomon implements Reed-Solomon encoding and decoding over
// a gf2n.Field, generalizing the hardcoded-GF(256) shift-register
// division technique of QR-code error correction to any field width the
// gf2n package supports, and adding the syndrome / Berlekamp-Massey /
// Chien-search / Forney decode pipeline QR codes do not need (QR's own
// error correction runs on a dedicated, simpler decoder outside this
// package's ancestry).
package reedsolomon

import (
	"errors"

	"github.com/rizkytaufiq/gf2n/gf2n"
)

// ErrDataTooLong indicates the caller passed more data than an Encoder's
// dataLen can hold.
var ErrDataTooLong = errors.New("reedsolomon: data exceeds configured data length")

// ErrInvalidCodewordLength indicates a codeword passed to Decode is not
// exactly dataLen+parityLen bytes.
var ErrInvalidCodewordLength = errors.New("reedsolomon: codeword has the wrong length")

// ErrUncorrectable indicates more symbols were corrupted than the code's
// parity budget (parityLen/2 errors) can correct.
var ErrUncorrectable = errors.New("reedsolomon: too many errors to correct")

// Encoder computes systematic Reed-Solomon parity symbols: dataLen
// message symbols, unchanged, followed by parityLen check symbols.
type Encoder struct {
	f                  *gf2n.Field
	dataLen, parityLen int
	gen                []gf2n.Element // high-to-low coefficients, gen[0]=1 (monic)
}

// NewEncoder builds an Encoder for dataLen data symbols and parityLen
// parity symbols over f. parityLen must be even to support full
// error (as opposed to erasure-only) correction of up to parityLen/2
// symbols; it need not be for an erasure-only use.
func NewEncoder(dataLen, parityLen int, f *gf2n.Field) (*Encoder, error) {
	if dataLen <= 0 || parityLen <= 0 {
		return nil, errors.New("reedsolomon: dataLen and parityLen must be positive")
	}
	return &Encoder{f: f, dataLen: dataLen, parityLen: parityLen, gen: generatorPoly(f, parityLen)}, nil
}

// generatorPoly builds Π_{i=0}^{nsym-1} (x + α^i) as a high-to-low
// coefficient list, the way
// other_examples/2d1e9d35_AshokShau-qrcode__reedsolomon.go.go's
// GenerateGeneratorPoly does against a hardcoded GF(256) table, here
// driven by gf2n.Element arithmetic instead.
func generatorPoly(f *gf2n.Field, nsym int) []gf2n.Element {
	alpha := f.FromUint64(f.Generator())
	gen := []gf2n.Element{f.One()}
	for i := 0; i < nsym; i++ {
		root := alpha.Pow(uint64(i))
		gen = polyMulHL(f, gen, []gf2n.Element{f.One(), root})
	}
	return gen
}

// polyMulHL multiplies two high-to-low (most significant term first)
// coefficient lists.
func polyMulHL(f *gf2n.Field, p, q []gf2n.Element) []gf2n.Element {
	res := make([]gf2n.Element, len(p)+len(q)-1)
	for i := range res {
		res[i] = f.Zero()
	}
	for i, pv := range p {
		if pv.IsZero() {
			continue
		}
		for j, qv := range q {
			res[i+j] = res[i+j].Add(pv.Mul(qv))
		}
	}
	return res
}

// Encode returns a codeword of dataLen+parityLen bytes: data (padded
// with zeros up to dataLen) followed by the computed parity symbols,
// using the same shift-register polynomial-division technique as
// CalculateECCodewords, generalized to an arbitrary field.
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	if len(data) > e.dataLen {
		return nil, ErrDataTooLong
	}

	remainder := make([]gf2n.Element, e.dataLen+e.parityLen)
	for i := range remainder {
		remainder[i] = e.f.Zero()
	}
	for i, b := range data {
		remainder[i] = e.f.FromUint64(uint64(b))
	}

	for i := 0; i < e.dataLen; i++ {
		coef := remainder[i]
		if coef.IsZero() {
			continue
		}
		for j, gv := range e.gen {
			remainder[i+j] = remainder[i+j].Add(gv.Mul(coef))
		}
	}

	out := make([]byte, e.dataLen+e.parityLen)
	for i, b := range data {
		out[i] = byte(e.f.FromUint64(uint64(b)).Uint64())
	}
	for i := e.dataLen; i < len(remainder); i++ {
		out[i] = byte(remainder[i].Uint64())
	}
	return out, nil
}

// Decoder runs the standard four-stage Reed-Solomon decode pipeline:
// syndrome computation, Berlekamp-Massey error-locator synthesis, Chien
// search for error positions, and Forney correction for error
// magnitudes.
type Decoder struct {
	f                  *gf2n.Field
	dataLen, parityLen int
}

// NewDecoder builds a Decoder matching an Encoder's (dataLen, parityLen, f).
func NewDecoder(dataLen, parityLen int, f *gf2n.Field) (*Decoder, error) {
	if dataLen <= 0 || parityLen <= 0 {
		return nil, errors.New("reedsolomon: dataLen and parityLen must be positive")
	}
	return &Decoder{f: f, dataLen: dataLen, parityLen: parityLen}, nil
}

// Decode corrects up to parityLen/2 symbol errors in codeword and
// returns the recovered dataLen-byte message. It returns ErrUncorrectable
// if the syndromes are inconsistent with any correctable error pattern.
func (d *Decoder) Decode(codeword []byte) ([]byte, error) {
	n := d.dataLen + d.parityLen
	if len(codeword) != n {
		return nil, ErrInvalidCodewordLength
	}
	f := d.f
	alpha := f.FromUint64(f.Generator())

	word := make([]gf2n.Element, n)
	for i, b := range codeword {
		word[i] = f.FromUint64(uint64(b))
	}

	syn := make([]gf2n.Element, d.parityLen)
	allZero := true
	for j := 0; j < d.parityLen; j++ {
		syn[j] = evalHL(f, word, alpha.Pow(uint64(j)))
		if !syn[j].IsZero() {
			allZero = false
		}
	}
	if allZero {
		return bytesOf(word[:d.dataLen]), nil
	}

	lambda := berlekampMassey(f, syn)
	errCount := len(lambda) - 1
	if errCount <= 0 || errCount > d.parityLen/2 {
		return nil, ErrUncorrectable
	}

	omega := polyMulTrunc(f, syn, lambda, d.parityLen)
	lambdaPrime := formalDerivative(lambda)

	type errLoc struct {
		pos  int
		xinv gf2n.Element
	}
	var locs []errLoc
	for idx := 0; idx < n; idx++ {
		power := n - 1 - idx
		xinv := alpha.Pow(uint64(f.Nonzero()) - uint64(power)%f.Nonzero())
		if polyEval(f, lambda, xinv).IsZero() {
			locs = append(locs, errLoc{pos: idx, xinv: xinv})
		}
	}
	if len(locs) != errCount {
		return nil, ErrUncorrectable
	}

	for _, loc := range locs {
		xk, err := loc.xinv.Inverse()
		if err != nil {
			// loc.xinv is alpha^k for some k, never the zero element.
			return nil, ErrUncorrectable
		}
		num := polyEval(f, omega, loc.xinv)
		den := polyEval(f, lambdaPrime, loc.xinv)
		if den.IsZero() {
			return nil, ErrUncorrectable
		}
		magnitude := xk.Mul(num).Div(den)
		word[loc.pos] = word[loc.pos].Add(magnitude)
	}

	// Re-verify: a genuinely corrected codeword has all-zero syndromes.
	for j := 0; j < d.parityLen; j++ {
		if !evalHL(f, word, alpha.Pow(uint64(j))).IsZero() {
			return nil, ErrUncorrectable
		}
	}

	return bytesOf(word[:d.dataLen]), nil
}

func bytesOf(elems []gf2n.Element) []byte {
	out := make([]byte, len(elems))
	for i, e := range elems {
		out[i] = byte(e.Uint64())
	}
	return out
}

// evalHL evaluates a high-to-low (most significant coefficient first)
// polynomial at x via Horner's method.
func evalHL(f *gf2n.Field, p []gf2n.Element, x gf2n.Element) gf2n.Element {
	result := f.Zero()
	for _, c := range p {
		result = result.Mul(x).Add(c)
	}
	return result
}

// polyEval evaluates a low-to-high (constant term first) polynomial at
// x via Horner's method run from the top coefficient down.
func polyEval(f *gf2n.Field, p []gf2n.Element, x gf2n.Element) gf2n.Element {
	result := f.Zero()
	for i := len(p) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p[i])
	}
	return result
}

// berlekampMassey synthesizes the shortest LFSR (error-locator
// polynomial Λ, low-to-high coefficients, Λ[0]=1) that generates the
// syndrome sequence syn, the standard Massey 1969 algorithm.
func berlekampMassey(f *gf2n.Field, syn []gf2n.Element) []gf2n.Element {
	n := len(syn)
	c := make([]gf2n.Element, n+1)
	b := make([]gf2n.Element, n+1)
	for i := range c {
		c[i] = f.Zero()
		b[i] = f.Zero()
	}
	c[0] = f.One()
	b[0] = f.One()

	l := 0
	m := 1
	bCoef := f.One()

	for nIdx := 0; nIdx < n; nIdx++ {
		delta := syn[nIdx]
		for i := 1; i <= l; i++ {
			delta = delta.Add(c[i].Mul(syn[nIdx-i]))
		}
		if delta.IsZero() {
			m++
			continue
		}
		coef := delta.Div(bCoef)
		if 2*l <= nIdx {
			t := append([]gf2n.Element{}, c...)
			for i := 0; i < len(b); i++ {
				idx := i + m
				if idx < len(c) {
					c[idx] = c[idx].Add(coef.Mul(b[i]))
				}
			}
			l = nIdx + 1 - l
			b = t
			bCoef = delta
			m = 1
		} else {
			for i := 0; i < len(b); i++ {
				idx := i + m
				if idx < len(c) {
					c[idx] = c[idx].Add(coef.Mul(b[i]))
				}
			}
			m++
		}
	}
	return c[:l+1]
}

// polyMulTrunc multiplies two low-to-high coefficient lists, truncating
// the result to maxLen terms (used for Ω(x) = S(x)Λ(x) mod x^parityLen).
func polyMulTrunc(f *gf2n.Field, a, b []gf2n.Element, maxLen int) []gf2n.Element {
	res := make([]gf2n.Element, maxLen)
	for i := range res {
		res[i] = f.Zero()
	}
	for i := 0; i < len(a) && i < maxLen; i++ {
		if a[i].IsZero() {
			continue
		}
		for j := 0; j < len(b) && i+j < maxLen; j++ {
			res[i+j] = res[i+j].Add(a[i].Mul(b[j]))
		}
	}
	return res
}

// formalDerivative returns the formal derivative of a low-to-high
// polynomial over GF(2): only odd-degree terms survive, each becoming
// one degree lower.
func formalDerivative(p []gf2n.Element) []gf2n.Element {
	zero := p[0].Sub(p[0]) // the field's zero, same field as p
	if len(p) < 2 {
		return []gf2n.Element{zero}
	}
	out := make([]gf2n.Element, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = zero
		if i%2 == 1 {
			out[i-1] = p[i]
		}
	}
	return out
}

// Preset255_223 returns an Encoder/Decoder pair for the classical
// RS(255,223) configuration over the package's default GF(2^8) field,
// matching spec.md §8 scenario 6.
func Preset255_223() (*Encoder, *Decoder, error) {
	f := gf2n.Default8()
	enc, err := NewEncoder(223, 32, f)
	if err != nil {
		return nil, nil, err
	}
	dec, err := NewDecoder(223, 32, f)
	if err != nil {
		return nil, nil, err
	}
	return enc, dec, nil
}
