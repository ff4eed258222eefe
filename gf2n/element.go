package gf2n

// Element is a value in a particular Field: a raw word paired with the
// field that gives it meaning. Elements are immutable; every operation
// returns a new Element rather than mutating its receiver, so Elements
// are safe to share and compare across goroutines (spec.md §3
// "Lifecycle"). Two Elements only compare meaningfully against the same
// *Field — Add/Mul/etc. panic if their operands' fields differ.
type Element struct {
	word  uint64
	field *Field
}

// FromUint64 wraps a raw word as an Element of f, masking it to f's
// width. It does not validate that word is "in range" beyond that mask,
// since every value 0..2^n-1 is a valid field element.
func (f *Field) FromUint64(word uint64) Element {
	return Element{word: word & widthMask(f.n), field: f}
}

// Zero returns the additive identity of f.
func (f *Field) Zero() Element { return Element{field: f} }

// One returns the multiplicative identity of f.
func (f *Field) One() Element { return Element{word: 1, field: f} }

// Uint64 returns the element's raw word.
func (e Element) Uint64() uint64 { return e.word }

// Field returns the field e belongs to.
func (e Element) Field() *Field { return e.field }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.word == 0 }

func (e Element) mustMatch(o Element) {
	if e.field != o.field {
		panic("gf2n: operands belong to different fields")
	}
}

// Add returns e+o. GF(2^n) addition is xor; it is its own inverse, so
// Sub is an alias for Add.
func (e Element) Add(o Element) Element {
	e.mustMatch(o)
	return Element{word: e.word ^ o.word, field: e.field}
}

// Sub returns e-o. In characteristic 2, subtraction and addition
// coincide.
func (e Element) Sub(o Element) Element { return e.Add(o) }

// Mul returns e*o reduced modulo the field's irreducible polynomial,
// computed by whichever strategy the field resolved to at construction.
func (e Element) Mul(o Element) Element {
	e.mustMatch(o)
	return Element{word: e.field.mul(e.field, e.word, o.word), field: e.field}
}

// Pow returns e raised to exp via square-and-multiply, using the same
// multiplication strategy as Mul.
func (e Element) Pow(exp uint64) Element {
	f := e.field
	result := f.One()
	base := e
	for n := exp; n != 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// Inverse returns e^-1, or ErrDivByZero if e is the zero element, which
// has none.
//
// Fields that resolved to the table strategy look the inverse up as
// exp[(Nonzero - log[e]) mod Nonzero]. Every other field computes it as
// e^(2^n-2) via the observation that e^(2^n-1)=1 for all nonzero e
// (Fermat's little theorem for finite fields), so e^(2^n-2) = e^-1,
// using the same Pow machinery as elsewhere. Constant-time fields always
// resolve to Barret, so they take this Pow-based path, built only from
// the constant-time Barret multiplier — spec.md §5's requirement that
// inversion not add its own timing channel.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrDivByZero
	}
	f := e.field
	if f.strategy == StrategyTable {
		return Element{word: f.exp[(f.nonzero-uint64(f.log[e.word]))%f.nonzero], field: f}, nil
	}
	return e.Pow(f.nonzero - 1), nil
}

// mustInverse is Inverse without the fallible return, for call sites
// that have already established e is nonzero as a class invariant (a
// generator, a checked pivot) rather than as ordinary runtime input;
// spec.md §7 reserves panics for exactly that case.
func (e Element) mustInverse() Element {
	inv, err := e.Inverse()
	if err != nil {
		panic("gf2n: zero element has no multiplicative inverse")
	}
	return inv
}

// Div returns e/o. It panics if o is zero; use CheckedDiv to get an
// error instead.
func (e Element) Div(o Element) Element {
	e.mustMatch(o)
	return e.Mul(o.mustInverse())
}

// CheckedDiv returns e/o, or ErrDivByZero if o is the zero element.
func (e Element) CheckedDiv(o Element) (Element, error) {
	e.mustMatch(o)
	if o.IsZero() {
		return Element{}, ErrDivByZero
	}
	return e.Div(o), nil
}

// Equal reports whether e and o hold the same word in the same field.
func (e Element) Equal(o Element) bool {
	return e.field == o.field && e.word == o.word
}

// Cmp orders elements by raw word value within the same field, for
// callers that need a total order (e.g. sorting shares); it carries no
// field-theoretic meaning.
func (e Element) Cmp(o Element) int {
	e.mustMatch(o)
	switch {
	case e.word < o.word:
		return -1
	case e.word > o.word:
		return 1
	default:
		return 0
	}
}

// String formats e as a hex word, e.g. "0x1d".
func (e Element) String() string {
	return "0x" + itoaHex(e.word)
}

func itoaHex(v uint64) string {
	if v == 0 {
		return "0"
	}
	const digits = "0123456789abcdef"
	var buf [16]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[i:])
}
