package decimal

import (
	"math"
	"strings"
)

// Kind distinguishes finite values from the two infinities.
type Kind int

// Value kinds.
const (
	Finite Kind = iota
	PositiveInfinity
	NegativeInfinity
)

func (k Kind) String() string {
	switch k {
	case Finite:
		return "finite"
	case PositiveInfinity:
		return "+inf"
	case NegativeInfinity:
		return "-inf"
	}

	return "unknown"
}

// Value is either a finite Decimal or one of the infinities. Arithmetic is
// only defined on the finite Decimal; see Decimal.
type Value struct {
	kind Kind
	dec  *Decimal
}

// FiniteValue wraps d.
func FiniteValue(d *Decimal) Value {
	return Value{kind: Finite, dec: d}
}

// Inf returns positive infinity if sign >= 0 and negative infinity otherwise.
func Inf(sign int) Value {
	if sign < 0 {
		return Value{kind: NegativeInfinity}
	}

	return Value{kind: PositiveInfinity}
}

// ParseValue is like Parse but also accepts "inf" and "-inf" in any case.
func ParseValue(s string) (_ Value, err error) {
	defer Error.WrapP(&err)

	switch strings.ToLower(s) {
	case "inf":
		return Inf(1), nil
	case "-inf":
		return Inf(-1), nil
	}

	d, err := parse(s)
	if err != nil {
		return Value{}, err
	}

	return FiniteValue(d), nil
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsInf reports whether v is either infinity.
func (v Value) IsInf() bool {
	return v.kind != Finite
}

// Decimal returns the finite value. ok is false for the infinities.
func (v Value) Decimal() (d *Decimal, ok bool) {
	if v.kind != Finite {
		return nil, false
	}

	if v.dec == nil {
		return &Decimal{}, true
	}

	return v.dec, true
}

// rank orders kinds: -inf < finite < +inf.
func (v Value) rank() int {
	switch v.kind {
	case NegativeInfinity:
		return -1
	case PositiveInfinity:
		return 1
	}

	return 0
}

// Cmp returns -1, 0 or +1. Infinities of the same sign compare equal. Two
// finite values compare with Decimal.Cmp and share its denominator caveat.
func (v Value) Cmp(o Value) int {
	a, b := v.rank(), o.rank()

	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a != 0:
		return 0
	}

	x, _ := v.Decimal()
	y, _ := o.Decimal()

	return x.Cmp(y)
}

// Gt reports whether v > o.
func (v Value) Gt(o Value) bool { return v.Cmp(o) > 0 }

// Gte reports whether v >= o.
func (v Value) Gte(o Value) bool { return v.Cmp(o) >= 0 }

// Lt reports whether v < o.
func (v Value) Lt(o Value) bool { return o.Gt(v) }

// Lte reports whether v <= o.
func (v Value) Lte(o Value) bool { return o.Gte(v) }

// Eq reports whether v and o are equal.
func (v Value) Eq(o Value) bool { return v.Cmp(o) == 0 }

// Float64 returns math.Inf for the infinities and Decimal.Float64 otherwise.
func (v Value) Float64() float64 {
	switch v.kind {
	case PositiveInfinity:
		return math.Inf(1)
	case NegativeInfinity:
		return math.Inf(-1)
	}

	d, _ := v.Decimal()

	return d.Float64()
}

func (v Value) String() string {
	switch v.kind {
	case PositiveInfinity:
		return "inf"
	case NegativeInfinity:
		return "-inf"
	}

	d, _ := v.Decimal()

	return d.String()
}
