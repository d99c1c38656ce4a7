package decimal

import (
	"math/big"

	"github.com/calebcase/bigdec/integer"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// Decimal is an exact rational number num/den.
//
// Values are immutable: every operation returns a new Decimal. Results are
// not reduced automatically; call Reduce to keep long computations from
// growing without bound. The zero value is 0/1.
type Decimal struct {
	num *big.Int
	den *big.Int
}

// New returns num/den. The arguments are copied. A zero denominator is an
// error. The sign is kept where the caller put it, so a negative denominator
// is allowed (see Canonical).
func New(num, den *big.Int) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if den.Sign() == 0 {
		return nil, DivisionByZero.New("zero denominator: %s/%s", num, den)
	}

	return &Decimal{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}, nil
}

// NewFromInt64 returns num/den.
func NewFromInt64(num, den int64) (*Decimal, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromInt64 returns i/1.
func FromInt64(i int64) *Decimal {
	return frac(big.NewInt(i), big.NewInt(1))
}

// frac takes ownership of num and den, which must be non-zero.
func frac(num, den *big.Int) *Decimal {
	return &Decimal{num: num, den: den}
}

func (d *Decimal) n() *big.Int {
	if d.num == nil {
		return zero
	}

	return d.num
}

func (d *Decimal) d() *big.Int {
	if d.den == nil {
		return one
	}

	return d.den
}

// Num returns a copy of the numerator.
func (d *Decimal) Num() *big.Int {
	return new(big.Int).Set(d.n())
}

// Den returns a copy of the denominator.
func (d *Decimal) Den() *big.Int {
	return new(big.Int).Set(d.d())
}

// Sign returns -1, 0 or +1 according to the sign of the quotient.
func (d *Decimal) Sign() int {
	return d.n().Sign() * d.d().Sign()
}

// IsInt reports whether the value is a whole number.
func (d *Decimal) IsInt() bool {
	return new(big.Int).Rem(d.n(), d.d()).Sign() == 0
}

// Reduce returns the value divided through by gcd(num, den). Sign placement
// is unchanged. Reducing a reduced value returns an identical pair.
func (d *Decimal) Reduce() *Decimal {
	g, err := integer.GCD(d.n(), d.d())
	if err != nil {
		// Only gcd(0, 0) fails and the denominator is never zero.
		panic(err)
	}

	return frac(
		new(big.Int).Quo(d.n(), g),
		new(big.Int).Quo(d.d(), g),
	)
}

// Canonical returns the reduced value with a positive denominator. Comparison
// and Abs assume this form.
func (d *Decimal) Canonical() *Decimal {
	r := d.Reduce()
	if r.den.Sign() < 0 {
		r.num.Neg(r.num)
		r.den.Neg(r.den)
	}

	return r
}

// Add returns d + o.
//
//	a/d + A/D = (aD + Ad) / dD
func (d *Decimal) Add(o *Decimal) *Decimal {
	num := new(big.Int).Mul(d.n(), o.d())
	num.Add(num, new(big.Int).Mul(o.n(), d.d()))

	return frac(num, new(big.Int).Mul(d.d(), o.d()))
}

// Sub returns d - o.
//
//	a/d - A/D = (aD - Ad) / dD
func (d *Decimal) Sub(o *Decimal) *Decimal {
	num := new(big.Int).Mul(d.n(), o.d())
	num.Sub(num, new(big.Int).Mul(o.n(), d.d()))

	return frac(num, new(big.Int).Mul(d.d(), o.d()))
}

// Mul returns d * o.
//
//	a/d * A/D = aA / dD
func (d *Decimal) Mul(o *Decimal) *Decimal {
	return frac(
		new(big.Int).Mul(d.n(), o.n()),
		new(big.Int).Mul(d.d(), o.d()),
	)
}

// Div returns d / o. Dividing by a zero numerator is an error.
//
//	(a/d) / (A/D) = aD / Ad
func (d *Decimal) Div(o *Decimal) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	return d.div(o)
}

func (d *Decimal) div(o *Decimal) (*Decimal, error) {
	if o.n().Sign() == 0 {
		return nil, DivisionByZero.New("%s / %s", d, o)
	}

	return frac(
		new(big.Int).Mul(d.n(), o.d()),
		new(big.Int).Mul(o.n(), d.d()),
	), nil
}

// Neg returns -d. The sign is applied to the numerator.
func (d *Decimal) Neg() *Decimal {
	return frac(new(big.Int).Neg(d.n()), d.Den())
}

// Abs returns |num| / |den|.
//
// The absolute value is taken of each component independently and the result
// is not reduced. This per-component form is kept as is, like the
// denominator caveat on Cmp; use Canonical first for a normalized result.
func (d *Decimal) Abs() *Decimal {
	return frac(new(big.Int).Abs(d.n()), new(big.Int).Abs(d.d()))
}

// cross returns aD and Ad.
func (d *Decimal) cross(o *Decimal) (l, r *big.Int) {
	return new(big.Int).Mul(d.n(), o.d()), new(big.Int).Mul(o.n(), d.d())
}

// Cmp compares aD with Ad and returns -1, 0 or +1.
//
// The comparisons are only correct when both denominators are positive; a
// negative denominator flips the result. Use Canonical first when the sign
// placement is unknown.
func (d *Decimal) Cmp(o *Decimal) int {
	l, r := d.cross(o)

	return l.Cmp(r)
}

// Gt reports whether d > o (aD > Ad).
func (d *Decimal) Gt(o *Decimal) bool {
	return d.Cmp(o) > 0
}

// Gte reports whether d >= o (aD >= Ad).
func (d *Decimal) Gte(o *Decimal) bool {
	return d.Cmp(o) >= 0
}

// Lt reports whether d < o, as o > d.
func (d *Decimal) Lt(o *Decimal) bool {
	return o.Gt(d)
}

// Lte reports whether d <= o, as o >= d.
func (d *Decimal) Lte(o *Decimal) bool {
	return o.Gte(d)
}

// Eq reports whether d and o are the same number (aD == Ad).
func (d *Decimal) Eq(o *Decimal) bool {
	return d.Cmp(o) == 0
}

// IntPow raises num and den to the integer part of e (truncated toward zero).
// Any fractional part of e is discarded; Pow handles it. A negative exponent
// inverts the result.
func (d *Decimal) IntPow(e *Decimal) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	return d.intPow(e.Int())
}

// intPow takes ownership of k.
func (d *Decimal) intPow(k *big.Int) (*Decimal, error) {
	if k.Sign() >= 0 {
		return frac(
			new(big.Int).Exp(d.n(), k, nil),
			new(big.Int).Exp(d.d(), k, nil),
		), nil
	}

	if d.n().Sign() == 0 {
		return nil, DivisionByZero.New("%s ^ %s", d, k)
	}

	k.Neg(k)

	return frac(
		new(big.Int).Exp(d.d(), k, nil),
		new(big.Int).Exp(d.n(), k, nil),
	), nil
}
