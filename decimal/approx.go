package decimal

import "math/big"

// Default iteration counts for the series approximations. They trade accuracy
// for cost and are not adjusted to the input; results far from the series'
// comfortable range lose accuracy silently.
const (
	DefaultLnIterations  = 10
	DefaultExpIterations = 36
	DefaultPowIterations = 34
)

// Ln approximates the natural logarithm with DefaultLnIterations.
func (d *Decimal) Ln() (*Decimal, error) {
	return d.LnN(DefaultLnIterations)
}

// LnN approximates the natural logarithm using the area hyperbolic tangent
// series
//
//	ln(x) = 2 * sum(z^k / k) for k = 1, 3, 5, ... < it, z = (x-1)/(x+1)
//
// The series converges slowly as x moves away from 1. An iteration count of
// zero or less selects the default.
func (d *Decimal) LnN(it int) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	return d.ln(it)
}

func (d *Decimal) ln(it int) (*Decimal, error) {
	if it <= 0 {
		it = DefaultLnIterations
	}

	unit := FromInt64(1)

	z, err := d.Sub(unit).div(d.Add(unit))
	if err != nil {
		return nil, err
	}
	z = z.Reduce()

	z2 := z.Mul(z).Reduce()
	pw := z
	sum := FromInt64(0)

	for k := 1; k < it; k += 2 {
		term := frac(pw.Num(), new(big.Int).Mul(pw.d(), big.NewInt(int64(k))))
		sum = sum.Add(term).Reduce()
		pw = pw.Mul(z2).Reduce()
	}

	return sum.Mul(FromInt64(2)).Reduce(), nil
}

// Exp approximates e^d with DefaultExpIterations.
func (d *Decimal) Exp() *Decimal {
	return d.ExpN(DefaultExpIterations)
}

// ExpN approximates e^d with the first it terms of the Taylor series
//
//	e^y = sum(y^k / k!) for k = 0 .. it-1
//
// An iteration count of zero or less selects the default.
func (d *Decimal) ExpN(it int) *Decimal {
	if it <= 0 {
		it = DefaultExpIterations
	}

	return taylorExp(d.Reduce(), it)
}

// taylorExp sums it terms of the exponential series. The factorial is carried
// from one term to the next instead of being recomputed.
func taylorExp(y *Decimal, it int) *Decimal {
	result := FromInt64(1)
	pw := y
	fact := big.NewInt(1)

	for k := 1; k < it; k++ {
		fact.Mul(fact, big.NewInt(int64(k)))

		term := frac(pw.Num(), new(big.Int).Mul(pw.d(), fact))
		result = result.Add(term).Reduce()
		pw = pw.Mul(y).Reduce()
	}

	return result
}

// Pow approximates d^e with DefaultPowIterations.
func (d *Decimal) Pow(e *Decimal) (*Decimal, error) {
	return d.PowN(e, DefaultPowIterations)
}

// PowN approximates d^e by splitting the exponent into its integer part w
// and fractional remainder r:
//
//	d^e = d^w * e^(r * ln(d))
//
// d^w is exact (see IntPow); the second factor uses it terms of the Taylor
// series and the default logarithm. When r is zero the result is exact and no
// logarithm is taken. An iteration count of zero or less selects the default.
func (d *Decimal) PowN(e *Decimal, it int) (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if it <= 0 {
		it = DefaultPowIterations
	}

	w := e.Int()
	r := frac(new(big.Int).Sub(e.n(), new(big.Int).Mul(w, e.d())), e.Den())

	whole, err := d.intPow(w)
	if err != nil {
		return nil, err
	}

	if r.n().Sign() == 0 {
		return whole.Reduce(), nil
	}

	l, err := d.ln(DefaultLnIterations)
	if err != nil {
		return nil, err
	}

	part := taylorExp(l.Mul(r).Reduce(), it)

	return whole.Mul(part).Reduce(), nil
}

// Fact returns d! for a whole number d >= 0, following n! = n * (n-1)! with
// 0! = 1. Fractional and negative values are a PreconditionError.
func (d *Decimal) Fact() (_ *Decimal, err error) {
	defer Error.WrapP(&err)

	if !d.IsInt() {
		return nil, PreconditionError.New("factorial of non-integer %s", d)
	}

	n := d.Int()

	switch {
	case n.Sign() < 0:
		return nil, PreconditionError.New("factorial of negative %s", n)
	case !n.IsInt64():
		return nil, PreconditionError.New("factorial argument too large: %s", n)
	}

	return frac(new(big.Int).MulRange(1, n.Int64()), big.NewInt(1)), nil
}
