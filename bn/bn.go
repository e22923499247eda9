// Package bn provides the arbitrary-precision decimal arithmetic used
// throughout the lattice and polyhedron packages.
//
// No arbitrary-precision decimal library is present anywhere in the
// surveyed dependency corpus, and spec.md itself treats this facility as
// "external/bindable" rather than core budget. math/big.Float is that
// external primitive: it already ships with the toolchain, supports
// configurable binary precision, and every operation below is a thin,
// digit-aware wrapper around it plus the handful of transcendental
// functions (cube root, exp, pi) big.Float does not provide natively.
package bn

import (
	"fmt"
	"math"
	"math/big"
)

// guardBits is extra working precision kept under the hood so that
// rounding in intermediate steps doesn't erode the caller's requested
// decimal precision.
const guardBits = 64

// Num is a signed decimal value with an attached decimal precision
// (number of significant digits). Every operation propagates the
// larger of its operands' precisions, per spec.md §4.1.
type Num struct {
	v    *big.Float
	prec int // requested decimal digits (not including guard bits)
}

func bitsForDigits(digits int) uint {
	if digits < 1 {
		digits = 1
	}
	return uint(math.Ceil(float64(digits)*math.Log2(10))) + guardBits
}

func newFloat(prec int) *big.Float {
	f := new(big.Float)
	f.SetPrec(bitsForDigits(prec))
	return f
}

func wrap(v *big.Float, prec int) Num {
	return Num{v: v, prec: prec}
}

func maxPrec(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FromString constructs a Num from a decimal string at the given digit
// precision. The canonical interchange form is the decimal string.
func FromString(s string, precision int) (Num, error) {
	f := newFloat(precision)
	_, ok := f.SetString(s)
	if !ok {
		return Num{}, fmt.Errorf("bn: invalid decimal string %q", s)
	}
	return wrap(f, precision), nil
}

// MustFromString is FromString but panics on error; used for compiled-in
// algebraic constants where the string is known good at call-site.
func MustFromString(s string, precision int) Num {
	n, err := FromString(s, precision)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt constructs a Num from an integer at the given digit precision.
func FromInt(i int64, precision int) Num {
	f := newFloat(precision)
	f.SetInt64(i)
	return wrap(f, precision)
}

// Precision returns the number of significant decimal digits this Num
// carries.
func (a Num) Precision() int { return a.prec }

func (a Num) ensure() *big.Float {
	if a.v == nil {
		return new(big.Float)
	}
	return a.v
}

// Add returns a+b. Result precision is max(a.Precision(), b.Precision()).
func (a Num) Add(b Num) Num {
	p := maxPrec(a.prec, b.prec)
	r := newFloat(p)
	r.Add(a.ensure(), b.ensure())
	return wrap(r, p)
}

// Sub returns a-b.
func (a Num) Sub(b Num) Num {
	p := maxPrec(a.prec, b.prec)
	r := newFloat(p)
	r.Sub(a.ensure(), b.ensure())
	return wrap(r, p)
}

// Mul returns a*b.
func (a Num) Mul(b Num) Num {
	p := maxPrec(a.prec, b.prec)
	r := newFloat(p)
	r.Mul(a.ensure(), b.ensure())
	return wrap(r, p)
}

// ErrDivByZero is returned by Quo when the divisor is zero.
var ErrDivByZero = fmt.Errorf("bn: division by zero")

// ErrNegativeRoot is returned by Sqrt when the operand is negative.
var ErrNegativeRoot = fmt.Errorf("bn: square root of negative number")

// Quo returns a/b, or ErrDivByZero if b is zero.
func (a Num) Quo(b Num) (Num, error) {
	if b.ensure().Sign() == 0 {
		return Num{}, ErrDivByZero
	}
	p := maxPrec(a.prec, b.prec)
	r := newFloat(p)
	r.Quo(a.ensure(), b.ensure())
	return wrap(r, p), nil
}

// MustQuo is Quo but panics on error.
func (a Num) MustQuo(b Num) Num {
	r, err := a.Quo(b)
	if err != nil {
		panic(err)
	}
	return r
}

// Neg returns -a.
func (a Num) Neg() Num {
	r := newFloat(a.prec)
	r.Neg(a.ensure())
	return wrap(r, a.prec)
}

// Abs returns |a|.
func (a Num) Abs() Num {
	r := newFloat(a.prec)
	r.Abs(a.ensure())
	return wrap(r, a.prec)
}

// Sqrt returns sqrt(a), or ErrNegativeRoot if a < 0.
func (a Num) Sqrt() (Num, error) {
	if a.ensure().Sign() < 0 {
		return Num{}, ErrNegativeRoot
	}
	r := newFloat(a.prec)
	r.Sqrt(a.ensure())
	return wrap(r, a.prec), nil
}

// MustSqrt is Sqrt but panics on error; used for compile-time-known
// non-negative algebraic constants.
func (a Num) MustSqrt() Num {
	r, err := a.Sqrt()
	if err != nil {
		panic(err)
	}
	return r
}

// Cbrt returns the real cube root of a (defined for negative a too),
// via Newton's method on y^3 - a = 0.
func (a Num) Cbrt() Num {
	if a.ensure().Sign() == 0 {
		return FromInt(0, a.prec)
	}
	prec := bitsForDigits(a.prec)
	x := a.ensure()

	af, _ := x.Float64()
	sign := 1.0
	if af < 0 {
		sign = -1.0
		af = -af
	}
	guess := sign * math.Cbrt(af)
	if math.IsInf(guess, 0) || guess == 0 {
		guess = 1
	}

	y := new(big.Float).SetPrec(prec).SetFloat64(guess)
	three := new(big.Float).SetPrec(prec).SetInt64(3)
	two := new(big.Float).SetPrec(prec).SetInt64(2)

	// Newton update: y = (2y + a/y^2) / 3
	for i := 0; i < 200; i++ {
		y2 := new(big.Float).SetPrec(prec).Mul(y, y)
		if y2.Sign() == 0 {
			break
		}
		aOverY2 := new(big.Float).SetPrec(prec).Quo(x, y2)
		twoY := new(big.Float).SetPrec(prec).Mul(two, y)
		sum := new(big.Float).SetPrec(prec).Add(twoY, aOverY2)
		next := new(big.Float).SetPrec(prec).Quo(sum, three)

		diff := new(big.Float).SetPrec(prec).Sub(next, y)
		y = next
		if diff.Sign() == 0 {
			break
		}
		// Convergence check: stop once the update is far beyond
		// requested precision.
		exp := diff.MantExp(nil)
		yexp := y.MantExp(nil)
		if yexp-exp > int(prec) {
			break
		}
	}
	return wrap(y, a.prec)
}

// PowInt returns a^n for a small non-negative or negative integer
// exponent n, via repeated squaring.
func (a Num) PowInt(n int) Num {
	if n == 0 {
		return FromInt(1, a.prec)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := FromInt(1, a.prec)
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		one := FromInt(1, a.prec)
		return one.MustQuo(result)
	}
	return result
}

// Ln returns the natural logarithm of a (a must be positive). Computed
// via argument reduction (a = m * 2^k, ln(a) = ln(m) + k*ln(2)) followed
// by the atanh-based series ln(x) = 2*atanh((x-1)/(x+1)), which converges
// quickly once x is reduced close to 1.
func (a Num) Ln() (Num, error) {
	if a.ensure().Sign() <= 0 {
		return Num{}, fmt.Errorf("bn: logarithm of non-positive number")
	}
	prec := bitsForDigits(a.prec)
	x := new(big.Float).SetPrec(prec).Copy(a.ensure())

	// Reduce x into [0.5, 2) by tracking powers of two.
	k := 0
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	for x.Cmp(two) >= 0 {
		x.Quo(x, two)
		k++
	}
	for x.Cmp(half) < 0 {
		x.Mul(x, two)
		k--
	}

	one := new(big.Float).SetPrec(prec).SetInt64(1)
	num := new(big.Float).SetPrec(prec).Sub(x, one)
	den := new(big.Float).SetPrec(prec).Add(x, one)
	t := new(big.Float).SetPrec(prec).Quo(num, den)
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)

	sum := new(big.Float).SetPrec(prec).Copy(t)
	term := new(big.Float).SetPrec(prec).Copy(t)
	maxTerms := int(prec) + 16
	for i := 1; i < maxTerms; i++ {
		term.Mul(term, t2)
		denom := new(big.Float).SetPrec(prec).SetInt64(int64(2*i + 1))
		add := new(big.Float).SetPrec(prec).Quo(term, denom)
		sum.Add(sum, add)
		if add.MantExp(nil) < sum.MantExp(nil)-int(prec) {
			break
		}
	}
	sum.Mul(sum, two)

	ln2 := ln2At(prec)
	kTerm := new(big.Float).SetPrec(prec).SetInt64(int64(k))
	kTerm.Mul(kTerm, ln2)
	sum.Add(sum, kTerm)

	return wrap(sum, a.prec), nil
}

// ln2At computes ln(2) at the given binary precision via the same
// atanh series used by Ln, seeded directly (2 = 1/0.5, already reduced).
func ln2At(prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	three := new(big.Float).SetPrec(prec).SetInt64(3)
	t := new(big.Float).SetPrec(prec).Quo(one, three) // atanh(1/3) branch: ln2 = 2*atanh(1/3)... see below
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)
	sum := new(big.Float).SetPrec(prec).Copy(t)
	term := new(big.Float).SetPrec(prec).Copy(t)
	maxTerms := int(prec) + 16
	for i := 1; i < maxTerms; i++ {
		term.Mul(term, t2)
		denom := new(big.Float).SetPrec(prec).SetInt64(int64(2*i + 1))
		add := new(big.Float).SetPrec(prec).Quo(term, denom)
		sum.Add(sum, add)
		if add.MantExp(nil) < sum.MantExp(nil)-int(prec) {
			break
		}
	}
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	sum.Mul(sum, two)
	return sum
}

// Exp returns e^a via argument reduction (a = r + m*ln2, exponentiate the
// small remainder with a Taylor series, then multiply by 2^m).
func (a Num) Exp() Num {
	prec := bitsForDigits(a.prec)
	x := new(big.Float).SetPrec(prec).Copy(a.ensure())

	ln2 := ln2At(prec)
	mFloat := new(big.Float).SetPrec(prec).Quo(x, ln2)
	mTrunc := new(big.Int)
	mFloat.Int(mTrunc) // truncates toward zero
	mInt := mTrunc.Int64()
	truncF := new(big.Float).SetPrec(prec).SetInt64(mInt)
	if mFloat.Cmp(truncF) < 0 {
		mInt--
	}

	r := new(big.Float).SetPrec(prec).Sub(x, new(big.Float).SetPrec(prec).Mul(ln2, new(big.Float).SetPrec(prec).SetInt64(mInt)))

	// Taylor series for e^r, r small.
	sum := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	maxTerms := int(prec) + 16
	for i := 1; i < maxTerms; i++ {
		term.Mul(term, r)
		iF := new(big.Float).SetPrec(prec).SetInt64(int64(i))
		term.Quo(term, iF)
		sum.Add(sum, term)
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(prec) {
			break
		}
	}

	// Multiply by 2^m.
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	pow2 := new(big.Float).SetPrec(prec).SetInt64(1)
	n := mInt
	neg := n < 0
	if neg {
		n = -n
	}
	b := new(big.Float).SetPrec(prec).Copy(two)
	for n > 0 {
		if n&1 == 1 {
			pow2.Mul(pow2, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if neg {
		pow2.Quo(new(big.Float).SetPrec(prec).SetInt64(1), pow2)
	}
	sum.Mul(sum, pow2)

	return wrap(sum, a.prec)
}

// Pow returns a^y for a BN exponent y, via exp(y * ln(a)). a must be
// positive (the polyhedron definitions only ever raise positive
// algebraic constants to rational/BN powers, so this restriction is not
// a practical limitation).
func (a Num) Pow(y Num) (Num, error) {
	lnA, err := a.Ln()
	if err != nil {
		return Num{}, err
	}
	e := lnA.Mul(y)
	return e.Exp(), nil
}

// Floor returns the greatest integer <= a, as a Num.
func (a Num) Floor() Num {
	prec := bitsForDigits(a.prec)
	i := new(big.Int)
	a.ensure().Int(i) // truncates toward zero
	f := new(big.Float).SetPrec(prec).SetInt(i)
	if a.ensure().Sign() < 0 && f.Cmp(a.ensure()) != 0 {
		f.Sub(f, new(big.Float).SetPrec(prec).SetInt64(1))
	}
	return wrap(f, a.prec)
}

// Mod1 returns a mod 1, i.e. a - floor(a), always in [0, 1).
func (a Num) Mod1() Num {
	return a.Sub(a.Floor())
}

// Cmp is a three-way comparison: -1 if a<b, 0 if a==b, +1 if a>b.
func (a Num) Cmp(b Num) int {
	return a.ensure().Cmp(b.ensure())
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Num) Sign() int {
	return a.ensure().Sign()
}

// Pi returns pi computed to the given decimal digit precision, via the
// Gauss-Legendre arithmetic-geometric-mean algorithm (quadratic
// convergence, the standard approach for computing pi to arbitrary
// big.Float precision).
func Pi(precision int) Num {
	prec := bitsForDigits(precision)
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	four := new(big.Float).SetPrec(prec).SetInt64(4)

	a := new(big.Float).SetPrec(prec).Copy(one)
	b := new(big.Float).SetPrec(prec).Quo(one, sqrtFloat(two, prec))
	t := new(big.Float).SetPrec(prec).Quo(one, four)
	p := new(big.Float).SetPrec(prec).Copy(one)

	iterations := int(math.Ceil(math.Log2(float64(precision)+2))) + 4
	for i := 0; i < iterations; i++ {
		aNext := new(big.Float).SetPrec(prec).Add(a, b)
		aNext.Quo(aNext, two)

		ab := new(big.Float).SetPrec(prec).Mul(a, b)
		bNext := sqrtFloat(ab, prec)

		diff := new(big.Float).SetPrec(prec).Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, p)
		t.Sub(t, diff)

		a = aNext
		b = bNext
		p.Mul(p, two)
	}

	sum := new(big.Float).SetPrec(prec).Add(a, b)
	sum.Mul(sum, sum)
	four_t := new(big.Float).SetPrec(prec).Mul(four, t)
	result := new(big.Float).SetPrec(prec).Quo(sum, four_t)

	return wrap(result, precision)
}

func sqrtFloat(x *big.Float, prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	r.Sqrt(x)
	return r
}

// Float64 returns the nearest float64 to a, for use only by machine-
// precision fast paths (e.g. the containment pre-filter in package
// shape) that never affect correctness, only performance.
func (a Num) Float64() float64 {
	f, _ := a.ensure().Float64()
	return f
}

// String serializes a lossless (up to the attached precision) decimal
// string, with no scientific notation, matching the mmCIF writer's
// requirement that cartesian coordinates have no exponent form.
func (a Num) String() string {
	digits := a.prec
	if digits < 1 {
		digits = 1
	}
	return a.ensure().Text('f', digits)
}
