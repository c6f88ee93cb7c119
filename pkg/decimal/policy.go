// Package decimal holds the fixed-precision arithmetic policy shared by the
// payment calculator and the comparison engine.
package decimal

import (
	"github.com/shopspring/decimal"
)

// DefaultScale is the number of fractional digits kept on every intermediate result.
const DefaultScale int32 = 20

// MinScale is the coarsest scale at which RateEpsilon/12 stays non-zero.
const MinScale int32 = 10

var (
	// Zero is the additive identity.
	Zero = decimal.Zero
	// One is the multiplicative identity.
	One = decimal.NewFromInt(1)
	// Twelve converts between annual and monthly figures.
	Twelve = decimal.NewFromInt(12)
	// Hundred converts between fractions and percentages.
	Hundred = decimal.NewFromInt(100)
	// RateEpsilon is the threshold below which an annual rate is treated as zero.
	RateEpsilon = decimal.New(1, -7)
)

// Policy performs decimal arithmetic at a fixed scale. Multiplication,
// division and exponentiation round to the scale so that values do not grow
// unbounded digit counts over hundreds of periods. Addition and subtraction
// are exact.
type Policy struct {
	scale int32
}

// NewPolicy returns a policy rounding to the given number of fractional digits.
// A non-positive scale falls back to DefaultScale and a positive scale below
// MinScale is raised to MinScale.
func NewPolicy(scale int32) Policy {
	switch {
	case scale <= 0:
		scale = DefaultScale
	case scale < MinScale:
		scale = MinScale
	}
	return Policy{scale: scale}
}

// DefaultPolicy returns a policy at DefaultScale.
func DefaultPolicy() Policy {
	return NewPolicy(DefaultScale)
}

// Scale reports the number of fractional digits retained.
func (p Policy) Scale() int32 {
	if p.scale <= 0 {
		return DefaultScale
	}
	return p.scale
}

// Round rounds d to the policy scale.
func (p Policy) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(p.Scale())
}

// Mul multiplies a by b and rounds to the policy scale.
func (p Policy) Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(p.Scale())
}

// Div divides a by b and rounds to the policy scale. b must be non-zero.
func (p Policy) Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, p.Scale())
}

// Monthly converts an annual rate to its nominal monthly rate.
func (p Policy) Monthly(annual decimal.Decimal) decimal.Decimal {
	return p.Div(annual, Twelve)
}

// PowInt raises base to an integer power by repeated squaring, rounding
// after every multiplication. Negative exponents return the reciprocal.
func (p Policy) PowInt(base decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		return p.Div(One, p.PowInt(base, -n))
	}
	result := One
	factor := base
	for n > 0 {
		if n&1 == 1 {
			result = p.Mul(result, factor)
		}
		n >>= 1
		if n > 0 {
			factor = p.Mul(factor, factor)
		}
	}
	return result
}

// Percent returns part/whole*100, or zero when whole is zero.
func (p Policy) Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return Zero
	}
	return p.Mul(p.Div(part, whole), Hundred)
}

// IsNearZero reports whether |d| is strictly below eps.
func IsNearZero(d, eps decimal.Decimal) bool {
	return d.Abs().LessThan(eps)
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return Zero
	}
	return d
}
