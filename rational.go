package polyroots

import (
	"fmt"
	"math"
	"math/big"
)

// rat is an exact fraction with 32-bit numerator and denominator, stored in
// lowest terms with a positive denominator. The symmetric numerator range
// [-MaxInt32, MaxInt32] keeps negation total.
//
// All arithmetic is checked: results that do not fit the width surface
// ErrExactnessOverflow instead of wrapping.
type rat struct {
	num, den int32
}

var (
	ratZero = rat{num: 0, den: 1}
	ratOne  = rat{num: 1, den: 1}
)

// newRat normalizes num/den into a rat, checking the width bound.
// Intermediate products of two rats always fit an int64, so callers pass
// int64 and the range check happens here, after reduction.
func newRat(num, den int64) (rat, error) {
	if den == 0 {
		panic("polyroots: rational with zero denominator")
	}
	if num == 0 {
		return ratZero, nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcdInt64(abs64(num), den)
	num /= g
	den /= g
	if num < -math.MaxInt32 || num > math.MaxInt32 || den > math.MaxInt32 {
		return rat{}, fmt.Errorf("%w: %d/%d", ErrExactnessOverflow, num, den)
	}
	return rat{num: int32(num), den: int32(den)}, nil
}

// ratFromFloat decomposes a finite float64 into an exact fraction. Values
// whose binary expansion needs more than 32 bits on either side are an
// ErrExactnessOverflow, never silently truncated.
func ratFromFloat(v float64) (rat, error) {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return rat{}, fmt.Errorf("%w: %v is not finite", ErrMalformedInput, v)
	}
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return rat{}, fmt.Errorf("%w: %v", ErrExactnessOverflow, v)
	}
	return newRat(r.Num().Int64(), r.Denom().Int64())
}

func (a rat) float64() float64 { return float64(a.num) / float64(a.den) }

func (a rat) isZero() bool { return a.num == 0 }

func (a rat) sign() int {
	switch {
	case a.num < 0:
		return -1
	case a.num > 0:
		return 1
	}
	return 0
}

func (a rat) neg() rat { return rat{num: -a.num, den: a.den} }

func (a rat) add(b rat) (rat, error) {
	return newRat(int64(a.num)*int64(b.den)+int64(b.num)*int64(a.den), int64(a.den)*int64(b.den))
}

func (a rat) sub(b rat) (rat, error) {
	return newRat(int64(a.num)*int64(b.den)-int64(b.num)*int64(a.den), int64(a.den)*int64(b.den))
}

func (a rat) mul(b rat) (rat, error) {
	return newRat(int64(a.num)*int64(b.num), int64(a.den)*int64(b.den))
}

func (a rat) div(b rat) (rat, error) {
	if b.isZero() {
		panic("polyroots: rational division by zero")
	}
	return newRat(int64(a.num)*int64(b.den), int64(a.den)*int64(b.num))
}

func (a rat) cmp(b rat) int {
	l := int64(a.num) * int64(b.den)
	r := int64(b.num) * int64(a.den)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

// mod returns the remainder a - trunc(a/b)*b, matching integer-style
// remainder semantics lifted to fractions.
func (a rat) mod(b rat) (rat, error) {
	q, err := a.div(b)
	if err != nil {
		return rat{}, err
	}
	t, err := newRat(int64(q.num)/int64(q.den), 1)
	if err != nil {
		return rat{}, err
	}
	tb, err := t.mul(b)
	if err != nil {
		return rat{}, err
	}
	return a.sub(tb)
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// toRats converts every coefficient of p through the bridge.
func toRats(p Polynomial) ([]rat, error) {
	out := make([]rat, len(p.coeffs))
	for i, c := range p.coeffs {
		r, err := ratFromFloat(c)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// fromRats converts an exact coefficient sequence back to a canonical
// float64 Polynomial. Every rat is exactly representable as a float64
// quotient of two 32-bit integers' division result within rounding, which
// is the externally visible precision.
func fromRats(rs []rat) Polynomial {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.float64()
	}
	return newPoly(out)
}

// trimRats drops exact zero leading coefficients.
func trimRats(rs []rat) []rat {
	n := len(rs)
	for n > 0 && rs[n-1].isZero() {
		n--
	}
	return rs[:n]
}
