package polyroots

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxGrade caps the degree of a Polynomial.
const MaxGrade = math.MaxInt32 - 1

// Polynomial is a dense univariate polynomial: coefficient i multiplies x^i.
// The empty coefficient sequence denotes the zero polynomial (grade -1).
// Values are immutable; every operation returns a fresh Polynomial.
//
// Canonical form invariant: the highest-index coefficient of a non-zero
// polynomial is non-zero. New enforces this by trimming, so structural
// equality and the division algorithms behave deterministically.
type Polynomial struct {
	coeffs []float64
}

// New validates and canonicalizes a coefficient sequence, lowest degree
// first. All coefficients must be finite; trailing zeros are trimmed.
func New(coeffs []float64) (Polynomial, error) {
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Polynomial{}, fmt.Errorf("%w: coefficient %d is not finite", ErrMalformedInput, i)
		}
	}
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n > MaxGrade+1 {
		return Polynomial{}, fmt.Errorf("%w: %d coefficients exceed the maximum grade", ErrMalformedInput, len(coeffs))
	}
	out := make([]float64, n)
	copy(out, coeffs[:n])
	return Polynomial{coeffs: out}, nil
}

// MustNew is New for coefficients known to be valid; it panics otherwise.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs)
	if err != nil {
		panic(err)
	}
	return p
}

// newPoly trims without validation, for coefficients the package itself
// produced (always finite).
func newPoly(coeffs []float64) Polynomial {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	return Polynomial{coeffs: coeffs[:n:n]}
}

// Grade returns the degree; -1 for the zero polynomial.
func (p Polynomial) Grade() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// Coefficient returns the coefficient of x^i. Index 0 of the zero polynomial
// is defined as 0; any other index outside [0, grade] is an error.
func (p Polynomial) Coefficient(i int) (float64, error) {
	if i == 0 && len(p.coeffs) == 0 {
		return 0, nil
	}
	if i < 0 || i >= len(p.coeffs) {
		return 0, fmt.Errorf("polyroots: coefficient index %d out of range for grade %d", i, p.Grade())
	}
	return p.coeffs[i], nil
}

// Coefficients returns a copy of the coefficient sequence, lowest degree
// first.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Lead returns the leading coefficient; 0 for the zero polynomial.
func (p Polynomial) Lead() float64 {
	if len(p.coeffs) == 0 {
		return 0
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Evaluate computes p(x) by Horner's method, accumulating from the highest
// term down. The zero polynomial evaluates to 0 everywhere.
func (p Polynomial) Evaluate(x float64) float64 {
	v := 0.0
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		v = v*x + p.coeffs[i]
	}
	return v
}

// Derivative returns p'. The derivative of a grade <= 0 polynomial is the
// zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) <= 1 {
		return Polynomial{}
	}
	out := make([]float64, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = float64(i) * p.coeffs[i]
	}
	return newPoly(out)
}

// IsPalindrome reports whether the coefficients read identically from
// either end.
func (p Polynomial) IsPalindrome() bool {
	n := len(p.coeffs)
	for i := 0; i < n; i++ {
		if p.coeffs[i] != p.coeffs[n-1-i] {
			return false
		}
	}
	return true
}

// Equal reports structural equality. Canonical form makes this equivalent
// to mathematical equality.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// String renders the polynomial highest term first, e.g. "x^2-2x+1".
// Zero terms are omitted, as is a literal coefficient 1 on non-constant
// terms and the exponent notation for x^0 and x^1.
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var b strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		writeTerm(&b, p.coeffs[i], i, i == len(p.coeffs)-1)
	}
	return b.String()
}

func writeTerm(b *strings.Builder, c float64, pow int, first bool) {
	if c == 0 {
		return
	}
	if !first && c >= 0 {
		b.WriteByte('+')
	}
	if c != 1 || pow == 0 {
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	if pow > 0 {
		b.WriteByte('x')
	}
	if pow > 1 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(pow))
	}
}
