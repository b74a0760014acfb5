package polyroots

import "fmt"

// Exact polynomial algebra. Division chains over float64 coefficients
// accumulate round-off and may never reach an exact zero remainder, which
// breaks the termination guarantees of Euclidean-style algorithms. Every
// operation here therefore crosses the rational bridge, runs over exact
// 32-bit fractions and converts back at the boundary.

// ratCalc accumulates the first checked-arithmetic failure so that division
// loops read arithmetically instead of as error plumbing.
type ratCalc struct {
	err error
}

func (c *ratCalc) add(a, b rat) rat { return c.keep(a.add(b)) }
func (c *ratCalc) sub(a, b rat) rat { return c.keep(a.sub(b)) }
func (c *ratCalc) mul(a, b rat) rat { return c.keep(a.mul(b)) }
func (c *ratCalc) div(a, b rat) rat { return c.keep(a.div(b)) }

func (c *ratCalc) keep(v rat, err error) rat {
	if c.err == nil && err != nil {
		c.err = err
	}
	if c.err != nil {
		return ratZero
	}
	return v
}

// DivRem divides dividend by divisor, returning quotient and remainder with
// grade(remainder) < grade(divisor). Dividing by the zero polynomial is
// ErrDivisionByZero. Grade-0 divisors use scalar division, grade-1 divisors
// a single synthetic (Horner) pass, higher grades classical long division.
func DivRem(dividend, divisor Polynomial) (quo, rem Polynomial, err error) {
	switch divisor.Grade() {
	case -1:
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	case 0:
		out := make([]float64, len(dividend.coeffs))
		for i, c := range dividend.coeffs {
			out[i] = c / divisor.coeffs[0]
		}
		quo, err = New(out)
		if err != nil {
			return Polynomial{}, Polynomial{}, err
		}
		return quo, Polynomial{}, nil
	}
	lhs, err := toRats(dividend)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	rhs, err := toRats(divisor)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	q, r, err := ratDivRem(lhs, rhs)
	if err != nil {
		return Polynomial{}, Polynomial{}, err
	}
	return fromRats(q), fromRats(r), nil
}

// ratDivRem dispatches on divisor grade; both inputs are canonical (no zero
// leading coefficient) and rhs is non-empty. Grade-0 divisors only reach
// this path through the GCD remainder chain.
func ratDivRem(lhs, rhs []rat) (quo, rem []rat, err error) {
	if len(lhs) < len(rhs) {
		return nil, lhs, nil
	}
	if len(rhs) == 2 {
		return hornerDiv(lhs, rhs)
	}
	return longDiv(lhs, rhs)
}

// hornerDiv divides by a linear factor in a single O(n) pass: with
// a = -c0/c1, each quotient coefficient folds the previous one in, and the
// final accumulator is the remainder.
func hornerDiv(lhs, rhs []rat) (quo, rem []rat, err error) {
	c := &ratCalc{}
	a := c.div(rhs[0].neg(), rhs[1])

	work := make([]rat, len(lhs))
	copy(work, lhs)
	for k := len(work) - 2; k >= 0; k-- {
		work[k] = c.add(work[k], c.mul(a, work[k+1]))
	}

	r := work[0]
	q := work[1:]
	if rhs[1] != ratOne {
		for i := range q {
			q[i] = c.div(q[i], rhs[1])
		}
	}
	if c.err != nil {
		return nil, nil, c.err
	}
	if r.isZero() {
		return q, nil, nil
	}
	return q, []rat{r}, nil
}

// longDiv repeatedly eliminates the dividend's leading term against the
// divisor's leading coefficient. Each step strictly reduces the working
// degree, bounding iterations by grade(lhs)-grade(rhs)+1.
func longDiv(lhs, rhs []rat) (quo, rem []rat, err error) {
	c := &ratCalc{}
	initGrade := len(lhs) - 1

	work := make([]rat, len(lhs))
	copy(work, lhs)
	// Slots the elimination loop never visits (a step cancelling several
	// leading terms at once) must hold a valid zero, not the rat zero value
	// with its zero denominator.
	quo = make([]rat, len(lhs)-len(rhs)+1)
	for i := range quo {
		quo[i] = ratZero
	}

	for len(work) >= len(rhs) {
		lg := len(work) - 1
		rg := len(rhs) - 1
		f := c.div(work[lg], rhs[rg])
		if c.err != nil {
			return nil, nil, c.err
		}
		for k := 0; k <= rg; k++ {
			work[lg-k] = c.sub(work[lg-k], c.mul(f, rhs[rg-k]))
		}
		work = trimRats(work)
		quo[len(quo)-1-(initGrade-lg)] = f
	}
	if c.err != nil {
		return nil, nil, c.err
	}
	return quo, work, nil
}

// GCD computes the polynomial greatest common divisor by the Euclidean
// remainder chain, normalized to its primitive part. Conventions for the
// degenerate constant cases: two non-zero constants share no non-trivial
// factor (zero polynomial); a constant against a non-constant polynomial
// means "no reduction" and returns the polynomial unchanged.
func GCD(a, b Polynomial) (Polynomial, error) {
	switch {
	case a.Grade() == 0 && b.Grade() == 0:
		return Polynomial{}, nil
	case b.Grade() == 0:
		return a, nil
	case a.Grade() == 0:
		return b, nil
	}
	r0, err := toRats(a)
	if err != nil {
		return Polynomial{}, err
	}
	r1, err := toRats(b)
	if err != nil {
		return Polynomial{}, err
	}
	g, err := ratGCD(r0, r1)
	if err != nil {
		return Polynomial{}, err
	}
	if err := ratCanon(g); err != nil {
		return Polynomial{}, err
	}
	return fromRats(g), nil
}

// ratCanon normalizes a non-empty remainder-chain result into the canonical
// representative of its equivalence class: primitive, positive leading
// coefficient. The raw chain output carries an arbitrary scale and sign
// depending on the input ordering.
func ratCanon(g []rat) error {
	if len(g) == 0 {
		return nil
	}
	if _, err := ratPrimitive(g); err != nil {
		return err
	}
	if g[len(g)-1].sign() < 0 {
		for i := range g {
			g[i] = g[i].neg()
		}
	}
	return nil
}

func ratGCD(r0, r1 []rat) ([]rat, error) {
	if len(r0) < len(r1) {
		r0, r1 = r1, r0
	}
	for len(r1) > 0 {
		if len(r1) == 1 {
			// A non-zero constant divides everything exactly.
			return r1, nil
		}
		_, rem, err := ratDivRem(r0, r1)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, rem
	}
	return r0, nil
}

// Primitive factors the content d out of p, returning (p/d, d). The content
// is the GCD across all coefficients treated as exact fractions, with its
// sign normalized so the quotient's leading coefficient keeps the sign of
// the original. The zero polynomial has content 0 and is returned unchanged.
func Primitive(p Polynomial) (Polynomial, float64, error) {
	if p.Grade() == -1 {
		return p, 0, nil
	}
	rs, err := toRats(p)
	if err != nil {
		return Polynomial{}, 0, err
	}
	d, err := ratPrimitive(rs)
	if err != nil {
		return Polynomial{}, 0, err
	}
	return fromRats(rs), d.float64(), nil
}

// ratPrimitive divides out the content in place and returns it. The content
// is kept positive so division by it preserves every coefficient's sign.
func ratPrimitive(v []rat) (rat, error) {
	c := &ratCalc{}
	d := ratZero
	for _, r := range v {
		d = c.keep(scalarRatGCD(d, r))
	}
	if c.err != nil {
		return rat{}, c.err
	}
	if d.sign() < 0 {
		d = d.neg()
	}
	for i := range v {
		v[i] = c.div(v[i], d)
	}
	if c.err != nil {
		return rat{}, c.err
	}
	return d, nil
}

// scalarRatGCD runs the Euclidean chain over two fractions.
func scalarRatGCD(a, b rat) (rat, error) {
	switch {
	case a.isZero():
		return b, nil
	case b.isZero():
		return a, nil
	}
	if a.cmp(b) < 0 {
		a, b = b, a
	}
	for !b.isZero() {
		rem, err := a.mod(b)
		if err != nil {
			return rat{}, err
		}
		a, b = b, rem
	}
	return a, nil
}

// SquareFreePart returns p with repeated-root factors collapsed:
// p / gcd(p, p'), normalized to its primitive part. Grade <= 0 polynomials
// are returned unchanged. The division is exact over the bridge; a non-zero
// remainder would mean a broken internal invariant.
func SquareFreePart(p Polynomial) (Polynomial, error) {
	if p.Grade() <= 0 {
		return p, nil
	}
	rs, err := toRats(p)
	if err != nil {
		return Polynomial{}, err
	}
	ds, err := toRats(p.Derivative())
	if err != nil {
		return Polynomial{}, err
	}
	g, err := ratGCD(rs, ds)
	if err != nil {
		return Polynomial{}, err
	}
	if err := ratCanon(g); err != nil {
		return Polynomial{}, err
	}
	quo, rem, err := ratDivRem(rs, g)
	if err != nil {
		return Polynomial{}, err
	}
	if len(rem) != 0 {
		return Polynomial{}, fmt.Errorf("polyroots: square-free division left remainder %v", fromRats(rem))
	}
	if _, err := ratPrimitive(quo); err != nil {
		return Polynomial{}, err
	}
	return fromRats(quo), nil
}
