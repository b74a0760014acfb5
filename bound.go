package polyroots

import "math"

// RootBound returns a Cauchy-type magnitude bound as a power of two: every
// real root of p lies within [-bound, bound]. The second return is false for
// grade <= 0, where no bound applies. Diagnostic only; the solvers do not
// consume it.
func RootBound(p Polynomial) (float64, bool) {
	n := p.Grade()
	if n <= 0 {
		return 0, false
	}
	lead := frexpExp(p.coeffs[n])
	maxExp := 0
	for i := 0; i < n; i++ {
		c := p.coeffs[i]
		if c == 0 {
			continue
		}
		e := ceilDiv(frexpExp(c)-lead, n-i) + 1
		if e > maxExp {
			maxExp = e
		}
	}
	return math.Ldexp(1, maxExp), true
}

// ceilDiv divides rounding toward positive infinity; b > 0.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b > 0 {
		q++
	}
	return q
}
