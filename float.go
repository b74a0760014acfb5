package polyroots

import "math"

// DefaultTolerance is the near-zero window used when no explicit tolerance
// is configured on a Solver.
const DefaultTolerance = 1e-15

// NearZero reports whether v lies strictly within (-tol, tol).
func NearZero(v, tol float64) bool { return -tol < v && v < tol }

// Negate flips the sign of v without ever producing a signed zero.
func Negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}

// FloatGCD runs a Euclidean remainder chain over two floats, stopping once
// the remainder falls within tol of zero. Zero operands short-circuit to the
// other operand.
func FloatGCD(a, b, tol float64) float64 {
	switch {
	case a == 0 && b == 0:
		return 0
	case b == 0:
		return a
	case a == 0:
		return b
	}
	r0, r1 := a, b
	if r0 < r1 {
		r0, r1 = r1, r0
	}
	for !NearZero(r1, tol) {
		r0, r1 = r1, math.Mod(r0, r1)
	}
	return r0
}

// frexpExp returns the base-2 exponent e of a normal float, with
// |v| = frac * 2^e and frac in [1/2, 1).
func frexpExp(v float64) int {
	_, e := math.Frexp(v)
	return e
}
