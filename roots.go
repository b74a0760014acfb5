package polyroots

import (
	"errors"
	"math"
)

// ============================================================
// Root report
// ============================================================

// Root is a real root with its multiplicity (always >= 1).
type Root struct {
	Value        float64
	Multiplicity int
}

// ReportKind tags the outcome of a root search.
type ReportKind int

const (
	// AllReals: the polynomial is identically zero.
	AllReals ReportKind = iota
	// NoRoots: a non-zero constant, or the solver determined there are none.
	NoRoots
	// RootsFound: at least one real root was found.
	RootsFound
	// Unsupported: grade >= 3 with no recognized structure. A numeric
	// fallback (Sturm isolation + bisection) would go here; reporting the
	// gap explicitly beats fabricating roots.
	Unsupported
)

func (k ReportKind) String() string {
	switch k {
	case AllReals:
		return "all-reals"
	case NoRoots:
		return "no-roots"
	case RootsFound:
		return "roots-found"
	case Unsupported:
		return "unsupported"
	}
	return "unknown"
}

// RootReport is the tagged result of FindRoots. Roots is populated only for
// RootsFound.
type RootReport struct {
	Kind  ReportKind
	Roots []Root
}

func found(roots []Root) RootReport { return RootReport{Kind: RootsFound, Roots: roots} }

// appendRoot adds a root to a report: AllReals absorbs it, NoRoots promotes
// to RootsFound, Unsupported stays unsupported.
func (r RootReport) appendRoot(root Root) RootReport {
	switch r.Kind {
	case RootsFound:
		return found(append(r.Roots, root))
	case NoRoots:
		return found([]Root{root})
	}
	return r
}

// ============================================================
// Solver
// ============================================================

// Solver carries the near-zero tolerance used by structural detection, so
// callers can tune it per magnitude domain.
type Solver struct {
	Tol float64
}

// NewSolver returns a Solver with the given tolerance; non-positive values
// fall back to DefaultTolerance.
func NewSolver(tol float64) Solver {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return Solver{Tol: tol}
}

// FindRoots computes the real roots of p with the default tolerance.
func FindRoots(p Polynomial) RootReport {
	return NewSolver(DefaultTolerance).FindRoots(p)
}

// FindRoots dispatches on grade, always preferring the lowest-grade exact
// closed form, then the structural pipeline for grade >= 3.
func (s Solver) FindRoots(p Polynomial) RootReport {
	switch p.Grade() {
	case -1:
		return RootReport{Kind: AllReals}
	case 0:
		return RootReport{Kind: NoRoots}
	case 1:
		return found([]Root{{Value: Negate(p.coeffs[0]) / p.coeffs[1], Multiplicity: 1}})
	case 2:
		return quadraticRoots(p.coeffs[0], p.coeffs[1], p.coeffs[2])
	}
	return s.structural(p)
}

// quadraticRoots solves c2*x^2 + c1*x + c0 = 0, c2 != 0. An unorderable
// discriminant (NaN) is treated defensively as no roots.
func quadraticRoots(c0, c1, c2 float64) RootReport {
	twoA := 2 * c2
	delta := c1*c1 - 2*twoA*c0
	switch {
	case math.IsNaN(delta) || delta < 0:
		return RootReport{Kind: NoRoots}
	case delta == 0:
		return found([]Root{{Value: -c1 / twoA, Multiplicity: 2}})
	}
	sq := math.Sqrt(delta)
	return found([]Root{
		{Value: (-c1 - sq) / twoA, Multiplicity: 1},
		{Value: (-c1 + sq) / twoA, Multiplicity: 1},
	})
}

// structural tries the grade >= 3 detectors in fixed priority order; the
// first structural match wins.
func (s Solver) structural(p Polynomial) RootReport {
	if rep, ok := s.biquadratic(p); ok {
		return rep
	}
	if rep, ok := s.binomial(p); ok {
		return rep
	}
	if rep, ok := s.palindrome(p); ok {
		return rep
	}
	return RootReport{Kind: Unsupported}
}

// ============================================================
// Structural detectors
// ============================================================

// biquadratic handles grade exactly 4 with both odd-power coefficients zero.
// Substituting y = x^2 reduces to a quadratic in y; each non-negative y-root
// expands to +-sqrt(y) (just 0, once, when y is 0) inheriting the y-root's
// multiplicity. Negative y-roots are complex conjugate pairs and dropped.
func (s Solver) biquadratic(p Polynomial) (RootReport, bool) {
	if p.Grade() != 4 || p.coeffs[1] != 0 || p.coeffs[3] != 0 {
		return RootReport{}, false
	}
	rep := quadraticRoots(p.coeffs[0], p.coeffs[2], p.coeffs[4])
	if rep.Kind != RootsFound {
		return RootReport{Kind: NoRoots}, true
	}
	var roots []Root
	for _, r := range rep.Roots {
		switch {
		case r.Value > 0:
			sq := math.Sqrt(r.Value)
			roots = append(roots,
				Root{Value: -sq, Multiplicity: r.Multiplicity},
				Root{Value: sq, Multiplicity: r.Multiplicity})
		case r.Value == 0:
			roots = append(roots, Root{Value: 0, Multiplicity: r.Multiplicity})
		}
	}
	if len(roots) == 0 {
		return RootReport{Kind: NoRoots}, true
	}
	return found(roots), true
}

// binomial handles polynomials with every interior coefficient zero:
// c0 + cn*x^n. The n-th roots of -c0/cn lie at angles (phi0 + 2*pi*k)/n on
// the circle of radius |c0/cn|^(1/n); only candidates on the real axis
// (sin within tolerance of zero) are real roots. Distinct k landing on the
// same value collapse into one root with summed multiplicity.
func (s Solver) binomial(p Polynomial) (RootReport, bool) {
	grade := p.Grade()
	for i := 1; i < grade; i++ {
		if p.coeffs[i] != 0 {
			return RootReport{}, false
		}
	}
	c0, cn := p.coeffs[0], p.coeffs[grade]
	if c0 == 0 {
		// Monomial cn*x^n: the angle sweep degenerates at radius zero.
		return found([]Root{{Value: 0, Multiplicity: grade}}), true
	}
	radius := math.Pow(math.Abs(c0/cn), 1/float64(grade))
	phi0 := math.Acos(-math.Copysign(1, c0))
	var roots []Root
	for k := 0; k < grade; k++ {
		phi := (phi0 + 2*math.Pi*float64(k)) / float64(grade)
		if !NearZero(math.Sin(phi), s.Tol) {
			continue
		}
		value := radius * math.Cos(phi)
		merged := false
		for i := range roots {
			if roots[i].Value == value {
				roots[i].Multiplicity++
				merged = true
				break
			}
		}
		if !merged {
			roots = append(roots, Root{Value: value, Multiplicity: 1})
		}
	}
	if len(roots) == 0 {
		return RootReport{Kind: NoRoots}, true
	}
	return found(roots), true
}

// palindrome handles the palindromic reductions: odd-grade palindromes are
// exactly divisible by (x+1), so divide, recurse on the quotient and append
// the root -1; grade-4 quasi-palindromes reduce through y = x + m/x.
func (s Solver) palindrome(p Polynomial) (RootReport, bool) {
	grade := p.Grade()
	switch {
	case grade == 4:
		return s.quasiPalindrome(p)
	case grade%2 == 1 && p.IsPalindrome():
		quo, rem, err := DivRem(p, newPoly([]float64{1, 1}))
		if errors.Is(err, ErrExactnessOverflow) {
			// Structural detection is best-effort: an exactness overflow
			// inside the reduction degrades to the open outcome.
			return RootReport{Kind: Unsupported}, true
		}
		if err != nil {
			return RootReport{Kind: Unsupported}, true
		}
		if !rem.IsZero() {
			return RootReport{}, false
		}
		rep := s.FindRoots(quo)
		if rep.Kind == Unsupported {
			// The quotient's roots are unknown, so reporting just -1 would
			// claim a complete root list that isn't. The established root is
			// dropped with it and the open outcome propagates whole.
			return rep, true
		}
		return rep.appendRoot(Root{Value: -1, Multiplicity: 1}), true
	}
	return RootReport{}, false
}

// quasiPalindrome handles grade-4 polynomials where m = sqrt(c0/c4) matches
// c1/c3. Substituting y = x + m/x reduces to the quadratic
// c4*y^2 + c3*y + (c2 - 2*c4*m) = 0; each y-root expands through
// x^2 - y*x + m = 0, multiplying multiplicities.
func (s Solver) quasiPalindrome(p Polynomial) (RootReport, bool) {
	m := math.Sqrt(p.coeffs[0] / p.coeffs[4])
	if math.IsNaN(m) {
		return RootReport{}, false
	}
	if !NearZero(m-p.coeffs[1]/p.coeffs[3], s.Tol) {
		return RootReport{}, false
	}
	rep := quadraticRoots(p.coeffs[2]-2*p.coeffs[4]*m, p.coeffs[3], p.coeffs[4])
	if rep.Kind != RootsFound {
		return RootReport{Kind: NoRoots}, true
	}
	var roots []Root
	for _, yr := range rep.Roots {
		sub := quadraticRoots(m, -yr.Value, 1)
		if sub.Kind != RootsFound {
			continue
		}
		for _, xr := range sub.Roots {
			roots = append(roots, Root{Value: xr.Value, Multiplicity: xr.Multiplicity * yr.Multiplicity})
		}
	}
	if len(roots) == 0 {
		return RootReport{Kind: NoRoots}, true
	}
	return found(roots), true
}
