package polyroots_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polyroots "github.com/tmaxmax/polynomial-roots-calculator"
)

func TestFindRoots_ZeroPolynomial(t *testing.T) {
	for _, coeffs := range [][]float64{{}, {0}} {
		report := polyroots.FindRoots(polyroots.MustNew(coeffs...))
		assert.Equal(t, polyroots.AllReals, report.Kind)
	}
}

func TestFindRoots_Constant(t *testing.T) {
	report := polyroots.FindRoots(polyroots.MustNew(5))
	assert.Equal(t, polyroots.NoRoots, report.Kind)
}

func TestFindRoots_Linear(t *testing.T) {
	report := polyroots.FindRoots(polyroots.MustNew(-4, 2)) // 2x - 4
	require.Equal(t, polyroots.RootsFound, report.Kind)
	assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: 2, Multiplicity: 1}}, report.Roots))
}

func TestFindRoots_LinearNoSignedZero(t *testing.T) {
	report := polyroots.FindRoots(polyroots.MustNew(0, 5)) // 5x
	require.Equal(t, polyroots.RootsFound, report.Kind)
	require.Len(t, report.Roots, 1)
	assert.Equal(t, 0.0, report.Roots[0].Value)
	assert.False(t, math.Signbit(report.Roots[0].Value))
}

func TestFindRoots_Quadratic(t *testing.T) {
	t.Run("two roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(-1, 0, 1)) // x^2 - 1
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{
			{Value: -1, Multiplicity: 1},
			{Value: 1, Multiplicity: 1},
		}, report.Roots))
	})
	t.Run("double root", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(0, 0, 1)) // x^2
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: 0, Multiplicity: 2}}, report.Roots))
	})
	t.Run("no real roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(1, 0, 1)) // x^2 + 1
		assert.Equal(t, polyroots.NoRoots, report.Kind)
	})
}

func TestFindRoots_Biquadratic(t *testing.T) {
	t.Run("four roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(4, 0, -5, 0, 1)) // (x^2-1)(x^2-4)
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{
			{Value: -1, Multiplicity: 1},
			{Value: 1, Multiplicity: 1},
			{Value: -2, Multiplicity: 1},
			{Value: 2, Multiplicity: 1},
		}, report.Roots))
	})
	t.Run("zero y-root expands once", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(0, 0, -1, 0, 1)) // x^2(x^2-1)
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{
			{Value: 0, Multiplicity: 1},
			{Value: -1, Multiplicity: 1},
			{Value: 1, Multiplicity: 1},
		}, report.Roots))
	})
	t.Run("negative y-roots dropped", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(2, 0, 3, 0, 1)) // (x^2+1)(x^2+2)
		assert.Equal(t, polyroots.NoRoots, report.Kind)
	})
	t.Run("no real y-roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(1, 0, 0, 0, 1)) // x^4 + 1
		assert.Equal(t, polyroots.NoRoots, report.Kind)
	})
}

func TestFindRoots_Binomial(t *testing.T) {
	t.Run("cube root of unity", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(-1, 0, 0, 1)) // x^3 - 1
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: 1, Multiplicity: 1}}, report.Roots))
	})
	t.Run("negative constant term", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(1, 0, 0, 1)) // x^3 + 1
		require.Equal(t, polyroots.RootsFound, report.Kind)
		require.Len(t, report.Roots, 1)
		assert.InDelta(t, -1, report.Roots[0].Value, 1e-12)
		assert.Equal(t, 1, report.Roots[0].Multiplicity)
	})
	t.Run("even grade has two real roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(-1, 0, 0, 0, 0, 0, 1)) // x^6 - 1
		require.Equal(t, polyroots.RootsFound, report.Kind)
		require.Len(t, report.Roots, 2)
		assert.InDelta(t, 1, report.Roots[0].Value, 1e-12)
		assert.InDelta(t, -1, report.Roots[1].Value, 1e-12)
	})
	t.Run("even grade with no real roots", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(1, 0, 0, 0, 0, 0, 1)) // x^6 + 1
		assert.Equal(t, polyroots.NoRoots, report.Kind)
	})
	t.Run("fifth root", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(-32, 0, 0, 0, 0, 1)) // x^5 - 32
		require.Equal(t, polyroots.RootsFound, report.Kind)
		require.Len(t, report.Roots, 1)
		assert.InDelta(t, 2, report.Roots[0].Value, 1e-12)
	})
	t.Run("monomial collapses to zero", func(t *testing.T) {
		report := polyroots.FindRoots(polyroots.MustNew(0, 0, 0, 0, 0, 1)) // x^5
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: 0, Multiplicity: 5}}, report.Roots))
	})
}

func TestFindRoots_OddPalindrome(t *testing.T) {
	t.Run("cubic with complex quotient", func(t *testing.T) {
		// 2x^3+3x^2+3x+2 = (x+1)(2x^2+x+2)
		report := polyroots.FindRoots(polyroots.MustNew(2, 3, 3, 2))
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: -1, Multiplicity: 1}}, report.Roots))
	})
	t.Run("cubic with triple root", func(t *testing.T) {
		// (x+1)^3: quotient (x+1)^2 contributes -1 twice, then -1 again
		report := polyroots.FindRoots(polyroots.MustNew(1, 3, 3, 1))
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{
			{Value: -1, Multiplicity: 2},
			{Value: -1, Multiplicity: 1},
		}, report.Roots))
	})
	t.Run("quintic recurses through quartic quotient", func(t *testing.T) {
		// x^5+2x^4+2x^3+2x^2+2x+1 = (x+1)(x^4+x^3+x^2+x+1)
		report := polyroots.FindRoots(polyroots.MustNew(1, 2, 2, 2, 2, 1))
		require.Equal(t, polyroots.RootsFound, report.Kind)
		assert.Empty(t, cmp.Diff([]polyroots.Root{{Value: -1, Multiplicity: 1}}, report.Roots))
	})
}

func TestFindRoots_QuasiPalindrome(t *testing.T) {
	// (x^2 - 2.5x + 1)^2: roots 1/2 and 2, each doubled
	report := polyroots.FindRoots(polyroots.MustNew(1, -5, 8.25, -5, 1))
	require.Equal(t, polyroots.RootsFound, report.Kind)
	assert.Empty(t, cmp.Diff([]polyroots.Root{
		{Value: 0.5, Multiplicity: 2},
		{Value: 2, Multiplicity: 2},
	}, report.Roots))
}

func TestFindRoots_QuasiPalindromeNoRealRoots(t *testing.T) {
	// x^4+x^3+x^2+x+1: matches the quasi shape but both reductions stay complex
	report := polyroots.FindRoots(polyroots.MustNew(1, 1, 1, 1, 1))
	assert.Equal(t, polyroots.NoRoots, report.Kind)
}

func TestFindRoots_Unsupported(t *testing.T) {
	report := polyroots.FindRoots(polyroots.MustNew(1, 1, 0, 0, 0, 1)) // x^5 + x + 1
	assert.Equal(t, polyroots.Unsupported, report.Kind)
	assert.Empty(t, report.Roots)
}

func TestFindRoots_OverflowDegradesToUnsupported(t *testing.T) {
	// Palindromic cubic whose coefficients cannot cross the rational bridge.
	report := polyroots.FindRoots(polyroots.MustNew(0.1, 1, 1, 0.1))
	assert.Equal(t, polyroots.Unsupported, report.Kind)
}

func TestFindRoots_RootsEvaluateToZero(t *testing.T) {
	polys := []polyroots.Polynomial{
		polyroots.MustNew(-4, 2),
		polyroots.MustNew(-1, 0, 1),
		polyroots.MustNew(4, 0, -5, 0, 1),
		polyroots.MustNew(-1, 0, 0, 1),
		polyroots.MustNew(1, -5, 8.25, -5, 1),
		polyroots.MustNew(2, 3, 3, 2),
	}
	for _, p := range polys {
		report := polyroots.FindRoots(p)
		require.Equal(t, polyroots.RootsFound, report.Kind, p.String())
		total := 0
		for _, root := range report.Roots {
			assert.InDeltaf(t, 0, p.Evaluate(root.Value), 1e-9, "%s at %g", p, root.Value)
			assert.GreaterOrEqual(t, root.Multiplicity, 1)
			total += root.Multiplicity
		}
		assert.LessOrEqual(t, total, p.Grade())
	}
}

func TestNewSolver_ToleranceFallback(t *testing.T) {
	assert.Equal(t, polyroots.DefaultTolerance, polyroots.NewSolver(0).Tol)
	assert.Equal(t, polyroots.DefaultTolerance, polyroots.NewSolver(-1).Tol)
	assert.Equal(t, 1e-9, polyroots.NewSolver(1e-9).Tol)
}

func TestReportKind_String(t *testing.T) {
	assert.Equal(t, "all-reals", polyroots.AllReals.String())
	assert.Equal(t, "no-roots", polyroots.NoRoots.String())
	assert.Equal(t, "roots-found", polyroots.RootsFound.String())
	assert.Equal(t, "unsupported", polyroots.Unsupported.String())
}
