package polyroots_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polyroots "github.com/tmaxmax/polynomial-roots-calculator"
)

func TestRootBound_LowGrade(t *testing.T) {
	_, ok := polyroots.RootBound(polyroots.MustNew())
	assert.False(t, ok)
	_, ok = polyroots.RootBound(polyroots.MustNew(5))
	assert.False(t, ok)
}

func TestRootBound_PowerOfTwo(t *testing.T) {
	bound, ok := polyroots.RootBound(polyroots.MustNew(-4, 0, 1)) // x^2 - 4
	require.True(t, ok)
	assert.Equal(t, 4.0, bound)

	bound, ok = polyroots.RootBound(polyroots.MustNew(-1024, 1)) // x - 1024
	require.True(t, ok)
	assert.Equal(t, 2048.0, bound)
}

func TestRootBound_Monomial(t *testing.T) {
	bound, ok := polyroots.RootBound(polyroots.MustNew(0, 0, 0, 1)) // x^3
	require.True(t, ok)
	assert.Equal(t, 1.0, bound)
}

func TestRootBound_ContainsAllRoots(t *testing.T) {
	polys := []polyroots.Polynomial{
		polyroots.MustNew(-4, 2),
		polyroots.MustNew(-1, 0, 1),
		polyroots.MustNew(4, 0, -5, 0, 1),
		polyroots.MustNew(1, -5, 8.25, -5, 1),
	}
	for _, p := range polys {
		bound, ok := polyroots.RootBound(p)
		require.True(t, ok)
		report := polyroots.FindRoots(p)
		require.Equal(t, polyroots.RootsFound, report.Kind)
		for _, root := range report.Roots {
			assert.LessOrEqual(t, root.Value, bound, p.String())
			assert.GreaterOrEqual(t, root.Value, -bound, p.String())
		}
	}
}
