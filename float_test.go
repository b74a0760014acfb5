package polyroots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	polyroots "github.com/tmaxmax/polynomial-roots-calculator"
)

func TestNearZero(t *testing.T) {
	assert.True(t, polyroots.NearZero(0, 1e-15))
	assert.True(t, polyroots.NearZero(5e-16, 1e-15))
	assert.True(t, polyroots.NearZero(-5e-16, 1e-15))
	assert.False(t, polyroots.NearZero(1e-15, 1e-15))
	assert.False(t, polyroots.NearZero(2e-15, 1e-15))
	assert.False(t, polyroots.NearZero(math.NaN(), 1e-15))
}

func TestNegate(t *testing.T) {
	assert.Equal(t, -3.0, polyroots.Negate(3))
	assert.Equal(t, 3.0, polyroots.Negate(-3))

	z := polyroots.Negate(0)
	assert.Equal(t, 0.0, z)
	assert.False(t, math.Signbit(z))
}

func TestFloatGCD(t *testing.T) {
	tol := polyroots.DefaultTolerance
	assert.Equal(t, 4.0, polyroots.FloatGCD(12, 8, tol))
	assert.Equal(t, 4.0, polyroots.FloatGCD(8, 12, tol))
	assert.Equal(t, 0.5, polyroots.FloatGCD(1.5, 0.5, tol))
}

func TestFloatGCD_ZeroOperands(t *testing.T) {
	tol := polyroots.DefaultTolerance
	assert.Equal(t, 0.0, polyroots.FloatGCD(0, 0, tol))
	assert.Equal(t, 5.0, polyroots.FloatGCD(5, 0, tol))
	assert.Equal(t, 5.0, polyroots.FloatGCD(0, 5, tol))
}
