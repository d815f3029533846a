// Package testutil provides shared assertions for key conversion tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances.
const (
	// ExactTolerance bounds the exact path against published note tables.
	ExactTolerance = 1e-6

	// ApproxTolerance is the acceptance bound for the approximate path.
	ApproxTolerance = 1e-3
)

// AssertRelativeError verifies that |actual-expected|/|expected| <= tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertClose verifies |a-b| < tolerance * min(a, b), the symmetric check
// used for approximate against exact conversions.
func AssertClose(t *testing.T, a, b, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.Abs(a-b) < tolerance*math.Min(a, b) {
		return true
	}
	return assert.Fail(t, "values not close",
		"|%g - %g| >= %g * min", a, b, tolerance)
}

// AssertStrictlyIncreasing verifies s[i] > s[i-1] for every i.
func AssertStrictlyIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"s[%d]=%g <= s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertAllPositive verifies every element is finite and > 0.
func AssertAllPositive(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return assert.Fail(t, "value not positive and finite", "s[%d]=%g", i, v)
		}
	}
	return true
}
