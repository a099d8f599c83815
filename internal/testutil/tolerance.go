package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// the distance between any element pair exceeds eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		d := cmplx.Abs(got[i] - want[i])
		require.LessOrEqualf(t, d, eps, "index %d: got %v, want %v", i, got[i], want[i])
	}
}

// RequireComplexRelativelyEqual is RequireComplexNearlyEqual with eps scaled
// by the magnitude of each expected value (never below 1).
func RequireComplexRelativelyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		d := cmplx.Abs(got[i] - want[i])
		tol := eps * math.Max(1, cmplx.Abs(want[i]))
		require.LessOrEqualf(t, d, tol, "index %d: got %v, want %v", i, got[i], want[i])
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
