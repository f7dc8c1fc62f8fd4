package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKBT = 4.114 // ~25°C
	testLc  = 1000.0
	testLp  = 50.0
	testS   = 1000.0
)

func TestWLCForceZeroAtOrigin(t *testing.T) {
	assert.Equal(t, 0.0, WLCForce(0, testKBT, testLc, testLp))
}

func TestWLCForceMonotonic(t *testing.T) {
	// Monotonically increasing in d for 0 < d < Lc
	prev := WLCForce(0, testKBT, testLc, testLp)
	for i := 1; i <= 90; i++ {
		d := float64(i) * 0.01 // µm, up to 0.9·Lc
		f := WLCForce(d, testKBT, testLc, testLp)
		require.Greater(t, f, prev, "force must increase at d=%.2f µm", d)
		prev = f
	}
}

func TestWLCForceKnownValue(t *testing.T) {
	// At half extension the bracket is 0.25/0.25 - 0.25 + 0.5 = 1.25,
	// so F = kBT/Lp · 1.25. The 0.5 µm input also exercises the
	// µm → nm conversion against Lc in nm.
	got := WLCForce(0.5, testKBT, testLc, testLp)
	want := testKBT / testLp * 1.25
	assert.InDelta(t, want, got, 1e-12)
}

func TestWLCForceDivergesAtContourLength(t *testing.T) {
	// d == Lc divides by zero; the Inf must propagate, not panic.
	f := WLCForce(1.0, testKBT, testLc, testLp)
	assert.True(t, math.IsInf(f, 1))
}

func TestBouchiatMatchesWLCAtOrigin(t *testing.T) {
	assert.Equal(t, WLCForce(0, testKBT, testLc, testLp), BouchiatForce(0, testKBT, testLc, testLp))
}

func TestBouchiatCorrectionNonzero(t *testing.T) {
	// For d/Lc != 0 the polynomial correction must be strictly nonzero.
	for _, d := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		wlc := WLCForce(d, testKBT, testLc, testLp)
		bou := BouchiatForce(d, testKBT, testLc, testLp)
		assert.NotEqual(t, wlc, bou, "correction vanished at d=%.1f µm", d)
	}
}

func TestEWLCReducesToWLCForLargeStretchModulus(t *testing.T) {
	// As S grows the F/S term vanishes and eWLC approaches WLC.
	d, f := 0.6, 5.0
	want := WLCForce(d, testKBT, testLc, testLp)
	got := EWLCForce(d, f, testKBT, testLc, testLp, 1e12)
	assert.InDelta(t, want, got, 1e-6)
}

func TestEBouchiatReducesToBouchiatForLargeStretchModulus(t *testing.T) {
	d, f := 0.6, 5.0
	want := BouchiatForce(d, testKBT, testLc, testLp)
	got := EBouchiatForce(d, f, testKBT, testLc, testLp, 1e12)
	assert.InDelta(t, want, got, 1e-6)
}

func TestOdijkEWLCApproximateInverses(t *testing.T) {
	// In the high-force regime the Odijk distance fed back into the
	// extensible model must reproduce the original force.
	for _, f := range []float64{5, 10, 20, 40} {
		d := OdijkDistance(f, testKBT, testLc, testLp, testS)
		back := EWLCForce(d, f, testKBT, testLc, testLp, testS)
		assert.InEpsilon(t, f, back, 0.02, "roundtrip failed at F=%.0f pN", f)
	}
}

func TestOdijkDistanceDegenerateAtZeroForce(t *testing.T) {
	d := OdijkDistance(0, testKBT, testLc, testLp, testS)
	assert.True(t, math.IsInf(d, -1) || math.IsNaN(d))
}

func TestOdijkDistanceReturnsmicrometers(t *testing.T) {
	// At large force the chain is nearly fully extended, so the
	// distance approaches Lc/1000 µm.
	d := OdijkDistance(1000, testKBT, testLc, testLp, 1e9)
	assert.InDelta(t, testLc/1000, d, 0.01)
}
