package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wlcfit/internal/model"
)

func testMeasurement(t *testing.T) model.Measurement {
	t.Helper()
	meas, err := model.NewMeasurement(
		[]float64{0.1, 0.2, 0.3, 0.4},
		[]float64{0.5, 1.2, 2.8, 6.1},
	)
	if err != nil {
		t.Fatalf("NewMeasurement failed: %v", err)
	}
	return meas
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Output file is empty")
	}
}

func TestFitCurveWritesImage(t *testing.T) {
	meas := testMeasurement(t)
	path := filepath.Join(t.TempDir(), "fit.png")

	err := FitCurve(meas, []float64{0.52, 1.18, 2.85, 6.0}, model.WLC, "test fit", path)
	if err != nil {
		t.Fatalf("FitCurve failed: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestFitCurveDistancePredicting(t *testing.T) {
	meas := testMeasurement(t)
	path := filepath.Join(t.TempDir(), "fit.png")

	err := FitCurve(meas, []float64{0.11, 0.19, 0.31, 0.4}, model.Odijk, "odijk fit", path)
	if err != nil {
		t.Fatalf("FitCurve failed: %v", err)
	}
	assertNonEmptyFile(t, path)
}

func TestFitCurveLengthMismatch(t *testing.T) {
	meas := testMeasurement(t)
	path := filepath.Join(t.TempDir(), "fit.png")

	if err := FitCurve(meas, []float64{1, 2}, model.WLC, "bad", path); err == nil {
		t.Error("Expected error for mismatched best-fit length")
	}
}

func TestResidualsWritesImage(t *testing.T) {
	meas := testMeasurement(t)
	path := filepath.Join(t.TempDir(), "resid.png")

	err := Residuals(meas, []float64{0.02, -0.02, 0.05, -0.1}, model.WLC, "residuals", path)
	if err != nil {
		t.Fatalf("Residuals failed: %v", err)
	}
	assertNonEmptyFile(t, path)
}
