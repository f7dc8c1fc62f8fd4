package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curve.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestReadMeasurement(t *testing.T) {
	path := writeCSV(t, "0.10,0.5\n0.20,1.2\n0.30,2.8\n")

	meas, err := readMeasurement(path)
	if err != nil {
		t.Fatalf("readMeasurement failed: %v", err)
	}
	if meas.Len() != 3 {
		t.Fatalf("Expected 3 points, got %d", meas.Len())
	}
	if meas.Distance[1] != 0.20 || meas.Force[1] != 1.2 {
		t.Errorf("Second point mismatch: %f, %f", meas.Distance[1], meas.Force[1])
	}
}

func TestReadMeasurementSkipsHeader(t *testing.T) {
	path := writeCSV(t, "distance,force\n0.10,0.5\n0.20,1.2\n")

	meas, err := readMeasurement(path)
	if err != nil {
		t.Fatalf("readMeasurement failed: %v", err)
	}
	if meas.Len() != 2 {
		t.Errorf("Expected header to be skipped, got %d points", meas.Len())
	}
}

func TestReadMeasurementWhitespace(t *testing.T) {
	path := writeCSV(t, "0.10, 0.5\n 0.20,1.2\n")

	meas, err := readMeasurement(path)
	if err != nil {
		t.Fatalf("readMeasurement failed: %v", err)
	}
	if meas.Len() != 2 {
		t.Errorf("Expected 2 points, got %d", meas.Len())
	}
}

func TestReadMeasurementEmptyFile(t *testing.T) {
	path := writeCSV(t, "distance,force\n")

	if _, err := readMeasurement(path); err == nil {
		t.Error("Expected error for CSV without numeric rows")
	}
}

func TestReadMeasurementMissingFile(t *testing.T) {
	if _, err := readMeasurement(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Expected error for missing file")
	}
}
