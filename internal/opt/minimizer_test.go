package opt

import (
	"math"
	"testing"
)

// linearProblem builds residuals for y = 2x + 1 sampled exactly.
func linearProblem() Problem {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x + 1
	}

	return Problem{
		Residual: func(dst, p []float64) {
			for i := range dst {
				dst[i] = p[0]*xs[i] + p[1] - ys[i]
			}
		},
		Size:  len(xs),
		Init:  []float64{0, 0},
		Lower: []float64{-10, -10},
		Upper: []float64{10, 10},
	}
}

func TestLeastSquaresOnLinearFit(t *testing.T) {
	res, err := NewLeastSquares().Minimize(linearProblem())
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}

	if math.Abs(res.X[0]-2) > 1e-6 || math.Abs(res.X[1]-1) > 1e-6 {
		t.Errorf("Expected slope 2, intercept 1, got %v", res.X)
	}
	if res.ChiSqr > 1e-10 {
		t.Errorf("Expected near-zero chi-square on exact data, got %g", res.ChiSqr)
	}
	if len(res.Residuals) != 6 {
		t.Errorf("Expected 6 residuals, got %d", len(res.Residuals))
	}
}

func TestNelderMeadOnLinearFit(t *testing.T) {
	res, err := (&NelderMead{}).Minimize(linearProblem())
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}

	if math.Abs(res.X[0]-2) > 1e-3 || math.Abs(res.X[1]-1) > 1e-3 {
		t.Errorf("Expected slope 2, intercept 1, got %v", res.X)
	}
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	// Residuals r_i = x_i make the objective a sphere with minimum at
	// the origin.
	p := Problem{
		Residual: func(dst, x []float64) {
			copy(dst, x)
		},
		Size:  2,
		Init:  []float64{5, -5},
		Lower: []float64{-10, -10},
		Upper: []float64{10, 10},
	}

	res, err := NewMayfly(100, 20, 42).Minimize(p)
	if err != nil {
		t.Fatalf("Minimize failed: %v", err)
	}

	if res.ChiSqr > 0.1 {
		t.Errorf("Expected cost near 0, got %f", res.ChiSqr)
	}
	for i, v := range res.X {
		if math.Abs(v) > 1.0 {
			t.Errorf("Parameter %d = %f, expected near 0", i, v)
		}
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	p := Problem{
		Residual: func(dst, x []float64) {
			copy(dst, x)
		},
		Size:  2,
		Init:  []float64{1, 1},
		Lower: []float64{-5, -5},
		Upper: []float64{5, 5},
	}

	// popSize must be >= 20 for mayfly v0.1.0
	res1, err := NewMayfly(50, 20, 123).Minimize(p)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	res2, err := NewMayfly(50, 20, 123).Minimize(p)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if res1.ChiSqr != res2.ChiSqr {
		t.Errorf("Non-deterministic: cost1=%f, cost2=%f", res1.ChiSqr, res2.ChiSqr)
	}
}

func TestForMethod(t *testing.T) {
	for _, name := range []string{"", MethodLeastSquares, MethodNelderMead, MethodMayfly} {
		m, err := ForMethod(name)
		if err != nil {
			t.Errorf("ForMethod(%q) failed: %v", name, err)
		}
		if m == nil {
			t.Errorf("ForMethod(%q) returned nil minimizer", name)
		}
	}

	if _, err := ForMethod("annealing"); err == nil {
		t.Error("Expected error for unknown method name")
	}
}

func TestProjectClampsToBounds(t *testing.T) {
	got := project([]float64{-5, 0.5, 5}, []float64{0, 0, 0}, []float64{1, 1, 1})
	want := []float64{0, 0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("project[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}
