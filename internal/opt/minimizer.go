// Package opt wraps external optimization libraries behind a single
// bounded least-squares Minimizer interface. The fitter treats whatever
// comes back as opaque: convergence quality is judged downstream.
package opt

import "fmt"

// Minimization method names accepted by ForMethod.
const (
	MethodLeastSquares = "leastsq"
	MethodNelderMead   = "neldermead"
	MethodMayfly       = "mayfly"
)

// ResidualFunc fills dst with the residuals at parameter vector x.
// len(dst) is the number of observations, len(x) the parameter dimension.
type ResidualFunc func(dst, x []float64)

// Problem describes one bounded least-squares minimization.
type Problem struct {
	Residual ResidualFunc
	Size     int // number of residuals
	Init     []float64
	Lower    []float64
	Upper    []float64
}

// Result holds the fitted parameter vector and goodness-of-fit data.
type Result struct {
	X         []float64
	ChiSqr    float64 // sum of squared residuals at X
	Residuals []float64
}

// Minimizer is a black-box bounded least-squares solver.
type Minimizer interface {
	Minimize(p Problem) (*Result, error)
}

// ForMethod returns the minimizer registered under the given method name.
// The empty string selects the default Levenberg-Marquardt solver.
func ForMethod(name string) (Minimizer, error) {
	switch name {
	case "", MethodLeastSquares:
		return NewLeastSquares(), nil
	case MethodNelderMead:
		return &NelderMead{}, nil
	case MethodMayfly:
		return NewMayfly(200, 20, 42), nil
	}
	return nil, fmt.Errorf("unknown minimization method %q", name)
}

// project returns x clamped component-wise into [lower, upper].
func project(x, lower, upper []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		switch {
		case v < lower[i]:
			out[i] = lower[i]
		case v > upper[i]:
			out[i] = upper[i]
		default:
			out[i] = v
		}
	}
	return out
}

// finish evaluates the residuals at the final parameter vector and
// packages the result.
func finish(p Problem, x []float64) *Result {
	residuals := make([]float64, p.Size)
	p.Residual(residuals, x)

	var chisqr float64
	for _, r := range residuals {
		chisqr += r * r
	}

	return &Result{
		X:         x,
		ChiSqr:    chisqr,
		Residuals: residuals,
	}
}
