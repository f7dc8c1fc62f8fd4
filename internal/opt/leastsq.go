package opt

import (
	"fmt"

	"github.com/maorshutman/lm"
)

// LeastSquares adapts the external Levenberg-Marquardt library to the
// Minimizer interface. The solver is unconstrained, so bounds are
// enforced by projecting trial points inside the residual closure and
// projecting the returned solution.
type LeastSquares struct {
	MaxIters     int
	ObjectiveTol float64
}

// NewLeastSquares creates the default Levenberg-Marquardt minimizer.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{
		MaxIters:     200,
		ObjectiveTol: 1e-12,
	}
}

// Minimize runs the Levenberg-Marquardt solver with a numeric Jacobian.
func (s *LeastSquares) Minimize(p Problem) (*Result, error) {
	eval := func(dst, x []float64) {
		p.Residual(dst, project(x, p.Lower, p.Upper))
	}

	numJac := lm.NumJac{Func: eval}

	prob := lm.LMProblem{
		Dim:        len(p.Init),
		Size:       p.Size,
		Func:       eval,
		Jac:        numJac.Jac,
		InitParams: append([]float64(nil), p.Init...),
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	res, err := lm.LM(prob, &lm.Settings{Iterations: s.MaxIters, ObjectiveTol: s.ObjectiveTol})
	if err != nil {
		return nil, fmt.Errorf("levenberg-marquardt failed: %w", err)
	}

	return finish(p, project(res.X, p.Lower, p.Upper)), nil
}
