package opt

import (
	"fmt"

	"gonum.org/v1/gonum/optimize"
)

// NelderMead adapts gonum's derivative-free simplex method to the
// Minimizer interface. Useful when the numeric Jacobian of the default
// solver misbehaves near the d → Lc divergence.
type NelderMead struct{}

// Minimize runs Nelder-Mead on the sum-of-squares objective.
func (s *NelderMead) Minimize(p Problem) (*Result, error) {
	scratch := make([]float64, p.Size)
	objective := func(x []float64) float64 {
		p.Residual(scratch, project(x, p.Lower, p.Upper))
		var sum float64
		for _, r := range scratch {
			sum += r * r
		}
		return sum
	}

	prob := optimize.Problem{Func: objective}

	res, err := optimize.Minimize(prob, append([]float64(nil), p.Init...), nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("nelder-mead failed: %w", err)
	}

	return finish(p, project(res.X, p.Lower, p.Upper)), nil
}
