package opt

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our
// Minimizer interface. A population-based global search: slower than the
// least-squares methods but insensitive to the initial guess.
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter.
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
		seed:     seed,
	}
}

// Minimize executes the Mayfly optimization using the external library.
// The library takes scalar bounds, so the search runs over the unit cube
// and each dimension is mapped onto its own [lower, upper] range.
func (m *MayflyAdapter) Minimize(p Problem) (*Result, error) {
	dim := len(p.Init)

	denorm := func(u []float64) []float64 {
		x := make([]float64, dim)
		for i := 0; i < dim; i++ {
			x[i] = p.Lower[i] + u[i]*(p.Upper[i]-p.Lower[i])
		}
		return x
	}

	scratch := make([]float64, p.Size)

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = func(u []float64) float64 {
		p.Residual(scratch, denorm(u))
		var sum float64
		for _, r := range scratch {
			sum += r * r
		}
		return sum
	}
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = 0
	config.UpperBound = 1

	// Set random seed for reproducibility
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return nil, fmt.Errorf("mayfly optimization failed: %w", err)
	}

	return finish(p, denorm(result.GlobalBest.Position)), nil
}
