package model

import (
	"fmt"
	"math"
)

// Measurement holds paired force-extension observations: distance between
// end points in micrometers and the corresponding force in piconewtons.
type Measurement struct {
	Distance []float64
	Force    []float64
}

// NewMeasurement validates paired observations: both series must be
// non-empty, of equal length, and contain only finite values.
func NewMeasurement(distance, force []float64) (Measurement, error) {
	if len(distance) == 0 || len(force) == 0 {
		return Measurement{}, fmt.Errorf("measurement cannot be empty")
	}
	if len(distance) != len(force) {
		return Measurement{}, fmt.Errorf("distance and force length mismatch: %d vs %d", len(distance), len(force))
	}
	for i := range distance {
		if math.IsNaN(distance[i]) || math.IsInf(distance[i], 0) {
			return Measurement{}, fmt.Errorf("distance[%d] is not finite", i)
		}
		if math.IsNaN(force[i]) || math.IsInf(force[i], 0) {
			return Measurement{}, fmt.Errorf("force[%d] is not finite", i)
		}
	}
	return Measurement{Distance: distance, Force: force}, nil
}

// Len returns the number of observation pairs.
func (m Measurement) Len() int {
	return len(m.Distance)
}
