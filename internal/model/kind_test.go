package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKindRoundtrip(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("FJC")
	require.Error(t, err)
	assert.True(t, errors.Is(err, &UnknownKindError{}))
}

func TestKindRoles(t *testing.T) {
	tests := []struct {
		kind             Kind
		needsStretch     bool
		predictsDistance bool
		bindsPair        bool
	}{
		{WLC, false, false, false},
		{EWLC, true, false, true},
		{Bouchiat, false, false, false},
		{EBouchiat, true, false, true},
		{Odijk, true, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.needsStretch, tt.kind.NeedsStretch(), "%s NeedsStretch", tt.kind)
		assert.Equal(t, tt.predictsDistance, tt.kind.PredictsDistance(), "%s PredictsDistance", tt.kind)
		assert.Equal(t, tt.bindsPair, tt.kind.BindsPair(), "%s BindsPair", tt.kind)
	}
}

func TestNewMeasurement(t *testing.T) {
	m, err := NewMeasurement([]float64{0.1, 0.2}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
}

func TestNewMeasurementRejectsBadInput(t *testing.T) {
	_, err := NewMeasurement(nil, nil)
	assert.Error(t, err, "empty measurement")

	_, err = NewMeasurement([]float64{0.1, 0.2}, []float64{1})
	assert.Error(t, err, "length mismatch")

	nan := []float64{0.1, 0.2}
	_, err = NewMeasurement(nan, []float64{1, inf()})
	assert.Error(t, err, "non-finite force")
}

func inf() float64 {
	var zero float64
	return 1 / zero
}
