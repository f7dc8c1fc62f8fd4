// Package wlc estimates worm-like chain parameters (contour length,
// persistence length, stretch modulus) from force-extension measurements
// by iteratively re-fitting one of the closed-form models, warm-starting
// each round from the previous persistence-length estimate until the
// estimate stabilizes.
package wlc

import (
	"math"

	"github.com/cwbudde/wlcfit/internal/model"
)

// Boltzmann is the Boltzmann constant in pN·nm/K.
const Boltzmann = 0.013806

// kbtTolerance is the relative slack allowed between a supplied kBT and
// one derived from the supplied temperature before the two are treated
// as contradictory.
const kbtTolerance = 0.01

// Param holds an initial value with its lower and upper fitting bounds.
// The bounds double as the acceptance filter: fitted values landing on or
// outside them cause the iteration to be discarded.
type Param struct {
	Value float64
	Lower float64
	Upper float64
}

// ParamSpec declares the physical parameters for one fit. At least one
// of KBT [pN·nm] or T [°C] must be set; when both are set they must
// agree via kBT = k_B·(273.15 + T). S is consulted only for models that
// carry a stretch modulus.
type ParamSpec struct {
	KBT *float64
	T   *float64
	Lc  Param // contour length [nm]
	Lp  Param // persistence length [nm]
	S   Param // stretch modulus [pN]
}

// Config is a compiled fit configuration. It is immutable after Compile
// and safe to reuse across independent fit runs; per-run warm-start state
// lives inside Fit, not here.
type Config struct {
	kind model.Kind
	kbt  float64 // held fixed, never a free parameter
	lc   Param
	lp   Param
	s    Param
}

// Compile validates the parameter specification and derives the fixed
// thermal energy. Contradictory kBT/T pairs are rejected with a
// *ConfigError.
func Compile(kind model.Kind, spec ParamSpec) (*Config, error) {
	var kbt float64
	switch {
	case spec.KBT != nil && spec.T == nil:
		kbt = *spec.KBT
	case spec.KBT == nil && spec.T != nil:
		kbt = Boltzmann * (273.15 + *spec.T)
	case spec.KBT != nil && spec.T != nil:
		derived := Boltzmann * (273.15 + *spec.T)
		if math.Abs(*spec.KBT-derived) > kbtTolerance*math.Abs(derived) {
			return nil, &ConfigError{Reason: "kBT and T are contradictory, provide either one or consistent values"}
		}
		kbt = *spec.KBT
	default:
		return nil, &ConfigError{Reason: "either kBT or T must be provided"}
	}

	cfg := &Config{
		kind: kind,
		kbt:  kbt,
		lc:   spec.Lc,
		lp:   spec.Lp,
	}
	if kind.NeedsStretch() {
		cfg.s = spec.S
	}
	return cfg, nil
}

// Kind returns the model this configuration fits.
func (c *Config) Kind() model.Kind {
	return c.kind
}

// KBT returns the fixed thermal energy in pN·nm.
func (c *Config) KBT() float64 {
	return c.kbt
}
