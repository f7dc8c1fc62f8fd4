package wlc

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/wlcfit/internal/model"
	"github.com/cwbudde/wlcfit/internal/opt"
)

// Options control one fit run.
type Options struct {
	// MinDelta stops the loop once the absolute change in fitted Lp
	// since the last accepted iteration drops to or below it [nm].
	// Non-positive values run the loop to MaxIters (an exact zero
	// change still stops).
	MinDelta float64

	// MaxIters bounds the number of minimizer invocations. Zero means
	// the loop never executes.
	MaxIters int

	// Method names the minimization algorithm; empty selects the
	// default Levenberg-Marquardt solver.
	Method string

	// Label identifies the originating dataset in records and logs.
	Label string
}

// Record is one fit iteration's result. S is nil for the basic WLC model.
type Record struct {
	Lc     float64  `json:"lc"`
	Lp     float64  `json:"lp"`
	S      *float64 `json:"s,omitempty"`
	ChiSqr float64  `json:"chisqr"`
	Label  string   `json:"label,omitempty"`
	Iter   int      `json:"iter"`
	DLp    float64  `json:"dLp"`
}

// Outcome reports what happened to a single iteration: the record was
// either accepted into the trace or rejected by the bounds filter, in
// which case Reason names the violated bound and Record carries the raw
// fitted values.
type Outcome struct {
	Record   Record
	Accepted bool
	Reason   string
}

// Summary is the final accepted record repackaged as the authoritative
// fit result.
type Summary struct {
	OptLc      float64  `json:"optLc"`
	OptLp      float64  `json:"optLp"`
	OptS       *float64 `json:"optS,omitempty"`
	ChiSqr     float64  `json:"chisqr"`
	Iterations int      `json:"iterations"`
	Label      string   `json:"label,omitempty"`
}

// RunResult bundles everything a fit run produced: the summary, the
// ordered accepted-record trace, every per-iteration outcome, the last
// minimizer result, and the best-fit curve for plotting.
type RunResult struct {
	Summary  Summary
	Accepted []Record
	Outcomes []Outcome
	Last     *opt.Result
	BestFit  []float64
}

// Fit drives the minimizer named by opts.Method repeatedly against the
// configured model. Each round re-seeds the persistence-length initial
// guess with the previous round's fitted value, accepted or not; rounds
// whose fitted Lc or Lp land on or outside their bounds are dropped from
// the trace but still count toward MaxIters. Returns *NoConvergenceError
// when no round survives the filter.
func (c *Config) Fit(meas model.Measurement, opts Options) (*RunResult, error) {
	minimizer, err := opt.ForMethod(opts.Method)
	if err != nil {
		return nil, err
	}
	return c.FitWith(minimizer, meas, opts)
}

// FitWith is Fit with an explicit minimizer, mainly for callers that
// tune solver settings beyond what the method registry defaults to.
func (c *Config) FitWith(minimizer opt.Minimizer, meas model.Measurement, opts Options) (*RunResult, error) {
	slog.Info("starting fit",
		"model", c.kind.String(),
		"label", opts.Label,
		"minDelta", opts.MinDelta,
		"maxIters", opts.MaxIters,
	)

	var (
		accepted []Record
		outcomes []Outcome
		last     *opt.Result
	)

	// Warm-start accumulator: follows the latest fitted Lp across the
	// loop so the configuration itself stays untouched.
	guessLp := c.lp.Value
	dLp := math.Inf(1)

	i := 0
	for dLp > opts.MinDelta && i < opts.MaxIters {
		res, err := minimizer.Minimize(c.problem(meas, guessLp))
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		last = res

		lc, lp := res.X[0], res.X[1]
		var s *float64
		if c.kind.NeedsStretch() {
			v := res.X[2]
			s = &v
		}

		if len(accepted) > 0 {
			dLp = math.Abs(lp - accepted[len(accepted)-1].Lp)
		}

		rec := Record{
			Lc:     lc,
			Lp:     lp,
			S:      s,
			ChiSqr: res.ChiSqr,
			Label:  opts.Label,
			Iter:   i + 1,
			DLp:    dLp,
		}

		switch {
		case lc <= c.lc.Lower || lc >= c.lc.Upper:
			slog.Info("fitted Lc out of bounds, iteration filtered out",
				"iter", rec.Iter, "lc", lc, "label", opts.Label)
			outcomes = append(outcomes, Outcome{Record: rec, Reason: "Lc out of bounds"})
		case lp <= c.lp.Lower || lp >= c.lp.Upper:
			slog.Info("fitted Lp out of bounds, iteration filtered out",
				"iter", rec.Iter, "lp", lp, "label", opts.Label)
			outcomes = append(outcomes, Outcome{Record: rec, Reason: "Lp out of bounds"})
		default:
			accepted = append(accepted, rec)
			outcomes = append(outcomes, Outcome{Record: rec, Accepted: true})
		}

		// Feedback follows the numeric output, not acceptance: a
		// rejected fit still seeds the next initial guess.
		guessLp = lp
		i++
	}

	if len(accepted) == 0 {
		return nil, &NoConvergenceError{Label: opts.Label, Iterations: i}
	}

	final := accepted[len(accepted)-1]
	summary := Summary{
		OptLc:      final.Lc,
		OptLp:      final.Lp,
		OptS:       final.S,
		ChiSqr:     final.ChiSqr,
		Iterations: final.Iter,
		Label:      opts.Label,
	}

	slog.Info("fit complete",
		"label", opts.Label,
		"iterations", summary.Iterations,
		"lc", summary.OptLc,
		"lp", summary.OptLp,
		"chisqr", summary.ChiSqr,
	)

	return &RunResult{
		Summary:  summary,
		Accepted: accepted,
		Outcomes: outcomes,
		Last:     last,
		BestFit:  bestFit(c.kind, meas, last.Residuals),
	}, nil
}

// problem binds the measurement and the current warm-start guess into a
// bounded least-squares problem. The free parameter vector is
// [Lc, Lp] or [Lc, Lp, S]; kBT is baked into the residual closure.
func (c *Config) problem(meas model.Measurement, guessLp float64) opt.Problem {
	init := []float64{c.lc.Value, guessLp}
	lower := []float64{c.lc.Lower, c.lp.Lower}
	upper := []float64{c.lc.Upper, c.lp.Upper}
	if c.kind.NeedsStretch() {
		init = append(init, c.s.Value)
		lower = append(lower, c.s.Lower)
		upper = append(upper, c.s.Upper)
	}

	return opt.Problem{
		Residual: c.residual(meas),
		Size:     meas.Len(),
		Init:     init,
		Lower:    lower,
		Upper:    upper,
	}
}

// residual binds the data per the model's role: odijk takes force as
// independent and predicts distance, the extensible variants consume the
// full (distance, force) pair, the rest predict force from distance.
func (c *Config) residual(meas model.Measurement) opt.ResidualFunc {
	d, f := meas.Distance, meas.Force
	kbt := c.kbt

	switch c.kind {
	case model.Odijk:
		return func(dst, x []float64) {
			for i := range dst {
				dst[i] = model.OdijkDistance(f[i], kbt, x[0], x[1], x[2]) - d[i]
			}
		}
	case model.EWLC:
		return func(dst, x []float64) {
			for i := range dst {
				dst[i] = model.EWLCForce(d[i], f[i], kbt, x[0], x[1], x[2]) - f[i]
			}
		}
	case model.EBouchiat:
		return func(dst, x []float64) {
			for i := range dst {
				dst[i] = model.EBouchiatForce(d[i], f[i], kbt, x[0], x[1], x[2]) - f[i]
			}
		}
	case model.Bouchiat:
		return func(dst, x []float64) {
			for i := range dst {
				dst[i] = model.BouchiatForce(d[i], kbt, x[0], x[1]) - f[i]
			}
		}
	default:
		return func(dst, x []float64) {
			for i := range dst {
				dst[i] = model.WLCForce(d[i], kbt, x[0], x[1]) - f[i]
			}
		}
	}
}

// bestFit recovers the model prediction from the final residuals: the
// residual is prediction minus observation, with distance observed for
// odijk and force for everything else.
func bestFit(kind model.Kind, meas model.Measurement, residuals []float64) []float64 {
	observed := meas.Force
	if kind.PredictsDistance() {
		observed = meas.Distance
	}

	out := make([]float64, len(residuals))
	for i, r := range residuals {
		out[i] = observed[i] + r
	}
	return out
}
