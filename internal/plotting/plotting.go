// Package plotting renders fit results to image files: the measured
// force-extension curve with the best-fit overlay, and residuals against
// the model's independent variable. It consumes only the read-only
// artifacts a fit run exposes.
package plotting

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/wlcfit/internal/model"
)

// FitCurve writes a scatter of the observations with the best-fit curve
// overlaid. For distance-predicting models the fitted distances run
// along the x axis against the observed forces; otherwise the fitted
// forces run along the y axis against the observed distances. The output
// format follows the file extension (png, svg, pdf).
func FitCurve(meas model.Measurement, bestFit []float64, kind model.Kind, title, path string) error {
	if len(bestFit) != meas.Len() {
		return fmt.Errorf("best-fit length %d does not match measurement length %d", len(bestFit), meas.Len())
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "distance [µm]"
	p.Y.Label.Text = "force [pN]"

	pts := make(plotter.XYs, meas.Len())
	for i := range pts {
		pts[i].X = meas.Distance[i]
		pts[i].Y = meas.Force[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build data scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.Black

	fit := make(plotter.XYs, meas.Len())
	for i := range fit {
		if kind.PredictsDistance() {
			fit[i].X = bestFit[i]
			fit[i].Y = meas.Force[i]
		} else {
			fit[i].X = meas.Distance[i]
			fit[i].Y = bestFit[i]
		}
	}
	sort.Slice(fit, func(i, j int) bool { return fit[i].X < fit[j].X })

	line, err := plotter.NewLine(fit)
	if err != nil {
		return fmt.Errorf("failed to build fit line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}

	p.Add(scatter, line)
	p.Legend.Add("data", scatter)
	p.Legend.Add(kind.String(), line)
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save fit plot: %w", err)
	}
	return nil
}

// Residuals writes the final residuals against the model's independent
// variable: force for distance-predicting models, distance otherwise.
func Residuals(meas model.Measurement, residuals []float64, kind model.Kind, title, path string) error {
	if len(residuals) != meas.Len() {
		return fmt.Errorf("residual length %d does not match measurement length %d", len(residuals), meas.Len())
	}

	p := plot.New()
	p.Title.Text = title

	indep := meas.Distance
	if kind.PredictsDistance() {
		indep = meas.Force
		p.X.Label.Text = "force [pN]"
		p.Y.Label.Text = "residuals [µm]"
	} else {
		p.X.Label.Text = "distance [µm]"
		p.Y.Label.Text = "residuals [pN]"
	}

	pts := make(plotter.XYs, meas.Len())
	for i := range pts {
		pts[i].X = indep[i]
		pts[i].Y = residuals[i]
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("failed to build residual scatter: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(2)

	zero := plotter.NewFunction(func(x float64) float64 { return 0 })
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	p.Add(scatter, zero)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save residual plot: %w", err)
	}
	return nil
}
