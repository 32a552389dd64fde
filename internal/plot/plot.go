// Package plot renders a false position run as a PNG image: the function
// curve over the widened bracket, the initial chord, the bracket itself on
// the x axis, and the endpoint and root markers.
package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/tmoreland/rootlab/internal/rootfind"
	"github.com/tmoreland/rootlab/pkg/constants"
	"github.com/tmoreland/rootlab/pkg/mathutil"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FalsePosition samples f over [a-margin, b+margin] and writes the rendered
// figure to path, creating the parent directory if needed.
func FalsePosition(f rootfind.Func, a, b, root float64, label, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("False Position: %s", label)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	xs := mathutil.Linspace(a-constants.PlotMargin, b+constants.PlotMargin, constants.PlotSamples)
	// Non-finite samples (poles, domain edges) would corrupt the axis
	// ranges, so they are dropped from the curve.
	curve := make(plotter.XYs, 0, len(xs))
	for _, x := range xs {
		y := f(x)
		if !mathutil.IsFinite(y) {
			continue
		}
		curve = append(curve, plotter.XY{X: x, Y: y})
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return fmt.Errorf("failed to build curve: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("f(x)", line)

	axis, err := plotter.NewLine(plotter.XYs{{X: xs[0], Y: 0}, {X: xs[len(xs)-1], Y: 0}})
	if err != nil {
		return fmt.Errorf("failed to build axis line: %w", err)
	}
	axis.Color = color.Gray{Y: 128}
	p.Add(axis)

	fa, fb := f(a), f(b)
	chord, err := plotter.NewLine(plotter.XYs{{X: a, Y: fa}, {X: b, Y: fb}})
	if err != nil {
		return fmt.Errorf("failed to build chord: %w", err)
	}
	chord.Color = color.RGBA{R: 128, B: 128, A: 255}
	chord.Dashes = []vg.Length{vg.Points(6), vg.Points(2)}
	p.Add(chord)
	p.Legend.Add("chord", chord)

	bracket, err := plotter.NewLine(plotter.XYs{{X: a, Y: 0}, {X: b, Y: 0}})
	if err != nil {
		return fmt.Errorf("failed to build bracket band: %w", err)
	}
	bracket.Color = color.RGBA{R: 216, G: 191, B: 216, A: 255}
	bracket.Width = vg.Points(6)
	p.Add(bracket)
	p.Legend.Add("bracket", bracket)

	bounds, err := plotter.NewScatter(plotter.XYs{{X: a, Y: fa}, {X: b, Y: fb}})
	if err != nil {
		return fmt.Errorf("failed to build bound markers: %w", err)
	}
	bounds.GlyphStyle.Shape = draw.PyramidGlyph{}
	bounds.GlyphStyle.Radius = vg.Points(4)
	bounds.GlyphStyle.Color = color.Black
	p.Add(bounds)
	p.Legend.Add("bounds", bounds)

	rootMark, err := plotter.NewScatter(plotter.XYs{{X: root, Y: 0}})
	if err != nil {
		return fmt.Errorf("failed to build root marker: %w", err)
	}
	rootMark.GlyphStyle.Shape = draw.CircleGlyph{}
	rootMark.GlyphStyle.Radius = vg.Points(5)
	rootMark.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(rootMark)
	p.Legend.Add(fmt.Sprintf("root (%.4f)", root), rootMark)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create plot directory %s: %v", dir, err)
		}
	}
	return p.Save(9*vg.Inch, 5*vg.Inch, path)
}
