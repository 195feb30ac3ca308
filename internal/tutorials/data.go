package tutorials

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// randn draws n samples from N(mu, sigma).
func (e *Env) randn(n int, mu, sigma float64) []float64 {
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: e.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// uniform draws n samples from U[0, 1).
func (e *Env) uniform(n int) []float64 {
	d := distuv.Uniform{Min: 0, Max: 1, Src: e.src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}

// arange returns start, start+step, ... up to but excluding stop.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// cumsum returns the running totals of s.
func cumsum(s []float64) []float64 {
	return floats.CumSum(make([]float64, len(s)), s)
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched data: %d x values, %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	return pts, nil
}

// linePlot returns a solid line through (x, y).
func linePlot(x, y []float64, width vg.Length) (*plotter.Line, error) {
	pts, err := xys(x, y)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	if width > 0 {
		l.LineStyle.Width = width
	}
	return l, nil
}
