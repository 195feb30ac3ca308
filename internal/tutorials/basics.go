package tutorials

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotbook/internal/figure"
	"github.com/banshee-data/plotbook/internal/units"
)

// randomWalks draws the four N(0, 1) series the first examples share.
func (e *Env) randomWalks(n int) [4][]float64 {
	var d [4][]float64
	for i := range d {
		d[i] = e.randn(n, 0, 1)
	}
	return d
}

func lineStyle(env *Env) (*figure.Figure, error) {
	data := env.randomWalks(100)
	f := env.newFigure(5, 2.7)
	ax := f.AddPlot()
	x := arange(0, 100, 1)

	dashed, err := linePlot(x, cumsum(data[0]), vg.Points(3))
	if err != nil {
		return nil, err
	}
	dashed.LineStyle.Color = figure.MustNamed("blue")
	dashed.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	dotted, err := linePlot(x, cumsum(data[1]), vg.Points(2))
	if err != nil {
		return nil, err
	}
	dotted.LineStyle.Color = figure.MustNamed("orange")
	dotted.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}

	ax.Add(dashed, dotted)
	return f, nil
}

func scatterColors(env *Env) (*figure.Figure, error) {
	data := env.randomWalks(100)
	f := env.newFigure(5, 2.7)
	ax := f.AddPlot()

	pts, err := xys(data[0], data[1])
	if err != nil {
		return nil, err
	}
	face, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	face.GlyphStyle = draw.GlyphStyle{Color: figure.C(0), Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
	edge, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	edge.GlyphStyle = draw.GlyphStyle{Color: figure.MustNamed("k"), Radius: vg.Points(4), Shape: draw.RingGlyph{}}
	ax.Add(face, edge)
	return f, nil
}

// densityHistogram is the normalized 50 bin histogram of x used by the
// text examples.
func densityHistogram(x []float64, fill color.Color) (*plotter.Histogram, error) {
	h, err := plotter.NewHist(plotter.Values(x), 50)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.Normalize(1)
	h.FillColor = figure.WithAlpha(fill, 0.75)
	h.LineStyle.Width = 0
	return h, nil
}

func labelsAndTexts(env *Env) (*figure.Figure, error) {
	const mu, sigma = 115, 15
	x := env.randn(10000, mu, sigma)

	f := env.newFigure(5, 2.7)
	ax := f.AddPlot()
	h, err := densityHistogram(x, figure.C(0))
	if err != nil {
		return nil, err
	}
	ax.Add(plotter.NewGrid(), h)
	ax.X.Label.Text = "Length [cm]"
	ax.X.Label.TextStyle.Font.Size = vg.Points(14)
	ax.X.Label.TextStyle.Color = figure.MustNamed("red")
	ax.Y.Label.Text = "Probability"
	ax.Title.Text = "Aardvark lengths\n (not really)"
	ax.Add(figure.NewText(75, 0.025, `$\mu=115$, $\sigma=15$`))
	ax.X.Min, ax.X.Max = 55, 175
	ax.Y.Min, ax.Y.Max = 0, 0.03
	return f, nil
}

func histogramText(env *Env) (*figure.Figure, error) {
	const mu, sigma = 100, 15
	x := env.randn(10000, mu, sigma)

	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	h, err := densityHistogram(x, figure.MustNamed("g"))
	if err != nil {
		return nil, err
	}
	ax.Add(plotter.NewGrid(), h)
	ax.X.Label.Text = "Smart"
	ax.X.Label.TextStyle.Font.Size = vg.Points(14)
	ax.X.Label.TextStyle.Color = figure.MustNamed("red")
	ax.Y.Label.Text = "Probability"
	ax.Title.Text = "Histogram of IQ"
	ax.Add(figure.NewText(60, 0.025, `$\mu=100$, $\sigma=15$`))
	ax.X.Min, ax.X.Max = 0, 200
	ax.Y.Min, ax.Y.Max = 0, 0.03
	return f, nil
}

// cosine returns t in [0, 5) with step 0.01 and cos(2 pi t).
func cosine() (t, s []float64) {
	t = arange(0, 5, 0.01)
	s = make([]float64, len(t))
	for i, v := range t {
		s[i] = math.Cos(2 * math.Pi * v)
	}
	return t, s
}

func annotations(env *Env) (*figure.Figure, error) {
	f := env.newFigure(5, 2.7)
	ax := f.AddPlot()
	t, s := cosine()
	l, err := linePlot(t, s, vg.Points(2))
	if err != nil {
		return nil, err
	}
	ax.Add(l)
	ax.Add(figure.Annotate("local max", plotter.XY{X: 2, Y: 1}, plotter.XY{X: 3.5, Y: 1.5}))
	ax.Y.Min, ax.Y.Max = -2, 2
	return f, nil
}

func legend(env *Env) (*figure.Figure, error) {
	data := env.randomWalks(100)
	f := env.newFigure(5, 2.7)
	ax := f.AddPlot()
	x := arange(0, 100, 1)

	for i, name := range []string{"data1", "data2"} {
		l, err := linePlot(x, data[i], 0)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = figure.C(i)
		ax.Add(l)
		ax.Legend.Add(name, l)
	}

	pts, err := xys(x, data[2])
	if err != nil {
		return nil, err
	}
	diamonds, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	diamonds.GlyphStyle = draw.GlyphStyle{Color: figure.C(2), Radius: vg.Points(3), Shape: figure.DiamondGlyph{}}
	ax.Add(diamonds)
	ax.Legend.Add("data3", diamonds)
	ax.Legend.Top = true
	return f, nil
}

func scales(env *Env) (*figure.Figure, error) {
	data := env.randomWalks(100)
	f := env.newFigure(5, 2.7)
	axs, err := f.Subplots(1, 2)
	if err != nil {
		return nil, err
	}
	x := arange(0, 100, 1)
	y := make([]float64, len(data[0]))
	for i, v := range data[0] {
		y[i] = math.Pow(10, v)
	}
	for _, ax := range axs[0] {
		l, err := linePlot(x, y, 0)
		if err != nil {
			return nil, err
		}
		ax.Add(l)
	}
	logAx := axs[0][1]
	logAx.Y.Scale = plot.LogScale{}
	logAx.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	return f, nil
}

func ticks(env *Env) (*figure.Figure, error) {
	data := env.randomWalks(100)
	f := env.newFigure(0, 0)
	axs, err := f.Subplots(2, 1)
	if err != nil {
		return nil, err
	}
	x := arange(0, 100, 1)
	for _, row := range axs {
		l, err := linePlot(x, data[0], 0)
		if err != nil {
			return nil, err
		}
		row[0].Add(l)
	}
	axs[0][0].Title.Text = "Automatic ticks"

	manual := axs[1][0]
	manual.Title.Text = "Manual ticks"
	manual.X.Tick.Marker = figure.FixedTicks{
		Values: arange(0, 100, 30),
		Labels: []string{"zero", "30", "sixty", "90"},
	}
	manual.Y.Tick.Marker = figure.FixedTicks{Values: []float64{-1.5, 0, 1.5}}
	return f, nil
}

func secondaryAxis(env *Env) (*figure.Figure, error) {
	f := env.newFigure(7, 2.7)
	axs, err := f.Subplots(1, 2)
	if err != nil {
		return nil, err
	}
	ax1, ax3 := axs[0][0], axs[0][1]
	t, s := cosine()

	// Twin y axis: the straight line is drawn in the left axis'
	// coordinates and labelled on the right in its own.
	l1, err := linePlot(t, s, 0)
	if err != nil {
		return nil, err
	}
	l1.LineStyle.Color = figure.C(0)
	ax1.Add(l1)

	fwd, inv := figure.LinearMap(-1, 1, 0, float64(len(t)-1))
	straight := make([]float64, len(t))
	for i := range straight {
		straight[i] = inv(float64(i))
	}
	l2, err := linePlot(t, straight, 0)
	if err != nil {
		return nil, err
	}
	l2.LineStyle.Color = figure.C(1)
	ax1.Add(l2)
	ax1.Add(figure.NewSecondaryAxis(figure.Right, fwd, inv))
	ax1.Legend.Add("Sine (left)", l1)
	ax1.Legend.Add("Straight (right)", l2)
	ax1.Y.Min, ax1.Y.Max = -1, 1

	l3, err := linePlot(t, s, 0)
	if err != nil {
		return nil, err
	}
	ax3.Add(l3)
	ax3.X.Label.Text = "Angle [rad]"
	top := figure.NewSecondaryAxis(figure.Top, units.Degrees, units.Radians)
	top.Label = "Angle [°]"
	ax3.Add(top)
	return f, nil
}
