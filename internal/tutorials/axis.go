package tutorials

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/plotbook/internal/figure"
)

// printTicks reports the major and minor ticks of an axis over its
// current range.
func (e *Env) printTicks(ax *plot.Axis) {
	var locs, lines, minorLines []float64
	var labels []string
	for _, t := range ax.Tick.Marker.Ticks(ax.Min, ax.Max) {
		if t.IsMinor() {
			minorLines = append(minorLines, t.Value)
			continue
		}
		locs = append(locs, t.Value)
		labels = append(labels, t.Label)
		lines = append(lines, t.Value)
	}
	e.printf("%v\n", locs)
	e.printf("%q\n", labels)
	e.printf("<%d tick lines>\n", len(lines))
	e.printf("%q\n", make([]string, len(minorLines)))
	e.printf("<%d minor tick lines>\n", len(minorLines))
}

func axisContainer(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	ax.X.Min, ax.X.Max = 0, 1
	ax.Y.Min, ax.Y.Max = 0, 1
	env.printTicks(&ax.X)
	return f, nil
}

func axisExample(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax, err := f.AddAxes(figure.Rect{Left: 0.1, Bottom: 0.3, Width: 0.4, Height: 0.4})
	if err != nil {
		return nil, err
	}
	if err := f.SetFaceColor(ax, figure.MustNamed("red")); err != nil {
		return nil, err
	}
	ax.X.Min, ax.X.Max = 0, 1
	ax.Y.Min, ax.Y.Max = 0, 1

	ax.X.Tick.Label.Color = figure.MustNamed("red")
	ax.X.Tick.Label.Rotation = math.Pi / 4
	ax.X.Tick.Label.Font.Size = vg.Points(16)

	ax.Y.Tick.LineStyle.Color = figure.MustNamed("b")
	ax.Y.Tick.LineStyle.Width = vg.Points(5)
	ax.Y.Tick.Length = vg.Points(30)
	return f, nil
}

func axisY(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	y := env.uniform(20)
	for i := range y {
		y[i] *= 100
	}
	if err := sequence(ax, y...); err != nil {
		return nil, err
	}

	ax.Y.Tick.Marker = figure.NoLabels{}
	identity := func(v float64) float64 { return v }
	right := figure.NewSecondaryAxis(figure.Right, identity, identity)
	right.Ticker = figure.FormatTicks{Format: func(v float64) string { return fmt.Sprintf("$%1.3f", v) }}
	right.TickStyle.Color = figure.MustNamed("green")
	ax.Add(right)
	return f, nil
}
