package tutorials

import (
	"fmt"
	"math"
	"sort"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotbook/internal/figure"
)

func mosaic(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	axd, err := f.Mosaic([][]string{
		{"upleft", "right"},
		{"lowleft", "right"},
	})
	if err != nil {
		return nil, err
	}
	for name, ax := range axd {
		ax.Title.Text = name
	}
	return f, nil
}

func niceFigure(env *Env) (*figure.Figure, error) {
	f := env.newFigure(4, 3)
	f.Background = figure.MustNamed("lightskyblue")
	f.Suptitle = "A Nice Figure"
	ax := f.AddPlot()
	ax.Title.Text = "Axes"
	ax.Title.TextStyle.Font.Style = xfont.StyleOblique
	ax.Title.TextStyle.Font.Size = vg.Points(10)
	return f, nil
}

// keyedData holds the columns of the keyed scatter example.
type keyedData struct {
	a, b, c, d []float64
}

func (e *Env) keyedData() keyedData {
	const n = 50
	k := keyedData{
		a: arange(0, n, 1),
		b: e.randn(n, 0, 10),
		c: make([]float64, n),
		d: e.randn(n, 0, 1),
	}
	for i := range k.c {
		k.c[i] = float64(e.Rand.IntN(50))
	}
	for i := range k.b {
		k.b[i] += k.a[i]
		k.d[i] = math.Abs(k.d[i]) * 100
	}
	return k
}

func usingData(env *Env) (*figure.Figure, error) {
	data := env.keyedData()
	f := env.newFigure(0, 0)
	ax := f.AddPlot()

	pts, err := xys(data.a, data.b)
	if err != nil {
		return nil, err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	cmap := moreland.Kindlmann()
	cmap.SetMin(0)
	cmap.SetMax(49)
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		col, err := cmap.At(data.c[i])
		if err != nil {
			col = figure.C(0)
		}
		// Marker sizes are areas in points squared.
		return draw.GlyphStyle{Color: col, Radius: vg.Points(math.Sqrt(data.d[i]) / 2), Shape: draw.CircleGlyph{}}
	}
	ax.Add(sc)
	ax.X.Label.Text = "entry a"
	ax.Y.Label.Text = "entry b"
	return f, nil
}

func categoryVariable(env *Env) (*figure.Figure, error) {
	names := []string{"group_a", "group_b", "group_c"}
	values := []float64{1, 10, 100}
	f := env.newFigure(12, 3)
	f.Suptitle = "Categorical Plotting"

	barAx, err := f.Subplot(1, 3, 1)
	if err != nil {
		return nil, err
	}
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = figure.C(0)
	bars.LineStyle.Width = 0
	barAx.Add(bars)
	barAx.NominalX(names...)

	x := arange(0, float64(len(names)), 1)
	pts, err := xys(x, values)
	if err != nil {
		return nil, err
	}
	scatterAx, err := f.Subplot(1, 3, 2)
	if err != nil {
		return nil, err
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle.Color = figure.C(0)
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	scatterAx.Add(sc)
	scatterAx.NominalX(names...)

	lineAx, err := f.Subplot(1, 3, 3)
	if err != nil {
		return nil, err
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	l.LineStyle.Color = figure.C(0)
	lineAx.Add(l)
	lineAx.NominalX(names...)
	return f, nil
}

func lineSetp(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	x := []float64{1, 2, 3, 4}
	var lines []*plotter.Line
	for _, y := range [][]float64{{2, 3, 4, 2}, {20, 13, 40, 1}} {
		l, err := linePlot(x, y, 0)
		if err != nil {
			return nil, err
		}
		ax.Add(l)
		lines = append(lines, l)
	}
	// Restyle every line after the fact.
	for _, l := range lines {
		l.LineStyle.Color = figure.MustNamed("r")
		l.LineStyle.Width = vg.Points(3)
	}
	return f, nil
}

// sequence plots y against its index.
func sequence(p *plot.Plot, y ...float64) error {
	l, err := linePlot(arange(0, float64(len(y)), 1), y, 0)
	if err != nil {
		return err
	}
	l.LineStyle.Color = figure.C(0)
	p.Add(l)
	return nil
}

func multiFigure(env *Env) ([]*figure.Figure, error) {
	first := env.newFigure(0, 0)
	top, err := first.Subplot(2, 1, 1)
	if err != nil {
		return nil, err
	}
	if err := sequence(top, 1, 2, 3); err != nil {
		return nil, err
	}
	bottom, err := first.Subplot(2, 1, 2)
	if err != nil {
		return nil, err
	}
	if err := sequence(bottom, 4, 5, 6); err != nil {
		return nil, err
	}

	second := env.newFigure(0, 0)
	ax := second.AddPlot()
	if err := sequence(ax, 4, 5, 6); err != nil {
		return nil, err
	}
	ax.Title.Text = "Easy as 1, 2, 3"
	return []*figure.Figure{first, second}, nil
}

func logAndNonlinear(env *Env) (*figure.Figure, error) {
	var y []float64
	for _, v := range env.randn(1000, 0.5, 0.4) {
		if v > 0 && v < 1 {
			y = append(y, v)
		}
	}
	sort.Float64s(y)
	x := arange(0, float64(len(y)), 1)
	mean := stat.Mean(y, nil)
	centred := make([]float64, len(y))
	for i, v := range y {
		centred[i] = v - mean
	}

	f := env.newFigure(0, 0)
	panels := []struct {
		title  string
		y      []float64
		scale  plot.Normalizer
		ticker plot.Ticker
	}{
		{"linear", y, plot.LinearScale{}, plot.DefaultTicks{}},
		{"log", y, plot.LogScale{}, plot.LogTicks{Prec: -1}},
		{"symlog", centred, figure.SymLogScale{LinThresh: 0.01}, figure.SymLogTicks{LinThresh: 0.01}},
		{"logit", y, figure.LogitScale{}, figure.LogitTicks{}},
	}
	for i, pn := range panels {
		ax, err := f.Subplot(2, 2, i+1)
		if err != nil {
			return nil, err
		}
		l, err := linePlot(x, pn.y, 0)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = figure.C(0)
		ax.Add(plotter.NewGrid(), l)
		ax.Title.Text = pn.title
		ax.Y.Scale = pn.scale
		ax.Y.Tick.Marker = pn.ticker
	}
	return f, nil
}

func sineWave() (t, s []float64) {
	t = arange(0, 1, 0.01)
	s = make([]float64, len(t))
	for i, v := range t {
		s[i] = math.Sin(2 * math.Pi * v)
	}
	return t, s
}

func figAxes(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax1, err := f.Subplot(2, 1, 1)
	if err != nil {
		return nil, err
	}
	ax1.Y.Label.Text = "Voltage [V]"
	ax1.Title.Text = "A sine wave"
	t, s := sineWave()
	l, err := linePlot(t, s, vg.Points(2))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = figure.MustNamed("blue")
	ax1.Add(l)

	ax2, err := f.AddAxes(figure.Rect{Left: 0.15, Bottom: 0.1, Width: 0.7, Height: 0.3})
	if err != nil {
		return nil, err
	}
	h, err := plotter.NewHist(plotter.Values(env.randn(1000, 0, 1)), 50)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = figure.MustNamed("yellow")
	h.LineStyle.Color = figure.MustNamed("blue")
	ax2.Add(h)
	ax2.X.Label.Text = "Time [s]"
	return f, nil
}

func figContainer(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	if _, err := f.Subplot(2, 1, 1); err != nil {
		return nil, err
	}
	if _, err := f.AddAxes(figure.Rect{Left: 0.1, Bottom: 0.1, Width: 0.7, Height: 0.3}); err != nil {
		return nil, err
	}
	for _, ax := range f.Plots() {
		ax.Add(plotter.NewGrid())
	}
	return f, nil
}

func axesContainer(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	if err := f.SetFaceColor(ax, figure.MustNamed("green")); err != nil {
		return nil, err
	}
	l, err := linePlot(env.uniform(100), env.uniform(100), vg.Points(2))
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = figure.MustNamed("blue")
	ax.Add(l)
	return f, nil
}

func axesPatch(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	h, err := plotter.NewHist(plotter.Values(env.randn(1000, 0, 1)), 50)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = figure.C(0)
	ax.Add(h)
	if err := f.SetFaceColor(ax, figure.MustNamed("blue")); err != nil {
		return nil, err
	}
	env.printf("%d\n", len(h.Bins))
	ax.X.Tick.Label.Color = figure.MustNamed("orange")
	return f, nil
}
