package tutorials

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotbook/internal/figure"
	"github.com/banshee-data/plotbook/internal/units"
	"github.com/banshee-data/plotbook/internal/webchart"
)

// revenue is the company revenue table, in display order.
var revenue = []struct {
	name  string
	value float64
}{
	{"Barton LLC", 109438.50},
	{"Frami, Hills and Schmidt", 103569.59},
	{"Fritsch, Russel and Anderson", 112214.71},
	{"Jerde-Hilpert", 112591.43},
	{"Keeling LLC", 100934.30},
	{"Koepp Ltd", 103660.54},
	{"Kulas Inc", 137351.96},
	{"Trantow-Barrows", 123381.38},
	{"White-Trantow", 135841.99},
	{"Will LLC", 104437.60},
}

func revenueColumns() (names []string, values []float64) {
	for _, r := range revenue {
		names = append(names, r.name)
		values = append(values, r.value)
	}
	return names, values
}

// currency formats dollars as $123K, or $1.2M from a million up.
func currency(x float64) string {
	if x >= 1e6 {
		return fmt.Sprintf("$%1.1fM", x*1e-6)
	}
	return fmt.Sprintf("$%1.0fK", x*1e-3)
}

func lifecycle(env *Env) (*figure.Figure, error) {
	names, values := revenueColumns()
	mean := stat.Mean(values, nil)

	f := env.newFigure(16, 8)
	background := figure.MustNamed("#f0f0f0")
	f.Background = background
	ax := f.AddPlot()
	if err := f.SetFaceColor(ax, background); err != nil {
		return nil, err
	}

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = figure.C(0)
	bars.LineStyle.Width = 0
	ax.Add(plotter.NewGrid(), bars)
	ax.NominalY(names...)

	meanLine := figure.VLine(mean)
	meanLine.Color = figure.MustNamed("r")
	meanLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	ax.Add(meanLine)

	for _, group := range []int{1, 5, 7} {
		note := figure.NewText(145000, float64(group), "New Company")
		note.Style.YAlign = draw.YCenter
		ax.Add(note)
	}

	ax.Title.Text = "Company Revenue"
	ax.Title.Padding = vg.Points(12)
	ax.X.Label.Text = "Total Revenue"
	ax.Y.Label.Text = "Company"
	ax.X.Min, ax.X.Max = -10000, 140000
	ax.X.Tick.Marker = figure.FormatTicks{
		Ticker: figure.FixedTicks{Values: []float64{0, 25e3, 50e3, 75e3, 100e3, 125e3}},
		Format: currency,
	}
	ax.X.Tick.Label.Rotation = math.Pi / 4
	ax.X.Tick.Label.XAlign = draw.XRight
	return f, nil
}

func lifecycleWeb(env *Env) ([]components.Charter, error) {
	names, values := revenueColumns()
	bar, err := webchart.Bar("Company Revenue", names, webchart.Series{Name: "revenue", Values: values})
	if err != nil {
		return nil, err
	}
	bar.XYReversal()
	return []components.Charter{bar}, nil
}

var (
	fruits      = []string{"apple", "blueberry", "cherry", "orange"}
	fruitCounts = []float64{40, 100, 30, 55}
	// A leading underscore keeps a bar out of the legend.
	fruitLabels = []string{"red", "blue", "_red", "orange"}
	fruitColors = []string{"tab:red", "tab:blue", "tab:red", "tab:orange"}
)

func barColor(env *Env) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	ax.Legend.Add("Fruit color")
	for i, count := range fruitCounts {
		col, err := figure.Named(fruitColors[i])
		if err != nil {
			return nil, err
		}
		bar, err := plotter.NewBarChart(plotter.Values{count}, vg.Points(40))
		if err != nil {
			return nil, fmt.Errorf("bar chart: %w", err)
		}
		bar.XMin = float64(i)
		bar.Color = col
		bar.LineStyle.Width = 0
		ax.Add(bar)
		if !strings.HasPrefix(fruitLabels[i], "_") {
			ax.Legend.Add(fruitLabels[i], bar)
		}
	}
	ax.NominalX(fruits...)
	ax.Legend.Top = true
	ax.Y.Label.Text = "fruit supply"
	ax.Title.Text = "Fruit supply by kind and color"
	return f, nil
}

func barColorWeb(env *Env) ([]components.Charter, error) {
	bar, err := webchart.Bar("Fruit supply by kind and color", fruits,
		webchart.Series{Name: "fruit supply", Values: fruitCounts})
	if err != nil {
		return nil, err
	}
	return []components.Charter{bar}, nil
}

// labelledBars draws one bar per name with a text label above each.
func labelledBars(env *Env, names []string, values []float64, format func(float64) string) (*figure.Figure, error) {
	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(60))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = figure.C(0)
	bars.LineStyle.Width = 0
	ax.Add(bars, figure.NewBarLabels(bars, format))
	ax.NominalX(names...)
	return f, nil
}

var (
	flavors     = []string{"Coffee", "Salted Caramel", "Pistachio"}
	pintsSold   = []float64{4000000, 2000000, 70000000}
	animals     = []string{"Lion", "Gazelle", "Cheetah"}
	speedsInMPH = []float64{50, 60, 75}
)

func barFormatString(env *Env) (*figure.Figure, error) {
	f, err := labelledBars(env, flavors, pintsSold, func(v float64) string { return figure.Grouped(v, 3) })
	if err != nil {
		return nil, err
	}
	ax := f.Plots()[0]
	ax.Y.Label.Text = "pints sold"
	ax.Title.Text = "Gelato sales by flavor"
	ax.Y.Min, ax.Y.Max = -1000, 80000000
	return f, nil
}

func barFormatStringWeb(env *Env) ([]components.Charter, error) {
	bar, err := webchart.Bar("Gelato sales by flavor", flavors, webchart.Series{Name: "pints sold", Values: pintsSold})
	if err != nil {
		return nil, err
	}
	return []components.Charter{bar}, nil
}

// speedLabel formats a speed given in mph as a value in unit.
func speedLabel(unit string) (func(mph float64) string, error) {
	if !units.IsValid(unit) {
		return nil, fmt.Errorf("unknown speed unit %q, expected one of %s", unit, units.GetValidUnitsString())
	}
	return func(mph float64) string {
		return fmt.Sprintf("%.2f %s", units.Convert(mph, units.MPH, unit), units.Label(unit))
	}, nil
}

func barCallable(env *Env) (*figure.Figure, error) {
	label, err := speedLabel(env.SpeedUnits)
	if err != nil {
		return nil, err
	}
	f, err := labelledBars(env, animals, speedsInMPH, label)
	if err != nil {
		return nil, err
	}
	ax := f.Plots()[0]
	ax.Y.Label.Text = "speed in MPH"
	ax.Title.Text = "Running speeds"
	ax.Y.Min, ax.Y.Max = 0, 80
	return f, nil
}

func barCallableWeb(env *Env) ([]components.Charter, error) {
	bar, err := webchart.Bar("Running speeds", animals, webchart.Series{Name: "speed in MPH", Values: speedsInMPH})
	if err != nil {
		return nil, err
	}
	return []components.Charter{bar}, nil
}
