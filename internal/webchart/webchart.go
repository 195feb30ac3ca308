// Package webchart renders the bar, line and scatter tutorials as
// standalone ECharts HTML pages.
package webchart

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// AssetsHost serves the echarts javascript referenced by rendered pages.
const AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// Series is one named sequence of values. Color is a CSS colour and may
// be empty to use the theme palette.
type Series struct {
	Name   string
	Values []float64
	Color  string
}

// XYSeries is one named sequence of points on a numeric x axis.
type XYSeries struct {
	Name  string
	X, Y  []float64
	Color string
	// Step draws a staircase ("start", "middle" or "end"); empty draws
	// straight segments.
	Step string
}

func initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:  title,
		Width:      "900px",
		Height:     "600px",
		AssetsHost: AssetsHost,
	})
}

// Bar returns a grouped bar chart with one bar per category per series.
func Bar(title string, categories []string, series ...Series) (*charts.Bar, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(series) > 1)}),
	)
	bar.SetXAxis(categories)
	for _, s := range series {
		if len(s.Values) != len(categories) {
			return nil, fmt.Errorf("series %q has %d values for %d categories", s.Name, len(s.Values), len(categories))
		}
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v}
		}
		var so []charts.SeriesOpts
		if s.Color != "" {
			so = append(so, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}
		so = append(so, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
		bar.AddSeries(s.Name, data, so...)
	}
	return bar, nil
}

// Line returns a line chart with a numeric x axis.
func Line(title string, series ...XYSeries) (*charts.Line, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(series) > 1)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Scale: opts.Bool(true)}),
	)
	for _, s := range series {
		data, err := pairs(s.Name, s.X, s.Y)
		if err != nil {
			return nil, err
		}
		lineData := make([]opts.LineData, len(data))
		for i, v := range data {
			lineData[i] = opts.LineData{Value: v}
		}
		lc := opts.LineChart{ShowSymbol: opts.Bool(false)}
		if s.Step != "" {
			lc.Step = s.Step
		}
		so := []charts.SeriesOpts{charts.WithLineChartOpts(lc)}
		if s.Color != "" {
			so = append(so,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			)
		}
		line.AddSeries(s.Name, lineData, so...)
	}
	return line, nil
}

// Scatter returns a scatter chart. Sizes, if non-nil, gives a symbol
// size per point.
func Scatter(title string, x, y, sizes []float64) (*charts.Scatter, error) {
	data, err := pairs(title, x, y)
	if err != nil {
		return nil, err
	}
	if sizes != nil && len(sizes) != len(x) {
		return nil, fmt.Errorf("scatter %q has %d sizes for %d points", title, len(sizes), len(x))
	}
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		initOpts(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Scale: opts.Bool(true)}),
	)
	sd := make([]opts.ScatterData, len(data))
	for i, v := range data {
		sd[i] = opts.ScatterData{Value: v}
		if sizes != nil {
			sd[i].SymbolSize = int(sizes[i])
		}
	}
	scatter.AddSeries(title, sd, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return scatter, nil
}

func pairs(name string, x, y []float64) ([][]interface{}, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("series %q has %d x values and %d y values", name, len(x), len(y))
	}
	out := make([][]interface{}, len(x))
	for i := range x {
		out[i] = []interface{}{x[i], y[i]}
	}
	return out, nil
}

// Categories returns "0".."n-1", for bar charts indexed by position.
func Categories(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// Render writes a page containing charts to w.
func Render(w io.Writer, title string, chs ...components.Charter) error {
	if len(chs) == 0 {
		return fmt.Errorf("no charts to render")
	}
	page := components.NewPage()
	page.SetPageTitle(title)
	page.SetAssetsHost(AssetsHost)
	page.AddCharts(chs...)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render page %q: %w", title, err)
	}
	return nil
}
