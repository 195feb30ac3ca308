package tutorials

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/banshee-data/plotbook/internal/webchart"
)

// The Web builders draw the same data as their Render counterparts when
// given an Env with the same seed.

func lineStyleWeb(env *Env) ([]components.Charter, error) {
	data := env.randomWalks(100)
	x := arange(0, 100, 1)
	line, err := webchart.Line("Line styles",
		webchart.XYSeries{Name: "data1", X: x, Y: cumsum(data[0]), Color: "blue"},
		webchart.XYSeries{Name: "data2", X: x, Y: cumsum(data[1]), Color: "orange"},
	)
	if err != nil {
		return nil, err
	}
	return []components.Charter{line}, nil
}

func scatterColorsWeb(env *Env) ([]components.Charter, error) {
	data := env.randomWalks(100)
	sc, err := webchart.Scatter("Scatter colours", data[0], data[1], nil)
	if err != nil {
		return nil, err
	}
	return []components.Charter{sc}, nil
}

func usingDataWeb(env *Env) ([]components.Charter, error) {
	data := env.keyedData()
	sizes := make([]float64, len(data.d))
	for i, d := range data.d {
		sizes[i] = math.Max(1, math.Sqrt(d))
	}
	sc, err := webchart.Scatter("Plotting keyed data", data.a, data.b, sizes)
	if err != nil {
		return nil, err
	}
	return []components.Charter{sc}, nil
}

func categoryVariableWeb(env *Env) ([]components.Charter, error) {
	bar, err := webchart.Bar("Categorical Plotting", []string{"group_a", "group_b", "group_c"},
		webchart.Series{Name: "values", Values: []float64{1, 10, 100}})
	if err != nil {
		return nil, err
	}
	return []components.Charter{bar}, nil
}

func lineSetpWeb(env *Env) ([]components.Charter, error) {
	x := []float64{1, 2, 3, 4}
	line, err := webchart.Line("Setting line properties",
		webchart.XYSeries{Name: "line 1", X: x, Y: []float64{2, 3, 4, 2}, Color: "red"},
		webchart.XYSeries{Name: "line 2", X: x, Y: []float64{20, 13, 40, 1}, Color: "red"},
	)
	if err != nil {
		return nil, err
	}
	return []components.Charter{line}, nil
}

func imageHistWeb(env *Env) ([]components.Charter, error) {
	lum, err := env.luminosity()
	if err != nil {
		return nil, err
	}
	counts := lum.Histogram()
	bar, err := webchart.Bar("Luminosity histogram", webchart.Categories(len(counts)),
		webchart.Series{Name: "pixels", Values: counts, Color: "black"})
	if err != nil {
		return nil, err
	}
	return []components.Charter{bar}, nil
}

