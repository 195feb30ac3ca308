package tutorials

import (
	"fmt"
	"image"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotbook/internal/figure"
	"github.com/banshee-data/plotbook/internal/imageio"
)

func (e *Env) loadImage() (image.Image, error) {
	img, err := imageio.Load(e.ImagePath)
	if err != nil {
		return nil, err
	}
	e.printf("%s\n", imageio.Describe(img))
	return img, nil
}

// luminosity loads the image and returns its first channel.
func (e *Env) luminosity() (*imageio.Matrix, error) {
	img, err := e.loadImage()
	if err != nil {
		return nil, err
	}
	lum, err := imageio.Channel(img, imageio.Red)
	if err != nil {
		return nil, err
	}
	e.printf("%v\n", lum)
	return lum, nil
}

// rowTicks labels a y axis spanning [0, rows] with image row numbers,
// which count down from the top.
func rowTicks(rows int) plot.Ticker {
	return figure.FormatTicks{Format: func(v float64) string {
		return strconv.FormatFloat(float64(rows)-v, 'g', -1, 64)
	}}
}

// showImage draws img over [0, w] x [0, h] in data coordinates.
func showImage(ax *plot.Plot, img image.Image, w, h int) {
	ax.Add(plotter.NewImage(img, 0, 0, float64(w), float64(h)))
	ax.Y.Tick.Marker = rowTicks(h)
	ax.X.Min, ax.X.Max = 0, float64(w)
	ax.Y.Min, ax.Y.Max = 0, float64(h)
}

func imagePlot(env *Env) (*figure.Figure, error) {
	img, err := env.loadImage()
	if err != nil {
		return nil, err
	}
	f := env.newFigure(0, 0)
	b := img.Bounds()
	showImage(f.AddPlot(), img, b.Dx(), b.Dy())
	return f, nil
}

// heatMapWithColorBar draws m with cmap over [min, max] and adds a
// vertical colour bar to the right.
func heatMapWithColorBar(env *Env, m *imageio.Matrix, cmap palette.ColorMap, min, max float64) (*figure.Figure, error) {
	cmap.SetMin(min)
	cmap.SetMax(max)
	pal := cmap.Palette(256)

	hm := plotter.NewHeatMap(m, pal)
	hm.Min, hm.Max = min, max
	cols := pal.Colors()
	hm.Underflow = cols[0]
	hm.Overflow = cols[len(cols)-1]
	hm.Rasterized = true

	f := env.newFigure(0, 0)
	ax, err := f.AddAxes(figure.Rect{Left: 0, Bottom: 0, Width: 0.82, Height: 1})
	if err != nil {
		return nil, err
	}
	ax.Add(hm)
	ax.Y.Tick.Marker = rowTicks(m.Rows)
	ax.X.Min, ax.X.Max = 0, float64(m.Cols)
	ax.Y.Min, ax.Y.Max = 0, float64(m.Rows)

	bar, err := f.AddAxes(figure.Rect{Left: 0.84, Bottom: 0.08, Width: 0.12, Height: 0.84})
	if err != nil {
		return nil, err
	}
	bar.HideX()
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})
	return f, nil
}

func imageLum(env *Env) (*figure.Figure, error) {
	lum, err := env.luminosity()
	if err != nil {
		return nil, err
	}
	lo, hi := lum.Min(), lum.Max()
	if lo == hi {
		hi = lo + 1
	}
	return heatMapWithColorBar(env, lum, moreland.ExtendedKindlmann(), lo, hi)
}

func imageClim(env *Env) (*figure.Figure, error) {
	lum, err := env.luminosity()
	if err != nil {
		return nil, err
	}
	return heatMapWithColorBar(env, lum, moreland.Kindlmann(), 0, 175)
}

func imageHist(env *Env) (*figure.Figure, error) {
	lum, err := env.luminosity()
	if err != nil {
		return nil, err
	}
	counts := lum.Histogram()
	// Bins on the edges 0, 1, ..., 255; the last bin is closed.
	bins := make([]plotter.HistogramBin, 255)
	for i := range bins {
		bins[i] = plotter.HistogramBin{Min: float64(i), Max: float64(i + 1), Weight: counts[i]}
	}
	bins[254].Weight += counts[255]

	f := env.newFigure(0, 0)
	ax := f.AddPlot()
	black := figure.MustNamed("k")
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     1,
		FillColor: black,
		LineStyle: plotter.DefaultLineStyle,
	}
	h.LineStyle.Color = black
	ax.Add(h)
	return f, nil
}

func imageInterpolate(env *Env) (*figure.Figure, error) {
	img, err := imageio.Load(env.ImagePath)
	if err != nil {
		return nil, err
	}
	thumb := imageio.Thumbnail(img, 64, 64)
	b := thumb.Bounds()
	env.printf("thumbnail %dx%d\n", b.Dx(), b.Dy())

	const upscale = 8
	smooth, err := imageio.Resample(thumb, b.Dx()*upscale, b.Dy()*upscale, imageio.Bicubic)
	if err != nil {
		return nil, fmt.Errorf("interpolate thumbnail: %w", err)
	}
	f := env.newFigure(0, 0)
	showImage(f.AddPlot(), smooth, b.Dx(), b.Dy())
	return f, nil
}

