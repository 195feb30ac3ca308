// Package tutorials holds the catalogue of plotting examples. Each example
// builds its data, lays out one or more figures and returns them for the
// caller to save; none of them display anything.
package tutorials

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sort"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/banshee-data/plotbook/internal/config"
	"github.com/banshee-data/plotbook/internal/figure"
	"github.com/banshee-data/plotbook/internal/monitoring"
	"github.com/banshee-data/plotbook/internal/plot3d"
	"github.com/banshee-data/plotbook/internal/units"
)

// DefaultSeed seeds the random examples when no seed is configured.
const DefaultSeed = 19680801

// Env carries the inputs shared by all examples.
type Env struct {
	// Rand draws every random sample, so a seed reproduces a run.
	Rand *rand.Rand
	src  rand.Source

	// Out receives the values the examples print. Nil discards them.
	Out io.Writer

	// ImagePath is the picture read by the image examples.
	ImagePath string

	// View is the default 3D view for the camera examples.
	View plot3d.View

	// Width and Height are the default figure size in inches.
	Width, Height float64

	// SpeedUnits is the unit the running-speed bars are labelled in.
	SpeedUnits string
}

// NewEnv returns an environment seeded with seed and default settings.
func NewEnv(seed uint64) *Env {
	src := rand.NewPCG(seed, seed)
	return &Env{
		Rand:      rand.New(src),
		src:       src,
		ImagePath: "stinkbug.png",
		View:      plot3d.DefaultView(),
		Width:      6.4,
		Height:     4.8,
		SpeedUnits: units.KPH,
	}
}

// EnvFromConfig returns an environment seeded and sized from cfg. Callers
// build a fresh one per example so every example sees the same random
// stream for a given seed.
func EnvFromConfig(cfg *config.RenderConfig, out io.Writer) *Env {
	env := NewEnv(uint64(cfg.GetSeed()))
	env.Out = out
	env.ImagePath = cfg.GetImagePath()
	env.View = plot3d.View{Elevation: cfg.GetViewElevation(), Azimuth: cfg.GetViewAzimuth()}
	env.Width = cfg.GetWidthInches()
	env.Height = cfg.GetHeightInches()
	env.SpeedUnits = cfg.GetSpeedUnits()
	return env
}

func (e *Env) printf(format string, args ...interface{}) {
	if e.Out == nil {
		return
	}
	fmt.Fprintf(e.Out, format, args...)
}

// newFigure returns a figure of w x h inches, or the default size when w or
// h is zero.
func (e *Env) newFigure(w, h float64) *figure.Figure {
	if w <= 0 || h <= 0 {
		w, h = e.Width, e.Height
	}
	return figure.NewInches(w, h)
}

// Example is one registered tutorial.
type Example struct {
	Name  string
	Title string

	// NeedsImage marks examples that read Env.ImagePath.
	NeedsImage bool

	// Render produces the example's figures in order.
	Render func(env *Env) ([]*figure.Figure, error)

	// Web optionally produces interactive charts of the same data.
	Web func(env *Env) ([]components.Charter, error)
}

// single adapts a one-figure builder to Example.Render.
func single(build func(env *Env) (*figure.Figure, error)) func(env *Env) ([]*figure.Figure, error) {
	return func(env *Env) ([]*figure.Figure, error) {
		f, err := build(env)
		if err != nil {
			return nil, err
		}
		return []*figure.Figure{f}, nil
	}
}

var catalogue = []Example{
	{Name: "t0007_line_style", Title: "Line styles", Render: single(lineStyle), Web: lineStyleWeb},
	{Name: "t0008_scatter_colors", Title: "Scatter colours", Render: single(scatterColors), Web: scatterColorsWeb},
	{Name: "t0010_labels_and_texts", Title: "Labels and texts", Render: single(labelsAndTexts)},
	{Name: "t0011_annotations", Title: "Annotations", Render: single(annotations)},
	{Name: "t0012_legend", Title: "Legend", Render: single(legend)},
	{Name: "t0013_scale", Title: "Axis scales", Render: single(scales)},
	{Name: "t0014_tick", Title: "Automatic and manual ticks", Render: single(ticks)},
	{Name: "t0017_secondary_axis", Title: "Twin and secondary axes", Render: single(secondaryAxis)},
	{Name: "t0019_mosaic", Title: "Subplot mosaic", Render: single(mosaic)},
	{Name: "t0020_figure", Title: "A nice figure", Render: single(niceFigure)},
	{Name: "t0026_using_data", Title: "Plotting keyed data", Render: single(usingData), Web: usingDataWeb},
	{Name: "t0027_category_variable", Title: "Categorical plotting", Render: single(categoryVariable), Web: categoryVariableWeb},
	{Name: "t0030_line_setp", Title: "Setting line properties", Render: single(lineSetp), Web: lineSetpWeb},
	{Name: "t0032_multi_figure", Title: "Several figures", Render: multiFigure},
	{Name: "t0033_text", Title: "Histogram of IQ", Render: single(histogramText)},
	{Name: "t0034_log_and_nonlinear", Title: "Log and nonlinear scales", Render: single(logAndNonlinear)},
	{Name: "t0035_image_plot", Title: "Image display", NeedsImage: true, Render: single(imagePlot)},
	{Name: "t0036_image_lum", Title: "Luminosity with colour map", NeedsImage: true, Render: single(imageLum)},
	{Name: "t0037_image_hist", Title: "Luminosity histogram", NeedsImage: true, Render: single(imageHist), Web: imageHistWeb},
	{Name: "t0038_image_clim", Title: "Colour limits", NeedsImage: true, Render: single(imageClim)},
	{Name: "t0038_lifecycle", Title: "Company revenue", Render: single(lifecycle), Web: lifecycleWeb},
	{Name: "t0039_fig_axes", Title: "Subplot and free axes", Render: single(figAxes)},
	{Name: "t0039_image_interpolate", Title: "Interpolated thumbnail", NeedsImage: true, Render: single(imageInterpolate)},
	{Name: "t0040_fig_container", Title: "Figure container", Render: single(figContainer)},
	{Name: "t0041_axes_container", Title: "Axes container", Render: single(axesContainer)},
	{Name: "t0042_axes_patch", Title: "Axes patch", Render: single(axesPatch)},
	{Name: "t0043_axis_container", Title: "Axis container", Render: single(axisContainer)},
	{Name: "t0044_axis_example", Title: "Styling tick labels and lines", Render: single(axisExample)},
	{Name: "t0045_axis_y", Title: "Formatted right-hand labels", Render: single(axisY)},
	{Name: "t0046_bar_color", Title: "Fruit supply by kind and color", Render: single(barColor), Web: barColorWeb},
	{Name: "t0050_bar_format_string", Title: "Gelato sales by flavor", Render: single(barFormatString), Web: barFormatStringWeb},
	{Name: "t0051_bar_callable", Title: "Running speeds", Render: single(barCallable), Web: barCallableWeb},
	{Name: "camera_rotation", Title: "Camera Rotation", Render: single(cameraRotation)},
	{Name: "camera_translation", Title: "Camera Translation", Render: single(cameraTranslation)},
	{Name: "pinhole_geometry", Title: "Pinhole Camera Geometry", Render: single(pinholeGeometry)},
}

// All returns every example sorted by name.
func All() []Example {
	out := make([]Example, len(catalogue))
	copy(out, catalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the sorted example names.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}
	return names
}

// Lookup finds an example by name.
func Lookup(name string) (Example, error) {
	for _, e := range catalogue {
		if e.Name == name {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example %q", name)
}

// Run renders one example and logs how many figures it produced.
func Run(env *Env, e Example) ([]*figure.Figure, error) {
	figs, err := e.Render(env)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	monitoring.Debugf("%s: %d figure(s)", e.Name, len(figs))
	return figs, nil
}
