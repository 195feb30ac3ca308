package figure

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// SymLogScale is linear within [-LinThresh, LinThresh] and logarithmic
// (base 10) outside it, with the two pieces joined continuously.
type SymLogScale struct {
	LinThresh float64
}

var _ plot.Normalizer = SymLogScale{}

func (s SymLogScale) forward(x float64) float64 {
	const base = 10.0
	linscale := 1 / (1 - 1/base)
	t := s.LinThresh
	if t <= 0 {
		t = 1
	}
	ax := math.Abs(x)
	if ax <= t {
		return x * linscale
	}
	return math.Copysign(t*(linscale+math.Log10(ax/t)), x)
}

// Normalize implements plot.Normalizer.
func (s SymLogScale) Normalize(min, max, x float64) float64 {
	fmin, fmax := s.forward(min), s.forward(max)
	return (s.forward(x) - fmin) / (fmax - fmin)
}

// SymLogTicks places major ticks at zero and at signed powers of ten at
// or beyond LinThresh.
type SymLogTicks struct {
	LinThresh float64
}

// Ticks implements plot.Ticker.
func (t SymLogTicks) Ticks(min, max float64) []plot.Tick {
	thresh := t.LinThresh
	if thresh <= 0 {
		thresh = 1
	}
	var ticks []plot.Tick
	add := func(v float64) {
		if v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: formatPow10(v)})
		}
	}
	lo := math.Floor(math.Log10(thresh))
	hi := math.Ceil(math.Log10(math.Max(math.Abs(min), math.Abs(max))))
	for e := hi; e >= lo; e-- {
		add(-math.Pow(10, e))
	}
	add(0)
	for e := lo; e <= hi; e++ {
		add(math.Pow(10, e))
	}
	return ticks
}

func formatPow10(v float64) string {
	if v == 0 {
		return "0"
	}
	e := int(math.Round(math.Log10(math.Abs(v))))
	s := "10^" + strconv.Itoa(e)
	if v < 0 {
		return "-" + s
	}
	return s
}

// LogitScale maps probabilities in (0, 1) through log(p / (1-p)).
// Values at or beyond the open interval are clamped.
type LogitScale struct{}

var _ plot.Normalizer = LogitScale{}

const logitClip = 1e-7

func logit(p float64) float64 {
	p = math.Min(math.Max(p, logitClip), 1-logitClip)
	return math.Log10(p / (1 - p))
}

// Normalize implements plot.Normalizer.
func (LogitScale) Normalize(min, max, x float64) float64 {
	lmin, lmax := logit(min), logit(max)
	return (logit(x) - lmin) / (lmax - lmin)
}

// LogitTicks marks 1/2 and the decades towards 0 and 1: 0.1, 0.01, ...
// and 0.9, 0.99, ... Values above one half are labelled 1-x.
type LogitTicks struct{}

// Ticks implements plot.Ticker.
func (LogitTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	add := func(v float64, label string) {
		if v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
	}
	for e := -6; e <= -1; e++ {
		v := math.Pow(10, float64(e))
		add(v, strconv.FormatFloat(v, 'g', -1, 64))
	}
	add(0.5, "1/2")
	for e := -1; e >= -6; e-- {
		d := math.Pow(10, float64(e))
		add(1-d, "1-"+strconv.FormatFloat(d, 'g', -1, 64))
	}
	return ticks
}
