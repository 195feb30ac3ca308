package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Side selects the edge of the data area a SecondaryAxis is drawn on.
type Side int

const (
	Right Side = iota
	Top
)

// SecondaryAxis draws tick labels for a second coordinate system along
// the right or top edge of a plot's data area. Forward converts a primary
// axis value to the secondary system and Inverse converts back.
type SecondaryAxis struct {
	Side    Side
	Forward func(float64) float64
	Inverse func(float64) float64
	Label   string

	// Ticker chooses secondary tick values; nil means plot.DefaultTicks.
	Ticker plot.Ticker

	TickStyle  text.Style
	LabelStyle text.Style
	LineStyle  draw.LineStyle
	TickLength vg.Length
}

// NewSecondaryAxis returns an axis on side using the given conversions.
func NewSecondaryAxis(side Side, forward, inverse func(float64) float64) *SecondaryAxis {
	return &SecondaryAxis{
		Side:    side,
		Forward: forward,
		Inverse: inverse,
		TickStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 10),
			Handler: plot.DefaultTextHandler,
		},
		LabelStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 12),
			Handler: plot.DefaultTextHandler,
		},
		LineStyle:  draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
		TickLength: vg.Points(4),
	}
}

// LinearMap returns conversions taking [pmin, pmax] onto [smin, smax].
func LinearMap(pmin, pmax, smin, smax float64) (forward, inverse func(float64) float64) {
	k := (smax - smin) / (pmax - pmin)
	forward = func(v float64) float64 { return smin + (v-pmin)*k }
	inverse = func(v float64) float64 { return pmin + (v-smin)/k }
	return forward, inverse
}

// Ticks returns the secondary ticks for a primary range, with Value in
// the secondary system.
func (a *SecondaryAxis) Ticks(pmin, pmax float64) []plot.Tick {
	smin, smax := a.Forward(pmin), a.Forward(pmax)
	if smin > smax {
		smin, smax = smax, smin
	}
	if smin == smax {
		return nil
	}
	t := a.Ticker
	if t == nil {
		t = plot.DefaultTicks{}
	}
	return t.Ticks(smin, smax)
}

// Plot implements plot.Plotter. The labels are drawn inside the data
// area so they stay within the plot's own rectangle.
func (a *SecondaryAxis) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	tick := a.TickStyle
	label := a.LabelStyle

	if a.Side == Top {
		c.StrokeLine2(a.LineStyle, c.Min.X, c.Max.Y, c.Max.X, c.Max.Y)
		tick.XAlign, tick.YAlign = draw.XCenter, draw.YTop
		for _, t := range a.Ticks(p.X.Min, p.X.Max) {
			x := trX(a.Inverse(t.Value))
			if !c.ContainsX(x) {
				continue
			}
			length := a.TickLength
			if t.IsMinor() {
				length /= 2
			}
			c.StrokeLine2(a.LineStyle, x, c.Max.Y, x, c.Max.Y-length)
			c.FillText(tick, vg.Point{X: x, Y: c.Max.Y - a.TickLength - vg.Points(1)}, t.Label)
		}
		if a.Label != "" {
			label.XAlign, label.YAlign = draw.XCenter, draw.YBottom
			c.FillText(label, vg.Point{X: c.Center().X, Y: c.Max.Y + vg.Points(2)}, a.Label)
		}
		return
	}

	c.StrokeLine2(a.LineStyle, c.Max.X, c.Min.Y, c.Max.X, c.Max.Y)
	tick.XAlign, tick.YAlign = draw.XRight, draw.YCenter
	for _, t := range a.Ticks(p.Y.Min, p.Y.Max) {
		y := trY(a.Inverse(t.Value))
		if !c.ContainsY(y) {
			continue
		}
		length := a.TickLength
		if t.IsMinor() {
			length /= 2
		}
		c.StrokeLine2(a.LineStyle, c.Max.X, y, c.Max.X-length, y)
		c.FillText(tick, vg.Point{X: c.Max.X - a.TickLength - vg.Points(1), Y: y}, t.Label)
	}
	if a.Label != "" {
		label.XAlign, label.YAlign = draw.XCenter, draw.YBottom
		label.Rotation = -math.Pi / 2
		c.FillText(label, vg.Point{X: c.Max.X + vg.Points(2), Y: c.Center().Y}, a.Label)
	}
}
