package plot3d

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotbook/internal/camera"
	"github.com/banshee-data/plotbook/internal/figure"
)

const (
	// arrowHeadRatio is the head length as a fraction of the projected
	// shaft length.
	arrowHeadRatio = 0.15
	arrowHeadAngle = 25 * math.Pi / 180

	// limitPadding widens automatic limits so arrow tips and labels are
	// not clipped.
	limitPadding = 0.1
)

// Axes is a 3D plotting area. It implements camera.Surface by recording
// every primitive in world coordinates. Primitives are projected with the
// current View when the plot is assembled, so the view may change at any
// time before drawing.
type Axes struct {
	Title string
	View  View

	// BackgroundColor fills the area behind the scene.
	BackgroundColor color.Color

	// XLabel, YLabel and ZLabel name the cube axes.
	XLabel, YLabel, ZLabel string

	shapes []shape

	lo, hi  r3.Vector
	hasData bool

	limits    [2]float64
	hasLimits bool
	hideTicks bool
}

var _ camera.Surface = (*Axes)(nil)

type shapeKind int

const (
	lineShape shapeKind = iota
	arrowShape
	polygonShape
	pointShape
	textShape
)

// shape is one recorded primitive.
type shape struct {
	kind  shapeKind
	pts   []r3.Vector
	label string
	sty   camera.Style
}

// depth is the mean depth of the shape's points under v.
func (s shape) depth(v View) float64 {
	var d float64
	for _, p := range s.pts {
		d += v.Depth(p)
	}
	return d / float64(len(s.pts))
}

// New returns empty 3D axes with the default view.
func New() *Axes {
	return &Axes{
		View:            DefaultView(),
		BackgroundColor: color.White,
		XLabel:          "x",
		YLabel:          "y",
		ZLabel:          "z",
	}
}

// SetView changes the elevation and azimuth in degrees.
func (a *Axes) SetView(elevation, azimuth float64) {
	a.View = View{Elevation: elevation, Azimuth: azimuth}
}

// SetLimits fixes all three axes to [min, max].
func (a *Axes) SetLimits(min, max float64) error {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("invalid 3D limits [%v, %v]", min, max)
	}
	a.limits = [2]float64{min, max}
	a.hasLimits = true
	return nil
}

// HideTicks removes the tick labels from all three axes.
func (a *Axes) HideTicks() { a.hideTicks = true }

// Bounds returns the cube that will be drawn: the fixed limits if set,
// otherwise the padded extent of everything drawn so far.
func (a *Axes) Bounds() (lo, hi r3.Vector) {
	if a.hasLimits {
		l, h := a.limits[0], a.limits[1]
		return r3.Vector{X: l, Y: l, Z: l}, r3.Vector{X: h, Y: h, Z: h}
	}
	if !a.hasData {
		return r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 1, Z: 1}
	}
	lo, hi = a.lo, a.hi
	pad := hi.Sub(lo).Mul(limitPadding)
	for _, p := range []*float64{&pad.X, &pad.Y, &pad.Z} {
		if *p == 0 {
			*p = 0.5
		}
	}
	return lo.Sub(pad), hi.Add(pad)
}

func (a *Axes) extend(pts ...r3.Vector) {
	for _, p := range pts {
		if !a.hasData {
			a.lo, a.hi, a.hasData = p, p, true
			continue
		}
		a.lo = r3.Vector{X: math.Min(a.lo.X, p.X), Y: math.Min(a.lo.Y, p.Y), Z: math.Min(a.lo.Z, p.Z)}
		a.hi = r3.Vector{X: math.Max(a.hi.X, p.X), Y: math.Max(a.hi.Y, p.Y), Z: math.Max(a.hi.Z, p.Z)}
	}
}

// add records a primitive after checking its points are finite.
func (a *Axes) add(what string, s shape) error {
	for _, p := range s.pts {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("3d %s: non-finite point %v", what, p)
			}
		}
	}
	a.extend(s.pts...)
	a.shapes = append(a.shapes, s)
	return nil
}

// project returns the screen coordinates of pts under the current view.
func (a *Axes) project(pts ...r3.Vector) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X, xys[i].Y = a.View.Project(p)
	}
	return xys
}

// Line draws a straight segment between two points.
func (a *Axes) Line(from, to r3.Vector, sty camera.Style) error {
	return a.add("line", shape{kind: lineShape, pts: []r3.Vector{from, to}, sty: sty})
}

// Arrow draws a segment with an open head at to.
func (a *Axes) Arrow(from, to r3.Vector, sty camera.Style) error {
	return a.add("arrow", shape{kind: arrowShape, pts: []r3.Vector{from, to}, sty: sty})
}

// arrowHead returns the barb-tip-barb polyline for an arrow ending at tip,
// or nil for a zero length shaft.
func arrowHead(tail, tip plotter.XY) plotter.XYs {
	dx, dy := tail.X-tip.X, tail.Y-tip.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	h := length * arrowHeadRatio
	barb := func(theta float64) plotter.XY {
		s, c := math.Sin(theta), math.Cos(theta)
		return plotter.XY{
			X: tip.X + h*(c*ux-s*uy),
			Y: tip.Y + h*(s*ux+c*uy),
		}
	}
	return plotter.XYs{barb(arrowHeadAngle), tip, barb(-arrowHeadAngle)}
}

// Polygon fills the projected polygon.
func (a *Axes) Polygon(pts []r3.Vector, sty camera.Style) error {
	if len(pts) < 3 {
		return fmt.Errorf("3d polygon needs at least 3 points, got %d", len(pts))
	}
	cp := make([]r3.Vector, len(pts))
	copy(cp, pts)
	return a.add("polygon", shape{kind: polygonShape, pts: cp, sty: sty})
}

// Point marks a single location with a filled circle.
func (a *Axes) Point(p r3.Vector, sty camera.Style) error {
	return a.add("point", shape{kind: pointShape, pts: []r3.Vector{p}, sty: sty})
}

// Text writes label next to p.
func (a *Axes) Text(p r3.Vector, label string, sty camera.Style) error {
	return a.add("text", shape{kind: textShape, pts: []r3.Vector{p}, label: label, sty: sty})
}

// plotters projects the recorded shapes with the current view. Shapes
// are ordered back to front; text is always drawn last.
func (a *Axes) plotters() []plot.Plotter {
	order := make([]shape, len(a.shapes))
	copy(order, a.shapes)
	sort.SliceStable(order, func(i, j int) bool {
		ti, tj := order[i].kind == textShape, order[j].kind == textShape
		if ti != tj {
			return tj
		}
		return order[i].depth(a.View) < order[j].depth(a.View)
	})

	out := make([]plot.Plotter, 0, len(order))
	for _, s := range order {
		xys := a.project(s.pts...)
		switch s.kind {
		case lineShape:
			out = append(out, &plotter.Line{XYs: xys, LineStyle: lineStyle(s.sty)})
		case arrowShape:
			out = append(out, &plotter.Line{XYs: xys, LineStyle: lineStyle(s.sty)})
			// A nil head means the arrow points straight at the viewer
			if head := arrowHead(xys[0], xys[1]); head != nil {
				ls := lineStyle(s.sty)
				ls.Dashes = nil
				out = append(out, &plotter.Line{XYs: head, LineStyle: ls})
			}
		case polygonShape:
			out = append(out, &plotter.Polygon{
				XYs:       []plotter.XYs{xys},
				LineStyle: lineStyle(s.sty),
				Color:     fillColor(s.sty),
			})
		case pointShape:
			out = append(out, &plotter.Scatter{XYs: xys, GlyphStyle: draw.GlyphStyle{
				Color:  fillColor(s.sty),
				Radius: vg.Points(3),
				Shape:  draw.CircleGlyph{},
			}})
		case textShape:
			var c color.Color = color.Black
			if s.sty.Color != nil {
				c = s.sty.Color
			}
			out = append(out, &plotter.Labels{
				XYs:    xys,
				Labels: []string{s.label},
				TextStyle: []text.Style{{
					Color:   c,
					Font:    font.From(plot.DefaultFont, plotter.DefaultFontSize),
					Handler: plot.DefaultTextHandler,
				}},
				Offset: vg.Point{X: vg.Points(2), Y: vg.Points(2)},
			})
		}
	}
	return out
}

// Plot assembles a gonum plot holding the bounding cube, the tick labels
// and every primitive drawn so far, projected with the current view. The
// 2D axes are hidden and the data range is squared so the projection is
// not distorted.
func (a *Axes) Plot() *plot.Plot {
	p := plot.New()
	p.Title.Text = a.Title
	if a.BackgroundColor != nil {
		p.BackgroundColor = a.BackgroundColor
	}
	p.HideAxes()

	lo, hi := a.Bounds()
	cube := newCube(a.View, lo, hi)
	p.Add(cube)
	if !a.hideTicks {
		p.Add(cube.tickLabels(a.XLabel, a.YLabel, a.ZLabel))
	}
	p.Add(a.plotters()...)

	xmin, xmax, ymin, ymax := cube.DataRange()
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2
	half := math.Max(xmax-xmin, ymax-ymin) / 2 * (1 + limitPadding)
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
	return p
}

// Draw renders the axes onto c. It lets Axes stand in for a *plot.Plot
// inside figure layouts.
func (a *Axes) Draw(c draw.Canvas) {
	a.Plot().Draw(c)
}

func lineStyle(sty camera.Style) draw.LineStyle {
	ls := plotter.DefaultLineStyle
	if sty.Color != nil {
		ls.Color = figure.WithAlpha(sty.Color, sty.Alpha)
	}
	ls.Width = vg.Points(1.5)
	if sty.Width > 0 {
		ls.Width = vg.Points(sty.Width)
	}
	if sty.Dashed {
		ls.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	}
	return ls
}

func fillColor(sty camera.Style) color.Color {
	if sty.Color == nil {
		return figure.WithAlpha(color.Black, sty.Alpha)
	}
	return figure.WithAlpha(sty.Color, sty.Alpha)
}
