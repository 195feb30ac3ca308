package plot3d

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var cubeEdgeColor = color.Gray{Y: 0xb0}

// cube is the bounding box of a 3D scene. It plots its twelve edges.
type cube struct {
	view   View
	lo, hi r3.Vector
}

func newCube(v View, lo, hi r3.Vector) *cube {
	return &cube{view: v, lo: lo, hi: hi}
}

// corners returns the eight vertices indexed by bit pattern zyx.
func (c *cube) corners() [8]r3.Vector {
	var out [8]r3.Vector
	for i := range out {
		pick := func(bit int, lo, hi float64) float64 {
			if i&bit != 0 {
				return hi
			}
			return lo
		}
		out[i] = r3.Vector{
			X: pick(1, c.lo.X, c.hi.X),
			Y: pick(2, c.lo.Y, c.hi.Y),
			Z: pick(4, c.lo.Z, c.hi.Z),
		}
	}
	return out
}

// edges returns the vertex index pairs that differ in exactly one bit.
func (c *cube) edges() [][2]int {
	var out [][2]int
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Plot implements plot.Plotter.
func (c *cube) Plot(canvas draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&canvas)
	corners := c.corners()
	sty := draw.LineStyle{Color: cubeEdgeColor, Width: vg.Points(0.5)}
	for _, e := range c.edges() {
		x0, y0 := c.view.Project(corners[e[0]])
		x1, y1 := c.view.Project(corners[e[1]])
		canvas.StrokeLine2(sty, trX(x0), trY(y0), trX(x1), trY(y1))
	}
}

// DataRange implements plot.DataRanger.
func (c *cube) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, v := range c.corners() {
		x, y := c.view.Project(v)
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	return xmin, xmax, ymin, ymax
}

// tickLabels places tick values and axis names along the three cube edges
// that face the viewer.
func (c *cube) tickLabels(xName, yName, zName string) *cubeText {
	eye := c.view.Eye()
	// Edges on the viewer's side of the cube
	nearY := c.lo.Y
	if eye.Y > 0 {
		nearY = c.hi.Y
	}
	nearX := c.hi.X
	if eye.X < 0 {
		nearX = c.lo.X
	}
	farX := c.lo.X
	if eye.X < 0 {
		farX = c.hi.X
	}

	t := &cubeText{view: c.view}
	axes := []struct {
		name     string
		min, max float64
		at       func(v float64) r3.Vector
	}{
		{xName, c.lo.X, c.hi.X, func(v float64) r3.Vector { return r3.Vector{X: v, Y: nearY, Z: c.lo.Z} }},
		{yName, c.lo.Y, c.hi.Y, func(v float64) r3.Vector { return r3.Vector{X: nearX, Y: v, Z: c.lo.Z} }},
		{zName, c.lo.Z, c.hi.Z, func(v float64) r3.Vector { return r3.Vector{X: farX, Y: nearY, Z: v} }},
	}
	for _, ax := range axes {
		if !(ax.min < ax.max) {
			continue
		}
		for _, tick := range (plot.DefaultTicks{}).Ticks(ax.min, ax.max) {
			if tick.IsMinor() {
				continue
			}
			t.add(ax.at(tick.Value), tick.Label, false)
		}
		if ax.name != "" {
			t.add(ax.at((ax.min+ax.max)/2), ax.name, true)
		}
	}
	return t
}

// cubeText is a set of labels anchored at 3D points.
type cubeText struct {
	view  View
	pts   []r3.Vector
	texts []string
	bold  []bool
}

func (t *cubeText) add(p r3.Vector, s string, bold bool) {
	t.pts = append(t.pts, p)
	t.texts = append(t.texts, s)
	t.bold = append(t.bold, bold)
}

// Plot implements plot.Plotter.
func (t *cubeText) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	tick := text.Style{
		Color:   color.Gray{Y: 0x40},
		Font:    font.From(plotter.DefaultFont, vg.Points(7)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
	name := tick
	name.Color = color.Black
	name.Font = font.From(plotter.DefaultFont, vg.Points(9))

	for i, pt := range t.pts {
		x, y := t.view.Project(pt)
		sty := tick
		if t.bold[i] {
			sty = name
		}
		// Nudge labels off the edge they annotate
		c.FillText(sty, vg.Point{X: trX(x), Y: trY(y) - vg.Points(3)}, t.texts[i])
	}
}
