package plot3d

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/plotbook/internal/camera"
)

func TestAxes_BoundsFollowData(t *testing.T) {
	a := New()
	lo, hi := a.Bounds()
	assert.Equal(t, r3.Vector{X: -1, Y: -1, Z: -1}, lo)
	assert.Equal(t, r3.Vector{X: 1, Y: 1, Z: 1}, hi)

	require.NoError(t, a.Line(r3.Vector{}, r3.Vector{X: 10, Y: 5, Z: 0}, camera.Style{}))
	lo, hi = a.Bounds()
	assert.InDelta(t, -1, lo.X, 1e-12)
	assert.InDelta(t, 11, hi.X, 1e-12)
	assert.InDelta(t, -0.5, lo.Y, 1e-12)
	assert.InDelta(t, 5.5, hi.Y, 1e-12)
	// Flat in z: padded by a fixed amount
	assert.InDelta(t, -0.5, lo.Z, 1e-12)
	assert.InDelta(t, 0.5, hi.Z, 1e-12)
}

func TestAxes_SetLimits(t *testing.T) {
	a := New()
	require.NoError(t, a.SetLimits(-5, 5))
	require.NoError(t, a.Point(r3.Vector{X: 100}, camera.Style{}))
	lo, hi := a.Bounds()
	assert.Equal(t, r3.Vector{X: -5, Y: -5, Z: -5}, lo)
	assert.Equal(t, r3.Vector{X: 5, Y: 5, Z: 5}, hi)

	assert.Error(t, a.SetLimits(1, 1))
	assert.Error(t, a.SetLimits(2, 1))
	assert.Error(t, a.SetLimits(math.Inf(-1), 0))
}

func TestAxes_RejectsNonFinite(t *testing.T) {
	a := New()
	nan := r3.Vector{X: math.NaN()}
	assert.Error(t, a.Line(r3.Vector{}, nan, camera.Style{}))
	assert.Error(t, a.Arrow(r3.Vector{}, nan, camera.Style{}))
	assert.Error(t, a.Point(nan, camera.Style{}))
	assert.Error(t, a.Text(nan, "n", camera.Style{}))
	assert.Error(t, a.Polygon([]r3.Vector{{}, {X: 1}, nan}, camera.Style{}))
	assert.Error(t, a.Polygon([]r3.Vector{{}, {X: 1}}, camera.Style{}))
	assert.Empty(t, a.shapes)
}

func TestAxes_PlotRangeIsSquare(t *testing.T) {
	a := New()
	a.SetView(30, 30)
	require.NoError(t, a.SetLimits(-1, 1))
	require.NoError(t, camera.NewReferenceFrame(r3.Vector{}, "World").Draw(a))

	p := a.Plot()
	assert.InDelta(t, p.X.Max-p.X.Min, p.Y.Max-p.Y.Min, 1e-9)
	// Frame arrows are within the limit cube, so the plot range covers
	// every projected tip.
	for _, tip := range []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}} {
		x, y := a.View.Project(tip)
		assert.True(t, x >= p.X.Min && x <= p.X.Max, "x %v outside [%v, %v]", x, p.X.Min, p.X.Max)
		assert.True(t, y >= p.Y.Min && y <= p.Y.Max, "y %v outside [%v, %v]", y, p.Y.Min, p.Y.Max)
	}
}

func TestAxes_ProjectsWithViewAtPlotTime(t *testing.T) {
	a := New()
	require.NoError(t, a.Line(r3.Vector{}, r3.Vector{X: 1}, camera.Style{}))
	a.SetView(30, 30)

	ps := a.plotters()
	require.Len(t, ps, 1)
	line, ok := ps[0].(*plotter.Line)
	require.True(t, ok, "got %T", ps[0])
	require.Len(t, line.XYs, 2)
	assert.InDelta(t, -0.5, line.XYs[1].X, 1e-9)
	assert.InDelta(t, -math.Sqrt(3)/4, line.XYs[1].Y, 1e-9)

	// Changing the exported field directly behaves the same way
	a.View = View{Elevation: 0, Azimuth: 0}
	line = a.plotters()[0].(*plotter.Line)
	assert.InDelta(t, 0, line.XYs[1].X, 1e-9)
	assert.InDelta(t, 0, line.XYs[1].Y, 1e-9)
}

func TestAxes_PaintersOrder(t *testing.T) {
	a := New()
	a.SetView(0, 0) // eye on +x
	near := camera.Style{Color: color.RGBA{R: 255, A: 255}}
	far := camera.Style{Color: color.RGBA{B: 255, A: 255}}
	require.NoError(t, a.Text(r3.Vector{X: -5}, "label", camera.Style{}))
	require.NoError(t, a.Point(r3.Vector{X: 2}, near))
	require.NoError(t, a.Point(r3.Vector{X: -2}, far))

	ps := a.plotters()
	require.Len(t, ps, 3)
	first, ok := ps[0].(*plotter.Scatter)
	require.True(t, ok)
	assert.Equal(t, color.Color(far.Color), first.GlyphStyle.Color)
	second := ps[1].(*plotter.Scatter)
	assert.Equal(t, color.Color(near.Color), second.GlyphStyle.Color)
	_, ok = ps[2].(*plotter.Labels)
	assert.True(t, ok, "text should be drawn last")

	// Turning the view around reverses the points
	a.SetView(0, 180)
	ps = a.plotters()
	assert.Equal(t, color.Color(near.Color), ps[0].(*plotter.Scatter).GlyphStyle.Color)
}

func TestAxes_ArrowHasHead(t *testing.T) {
	a := New()
	require.NoError(t, a.Arrow(r3.Vector{}, r3.Vector{Z: 1}, camera.Style{Dashed: true}))
	ps := a.plotters()
	require.Len(t, ps, 2)
	assert.NotEmpty(t, ps[0].(*plotter.Line).Dashes)
	assert.Empty(t, ps[1].(*plotter.Line).Dashes)
}

func TestArrowHead(t *testing.T) {
	head := arrowHead(plotterXY(0, 0), plotterXY(10, 0))
	require.Len(t, head, 3)
	assert.Equal(t, plotterXY(10, 0), head[1])
	// Barbs sit behind the tip, mirrored about the shaft
	assert.Less(t, head[0].X, 10.0)
	assert.InDelta(t, head[0].X, head[2].X, 1e-12)
	assert.InDelta(t, -head[0].Y, head[2].Y, 1e-12)
	assert.InDelta(t, 1.5, math.Hypot(head[0].X-10, head[0].Y), 1e-12)

	assert.Nil(t, arrowHead(plotterXY(1, 1), plotterXY(1, 1)))
}

func TestStyles(t *testing.T) {
	ls := lineStyle(camera.Style{Color: color.RGBA{R: 255, A: 255}, Alpha: 0.5, Width: 3, Dashed: true})
	n := ls.Color.(color.NRGBA)
	assert.Equal(t, uint8(255), n.R)
	assert.Equal(t, uint8(127), n.A)
	assert.Equal(t, vg.Points(3), ls.Width)
	assert.NotEmpty(t, ls.Dashes)

	opaque := color.RGBA{G: 255, A: 255}
	assert.Equal(t, color.Color(opaque), fillColor(camera.Style{Color: opaque}))
	assert.NotNil(t, fillColor(camera.Style{}))
}

func TestCube_Edges(t *testing.T) {
	c := newCube(DefaultView(), r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
	edges := c.edges()
	require.Len(t, edges, 12)
	corners := c.corners()
	for _, e := range edges {
		assert.InDelta(t, 1, corners[e[0]].Distance(corners[e[1]]), 1e-12)
	}
}

func TestAxes_RendersPinholeScene(t *testing.T) {
	a := New()
	a.Title = "Pinhole Camera Geometry"
	a.SetView(30, 30)
	require.NoError(t, camera.DefaultPinholeCamera().Scene().Draw(a))

	img := vgimg.New(vg.Points(300), vg.Points(300))
	a.Draw(draw.New(img))

	var buf bytes.Buffer
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func plotterXY(x, y float64) plotter.XY { return plotter.XY{X: x, Y: y} }
