package figure

import (
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Patch fills the data area of a plot. Add it before other plotters.
type Patch struct {
	Color color.Color
}

// Plot implements plot.Plotter.
func (pt *Patch) Plot(c draw.Canvas, _ *plot.Plot) {
	if pt.Color == nil {
		return
	}
	c.FillPolygon(pt.Color, []vg.Point{
		c.Min,
		{X: c.Max.X, Y: c.Min.Y},
		c.Max,
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// RefLine is a line spanning the whole data area at a fixed data value.
type RefLine struct {
	Value    float64
	Vertical bool
	draw.LineStyle
}

// VLine returns a vertical reference line at x.
func VLine(x float64) *RefLine {
	return &RefLine{Value: x, Vertical: true, LineStyle: plotter.DefaultLineStyle}
}

// HLine returns a horizontal reference line at y.
func HLine(y float64) *RefLine {
	return &RefLine{Value: y, LineStyle: plotter.DefaultLineStyle}
}

// Plot implements plot.Plotter.
func (l *RefLine) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	if l.Vertical {
		x := trX(l.Value)
		if c.ContainsX(x) {
			c.StrokeLine2(l.LineStyle, x, c.Min.Y, x, c.Max.Y)
		}
		return
	}
	y := trY(l.Value)
	if c.ContainsY(y) {
		c.StrokeLine2(l.LineStyle, c.Min.X, y, c.Max.X, y)
	}
}

// TextStyle returns the default style for annotation text. Text wrapped
// in $...$ is rendered as LaTeX math when the math parser accepts it and
// as plain text otherwise.
func TextStyle(s string) text.Style {
	sty := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, 10),
		Handler: plot.DefaultTextHandler,
	}
	if strings.Count(s, "$") >= 2 {
		if h, ok := latexHandler(s, sty.Font); ok {
			sty.Handler = h
		}
	}
	return sty
}

// latexHandler reports whether every line of s can be laid out as LaTeX.
// The math parser panics on constructs it does not implement.
func latexHandler(s string, fnt font.Font) (h text.Handler, ok bool) {
	l := text.Latex{Fonts: font.DefaultCache}
	defer func() {
		if r := recover(); r != nil {
			h, ok = nil, false
		}
	}()
	for _, line := range l.Lines(s) {
		l.Box(line, fnt)
	}
	return l, true
}

// Text is a string anchored at a data coordinate. Unlike plotter.Labels
// it does not widen the axes.
type Text struct {
	X, Y  float64
	Text  string
	Style text.Style
}

// NewText returns text at (x, y) with the default style.
func NewText(x, y float64, s string) *Text {
	return &Text{X: x, Y: y, Text: s, Style: TextStyle(s)}
}

// Plot implements plot.Plotter.
func (t *Text) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	c.FillText(t.Style, vg.Point{X: trX(t.X), Y: trY(t.Y)}, t.Text)
}

// Annotation writes Text at TextXY and draws a filled arrow from the text
// towards the annotated point XY. Shrink is the fraction of the arrow
// length trimmed from both ends.
type Annotation struct {
	Text   string
	XY     plotter.XY
	TextXY plotter.XY
	Shrink float64

	TextStyle  text.Style
	ArrowColor color.Color
	ArrowWidth vg.Length
	HeadLength vg.Length
}

// Annotate returns an annotation with a black arrow.
func Annotate(s string, xy, textXY plotter.XY) *Annotation {
	sty := TextStyle(s)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter
	return &Annotation{
		Text:       s,
		XY:         xy,
		TextXY:     textXY,
		Shrink:     0.05,
		TextStyle:  sty,
		ArrowColor: color.Black,
		ArrowWidth: vg.Points(3),
		HeadLength: vg.Points(8),
	}
}

// Plot implements plot.Plotter.
func (a *Annotation) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	from := vg.Point{X: trX(a.TextXY.X), Y: trY(a.TextXY.Y)}
	to := vg.Point{X: trX(a.XY.X), Y: trY(a.XY.Y)}

	// Start the arrow at the edge of the text box
	box := a.TextStyle.Rectangle(a.Text)
	d := to.Sub(from)
	length := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
	if length > 0 {
		ux, uy := float64(d.X/length), float64(d.Y/length)
		halfW, halfH := float64(box.Size().X)/2, float64(box.Size().Y)/2
		edge := math.Min(safeDiv(halfW, math.Abs(ux)), safeDiv(halfH, math.Abs(uy)))
		start := from.Add(vg.Point{X: vg.Length(ux * edge), Y: vg.Length(uy * edge)})
		a.drawArrow(c, start, to)
	}
	c.FillText(a.TextStyle, from, a.Text)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}

func (a *Annotation) drawArrow(c draw.Canvas, from, to vg.Point) {
	d := to.Sub(from)
	length := vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
	if length == 0 {
		return
	}
	trim := d.Scale(vg.Length(a.Shrink))
	from, to = from.Add(trim), to.Sub(trim)
	d = to.Sub(from)
	length = vg.Length(math.Hypot(float64(d.X), float64(d.Y)))
	u := vg.Point{X: d.X / length, Y: d.Y / length}
	n := vg.Point{X: -u.Y, Y: u.X}

	head := a.HeadLength
	if head > length {
		head = length
	}
	base := to.Sub(u.Scale(head))
	halfHead := n.Scale(head / 2)
	halfShaft := n.Scale(a.ArrowWidth / 2)

	c.FillPolygon(a.ArrowColor, []vg.Point{
		from.Add(halfShaft),
		base.Add(halfShaft),
		base.Add(halfHead),
		to,
		base.Sub(halfHead),
		base.Sub(halfShaft),
		from.Sub(halfShaft),
	})
}

// BarLabels writes a formatted label at the end of every bar of a bar
// chart.
type BarLabels struct {
	Values     plotter.Values
	XMin       float64
	Horizontal bool
	Format     func(float64) string
	TextStyle  text.Style
	// Padding separates the label from the bar end.
	Padding vg.Length
}

// NewBarLabels labels the bars of b using format.
func NewBarLabels(b *plotter.BarChart, format func(float64) string) *BarLabels {
	vals := make(plotter.Values, len(b.Values))
	copy(vals, b.Values)
	return &BarLabels{
		Values:     vals,
		XMin:       b.XMin,
		Horizontal: b.Horizontal,
		Format:     format,
		TextStyle:  TextStyle(""),
		Padding:    vg.Points(2),
	}
}

// Plot implements plot.Plotter.
func (bl *BarLabels) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	sty := bl.TextStyle
	for i, v := range bl.Values {
		label := bl.Format(v)
		pos := bl.XMin + float64(i)
		if bl.Horizontal {
			sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
			pad := bl.Padding
			if v < 0 {
				sty.XAlign, pad = draw.XRight, -pad
			}
			c.FillText(sty, vg.Point{X: trX(v) + pad, Y: trY(pos)}, label)
			continue
		}
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
		pad := bl.Padding
		if v < 0 {
			sty.YAlign, pad = draw.YTop, -pad
		}
		c.FillText(sty, vg.Point{X: trX(pos), Y: trY(v) + pad}, label)
	}
}

// DiamondGlyph is a filled square rotated by 45 degrees.
type DiamondGlyph struct{}

// DrawGlyph implements draw.GlyphDrawer.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	var path vg.Path
	path.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	path.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	path.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	path.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	path.Close()
	c.Fill(path)
}
