package camera

import (
	"image/color"

	"github.com/golang/geo/r3"
)

// Style describes how a primitive is stroked or filled on a Surface.
type Style struct {
	Color color.Color
	// Alpha scales the colour's opacity; zero means opaque.
	Alpha float64
	// Width is the stroke width in points; zero selects the surface default.
	Width float64
	// Dashed requests a dashed stroke.
	Dashed bool
}

// Surface is a 3D drawing target. plot3d.Axes is the production
// implementation.
type Surface interface {
	Line(from, to r3.Vector, sty Style) error
	Arrow(from, to r3.Vector, sty Style) error
	Polygon(pts []r3.Vector, sty Style) error
	Point(p r3.Vector, sty Style) error
	Text(p r3.Vector, label string, sty Style) error
}

// Drawable is anything that can render itself onto a Surface.
type Drawable interface {
	Draw(s Surface) error
}

// Colours used for the frame axes and annotations.
var (
	ColorRed    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	ColorGreen  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
	ColorBlue   = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorOrange = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	ColorGray   = color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}
	ColorBlack  = color.RGBA{A: 0xff}
)

// DrawArrow draws a free arrow from one point to another with its name
// written at the arrow midpoint. An empty name draws no label.
func DrawArrow(s Surface, from, to r3.Vector, c color.Color, name string) error {
	sty := Style{Color: c}
	if err := s.Arrow(from, to, sty); err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	return s.Text(from.Add(to).Mul(0.5), name, sty)
}

// DrawAll draws each item in order and stops at the first error.
func DrawAll(s Surface, items ...Drawable) error {
	for _, d := range items {
		if err := d.Draw(s); err != nil {
			return err
		}
	}
	return nil
}
