// Package figure arranges gonum plots on a single page. A Figure has a
// size, a background and an optional centred title, and places panels
// either on a grid, on a named mosaic, or at free fractional rectangles.
package figure

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/banshee-data/plotbook/internal/fsutil"
)

// Default figure geometry.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
	DefaultDPI    = 100
)

// Panel is anything that can draw itself into a rectangle of a canvas.
// *plot.Plot and *plot3d.Axes both satisfy it.
type Panel interface {
	Draw(c draw.Canvas)
}

type placement struct {
	rect  Rect
	panel Panel
	// inset panels are laid out in the content area and padded by Gap;
	// free panels are placed relative to the whole figure.
	inset bool
}

// Figure is the top level container for one image.
type Figure struct {
	Width, Height vg.Length
	DPI           int

	// Background fills the whole figure. Nil means white.
	Background color.Color

	Suptitle      string
	SuptitleStyle text.Style

	// Margin is the padding around the content area and Gap the padding
	// between grid cells.
	Margin vg.Length
	Gap    vg.Length

	panels  []placement
	patches map[*plot.Plot]*Patch
}

// New returns an empty figure of the given size. Zero sizes select the
// defaults.
func New(width, height vg.Length) *Figure {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Figure{
		Width:  width,
		Height: height,
		DPI:    DefaultDPI,
		SuptitleStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 14),
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plot.DefaultTextHandler,
		},
		Margin:  vg.Points(4),
		Gap:     vg.Points(6),
		patches: make(map[*plot.Plot]*Patch),
	}
}

// NewInches is New with the size in inches.
func NewInches(width, height float64) *Figure {
	return New(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch)
}

// Panels returns the panels in the order they were added.
func (f *Figure) Panels() []Panel {
	out := make([]Panel, len(f.panels))
	for i, pl := range f.panels {
		out[i] = pl.panel
	}
	return out
}

// Plots returns the 2D plots of the figure in the order they were added.
func (f *Figure) Plots() []*plot.Plot {
	var out []*plot.Plot
	for _, pl := range f.panels {
		if p, ok := pl.panel.(*plot.Plot); ok {
			out = append(out, p)
		}
	}
	return out
}

// newPlot creates a plot whose background is transparent, so the figure
// background shows around it, with a white patch behind the data area.
func (f *Figure) newPlot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = nil
	patch := &Patch{Color: color.White}
	p.Add(patch)
	f.patches[p] = patch
	return p
}

// SetFaceColor changes the data area colour of a plot created by f.
func (f *Figure) SetFaceColor(p *plot.Plot, c color.Color) error {
	patch, ok := f.patches[p]
	if !ok {
		return fmt.Errorf("plot does not belong to this figure")
	}
	patch.Color = c
	return nil
}

// Draw renders the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Background != nil {
		c.SetColor(f.Background)
		c.Fill(c.Rectangle.Path())
	}

	content := draw.Crop(c, f.Margin, -f.Margin, f.Margin, -f.Margin)
	if f.Suptitle != "" {
		c.FillText(f.SuptitleStyle, vg.Point{X: c.Center().X, Y: content.Max.Y}, f.Suptitle)
		h := f.SuptitleStyle.Rectangle(f.Suptitle).Size().Y
		content.Max.Y -= h + f.Gap
	}

	for _, pl := range f.panels {
		if pl.inset {
			sub := pl.rect.canvas(content)
			pl.panel.Draw(draw.Crop(sub, f.Gap/2, -f.Gap/2, f.Gap/2, -f.Gap/2))
			continue
		}
		pl.panel.Draw(pl.rect.canvas(c))
	}
}

// Render draws the figure onto a new raster canvas at dpi.
func (f *Figure) Render(dpi int) *vgimg.Canvas {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	bg := f.Background
	if bg == nil {
		bg = color.White
	}
	c := vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(bg),
	)
	f.Draw(draw.New(c))
	return c
}

// Image renders the figure at the figure's DPI and returns the raster.
func (f *Figure) Image() image.Image {
	return f.Render(f.DPI).Image()
}

// WriteTo encodes the figure as PNG at the figure's DPI.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	return vgimg.PngCanvas{Canvas: f.Render(f.DPI)}.WriteTo(w)
}

// Save writes the figure as a PNG file at dpi, creating parent
// directories as needed.
func (f *Figure) Save(fsys fsutil.FileSystem, path string, dpi int) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}
	w, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: f.Render(dpi)}).WriteTo(w); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
