package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Rect is a rectangle in figure fractions: [0,1] on each axis with the
// origin at the bottom left.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Full covers the whole area.
var Full = Rect{Width: 1, Height: 1}

func (r Rect) canvas(c draw.Canvas) draw.Canvas {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	min := vg.Point{
		X: c.Min.X + w*vg.Length(r.Left),
		Y: c.Min.Y + h*vg.Length(r.Bottom),
	}
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: min,
			Max: vg.Point{X: min.X + w*vg.Length(r.Width), Y: min.Y + h*vg.Length(r.Height)},
		},
	}
}

func (r Rect) valid() bool {
	return r.Width > 0 && r.Height > 0 &&
		r.Left >= 0 && r.Bottom >= 0 &&
		r.Left+r.Width <= 1+1e-9 && r.Bottom+r.Height <= 1+1e-9
}

// cell returns the rectangle spanning rows [r0, r1) and columns [c0, c1)
// of a rows x cols grid. Row 0 is the top row.
func cell(rows, cols, r0, r1, c0, c1 int) Rect {
	return Rect{
		Left:   float64(c0) / float64(cols),
		Bottom: 1 - float64(r1)/float64(rows),
		Width:  float64(c1-c0) / float64(cols),
		Height: float64(r1-r0) / float64(rows),
	}
}

// Add places an existing panel at a free rectangle of the figure.
func (f *Figure) Add(r Rect, p Panel) error {
	if !r.valid() {
		return fmt.Errorf("invalid panel rectangle %+v", r)
	}
	f.panels = append(f.panels, placement{rect: r, panel: p})
	return nil
}

// AddPlot adds a plot filling the content area.
func (f *Figure) AddPlot() *plot.Plot {
	p := f.newPlot()
	f.panels = append(f.panels, placement{rect: Full, panel: p, inset: true})
	return p
}

// AddAxes adds a plot at a free rectangle given in figure fractions.
func (f *Figure) AddAxes(r Rect) (*plot.Plot, error) {
	p := f.newPlot()
	if err := f.Add(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Subplots fills a rows x cols grid with plots and returns them row by row.
func (f *Figure) Subplots(rows, cols int) ([][]*plot.Plot, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", rows, cols)
	}
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			p := f.newPlot()
			f.panels = append(f.panels, placement{rect: cell(rows, cols, r, r+1, c, c+1), panel: p, inset: true})
			grid[r][c] = p
		}
	}
	return grid, nil
}

// Subplot adds a plot in cell index (1-based, row-major) of a rows x cols
// grid.
func (f *Figure) Subplot(rows, cols, index int) (*plot.Plot, error) {
	p := f.newPlot()
	if err := f.AddAt(rows, cols, index, p); err != nil {
		delete(f.patches, p)
		return nil, err
	}
	return p, nil
}

// AddAt places an existing panel in cell index (1-based, row-major) of a
// rows x cols grid.
func (f *Figure) AddAt(rows, cols, index int, p Panel) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("invalid grid %dx%d", rows, cols)
	}
	if index < 1 || index > rows*cols {
		return fmt.Errorf("subplot index %d out of range [1, %d]", index, rows*cols)
	}
	r, c := (index-1)/cols, (index-1)%cols
	f.panels = append(f.panels, placement{rect: cell(rows, cols, r, r+1, c, c+1), panel: p, inset: true})
	return nil
}

// Mosaic lays plots out on a grid of names. Cells sharing a name merge
// into one plot, which must cover a filled rectangle. An empty name or
// "." leaves a cell blank.
func (f *Figure) Mosaic(layout [][]string) (map[string]*plot.Plot, error) {
	rows := len(layout)
	if rows == 0 {
		return nil, fmt.Errorf("empty mosaic")
	}
	cols := len(layout[0])
	type span struct{ r0, r1, c0, c1 int }
	spans := make(map[string]*span)
	var order []string
	for r, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("mosaic row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, name := range row {
			if name == "" || name == "." {
				continue
			}
			s, ok := spans[name]
			if !ok {
				spans[name] = &span{r, r + 1, c, c + 1}
				order = append(order, name)
				continue
			}
			s.r0, s.r1 = min(s.r0, r), max(s.r1, r+1)
			s.c0, s.c1 = min(s.c0, c), max(s.c1, c+1)
		}
	}

	// Every cell inside a span must carry the span's name.
	for _, name := range order {
		s := spans[name]
		for r := s.r0; r < s.r1; r++ {
			for c := s.c0; c < s.c1; c++ {
				if layout[r][c] != name {
					return nil, fmt.Errorf("mosaic area %q is not rectangular", name)
				}
			}
		}
	}

	out := make(map[string]*plot.Plot, len(order))
	for _, name := range order {
		s := spans[name]
		p := f.newPlot()
		f.panels = append(f.panels, placement{rect: cell(rows, cols, s.r0, s.r1, s.c0, s.c1), panel: p, inset: true})
		out[name] = p
	}
	return out, nil
}
