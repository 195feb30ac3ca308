package figure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// recordingPanel remembers the rectangle it was asked to draw into.
type recordingPanel struct {
	rects []vg.Rectangle
}

func (r *recordingPanel) Draw(c draw.Canvas) { r.rects = append(r.rects, c.Rectangle) }

func TestCell(t *testing.T) {
	tests := []struct {
		name                   string
		rows, cols, r0, r1, c0 int
		c1                     int
		want                   Rect
	}{
		{"single", 1, 1, 0, 1, 0, 1, Full},
		{"top of two rows", 2, 1, 0, 1, 0, 1, Rect{Left: 0, Bottom: 0.5, Width: 1, Height: 0.5}},
		{"bottom right of 2x2", 2, 2, 1, 2, 1, 2, Rect{Left: 0.5, Bottom: 0, Width: 0.5, Height: 0.5}},
		{"right column span", 2, 2, 0, 2, 1, 2, Rect{Left: 0.5, Bottom: 0, Width: 0.5, Height: 1}},
		{"middle of three", 1, 3, 0, 1, 1, 2, Rect{Left: 1.0 / 3, Bottom: 0, Width: 1.0 / 3, Height: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cell(tt.rows, tt.cols, tt.r0, tt.r1, tt.c0, tt.c1)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("cell mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubplot(t *testing.T) {
	f := NewInches(4, 3)
	p, err := f.Subplot(2, 1, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, Rect{Left: 0, Bottom: 0, Width: 1, Height: 0.5}, f.panels[0].rect)

	_, err = f.Subplot(2, 1, 3)
	assert.Error(t, err)
	_, err = f.Subplot(0, 1, 1)
	assert.Error(t, err)
	assert.Len(t, f.Plots(), 1)
	assert.Len(t, f.patches, 1)
}

func TestSubplots(t *testing.T) {
	f := NewInches(5, 2.7)
	grid, err := f.Subplots(1, 2)
	require.NoError(t, err)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 2)
	assert.NotSame(t, grid[0][0], grid[0][1])
	assert.Equal(t, []Rect{
		{Left: 0, Bottom: 0, Width: 0.5, Height: 1},
		{Left: 0.5, Bottom: 0, Width: 0.5, Height: 1},
	}, []Rect{f.panels[0].rect, f.panels[1].rect})

	_, err = f.Subplots(0, 2)
	assert.Error(t, err)
}

func TestMosaic(t *testing.T) {
	f := NewInches(4, 3)
	axd, err := f.Mosaic([][]string{
		{"upleft", "right"},
		{"lowleft", "right"},
	})
	require.NoError(t, err)
	require.Len(t, axd, 3)
	require.Len(t, f.panels, 3)

	byPlot := make(map[string]Rect)
	for _, pl := range f.panels {
		for name, p := range axd {
			if pl.panel == p {
				byPlot[name] = pl.rect
			}
		}
	}
	assert.Equal(t, Rect{Left: 0, Bottom: 0.5, Width: 0.5, Height: 0.5}, byPlot["upleft"])
	assert.Equal(t, Rect{Left: 0, Bottom: 0, Width: 0.5, Height: 0.5}, byPlot["lowleft"])
	assert.Equal(t, Rect{Left: 0.5, Bottom: 0, Width: 0.5, Height: 1}, byPlot["right"])
}

func TestMosaic_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout [][]string
	}{
		{"empty", nil},
		{"ragged", [][]string{{"a", "b"}, {"a"}}},
		{"not rectangular", [][]string{{"a", "a"}, {"a", "b"}}},
		{"split area", [][]string{{"a", "b", "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInches(4, 3).Mosaic(tt.layout)
			assert.Error(t, err)
		})
	}
}

func TestMosaic_BlankCells(t *testing.T) {
	f := NewInches(4, 3)
	axd, err := f.Mosaic([][]string{{"a", "."}, {"", "b"}})
	require.NoError(t, err)
	assert.Len(t, axd, 2)
}

func TestAddAxes(t *testing.T) {
	f := NewInches(4, 3)
	_, err := f.AddAxes(Rect{Left: 0.15, Bottom: 0.1, Width: 0.7, Height: 0.3})
	require.NoError(t, err)

	for _, bad := range []Rect{
		{Width: 0, Height: 1},
		{Left: 0.5, Width: 0.6, Height: 1},
		{Left: -0.1, Width: 0.5, Height: 0.5},
	} {
		_, err := f.AddAxes(bad)
		assert.Error(t, err, "rect %+v", bad)
	}
	assert.Len(t, f.panels, 1)
}

func TestDraw_PlacesPanels(t *testing.T) {
	f := New(400, 300)
	f.Margin, f.Gap = 0, 0
	left, right := &recordingPanel{}, &recordingPanel{}
	require.NoError(t, f.AddAt(1, 2, 1, left))
	require.NoError(t, f.AddAt(1, 2, 2, right))
	free := &recordingPanel{}
	require.NoError(t, f.Add(Rect{Left: 0.25, Bottom: 0.5, Width: 0.5, Height: 0.25}, free))

	f.Draw(draw.Canvas{Rectangle: vg.Rectangle{Max: vg.Point{X: 400, Y: 300}}})

	require.Len(t, left.rects, 1)
	require.Len(t, right.rects, 1)
	require.Len(t, free.rects, 1)
	assert.Equal(t, vg.Rectangle{Max: vg.Point{X: 200, Y: 300}}, left.rects[0])
	assert.Equal(t, vg.Rectangle{Min: vg.Point{X: 200}, Max: vg.Point{X: 400, Y: 300}}, right.rects[0])
	assert.Equal(t, vg.Rectangle{Min: vg.Point{X: 100, Y: 150}, Max: vg.Point{X: 300, Y: 225}}, free.rects[0])
	assert.Len(t, f.Panels(), 3)
}
