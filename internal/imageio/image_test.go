package imageio

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

// gradient is a 4 row x 6 column image whose red channel is 10*col and
// green channel is 50*row.
func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(50 * y), B: 7, A: 255})
		}
	}
	return img
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	require.NoError(t, imaging.Save(gradient(), path))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "stinkbug.png"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestChannel(t *testing.T) {
	img := gradient()

	red, err := Channel(img, Red)
	require.NoError(t, err)
	assert.Equal(t, 4, red.Rows)
	assert.Equal(t, 6, red.Cols)
	assert.Equal(t, 50.0, red.At(2, 5))
	assert.Equal(t, 0.0, red.Min())
	assert.Equal(t, 50.0, red.Max())

	green, err := Channel(img, Green)
	require.NoError(t, err)
	assert.Equal(t, 150.0, green.At(3, 0))

	_, err = Channel(img, 4)
	assert.Error(t, err)
}

func TestMatrix_GridXYZ(t *testing.T) {
	green, err := Channel(gradient(), Green)
	require.NoError(t, err)

	var grid plotter.GridXYZ = green
	c, r := grid.Dims()
	assert.Equal(t, 6, c)
	assert.Equal(t, 4, r)
	// Grid row 0 is the bottom image row.
	assert.Equal(t, 150.0, grid.Z(0, 0))
	assert.Equal(t, 0.0, grid.Z(0, 3))
	assert.Equal(t, 5.0, grid.X(5))
	assert.Equal(t, 3.0, grid.Y(3))
}

func TestMatrix_Histogram(t *testing.T) {
	red, err := Channel(gradient(), Red)
	require.NoError(t, err)
	counts := red.Histogram()
	require.Len(t, counts, 256)
	for v := 0; v <= 50; v += 10 {
		assert.Equal(t, 4.0, counts[v], "bin %d", v)
	}
	var total float64
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 24.0, total)
}

func TestMatrix_Ravel(t *testing.T) {
	red, err := Channel(gradient(), Red)
	require.NoError(t, err)
	flat := red.Ravel()
	require.Len(t, flat, 24)
	flat[0] = 99
	assert.Equal(t, 0.0, red.At(0, 0), "Ravel must copy")
}

func TestMatrix_String(t *testing.T) {
	red, err := Channel(gradient(), Red)
	require.NoError(t, err)
	s := red.String()
	assert.Contains(t, s, "50")
	assert.Equal(t, "[]", (&Matrix{}).String())
}

func TestDescribe(t *testing.T) {
	got := Describe(gradient())
	assert.True(t, strings.HasPrefix(got, "shape (4, 6, 3) uint8"), got)
	assert.Contains(t, got, "[0, 50]")

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	assert.True(t, strings.HasPrefix(Describe(gray), "shape (2, 2, 1)"))
}
