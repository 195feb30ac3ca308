// Package imageio loads raster images and exposes their channels as
// numeric matrices for plotting.
package imageio

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Load decodes a PNG, JPEG, GIF, BMP or TIFF file. A missing file yields
// an error wrapping fs.ErrNotExist.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// Channel indices for Channel.
const (
	Red = iota
	Green
	Blue
	Alpha
)

// Matrix is a rows x cols grid of samples with row 0 at the top of the
// image. It implements plotter.GridXYZ with y increasing upwards, so a
// heat map of it shows the image the right way up.
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// Channel extracts one 8-bit channel of img as values in [0, 255].
func Channel(img image.Image, c int) (*Matrix, error) {
	if c < Red || c > Alpha {
		return nil, fmt.Errorf("channel %d out of range [0, 3]", c)
	}
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	m := &Matrix{Rows: b.Dy(), Cols: b.Dx(), Data: make([]float64, b.Dx()*b.Dy())}
	for y := 0; y < m.Rows; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < m.Cols; x++ {
			m.Data[y*m.Cols+x] = float64(row[4*x+c])
		}
	}
	return m, nil
}

// At returns the sample at image row r and column c.
func (m *Matrix) At(r, c int) float64 { return m.Data[r*m.Cols+c] }

// Dims implements plotter.GridXYZ.
func (m *Matrix) Dims() (c, r int) { return m.Cols, m.Rows }

// Z implements plotter.GridXYZ.
func (m *Matrix) Z(c, r int) float64 { return m.At(m.Rows-1-r, c) }

// X implements plotter.GridXYZ.
func (m *Matrix) X(c int) float64 { return float64(c) }

// Y implements plotter.GridXYZ.
func (m *Matrix) Y(r int) float64 { return float64(r) }

// Min returns the smallest sample.
func (m *Matrix) Min() float64 {
	if len(m.Data) == 0 {
		return 0
	}
	lo := m.Data[0]
	for _, v := range m.Data[1:] {
		lo = min(lo, v)
	}
	return lo
}

// Max returns the largest sample.
func (m *Matrix) Max() float64 {
	if len(m.Data) == 0 {
		return 0
	}
	hi := m.Data[0]
	for _, v := range m.Data[1:] {
		hi = max(hi, v)
	}
	return hi
}

// Ravel returns a copy of the samples in row-major order.
func (m *Matrix) Ravel() []float64 {
	out := make([]float64, len(m.Data))
	copy(out, m.Data)
	return out
}

// Dense returns the samples as a gonum matrix.
func (m *Matrix) Dense() *mat.Dense {
	return mat.NewDense(m.Rows, m.Cols, m.Ravel())
}

// Histogram counts samples in the unit-width bins [0,1), [1,2), ...
// [255,256).
func (m *Matrix) Histogram() []float64 {
	dividers := make([]float64, 257)
	for i := range dividers {
		dividers[i] = float64(i)
	}
	x := m.Ravel()
	sort.Float64s(x)
	return stat.Histogram(nil, dividers, x, nil)
}

// String prints the matrix with only its corner elements shown.
func (m *Matrix) String() string {
	if m.Rows == 0 || m.Cols == 0 {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(m.Dense(), mat.Excerpt(3), mat.Squeeze()))
}

// Describe returns the array shape of img as (rows, cols, channels) plus
// the range of its first channel.
func Describe(img image.Image) string {
	b := img.Bounds()
	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}
	if _, ok := img.(*image.Gray); ok {
		channels = 1
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "shape (%d, %d, %d) uint8", b.Dy(), b.Dx(), channels)
	if lum, err := Channel(img, Red); err == nil && len(lum.Data) > 0 {
		fmt.Fprintf(&sb, ", channel 0 range [%g, %g]", lum.Min(), lum.Max())
	}
	return sb.String()
}
