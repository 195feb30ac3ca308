package webchart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBar(t *testing.T) {
	bar, err := Bar("Fruit supply", []string{"apple", "blueberry", "cherry", "orange"},
		Series{Name: "supply", Values: []float64{40, 100, 30, 55}, Color: "#d62728"})
	require.NoError(t, err)
	require.Len(t, bar.MultiSeries, 1)
	assert.Equal(t, "supply", bar.MultiSeries[0].Name)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "bars", bar))
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Fruit supply")
	assert.Contains(t, html, "blueberry")
}

func TestBar_LengthMismatch(t *testing.T) {
	_, err := Bar("bad", []string{"a", "b"}, Series{Name: "s", Values: []float64{1}})
	assert.ErrorContains(t, err, `series "s" has 1 values for 2 categories`)
}

func TestLine(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	line, err := Line("steps",
		XYSeries{Name: "pre", X: x, Y: []float64{1, 2, 3, 4}, Step: "start"},
		XYSeries{Name: "post", X: x, Y: []float64{2, 3, 4, 5}, Step: "end", Color: "#1f77b4"},
	)
	require.NoError(t, err)
	require.Len(t, line.MultiSeries, 2)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "lines", line))
	assert.True(t, strings.Contains(buf.String(), `"step":"start"`), "step option missing")
}

func TestLine_LengthMismatch(t *testing.T) {
	_, err := Line("bad", XYSeries{Name: "s", X: []float64{1, 2}, Y: []float64{1}})
	assert.Error(t, err)
}

func TestScatter(t *testing.T) {
	sc, err := Scatter("points", []float64{1, 2}, []float64{3, 4}, []float64{5, 10})
	require.NoError(t, err)
	require.Len(t, sc.MultiSeries, 1)

	_, err = Scatter("points", []float64{1, 2}, []float64{3, 4}, []float64{5})
	assert.Error(t, err)
}

func TestRender_NoCharts(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Render(&buf, "empty"))
	assert.Zero(t, buf.Len())
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"0", "1", "2"}, Categories(3))
	assert.Empty(t, Categories(0))
}
