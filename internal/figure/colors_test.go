package figure

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want color.Color
	}{
		{"tab:red", tab10[3]},
		{"tab:blue", tab10[0]},
		{"C1", tab10[1]},
		{"c9", tab10[9]},
		{"k", color.RGBA{A: 0xff}},
		{"r", color.RGBA{R: 0xff, A: 0xff}},
		{"lightskyblue", color.RGBA{R: 0x87, G: 0xce, B: 0xfa, A: 0xff}},
		{" Blue ", color.RGBA{B: 0xff, A: 0xff}},
		{"#ff8800", color.RGBA{R: 0xff, G: 0x88, A: 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Named(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamed_Unknown(t *testing.T) {
	for _, name := range []string{"", "tab:teal", "C10", "#12", "#gggggg", "chartreuse-ish"} {
		_, err := Named(name)
		assert.Error(t, err, "name %q", name)
	}
	assert.Panics(t, func() { MustNamed("nope") })
}

func TestC_Wraps(t *testing.T) {
	assert.Equal(t, C(0), C(10))
	assert.Equal(t, C(3), C(-3))
}

func TestPalette(t *testing.T) {
	assert.Nil(t, Palette(0))

	colors := Palette(12)
	require.Len(t, colors, 12)
	seen := make(map[color.Color]bool)
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate colour %v", c)
		seen[c] = true
	}
	// Hue 0 at 70% saturation and 50% lightness is a strong red
	r, g, b, _ := colors[0].RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, r, b)
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.RGBA{G: 0xff, A: 0xff}, 0.75)
	n, ok := c.(color.NRGBA)
	require.True(t, ok)
	assert.Equal(t, uint8(0xff), n.G)
	assert.Equal(t, uint8(191), n.A)

	solid := color.RGBA{B: 0xff, A: 0xff}
	assert.Equal(t, color.Color(solid), WithAlpha(solid, 1))
}
