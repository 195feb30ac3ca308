package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// tab10 is the default colour cycle, addressed as C0..C9 or tab:<name>.
var tab10 = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}, // brown
	{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}, // pink
	{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // gray
	{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff}, // olive
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}, // cyan
}

var tabNames = []string{"blue", "orange", "green", "red", "purple", "brown", "pink", "gray", "olive", "cyan"}

var namedColors = map[string]color.RGBA{
	"black":                {A: 0xff},
	"white":                {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"blue":                 {B: 0xff, A: 0xff},
	"green":                {G: 0x80, A: 0xff},
	"red":                  {R: 0xff, A: 0xff},
	"cyan":                 {G: 0xbf, B: 0xbf, A: 0xff},
	"magenta":              {R: 0xbf, B: 0xbf, A: 0xff},
	"yellow":               {R: 0xff, G: 0xff, A: 0xff},
	"orange":               {R: 0xff, G: 0xa5, A: 0xff},
	"gray":                 {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	"lightgray":            {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
	"lightskyblue":         {R: 0x87, G: 0xce, B: 0xfa, A: 0xff},
	"lightgoldenrodyellow": {R: 0xfa, G: 0xfa, B: 0xd2, A: 0xff},
}

// Single letter shorthands.
var shortColors = map[string]string{
	"k": "black",
	"w": "white",
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
}

// C returns colour i of the default cycle, wrapping around.
func C(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return tab10[i%len(tab10)]
}

// Named resolves a colour name. It accepts CSS-like names ("lightskyblue"),
// single letters ("k"), cycle references ("C1"), tableau names
// ("tab:red") and hex strings ("#ff8800").
func Named(name string) (color.Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if long, ok := shortColors[n]; ok {
		n = long
	}
	if c, ok := namedColors[n]; ok {
		return c, nil
	}
	if strings.HasPrefix(n, "tab:") {
		for i, tn := range tabNames {
			if tn == n[4:] {
				return tab10[i], nil
			}
		}
	}
	if len(n) == 2 && n[0] == 'c' && n[1] >= '0' && n[1] <= '9' {
		return tab10[n[1]-'0'], nil
	}
	if strings.HasPrefix(n, "#") && len(n) == 7 {
		v, err := strconv.ParseUint(n[1:], 16, 32)
		if err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

// MustNamed is like Named but panics on an unknown name. It is meant for
// colour literals in example code.
func MustNamed(name string) color.Color {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales c's opacity by alpha. Values outside (0, 1) leave c
// unchanged.
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 || alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * alpha)
	return n
}

// Palette returns n evenly spaced, distinct hues.
func Palette(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
