package imageio

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// Interpolation names a resampling filter.
type Interpolation int

const (
	Nearest Interpolation = iota
	Bilinear
	Bicubic
)

var interpolationNames = map[Interpolation]string{
	Nearest:  "nearest",
	Bilinear: "bilinear",
	Bicubic:  "bicubic",
}

func (i Interpolation) String() string {
	if s, ok := interpolationNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation accepts "nearest", "bilinear" or "bicubic".
func ParseInterpolation(s string) (Interpolation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range interpolationNames {
		if v == s {
			return k, nil
		}
	}
	return Nearest, fmt.Errorf("unknown interpolation %q", s)
}

func (i Interpolation) filter() imaging.ResampleFilter {
	switch i {
	case Bilinear:
		return imaging.Linear
	case Bicubic:
		return imaging.CatmullRom
	default:
		return imaging.NearestNeighbor
	}
}

// Thumbnail shrinks img, keeping its aspect ratio, so that it fits within
// w x h. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// Resample scales img to exactly w x h pixels with the given filter.
func Resample(img image.Image, w, h int, interp Interpolation) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid resample size %dx%d", w, h)
	}
	return imaging.Resize(img, w, h, interp.filter()), nil
}
