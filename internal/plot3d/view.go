// Package plot3d draws 3D scenes onto a gonum/plot canvas using an
// orthographic projection controlled by an elevation and azimuth.
package plot3d

import (
	"math"

	"github.com/golang/geo/r3"
)

// Default view angles in degrees.
const (
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
)

// View is an orthographic camera looking at the origin. Elevation is the
// angle above the xy plane and azimuth the rotation about z, both in
// degrees.
type View struct {
	Elevation float64
	Azimuth   float64
}

// DefaultView returns the view used when none is set.
func DefaultView() View {
	return View{Elevation: DefaultElevation, Azimuth: DefaultAzimuth}
}

func (v View) angles() (sinEl, cosEl, sinAz, cosAz float64) {
	el := v.Elevation * math.Pi / 180
	az := v.Azimuth * math.Pi / 180
	return math.Sin(el), math.Cos(el), math.Sin(az), math.Cos(az)
}

// Eye returns the unit vector from the origin towards the viewer.
func (v View) Eye() r3.Vector {
	sinEl, cosEl, sinAz, cosAz := v.angles()
	return r3.Vector{X: cosEl * cosAz, Y: cosEl * sinAz, Z: sinEl}
}

// Project returns the screen coordinates of p. Screen x runs along the
// view's right vector and screen y along its up vector.
func (v View) Project(p r3.Vector) (x, y float64) {
	sinEl, cosEl, sinAz, cosAz := v.angles()
	x = -sinAz*p.X + cosAz*p.Y
	y = -cosAz*sinEl*p.X - sinAz*sinEl*p.Y + cosEl*p.Z
	return x, y
}

// Depth returns the distance of p along the eye direction. Larger values
// are closer to the viewer.
func (v View) Depth(p r3.Vector) float64 {
	return p.Dot(v.Eye())
}
