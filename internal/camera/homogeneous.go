// Package camera holds the pinhole-camera geometry used by the camera
// walkthrough: homogeneous coordinates, rotation matrices, rigid poses and
// the drawable reference frame, principal axis and image plane objects.
package camera

import "github.com/golang/geo/r3"

// ToHomogeneous appends a trailing 1 to x. The input is not modified.
func ToHomogeneous(x []float64) []float64 {
	xh := make([]float64, len(x)+1)
	copy(xh, x)
	xh[len(x)] = 1
	return xh
}

// ToInhomogeneous divides every component but the last by the last one and
// drops it. A zero last component yields IEEE infinities or NaN. An empty
// input returns an empty slice.
func ToInhomogeneous(xh []float64) []float64 {
	if len(xh) == 0 {
		return []float64{}
	}
	w := xh[len(xh)-1]
	x := make([]float64, len(xh)-1)
	for i := range x {
		x[i] = xh[i] / w
	}
	return x
}

// ToHomogeneousVec is the fixed-size form of ToHomogeneous for 3D points.
func ToHomogeneousVec(v r3.Vector) [4]float64 {
	return [4]float64{v.X, v.Y, v.Z, 1}
}

// FromHomogeneousVec is the fixed-size form of ToInhomogeneous.
func FromHomogeneousVec(h [4]float64) r3.Vector {
	return r3.Vector{X: h[0] / h[3], Y: h[1] / h[3], Z: h[2] / h[3]}
}
