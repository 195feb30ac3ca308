package camera

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Pose builds a 4x4 row-major rigid transform [R | t; 0 0 0 1].
func Pose(R mat.Matrix, t r3.Vector) [16]float64 {
	return [16]float64{
		R.At(0, 0), R.At(0, 1), R.At(0, 2), t.X,
		R.At(1, 0), R.At(1, 1), R.At(1, 2), t.Y,
		R.At(2, 0), R.At(2, 1), R.At(2, 2), t.Z,
		0, 0, 0, 1,
	}
}

// ApplyPose applies the row-major transform T to p.
func ApplyPose(p r3.Vector, T [16]float64) r3.Vector {
	return r3.Vector{
		X: T[0]*p.X + T[1]*p.Y + T[2]*p.Z + T[3],
		Y: T[4]*p.X + T[5]*p.Y + T[6]*p.Z + T[7],
		Z: T[8]*p.X + T[9]*p.Y + T[10]*p.Z + T[11],
	}
}

// InvertPose returns the inverse of a rigid transform: [R^T | -R^T t].
func InvertPose(T [16]float64) [16]float64 {
	rt := mat.NewDense(3, 3, []float64{
		T[0], T[4], T[8],
		T[1], T[5], T[9],
		T[2], T[6], T[10],
	})
	t := Rotate(rt, r3.Vector{X: T[3], Y: T[7], Z: T[11]}).Mul(-1)
	return Pose(rt, t)
}

// IsValidTransformMatrix checks that T is a rigid transform: a proper
// rotation block and a last row of [0 0 0 1].
func IsValidTransformMatrix(T [16]float64, tol float64) bool {
	R := mat.NewDense(3, 3, []float64{
		T[0], T[1], T[2],
		T[4], T[5], T[6],
		T[8], T[9], T[10],
	})
	if !IsRotationMatrix(R, tol) {
		return false
	}
	return T[12] == 0 && T[13] == 0 && T[14] == 0 && math.Abs(T[15]-1) <= tol
}
