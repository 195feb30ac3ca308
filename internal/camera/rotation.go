package camera

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// MatrixValidationTolerance is the default tolerance for IsRotationMatrix.
const MatrixValidationTolerance = 1e-9

// Angles are Euler angles in radians. Roll turns about x, pitch about y and
// yaw about z. The zero value is no rotation.
type Angles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// RotationX returns the rotation by theta radians about the x axis.
func RotationX(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotationY returns the rotation by theta radians about the y axis.
func RotationY(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotationZ returns the rotation by theta radians about the z axis.
func RotationZ(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// RotationMatrix composes R = Rz(yaw) * Ry(pitch) * Rx(roll), so roll is
// applied to a vector first and yaw last. Angles are not range checked.
func RotationMatrix(a Angles) *mat.Dense {
	var zy, r mat.Dense
	zy.Mul(RotationZ(a.Yaw), RotationY(a.Pitch))
	r.Mul(&zy, RotationX(a.Roll))
	return &r
}

// Rotate returns R*v. R must be 3x3.
func Rotate(R mat.Matrix, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: R.At(0, 0)*v.X + R.At(0, 1)*v.Y + R.At(0, 2)*v.Z,
		Y: R.At(1, 0)*v.X + R.At(1, 1)*v.Y + R.At(1, 2)*v.Z,
		Z: R.At(2, 0)*v.X + R.At(2, 1)*v.Y + R.At(2, 2)*v.Z,
	}
}

// StandardBasis returns the world x, y and z unit vectors.
func StandardBasis() (dx, dy, dz r3.Vector) {
	return r3.Vector{X: 1}, r3.Vector{Y: 1}, r3.Vector{Z: 1}
}

// IsRotationMatrix reports whether R is a proper rotation: 3x3,
// R^T R = I and det R = 1, each within tol.
func IsRotationMatrix(R mat.Matrix, tol float64) bool {
	r, c := R.Dims()
	if r != 3 || c != 3 {
		return false
	}

	// Reflections have det = -1
	if math.Abs(mat.Det(R)-1) > tol {
		return false
	}

	var rtr mat.Dense
	rtr.Mul(R.T(), R)
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	return mat.EqualApprox(&rtr, eye, tol)
}
