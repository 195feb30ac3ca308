package camera

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-12

func near(a, b r3.Vector) bool {
	return a.Distance(b) < 1e-9
}

func TestRotationMatrix_ZeroIsIdentity(t *testing.T) {
	R := RotationMatrix(Angles{})
	eye := mat.NewDiagDense(3, []float64{1, 1, 1})
	assert.True(t, mat.Equal(R, eye), "zero angles should give identity, got %v", mat.Formatted(R))
}

func TestRotationMatrix_SingleAxis90(t *testing.T) {
	t.Parallel()
	dx, dy, dz := StandardBasis()
	half := math.Pi / 2

	tests := []struct {
		name   string
		angles Angles
		axis   r3.Vector
		a, b   r3.Vector // the two basis vectors that swap
	}{
		{"roll", Angles{Roll: half}, dx, dy, dz},
		{"pitch", Angles{Pitch: half}, dy, dz, dx},
		{"yaw", Angles{Yaw: half}, dz, dx, dy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			R := RotationMatrix(tt.angles)
			require.True(t, IsRotationMatrix(R, 1e-9))

			assert.True(t, near(Rotate(R, tt.axis), tt.axis), "rotation axis must be fixed")
			assert.True(t, near(Rotate(R, tt.a), tt.b), "%v -> %v", tt.a, Rotate(R, tt.a))
			assert.True(t, near(Rotate(R, tt.b), tt.a.Mul(-1)), "%v -> %v", tt.b, Rotate(R, tt.b))

			v := r3.Vector{X: 1, Y: -2, Z: 0.5}
			assert.InDelta(t, v.Norm(), Rotate(R, v).Norm(), eps, "length must be preserved")
		})
	}
}

func TestRotationMatrix_TransposeIsInverse(t *testing.T) {
	R := RotationMatrix(Angles{Roll: 0.3, Pitch: -1.1, Yaw: 2.5})
	var inv mat.Dense
	require.NoError(t, inv.Inverse(R))
	assert.True(t, mat.EqualApprox(&inv, R.T(), 1e-9))
}

func TestRotationMatrix_CompositionOrder(t *testing.T) {
	a := Angles{Roll: math.Pi / 2, Yaw: math.Pi}
	fixed := RotationMatrix(a)

	var want mat.Dense
	want.Mul(RotationZ(a.Yaw), RotationX(a.Roll))
	assert.True(t, mat.EqualApprox(fixed, &want, eps), "R must equal Rz*Rx")

	var reversed mat.Dense
	reversed.Mul(RotationX(a.Roll), RotationZ(a.Yaw))
	assert.False(t, mat.EqualApprox(fixed, &reversed, 1e-6), "Rx*Rz should differ from Rz*Rx")

	// Roll first: z goes to -y under roll, then yaw 180 flips it to +y.
	_, _, dz := StandardBasis()
	assert.True(t, near(Rotate(fixed, dz), r3.Vector{Y: 1}), "got %v", Rotate(fixed, dz))
}

func TestIsRotationMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    mat.Matrix
		want bool
	}{
		{"identity", mat.NewDiagDense(3, []float64{1, 1, 1}), true},
		{"composed", RotationMatrix(Angles{Roll: 1, Pitch: 2, Yaw: 3}), true},
		{"reflection", mat.NewDiagDense(3, []float64{1, 1, -1}), false},
		{"scaled", mat.NewDiagDense(3, []float64{2, 2, 2}), false},
		{"shear", mat.NewDense(3, 3, []float64{1, 0.5, 0, 0, 1, 0, 0, 0, 1}), false},
		{"wrong size", mat.NewDiagDense(2, []float64{1, 1}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRotationMatrix(tt.m, MatrixValidationTolerance); got != tt.want {
				t.Errorf("IsRotationMatrix() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPose(t *testing.T) {
	R := RotationMatrix(Angles{Yaw: math.Pi / 2})
	T := Pose(R, r3.Vector{X: 1, Y: 2, Z: 3})
	require.True(t, IsValidTransformMatrix(T, 1e-9))

	p := ApplyPose(r3.Vector{X: 1}, T)
	assert.True(t, near(p, r3.Vector{X: 1, Y: 3, Z: 3}), "got %v", p)

	back := ApplyPose(p, InvertPose(T))
	assert.True(t, near(back, r3.Vector{X: 1}), "inverse pose got %v", back)

	T[12] = 1
	assert.False(t, IsValidTransformMatrix(T, 1e-9), "bad last row must be rejected")
}
