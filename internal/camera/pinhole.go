package camera

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// PinholeCamera describes a camera by its intrinsics (focal length and
// principal point offset), its orientation and centre in the world, and
// the extent of its image plane.
type PinholeCamera struct {
	F      float64
	PX, PY float64

	Angles Angles
	Center r3.Vector

	ImageHeight float64
	ImageWidth  float64
}

// DefaultPinholeCamera returns the camera used by the pinhole geometry
// walkthrough: f=3, p=(2,1), rolled 90° and yawed 180°, centred at
// (3,-5,2) with a 6x4 image.
func DefaultPinholeCamera() PinholeCamera {
	return PinholeCamera{
		F:           3,
		PX:          2,
		PY:          1,
		Angles:      Angles{Roll: math.Pi / 2, Yaw: math.Pi},
		Center:      r3.Vector{X: 3, Y: -5, Z: 2},
		ImageHeight: 4,
		ImageWidth:  6,
	}
}

// Rotation returns the camera-to-world rotation.
func (c PinholeCamera) Rotation() *mat.Dense {
	return RotationMatrix(c.Angles)
}

// CameraFrame returns the camera's reference frame in world coordinates.
func (c PinholeCamera) CameraFrame() ReferenceFrame {
	return RotateFrame(c.Rotation(), NewReferenceFrame(c.Center, "Camera"))
}

// PrincipalAxis returns the optical axis of the camera.
func (c PinholeCamera) PrincipalAxis() PrincipalAxis {
	cf := c.CameraFrame()
	return NewPrincipalAxis(cf.Origin, cf.DZ, c.F)
}

// ImageFrame returns the frame whose origin is the image corner, found by
// stepping back from the principal point by the principal point offsets.
func (c PinholeCamera) ImageFrame() ReferenceFrame {
	cf := c.CameraFrame()
	p := c.PrincipalAxis().P()
	f := cf
	f.Origin = p.Sub(cf.DX.Mul(c.PX)).Sub(cf.DY.Mul(c.PY))
	f.Name = "Image"
	return f
}

// ImagePlane returns the bounded image rectangle.
func (c PinholeCamera) ImagePlane() ImagePlane {
	f := c.ImageFrame()
	return NewImagePlane(f.Origin, f.DX, f.DY, c.ImageHeight, c.ImageWidth)
}

// CalibrationMatrix returns the intrinsic matrix K.
func (c PinholeCamera) CalibrationMatrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		c.F, 0, c.PX,
		0, c.F, c.PY,
		0, 0, 1,
	})
}

// ProjectionMatrix returns the 3x4 matrix K [R^T | -R^T C] mapping
// homogeneous world points to homogeneous image points.
func (c PinholeCamera) ProjectionMatrix() *mat.Dense {
	ext := InvertPose(Pose(c.Rotation(), c.Center))
	rt := mat.NewDense(3, 4, ext[:12])
	var p mat.Dense
	p.Mul(c.CalibrationMatrix(), rt)
	return &p
}

// Project maps a world point to image coordinates. Points in the camera's
// z=0 plane project to infinity.
func (c PinholeCamera) Project(x r3.Vector) (u, v float64) {
	xh := ToHomogeneousVec(x)
	var img mat.VecDense
	img.MulVec(c.ProjectionMatrix(), mat.NewVecDense(4, xh[:]))
	uv := ToInhomogeneous(img.RawVector().Data)
	return uv[0], uv[1]
}

// Scene holds every drawable of the pinhole walkthrough.
type Scene struct {
	Center r3.Vector
	World  ReferenceFrame
	Camera ReferenceFrame
	Image  ReferenceFrame
	Axis   PrincipalAxis
	Plane  ImagePlane
}

// Scene assembles the world, camera and image frames with the principal
// axis and image plane.
func (c PinholeCamera) Scene() Scene {
	return Scene{
		Center: c.Center,
		World:  NewReferenceFrame(r3.Vector{}, "World"),
		Camera: c.CameraFrame(),
		Image:  c.ImageFrame(),
		Axis:   c.PrincipalAxis(),
		Plane:  c.ImagePlane(),
	}
}

// Draw labels the camera centre "C" and draws the scene objects.
func (sc Scene) Draw(s Surface) error {
	if err := s.Text(sc.Center, "C", Style{Color: ColorBlack}); err != nil {
		return err
	}
	return DrawAll(s, sc.World, sc.Camera, sc.Image, sc.Axis, sc.Plane)
}
