package camera

import (
	"fmt"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ReferenceFrame is an origin with three direction vectors and a display
// name. The directions are expected to be orthonormal but this is not
// enforced.
type ReferenceFrame struct {
	Origin     r3.Vector
	DX, DY, DZ r3.Vector
	Name       string
}

// NewReferenceFrame returns the world-aligned frame at origin.
func NewReferenceFrame(origin r3.Vector, name string) ReferenceFrame {
	dx, dy, dz := StandardBasis()
	return ReferenceFrame{Origin: origin, DX: dx, DY: dy, DZ: dz, Name: name}
}

// RotateFrame returns f with its direction vectors rotated by R. The
// origin is kept.
func RotateFrame(R mat.Matrix, f ReferenceFrame) ReferenceFrame {
	f.DX = Rotate(R, f.DX)
	f.DY = Rotate(R, f.DY)
	f.DZ = Rotate(R, f.DZ)
	return f
}

// Pose returns the frame-to-world transform.
func (f ReferenceFrame) Pose() [16]float64 {
	R := mat.NewDense(3, 3, []float64{
		f.DX.X, f.DY.X, f.DZ.X,
		f.DX.Y, f.DY.Y, f.DZ.Y,
		f.DX.Z, f.DY.Z, f.DZ.Z,
	})
	return Pose(R, f.Origin)
}

// Draw renders the unit axes as red, green and blue arrows labelled
// X<name>, Y<name> and Z<name>, and writes the name at the origin.
func (f ReferenceFrame) Draw(s Surface) error {
	axes := []struct {
		dir   r3.Vector
		axis  string
		style Style
	}{
		{f.DX, "X", Style{Color: ColorRed}},
		{f.DY, "Y", Style{Color: ColorGreen}},
		{f.DZ, "Z", Style{Color: ColorBlue}},
	}
	for _, a := range axes {
		tip := f.Origin.Add(a.dir)
		if err := s.Arrow(f.Origin, tip, a.style); err != nil {
			return fmt.Errorf("drawing %s axis of frame %q: %w", a.axis, f.Name, err)
		}
		if err := s.Text(tip, a.axis+f.Name, a.style); err != nil {
			return err
		}
	}
	return s.Text(f.Origin, f.Name, Style{Color: ColorBlack})
}

// PrincipalAxis is the optical axis of a camera: from the camera centre
// along its z direction to the principal point at focal length F.
type PrincipalAxis struct {
	Center r3.Vector
	DZ     r3.Vector
	F      float64
}

// NewPrincipalAxis returns the principal axis of a camera frame.
func NewPrincipalAxis(center, dz r3.Vector, f float64) PrincipalAxis {
	return PrincipalAxis{Center: center, DZ: dz, F: f}
}

// P returns the principal point centre + F*dz.
func (a PrincipalAxis) P() r3.Vector {
	return a.Center.Add(a.DZ.Mul(a.F))
}

// Draw renders the axis as a line labelled "Z" and marks the principal
// point "p".
func (a PrincipalAxis) Draw(s Surface) error {
	p := a.P()
	sty := Style{Color: ColorBlack, Dashed: true}
	if err := s.Line(a.Center, p, sty); err != nil {
		return fmt.Errorf("drawing principal axis: %w", err)
	}
	if err := s.Text(a.Center.Add(p).Mul(0.5), "Z", sty); err != nil {
		return err
	}
	if err := s.Point(p, Style{Color: ColorBlack}); err != nil {
		return err
	}
	return s.Text(p, "p", Style{Color: ColorBlack})
}

// ImagePlane is the bounded image rectangle spanned from Origin by Width
// along DX and Height along DY.
type ImagePlane struct {
	Origin        r3.Vector
	DX, DY        r3.Vector
	Height, Width float64
}

// NewImagePlane returns an image plane anchored at origin.
func NewImagePlane(origin, dx, dy r3.Vector, height, width float64) ImagePlane {
	return ImagePlane{Origin: origin, DX: dx, DY: dy, Height: height, Width: width}
}

// Corners returns o, o+w*dx, o+w*dx+h*dy and o+h*dy.
func (p ImagePlane) Corners() [4]r3.Vector {
	w := p.DX.Mul(p.Width)
	h := p.DY.Mul(p.Height)
	return [4]r3.Vector{
		p.Origin,
		p.Origin.Add(w),
		p.Origin.Add(w).Add(h),
		p.Origin.Add(h),
	}
}

// Center returns the midpoint of the rectangle.
func (p ImagePlane) Center() r3.Vector {
	return p.Origin.Add(p.DX.Mul(p.Width / 2)).Add(p.DY.Mul(p.Height / 2))
}

// Draw fills the rectangle with a translucent quadrilateral.
func (p ImagePlane) Draw(s Surface) error {
	c := p.Corners()
	if err := s.Polygon(c[:], Style{Color: ColorGray, Alpha: 0.3}); err != nil {
		return fmt.Errorf("drawing image plane: %w", err)
	}
	return nil
}
