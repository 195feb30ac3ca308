package tutorials

import (
	"fmt"
	"io"
	"math"

	"github.com/golang/geo/r3"

	"github.com/banshee-data/plotbook/internal/camera"
	"github.com/banshee-data/plotbook/internal/figure"
	"github.com/banshee-data/plotbook/internal/plot3d"
)

// CameraExamples names the examples of the camera geometry walkthrough.
var CameraExamples = []string{"camera_rotation", "camera_translation", "pinhole_geometry"}

// HomogeneousDemo prints a point converted to homogeneous coordinates and
// a homogeneous point converted back.
func HomogeneousDemo(w io.Writer) {
	x := []float64{4, 2, 3}
	fmt.Fprintf(w, "X: %v\n", x)
	fmt.Fprintf(w, "X in homogeneous coordinates: %v\n", camera.ToHomogeneous(x))
	xh := []float64{8, 4, 6, 2}
	fmt.Fprintf(w, "X in homogeneous coordinates: %v\n", xh)
	fmt.Fprintf(w, "X: %v\n", camera.ToInhomogeneous(xh))
}

func (e *Env) axes3d() *plot3d.Axes {
	ax := plot3d.New()
	ax.View = e.View
	return ax
}

func cameraRotation(env *Env) (*figure.Figure, error) {
	world := camera.NewReferenceFrame(r3.Vector{}, "World")
	cam := camera.NewReferenceFrame(r3.Vector{}, "Camera")
	panels := []struct {
		title string
		frame camera.ReferenceFrame
	}{
		{"No Rotation", world},
		{"Roll (90°)", camera.RotateFrame(camera.RotationMatrix(camera.Angles{Roll: math.Pi / 2}), cam)},
		{"Pitch (90°)", camera.RotateFrame(camera.RotationMatrix(camera.Angles{Pitch: math.Pi / 2}), cam)},
		{"Yaw (90°)", camera.RotateFrame(camera.RotationMatrix(camera.Angles{Yaw: math.Pi / 2}), cam)},
	}

	f := env.newFigure(0, 0)
	f.Suptitle = "Camera Rotation"
	for i, pn := range panels {
		ax := env.axes3d()
		if err := pn.frame.Draw(ax); err != nil {
			return nil, err
		}
		if err := ax.SetLimits(-1, 1); err != nil {
			return nil, err
		}
		ax.HideTicks()
		ax.Title = pn.title
		if err := f.AddAt(2, 2, i+1, ax); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func cameraTranslation(env *Env) (*figure.Figure, error) {
	t := r3.Vector{X: 3, Y: -4, Z: 2}
	ax := env.axes3d()
	err := camera.DrawAll(ax,
		camera.NewReferenceFrame(r3.Vector{}, "World"),
		camera.NewReferenceFrame(t, "Camera"),
	)
	if err != nil {
		return nil, err
	}
	if err := camera.DrawArrow(ax, r3.Vector{}, t, figure.MustNamed("tab:red"), "t"); err != nil {
		return nil, err
	}
	if err := ax.SetLimits(-5, 5); err != nil {
		return nil, err
	}

	f := env.newFigure(0, 0)
	if err := f.Add(figure.Full, ax); err != nil {
		return nil, err
	}
	return f, nil
}

func pinholeGeometry(env *Env) (*figure.Figure, error) {
	cam := camera.DefaultPinholeCamera()
	ax := plot3d.New()
	ax.Title = "Pinhole Camera Geometry"
	if err := cam.Scene().Draw(ax); err != nil {
		return nil, err
	}
	ax.SetView(30, 30)

	f := env.newFigure(6, 6)
	if err := f.Add(figure.Full, ax); err != nil {
		return nil, err
	}
	return f, nil
}
