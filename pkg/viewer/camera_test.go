package viewer

import (
	"math"
	"testing"

	"github.com/amos-org/amos/pkg/geometry"
)

func unitBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-0.5, -0.5, -0.5))
	bbox.Extend(geometry.NewVector3(0.5, 0.5, 0.5))
	return bbox
}

func TestCameraProjectsTargetToCenter(t *testing.T) {
	cam := NewCamera(unitBox())

	x, y, z := cam.Project(cam.Target, 200, 100)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("Project(target) = (%v, %v), want (100, 50)", x, y)
	}
	if math.Abs(z-cam.Distance) > 1e-9 {
		t.Errorf("depth = %v, want %v", z, cam.Distance)
	}
}

func TestCameraProjectBehind(t *testing.T) {
	cam := NewCamera(unitBox())
	behind := cam.Position.Add(cam.Position.Sub(cam.Target))

	if _, _, z := cam.Project(behind, 100, 100); z > NearPlane {
		t.Errorf("point behind camera has depth %v", z)
	}
}

func TestCameraMinimumDistance(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())
	if cam.Distance < 1 {
		t.Errorf("Distance = %v for empty box, want >= 1", cam.Distance)
	}

	cam.Zoom(-0.999)
	if cam.Distance < 0.1 {
		t.Errorf("Distance = %v after zoom, want >= 0.1", cam.Distance)
	}
}

func TestCameraRotateClamp(t *testing.T) {
	cam := NewCamera(unitBox())
	cam.Rotate(10, 0)
	if cam.RotationX >= math.Pi/2 {
		t.Errorf("RotationX = %v, want < pi/2", cam.RotationX)
	}
}

func TestGroundPointCenter(t *testing.T) {
	cam := NewCamera(unitBox())
	cam.Target = geometry.NewVector3(0, 0, 0)
	cam.UpdatePosition()

	p, ok := cam.GroundPoint(50, 50, 100, 100, 0)
	if !ok {
		t.Fatal("expected the center ray to hit the ground")
	}
	if p.Distance(geometry.NewVector3(0, 0, 0)) > 1e-6 {
		t.Errorf("GroundPoint = %v, want origin", p)
	}
}

func TestGroundPointMiss(t *testing.T) {
	cam := NewCamera(unitBox())
	cam.Target = geometry.NewVector3(0, 0, 0)
	cam.UpdatePosition()

	// Top edge of the frame looks above the horizon at this elevation.
	cam.Rotate(-cam.RotationX+0.05, 0)
	if _, ok := cam.GroundPoint(50, 0, 100, 100, 0); ok {
		t.Error("expected the ray above the horizon to miss the ground")
	}
}

func TestUnprojectCenter(t *testing.T) {
	cam := NewCamera(unitBox())
	origin, dir := cam.Unproject(50, 50, 100, 100)

	want := cam.Target.Sub(cam.Position).Normalize()
	if origin != cam.Position {
		t.Errorf("origin = %v, want %v", origin, cam.Position)
	}
	if dir.Distance(want) > 1e-9 {
		t.Errorf("direction = %v, want %v", dir, want)
	}
}
