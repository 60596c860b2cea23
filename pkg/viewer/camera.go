package viewer

import (
	"math"

	"github.com/amos-org/amos/pkg/geometry"
)

// NearPlane is the minimum depth that is rendered
const NearPlane = 0.01

// Camera is an orbit camera looking at Target from Distance away
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth
}

// NewCamera creates a camera that frames bbox
func NewCamera(bbox geometry.BoundingBox) *Camera {
	c := &Camera{
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 4,
		RotationX: 0.4,
		RotationY: 0.6,
	}
	c.Frame(bbox)
	return c
}

// Frame re-targets the camera on bbox, keeping its angles
func (c *Camera) Frame(bbox geometry.BoundingBox) {
	c.Target = bbox.Center()
	c.Distance = math.Max(bbox.MaxDimension()*2.0, 1)
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project projects a 3D point to 2D screen coordinates. The returned depth
// is the distance along the view direction; points with depth <= NearPlane
// are behind the camera and their screen position is meaningless.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	depth := math.Max(z, NearPlane)
	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(depth*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(depth*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// GroundPoint intersects the ray through the screen point with the
// horizontal plane y = planeY. ok is false when the ray misses the plane.
func (c *Camera) GroundPoint(screenX, screenY, width, height, planeY float64) (point geometry.Vector3, ok bool) {
	origin, dir := c.Unproject(screenX, screenY, width, height)
	return geometry.Ray{Origin: origin, Direction: dir}.IntersectPlaneY(planeY)
}

// Unproject converts 2D screen coordinates back to 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	// Convert screen coordinates to normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	// Calculate ray direction
	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	rayDir = rayDir.Normalize()

	return c.Position, rayDir
}
