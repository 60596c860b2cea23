package stl

import (
	"github.com/amos-org/amos/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// Center moves the model so that its bounding box center sits at the
// origin and returns the offset that was applied.
func (m *Model) Center() geometry.Vector3 {
	offset := m.BoundingBox().Center().Mul(-1)
	for i, triangle := range m.Triangles {
		m.Triangles[i] = triangle.Translate(offset)
	}
	return offset
}

// Cube returns an axis-aligned cube with the given edge length centered
// at the origin, wound counter-clockwise when seen from outside.
func Cube(size float64) *Model {
	h := size / 2
	corner := func(x, y, z float64) geometry.Vector3 {
		return geometry.NewVector3(x*h, y*h, z*h)
	}

	// each face: outward normal and its four corners in CCW order
	faces := []struct {
		normal  geometry.Vector3
		corners [4]geometry.Vector3
	}{
		{geometry.NewVector3(1, 0, 0), [4]geometry.Vector3{corner(1, -1, 1), corner(1, -1, -1), corner(1, 1, -1), corner(1, 1, 1)}},
		{geometry.NewVector3(-1, 0, 0), [4]geometry.Vector3{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}},
		{geometry.NewVector3(0, 1, 0), [4]geometry.Vector3{corner(-1, 1, 1), corner(1, 1, 1), corner(1, 1, -1), corner(-1, 1, -1)}},
		{geometry.NewVector3(0, -1, 0), [4]geometry.Vector3{corner(-1, -1, -1), corner(1, -1, -1), corner(1, -1, 1), corner(-1, -1, 1)}},
		{geometry.NewVector3(0, 0, 1), [4]geometry.Vector3{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)}},
		{geometry.NewVector3(0, 0, -1), [4]geometry.Vector3{corner(1, -1, -1), corner(-1, -1, -1), corner(-1, 1, -1), corner(1, 1, -1)}},
	}

	model := NewModel("cube")
	for _, face := range faces {
		c := face.corners
		model.AddTriangle(geometry.NewTriangle(face.normal, c[0], c[1], c[2]))
		model.AddTriangle(geometry.NewTriangle(face.normal, c[0], c[2], c[3]))
	}
	return model
}
