package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/stl"
)

// Object is a model placed in the scene
type Object struct {
	ID       int
	Model    *stl.Model
	Position geometry.Vector3
	Scale    geometry.Vector3
	Color    color.RGBA

	// RotationX turns the model about its X axis before scaling
	RotationX float64
}

func (o Object) transform(p geometry.Vector3) geometry.Vector3 {
	return p.RotateX(o.RotationX).MulVec(o.Scale).Add(o.Position)
}

// Bounds returns the world-space bounding box of the object
func (o Object) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	if o.Model == nil || len(o.Model.Triangles) == 0 {
		return bbox
	}
	for _, corner := range o.Model.BoundingBox().Corners() {
		bbox.Extend(o.transform(corner))
	}
	return bbox
}

// Ground is a square plane at height Y centered under the origin.
// A zero Size disables it.
type Ground struct {
	Size      float64
	Y         float64
	Color     color.RGBA
	GridColor color.RGBA
}

// Shader returns the lit color of a face
type Shader func(normal geometry.Vector3, base color.RGBA) color.RGBA

// Scene is everything Rasterize draws
type Scene struct {
	Background color.RGBA
	Ground     Ground
	Objects    []Object
	Shade      Shader
}

// Bounds returns the box containing all objects
func (s Scene) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, obj := range s.Objects {
		b := obj.Bounds()
		if b.IsEmpty() {
			continue
		}
		bbox.Extend(b.Min)
		bbox.Extend(b.Max)
	}
	return bbox
}

const groundTiles = 20

// Rasterize draws the scene as seen by cam into a width x height image
func Rasterize(scene Scene, cam *Camera, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = scene.Background.R
		img.Pix[i+1] = scene.Background.G
		img.Pix[i+2] = scene.Background.B
		img.Pix[i+3] = scene.Background.A
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	w, h := float64(width), float64(height)
	fill := func(a, b, c geometry.Vector3, col color.RGBA) {
		x1, y1, z1 := cam.Project(a, w, h)
		x2, y2, z2 := cam.Project(b, w, h)
		x3, y3, z3 := cam.Project(c, w, h)
		// No near-plane clipping; faces crossing it are dropped.
		if z1 <= NearPlane || z2 <= NearPlane || z3 <= NearPlane {
			return
		}
		fillTriangleWithDepth(img, zbuffer, x1, y1, z1, x2, y2, z2, x3, y3, z3, col)
	}

	if g := scene.Ground; g.Size > 0 {
		rasterizeGround(img, cam, g, fill)
	}

	for _, obj := range scene.Objects {
		if obj.Model == nil {
			continue
		}
		for _, tri := range obj.Model.Triangles {
			v1, v2, v3 := obj.transform(tri.V1), obj.transform(tri.V2), obj.transform(tri.V3)
			col := obj.Color
			if scene.Shade != nil {
				normal := geometry.Triangle{V1: v1, V2: v2, V3: v3}.CalculateNormal()
				col = scene.Shade(normal, obj.Color)
			}
			fill(v1, v2, v3, col)
		}
	}

	return img
}

func rasterizeGround(img *image.RGBA, cam *Camera, g Ground, fill func(a, b, c geometry.Vector3, col color.RGBA)) {
	step := g.Size / groundTiles
	half := g.Size / 2
	corner := func(i, j int) geometry.Vector3 {
		return geometry.NewVector3(-half+float64(i)*step, g.Y, -half+float64(j)*step)
	}

	for i := 0; i < groundTiles; i++ {
		for j := 0; j < groundTiles; j++ {
			a, b, c, d := corner(i, j), corner(i+1, j), corner(i+1, j+1), corner(i, j+1)
			fill(a, b, c, g.Color)
			fill(a, c, d, g.Color)
		}
	}

	if g.GridColor.A == 0 {
		return
	}
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	line := func(a, b geometry.Vector3) {
		x1, y1, z1 := cam.Project(a, w, h)
		x2, y2, z2 := cam.Project(b, w, h)
		if z1 <= NearPlane || z2 <= NearPlane || offscreen(x1, y1, w, h) || offscreen(x2, y2, w, h) {
			return
		}
		drawLine(img, int(x1), int(y1), int(x2), int(y2), g.GridColor)
	}
	for i := 0; i <= groundTiles; i++ {
		for j := 0; j < groundTiles; j++ {
			line(corner(i, j), corner(i, j+1))
			line(corner(j, i), corner(j+1, i))
		}
	}
}

// offscreen reports points far enough outside the image that walking a
// line to them is wasted work
func offscreen(x, y, w, h float64) bool {
	return x < -4*w || x > 5*w || y < -4*h || y > 5*h
}

// Pick returns the ID of the nearest object whose bounding box is hit by
// the ray through the screen point.
func Pick(scene Scene, cam *Camera, screenX, screenY, width, height float64) (int, bool) {
	origin, dir := cam.Unproject(screenX, screenY, width, height)
	ray := geometry.Ray{Origin: origin, Direction: dir}

	best := math.Inf(1)
	id, found := 0, false
	for _, obj := range scene.Objects {
		if t, ok := ray.IntersectBox(obj.Bounds()); ok && t < best {
			best, id, found = t, obj.ID, true
		}
	}
	return id, found
}

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	// Convert to integers for pixel operations
	vertices := [][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 = vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 = vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 = vertices[2][0], vertices[2][1], vertices[2][2]

	bounds := img.Bounds()
	width := bounds.Max.X

	// Scanline algorithm with depth interpolation
	for y := int(math.Max(0, y1)); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		var xStart, xEnd, zStart, zEnd float64
		foundStart := false
		foundEnd := false

		// Find intersections with triangle edges
		// Edge 1-2
		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			x := x1 + t*(x2-x1)
			z := z1 + t*(z2-z1)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		// Edge 2-3
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			x := x2 + t*(x3-x2)
			z := z2 + t*(z3-z2)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		// Edge 1-3
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			x := x1 + t*(x3-x1)
			z := z1 + t*(z3-z1)
			if !foundStart {
				xStart, zStart = x, z
				foundStart = true
			} else {
				xEnd, zEnd = x, z
				foundEnd = true
			}
		}

		if foundStart && foundEnd {
			// Ensure xStart < xEnd
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
				zStart, zEnd = zEnd, zStart
			}

			// Clamp to image bounds
			xStartInt := int(math.Max(0, xStart))
			xEndInt := int(math.Min(float64(bounds.Max.X-1), xEnd))

			// Draw horizontal line with depth testing
			for x := xStartInt; x <= xEndInt; x++ {
				// Interpolate depth
				t := 0.0
				if xEnd != xStart {
					t = (float64(x) - xStart) / (xEnd - xStart)
				}
				z := zStart + t*(zEnd-zStart)

				// Depth test - draw if closer (smaller z)
				idx := y*width + x
				if idx >= 0 && idx < len(zbuffer) {
					if z < zbuffer[idx] {
						zbuffer[idx] = z
						img.SetRGBA(x, y, col)
					}
				}
			}
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		// Check bounds
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
