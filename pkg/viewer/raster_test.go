package viewer

import (
	"image/color"
	"math"
	"testing"

	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	background = color.RGBA{R: 1, G: 2, B: 3, A: 255}
	red        = color.RGBA{R: 255, A: 255}
	green      = color.RGBA{G: 255, A: 255}
)

// testCamera looks at the origin from far enough away that a unit cube
// stays clear of the image corners
func testCamera() *Camera {
	cam := NewCamera(unitBox())
	cam.Distance = 6
	cam.UpdatePosition()
	return cam
}

func cubeAt(id int, x float64, col color.RGBA) Object {
	return Object{
		ID:       id,
		Model:    stl.Cube(1),
		Position: geometry.NewVector3(x, 0, 0),
		Scale:    geometry.NewVector3(1, 1, 1),
		Color:    col,
	}
}

func TestRasterizeBackground(t *testing.T) {
	cam := testCamera()
	img := Rasterize(Scene{Background: background}, cam, 16, 8)

	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, background, img.RGBAAt(0, 0))
	assert.Equal(t, background, img.RGBAAt(15, 7))
}

func TestRasterizeEmptyImage(t *testing.T) {
	img := Rasterize(Scene{}, NewCamera(unitBox()), 0, 0)
	assert.True(t, img.Bounds().Empty())
}

func TestRasterizeObjectAtCenter(t *testing.T) {
	cam := testCamera()
	scene := Scene{Background: background, Objects: []Object{cubeAt(1, 0, red)}}

	img := Rasterize(scene, cam, 64, 64)

	assert.Equal(t, red, img.RGBAAt(32, 32))
	assert.Equal(t, background, img.RGBAAt(0, 0))
}

func TestRasterizeShader(t *testing.T) {
	cam := testCamera()
	calls := 0
	scene := Scene{
		Background: background,
		Objects:    []Object{cubeAt(1, 0, red)},
		Shade: func(_ geometry.Vector3, _ color.RGBA) color.RGBA {
			calls++
			return green
		},
	}

	img := Rasterize(scene, cam, 64, 64)

	assert.Equal(t, 12, calls)
	assert.Equal(t, green, img.RGBAAt(32, 32))
}

func TestRasterizeDepth(t *testing.T) {
	cam := testCamera()
	near := cubeAt(1, 0, red)
	far := cubeAt(2, 0, green)
	far.Position = cam.Target.Sub(cam.Position).Normalize().Mul(3)

	for _, order := range [][]Object{{near, far}, {far, near}} {
		img := Rasterize(Scene{Background: background, Objects: order}, cam, 64, 64)
		assert.Equal(t, red, img.RGBAAt(32, 32))
	}
}

func TestRasterizeGround(t *testing.T) {
	cam := testCamera()
	ground := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	scene := Scene{
		Background: background,
		Ground:     Ground{Size: 100, Y: -0.5, Color: ground},
	}

	img := Rasterize(scene, cam, 64, 64)

	x, y, z := cam.Project(geometry.NewVector3(-2.5, -0.5, -2.5), 64, 64)
	require.Greater(t, z, NearPlane)
	require.True(t, x >= 0 && x < 64 && y >= 0 && y < 64, "ground point off screen at (%v, %v)", x, y)
	assert.Equal(t, ground, img.RGBAAt(int(x), int(y)))
	assert.Equal(t, background, img.RGBAAt(32, 0))
}

func TestSceneBounds(t *testing.T) {
	scene := Scene{Objects: []Object{cubeAt(1, 0, red), cubeAt(2, 4, red), {ID: 3}}}

	bbox := scene.Bounds()
	assert.InDelta(t, -0.5, bbox.Min.X, 1e-9)
	assert.InDelta(t, 4.5, bbox.Max.X, 1e-9)

	assert.True(t, Scene{}.Bounds().IsEmpty())
}

func TestObjectBoundsFollowRotation(t *testing.T) {
	model := stl.NewModel("slab")
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(-1, -1, -3), geometry.NewVector3(1, 1, 3), geometry.NewVector3(1, -1, 3)))
	obj := Object{
		Model:     model,
		Position:  geometry.NewVector3(0, 1, 0),
		Scale:     geometry.NewVector3(1, 1, 1),
		RotationX: -math.Pi / 2,
	}

	bbox := obj.Bounds()
	assert.InDelta(t, -2, bbox.Min.Y, 1e-9)
	assert.InDelta(t, 4, bbox.Max.Y, 1e-9)
	assert.InDelta(t, 2, bbox.Size().Z, 1e-9)
}

func TestPick(t *testing.T) {
	cam := testCamera()
	scene := Scene{Objects: []Object{cubeAt(7, 0, red)}}

	id, ok := Pick(scene, cam, 50, 50, 100, 100)
	require.True(t, ok)
	assert.Equal(t, 7, id)

	_, ok = Pick(scene, cam, 0, 0, 100, 100)
	assert.False(t, ok)
}

func TestPickNearest(t *testing.T) {
	cam := testCamera()
	near := cubeAt(1, 0, red)
	far := cubeAt(2, 0, green)
	far.Position = cam.Target.Sub(cam.Position).Normalize().Mul(3)

	id, ok := Pick(Scene{Objects: []Object{far, near}}, cam, 50, 50, 100, 100)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}
