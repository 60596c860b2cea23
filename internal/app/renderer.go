package app

import (
	"image/color"

	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/stl"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// meshCache keeps one uploaded mesh per model and colour. Meshes not drawn
// in a frame are unloaded by sweep.
type meshCache struct {
	stage  scene.Stage
	meshes map[meshKey]*meshEntry
}

func newMeshCache(stage scene.Stage) *meshCache {
	return &meshCache{stage: stage, meshes: make(map[meshKey]*meshEntry)}
}

// get returns the mesh for model baked in col, uploading it on first use
func (c *meshCache) get(model *stl.Model, col color.RGBA) rl.Mesh {
	key := meshKey{model: model, color: col}
	entry, ok := c.meshes[key]
	if !ok {
		entry = &meshEntry{mesh: stlToRaylibMesh(model, c.stage, col)}
		c.meshes[key] = entry
	}
	entry.used = true
	return entry.mesh
}

// sweep unloads meshes that were not requested since the last sweep
func (c *meshCache) sweep() {
	for key, entry := range c.meshes {
		if !entry.used {
			rl.UnloadMesh(&entry.mesh)
			delete(c.meshes, key)
			continue
		}
		entry.used = false
	}
}

func (c *meshCache) unloadAll() {
	for key, entry := range c.meshes {
		rl.UnloadMesh(&entry.mesh)
		delete(c.meshes, key)
	}
}

// stlToRaylibMesh converts an STL model to a Raylib mesh with the stage's
// lighting baked into the vertex colours
func stlToRaylibMesh(model *stl.Model, stage scene.Stage, base color.RGBA) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()
		lit := render.Shade(stage, normal.RotateX(stage.ModelRotationX), base)

		for v, vertex := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices[idx*3+0] = float32(vertex.X)
			vertices[idx*3+1] = float32(vertex.Y)
			vertices[idx*3+2] = float32(vertex.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			texcoords[idx*2+0] = float32(v % 2)
			texcoords[idx*2+1] = float32(v / 2)
			colors[idx*4+0] = lit.R
			colors[idx*4+1] = lit.G
			colors[idx*4+2] = lit.B
			colors[idx*4+3] = lit.A
			idx++
		}
	}

	if len(vertices) > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// drawStage draws the ground plane and its grid
func (app *App) drawStage() {
	stage := app.vis.Stage()
	size := float32(stage.GroundSize)
	y := float32(stage.GroundY)

	rl.DrawPlane(rl.Vector3{Y: y}, rl.Vector2{X: size, Y: size}, toRaylib(stage.GroundColor))

	gridY := y + 0.01
	half := size / 2
	for i := float32(0); i <= size; i += float32(scene.SnapUnit) * 5 {
		rl.DrawLine3D(rl.Vector3{X: -half + i, Y: gridY, Z: -half}, rl.Vector3{X: -half + i, Y: gridY, Z: half}, gridColor)
		rl.DrawLine3D(rl.Vector3{X: -half, Y: gridY, Z: -half + i}, rl.Vector3{X: half, Y: gridY, Z: -half + i}, gridColor)
	}
}

// drawItems draws every instance, placeholders included
func (app *App) drawItems(items []render.Item) {
	dragged, dragging := app.vis.Dragger().Target()
	for _, item := range items {
		if item.Model == nil || len(item.Model.Triangles) == 0 {
			continue
		}
		mesh := app.meshes.get(item.Model, item.Color)
		transform := rl.MatrixMultiply(
			rl.MatrixMultiply(
				rl.MatrixRotateX(float32(item.RotationX)),
				rl.MatrixScale(float32(item.Scale.X), float32(item.Scale.Y), float32(item.Scale.Z)),
			),
			rl.MatrixTranslate(float32(item.Position.X), float32(item.Position.Y), float32(item.Position.Z)),
		)
		rl.DrawMesh(mesh, app.material, transform)

		if dragging && item.ID == dragged {
			bbox := item.Bounds()
			rl.DrawBoundingBox(rl.BoundingBox{
				Min: rl.Vector3{X: float32(bbox.Min.X), Y: float32(bbox.Min.Y), Z: float32(bbox.Min.Z)},
				Max: rl.Vector3{X: float32(bbox.Max.X), Y: float32(bbox.Max.Y), Z: float32(bbox.Max.Z)},
			}, rl.Yellow)
		}
	}
}
