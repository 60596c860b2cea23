package app

import (
	"math"

	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/geometry"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes user input
func (app *App) handleInput(items []render.Item) {
	mouse := rl.GetMousePosition()
	p := app.layoutPanel(items)
	overPanel := rl.CheckCollisionPointRec(mouse, p.bounds)

	app.UI.hovered = -1
	for i, b := range p.buttons {
		if rl.CheckCollisionPointRec(mouse, b.rect) {
			app.UI.hovered = i
			break
		}
	}

	dragger := app.vis.Dragger()

	// Keyboard shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		app.vis.Reload()
	}
	if rl.IsKeyPressed(rl.KeyA) && dragger.State() == scene.DragIdle {
		app.vis.AddModel()
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		switch {
		case app.UI.hovered >= 0:
			p.buttons[app.UI.hovered].action()
		case overPanel:
		case rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift):
			app.Interaction.isPanning = true
		case !app.beginDrag(items, mouse):
			app.Interaction.isOrbiting = true
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) && !overPanel {
		app.Interaction.isPanning = true
	}

	delta := rl.GetMouseDelta()
	switch {
	case dragger.State() == scene.DragActive:
		if point, ok := app.mouseRay(mouse).IntersectPlaneY(app.vis.Stage().GroundY); ok {
			dragger.Update(point.Add(app.Interaction.grab))
		}
	case app.Interaction.isPanning:
		app.doPan(delta)
	case app.Interaction.isOrbiting:
		app.doOrbit(delta)
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		dragger.End()
		app.Interaction.isPanning = false
		app.Interaction.isOrbiting = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		app.doZoom(wheel)
	}
}

// mouseRay returns the world-space ray under the cursor
func (app *App) mouseRay(mouse rl.Vector2) geometry.Ray {
	ray := rl.GetMouseRay(mouse, app.Camera.camera)
	return geometry.Ray{
		Origin:    geometry.NewVector3(float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z)),
		Direction: geometry.NewVector3(float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z)),
	}
}

// beginDrag starts dragging the nearest instance under the cursor. The
// grab offset keeps the instance from jumping to the cursor.
func (app *App) beginDrag(items []render.Item, mouse rl.Vector2) bool {
	ray := app.mouseRay(mouse)

	best := math.Inf(1)
	var hit *render.Item
	for i := range items {
		if t, ok := ray.IntersectBox(items[i].Bounds()); ok && t < best {
			best, hit = t, &items[i]
		}
	}
	if hit == nil {
		return false
	}
	if err := app.vis.Dragger().Begin(hit.ID); err != nil {
		return false
	}

	ground, ok := ray.IntersectPlaneY(app.vis.Stage().GroundY)
	if !ok {
		ground = hit.Position
	}
	app.Interaction.grab = hit.Position.Sub(ground)
	return true
}
