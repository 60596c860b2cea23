package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultDistance = 12
	defaultAngleX   = 0.5
	defaultAngleY   = 0.6
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = rl.Vector3{}
}

// setCameraTopView looks straight down on the ground
func (app *App) setCameraTopView() {
	app.Camera.angleX = math.Pi/2 - 0.01
	app.Camera.angleY = 0
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.Camera.angleX = 0.1
	app.Camera.angleY = 0
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	c := &app.Camera
	x := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Sin(float64(c.angleY)))
	y := c.distance * float32(math.Sin(float64(c.angleX)))
	z := c.distance * float32(math.Cos(float64(c.angleX))) * float32(math.Cos(float64(c.angleY)))

	c.camera.Position = rl.Vector3{
		X: c.target.X + x,
		Y: c.target.Y + y,
		Z: c.target.Z + z,
	}
	c.camera.Target = c.target
}

// doOrbit rotates the camera around its target based on mouse delta
func (app *App) doOrbit(delta rl.Vector2) {
	c := &app.Camera
	c.angleY -= delta.X * 0.01
	c.angleX += delta.Y * 0.01

	maxAngle := float32(math.Pi/2 - 0.05)
	if c.angleX > maxAngle {
		c.angleX = maxAngle
	}
	if c.angleX < -maxAngle {
		c.angleX = -maxAngle
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	c := &app.Camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(c.target, c.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, c.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := c.distance * 0.001

	c.target = rl.Vector3Add(c.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	c.target = rl.Vector3Add(c.target, rl.Vector3Scale(up, delta.Y*panSpeed))
}

// doZoom changes the camera distance by wheel steps
func (app *App) doZoom(wheel float32) {
	c := &app.Camera
	c.distance *= 1 - wheel*0.1
	if c.distance < 1 {
		c.distance = 1
	}
	if c.distance > 200 {
		c.distance = 200
	}
}
