package app

import (
	"image/color"

	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/stl"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32
	defaultAngleX float32
	defaultAngleY float32
}

// InteractionState holds mouse and drag state
type InteractionState struct {
	isPanning  bool
	isOrbiting bool
	// grab is the offset from the ground point under the cursor to the
	// dragged instance's position
	grab geometry.Vector3
}

// meshKey identifies a GPU mesh: the same model baked in another colour
// is a different mesh
type meshKey struct {
	model *stl.Model
	color color.RGBA
}

type meshEntry struct {
	mesh rl.Mesh
	used bool
}

// UIState holds the side panel state
type UIState struct {
	hovered int // index into the current button list, -1 for none
}
