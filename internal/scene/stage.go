package scene

import (
	"image/color"
	"math"

	"github.com/amos-org/amos/pkg/geometry"
)

// Light is a light source of the stage
type Light struct {
	Intensity float64
	// Position is only meaningful for directional lights; the light shines
	// from Position towards the origin.
	Position    geometry.Vector3
	CastShadows bool
}

// Direction returns the normalized direction the light travels in
func (l Light) Direction() geometry.Vector3 {
	return l.Position.Mul(-1).Normalize()
}

// Stage describes the static parts of the visualizer scene
type Stage struct {
	GroundSize  float64
	GroundY     float64
	GroundColor color.RGBA
	Ambient     Light
	Directional Light
	ModelColor  color.RGBA

	// ModelRotationX turns loaded models about the X axis before they are
	// scaled and placed.
	ModelRotationX float64
}

// DefaultStage is a 100x100 ground plane half a unit below the origin,
// lit by an ambient light and one shadow casting directional light.
// Models are stood upright from the Z-up convention of STL exports.
var DefaultStage = Stage{
	GroundSize:  100,
	GroundY:     -0.5,
	GroundColor: color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	Ambient:     Light{Intensity: 0.5},
	Directional: Light{Intensity: 1, Position: geometry.NewVector3(10, 10, 10), CastShadows: true},
	ModelColor:  color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}, // lightblue

	ModelRotationX: -math.Pi / 2,
}
