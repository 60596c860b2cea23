// Package render turns scene snapshots into draw lists shared by the
// fyne and raylib front-ends.
package render

import (
	"image/color"
	"math"

	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/stl"
)

// Kind says what an Item draws
type Kind int

const (
	KindMesh Kind = iota
	KindPlaceholder
	KindFailed
)

var (
	// PlaceholderColor tints the cube drawn while geometry is loading
	PlaceholderColor = color.RGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	// FailedColor tints the cube drawn when geometry failed to load
	FailedColor = color.RGBA{R: 0xe0, G: 0x4f, B: 0x4f, A: 0xff}
)

var unitCube = stl.Cube(1)

// UnitCube returns the shared placeholder model. Callers must not modify it.
func UnitCube() *stl.Model { return unitCube }

// Item is one thing to draw in a frame
type Item struct {
	ID       int
	Kind     Kind
	Model    *stl.Model
	Position geometry.Vector3
	Scale    geometry.Vector3
	Color    color.RGBA

	// RotationX is applied in model space before Scale
	RotationX float64
}

// Build produces one Item per instance. Instances without loaded
// geometry are drawn as a unit cube at their position and scale.
func Build(snap scene.Snapshot, stage scene.Stage, lookup func(id int) loader.State) []Item {
	instances := snap.Instances()
	items := make([]Item, 0, len(instances))

	for _, inst := range instances {
		var state loader.State
		if lookup != nil {
			state = lookup(inst.ID)
		}
		items = append(items, ItemFor(inst.ID, inst.Position, inst.Scale, state, stage))
	}
	return items
}

// ItemFor builds the Item for geometry in state placed at position/scale
func ItemFor(id int, position, scale geometry.Vector3, state loader.State, stage scene.Stage) Item {
	item := Item{
		ID:        id,
		Position:  position,
		Scale:     scale,
		RotationX: stage.ModelRotationX,
	}
	switch {
	case state.Status == loader.StatusReady && state.Model != nil:
		item.Kind = KindMesh
		item.Model = state.Model
		item.Color = stage.ModelColor
	case state.Status == loader.StatusFailed:
		item.Kind = KindFailed
		item.Model = unitCube
		item.Color = FailedColor
	default:
		item.Kind = KindPlaceholder
		item.Model = unitCube
		item.Color = PlaceholderColor
	}
	return item
}

// Transform maps a model-space point of the item into world space
func (it Item) Transform(p geometry.Vector3) geometry.Vector3 {
	return p.RotateX(it.RotationX).MulVec(it.Scale).Add(it.Position)
}

// Bounds returns the world-space bounding box of the item
func (it Item) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, corner := range it.Model.BoundingBox().Corners() {
		bbox.Extend(it.Transform(corner))
	}
	return bbox
}

// Shade applies the stage's baked lighting to base for a face with the
// given normal: ambient plus the Lambert term of the directional light.
func Shade(stage scene.Stage, normal geometry.Vector3, base color.RGBA) color.RGBA {
	diffuse := math.Max(0, -normal.Normalize().Dot(stage.Directional.Direction()))
	intensity := math.Min(1, stage.Ambient.Intensity+stage.Directional.Intensity*diffuse*(1-stage.Ambient.Intensity))

	scale := func(c uint8) uint8 {
		return uint8(math.Round(float64(c) * intensity))
	}
	return color.RGBA{R: scale(base.R), G: scale(base.G), B: scale(base.B), A: base.A}
}
