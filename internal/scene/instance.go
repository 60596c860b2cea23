package scene

import (
	"errors"

	"github.com/amos-org/amos/pkg/geometry"
)

const (
	// SnapUnit is the grid spacing dragged instances snap to
	SnapUnit = 1.0
	// MinScale is the smallest allowed scale component
	MinScale = 0.1
	// ScaleStep is the increment of the scale controls
	ScaleStep = 0.1
	// Spacing is the X distance between consecutively added instances
	Spacing = 2.0
)

var (
	ErrUnknownInstance = errors.New("unknown instance")
	ErrInvalidAxis     = errors.New("axis must be 0, 1 or 2")
	ErrInvalidScale    = errors.New("scale must be a finite number")
)

// Instance is one placed, scaled copy of the base model
type Instance struct {
	ID       int
	Position geometry.Vector3
	Scale    geometry.Vector3
}

// Patch lists the fields to replace in an Update; nil fields are kept
type Patch struct {
	Position *geometry.Vector3
	Scale    *geometry.Vector3
}

// apply returns inst with the patch applied and scale clamped
func (p Patch) apply(inst Instance) Instance {
	if p.Position != nil {
		inst.Position = *p.Position
	}
	if p.Scale != nil {
		inst.Scale = clampScale(*p.Scale)
	}
	return inst
}

func clampScale(scale geometry.Vector3) geometry.Vector3 {
	for axis := 0; axis < 3; axis++ {
		if v := scale.Component(axis); !(v >= MinScale) {
			scale = scale.WithComponent(axis, MinScale)
		}
	}
	return scale
}
