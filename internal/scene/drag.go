package scene

import (
	"github.com/amos-org/amos/pkg/geometry"
)

// DragState is the state of a Dragger
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// Dragger moves one instance at a time across the ground plane.
// Positions are snapped to SnapUnit and the vertical axis is never touched.
type Dragger struct {
	composer *Composer
	state    DragState
	target   int
}

// NewDragger creates an idle dragger for composer
func NewDragger(composer *Composer) *Dragger {
	return &Dragger{composer: composer}
}

// State returns the current drag state
func (d *Dragger) State() DragState { return d.state }

// Target returns the dragged instance id and whether a drag is active
func (d *Dragger) Target() (int, bool) {
	return d.target, d.state == DragActive
}

// Begin starts dragging instance id
func (d *Dragger) Begin(id int) error {
	if _, ok := d.composer.Snapshot().Get(id); !ok {
		return ErrUnknownInstance
	}
	d.state = DragActive
	d.target = id
	return nil
}

// Update moves the dragged instance to offset. offset.Y is ignored and
// X/Z are snapped to the grid; non-finite results are dropped. It reports
// whether a position was committed.
func (d *Dragger) Update(offset geometry.Vector3) bool {
	if d.state != DragActive {
		return false
	}

	x := geometry.Snap(offset.X, SnapUnit)
	z := geometry.Snap(offset.Z, SnapUnit)
	if !geometry.IsFinite(x) || !geometry.IsFinite(z) {
		return false
	}

	_, err := d.composer.modify(d.target, func(inst Instance) Instance {
		inst.Position = geometry.NewVector3(x, inst.Position.Y, z)
		return inst
	})
	return err == nil
}

// End finishes the drag
func (d *Dragger) End() {
	d.state = DragIdle
	d.target = 0
}
