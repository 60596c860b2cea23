// Package scene holds the instance collection of the visualizer and the
// operations that mutate it.
package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/amos-org/amos/pkg/geometry"
)

// Composer owns the instance collection. Every mutation replaces the
// whole collection and publishes a new Snapshot.
type Composer struct {
	mu          sync.Mutex
	nextID      int
	snapshot    Snapshot
	subscribers map[int]func(Snapshot)
	nextSub     int
}

// NewComposer creates an empty composer
func NewComposer() *Composer {
	return &Composer{
		nextID:      1,
		subscribers: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current collection
func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Subscribe registers fn for every published snapshot and returns a
// function that removes it. fn runs on the mutating goroutine.
func (c *Composer) Subscribe(fn func(Snapshot)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// publish must be called with c.mu held; it returns the notifications to
// run after unlocking.
func (c *Composer) publish(instances []Instance) func() {
	c.snapshot = Snapshot{Version: c.snapshot.Version + 1, instances: instances}
	snap := c.snapshot
	fns := make([]func(Snapshot), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	return func() {
		for _, fn := range fns {
			fn(snap)
		}
	}
}

// Add appends a new instance placed Spacing units further along X than
// the count of existing instances, with unit scale.
func (c *Composer) Add() Instance {
	c.mu.Lock()
	count := len(c.snapshot.instances)
	inst := Instance{
		ID:       c.nextID,
		Position: geometry.NewVector3(Spacing*float64(count), 0, 0),
		Scale:    geometry.NewVector3(1, 1, 1),
	}
	c.nextID++

	instances := make([]Instance, count, count+1)
	copy(instances, c.snapshot.instances)
	instances = append(instances, inst)
	notify := c.publish(instances)
	c.mu.Unlock()

	notify()
	return inst
}

// Update applies patch to the instance with the given id. An update that
// changes nothing publishes nothing.
func (c *Composer) Update(id int, patch Patch) (Instance, error) {
	return c.modify(id, patch.apply)
}

// SetScale parses value and sets one scale axis of instance id to
// max(MinScale, value). Invalid input leaves the scale unchanged.
func (c *Composer) SetScale(id, axis int, value string) (Instance, error) {
	if axis < 0 || axis > 2 {
		return Instance{}, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	v, err := ParseScale(value)
	if err != nil {
		return Instance{}, err
	}

	return c.modify(id, func(inst Instance) Instance {
		inst.Scale = inst.Scale.WithComponent(axis, v)
		return inst
	})
}

// StepScale adds delta to one scale axis of instance id, rounded to
// ScaleStep and clamped to MinScale
func (c *Composer) StepScale(id, axis int, delta float64) (Instance, error) {
	if axis < 0 || axis > 2 {
		return Instance{}, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}
	if !geometry.IsFinite(delta) {
		return Instance{}, fmt.Errorf("%w: %v", ErrInvalidScale, delta)
	}

	return c.modify(id, func(inst Instance) Instance {
		v := math.Round((inst.Scale.Component(axis)+delta)/ScaleStep) * ScaleStep
		inst.Scale = clampScale(inst.Scale.WithComponent(axis, v))
		return inst
	})
}

// modify replaces instance id with fn(instance) under the lock
func (c *Composer) modify(id int, fn func(Instance) Instance) (Instance, error) {
	c.mu.Lock()
	index := -1
	for i, inst := range c.snapshot.instances {
		if inst.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return Instance{}, fmt.Errorf("%w: %d", ErrUnknownInstance, id)
	}

	current := c.snapshot.instances[index]
	updated := fn(current)
	if updated == current {
		c.mu.Unlock()
		return current, nil
	}

	instances := make([]Instance, len(c.snapshot.instances))
	copy(instances, c.snapshot.instances)
	instances[index] = updated
	notify := c.publish(instances)
	c.mu.Unlock()

	notify()
	return updated, nil
}

// ParseScale parses a scale entry and clamps it to MinScale
func ParseScale(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !geometry.IsFinite(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidScale, value)
	}
	if v < MinScale {
		v = MinScale
	}
	return v, nil
}
