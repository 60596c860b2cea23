package loader

import (
	"context"
	"sync"

	"github.com/amos-org/amos/pkg/stl"
)

// Status is the load status of a Slot
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is a consistent view of a Slot. Model is set only when Ready,
// Err only when Failed.
type State struct {
	Status     Status
	Path       string
	Model      *stl.Model
	Err        error
	Generation uint64
}

// Slot holds the geometry of one owner (a scene instance or a preview).
//
// Each Request bumps the slot's generation and cancels the previous load.
// A result is committed only if its generation is still current, so the
// last request always wins regardless of completion order.
type Slot struct {
	loader *Loader

	mu       sync.Mutex
	gen      uint64
	task     *Task
	state    State
	onChange func(State)
	closed   bool

	// notifyMu orders deliveries; delivered is the newest generation seen
	// by onChange.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewSlot creates an idle slot backed by l
func (l *Loader) NewSlot() *Slot {
	return &Slot{loader: l}
}

// OnChange sets the function called after state transitions. It runs on
// the goroutine that caused the transition and never sees a generation
// older than one it was already given. fn must not call Request or
// Reload on the same slot.
func (s *Slot) OnChange(fn func(State)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Request starts loading path and returns the new generation
func (s *Slot) Request(path string) uint64 {
	s.mu.Lock()
	if s.closed {
		gen := s.gen
		s.mu.Unlock()
		return gen
	}
	if s.task != nil {
		s.task.Cancel()
	}
	s.gen++
	gen := s.gen
	task := s.loader.Load(context.Background(), path)
	s.task = task
	s.state = State{Status: StatusPending, Path: path, Generation: gen}
	state, notify := s.state, s.onChange
	s.mu.Unlock()

	s.publish(state, notify)
	go s.await(task, gen)
	return gen
}

// Reload requests the current path again. It is a no-op for idle slots.
func (s *Slot) Reload() {
	s.mu.Lock()
	path := s.state.Path
	s.mu.Unlock()

	if path != "" {
		s.Request(path)
	}
}

func (s *Slot) await(task *Task, gen uint64) {
	<-task.Done()
	model, _, err := task.Result()

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.task = nil
	if err != nil {
		s.state = State{Status: StatusFailed, Path: task.Path(), Err: err, Generation: gen}
	} else {
		s.state = State{Status: StatusReady, Path: task.Path(), Model: model, Generation: gen}
	}
	state, notify := s.state, s.onChange
	s.mu.Unlock()

	s.publish(state, notify)
}

func (s *Slot) publish(state State, notify func(State)) {
	if notify == nil {
		return
	}
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	if state.Generation < s.delivered {
		return
	}
	s.delivered = state.Generation
	notify(state)
}

// State returns the current state
func (s *Slot) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close cancels any in-flight load; later results are discarded
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}
