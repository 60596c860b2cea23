// Package shell tracks which page is mounted and which model the user
// picked in the catalogue.
package shell

import (
	"sync"

	"github.com/amos-org/amos/internal/catalogue"
)

// State is the navigation state
type State struct {
	Page          catalogue.Page
	SelectedModel string
}

// Shell implements catalogue.Navigator
type Shell struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)
}

var _ catalogue.Navigator = (*Shell)(nil)

// New creates a shell showing page with model preselected
func New(page catalogue.Page, model string) *Shell {
	return &Shell{state: State{Page: page, SelectedModel: model}}
}

// OnChange registers fn to be called after every change
func (s *Shell) OnChange(fn func(State)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// State returns the current state
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectModel sets the model the visualizer should show
func (s *Shell) SelectModel(path string) {
	s.update(func(st *State) { st.SelectedModel = path })
}

// SetActivePage mounts page
func (s *Shell) SetActivePage(page catalogue.Page) {
	s.update(func(st *State) { st.Page = page })
}

func (s *Shell) update(fn func(*State)) {
	s.mu.Lock()
	before := s.state
	fn(&s.state)
	after := s.state
	listeners := append([]func(State){}, s.listeners...)
	s.mu.Unlock()

	if before == after {
		return
	}
	for _, l := range listeners {
		l(after)
	}
}
