// Package visualizer binds the scene composer to one geometry slot per
// instance and keeps the slots in sync with the selected model.
package visualizer

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/openscad"
	"github.com/amos-org/amos/pkg/watcher"
)

// DefaultModel is shown until a catalogue item is selected
const DefaultModel = "/models/base_model.stl"

// Visualizer is the state behind the interactive scene view
type Visualizer struct {
	composer *scene.Composer
	dragger  *scene.Dragger
	loader   *loader.Loader
	stage    scene.Stage
	watcher  *watcher.FileWatcher
	log      *slog.Logger

	mu        sync.Mutex
	modelPath string
	watched   []string
	slots     map[int]*loader.Slot
	onChange  func()

	unsubscribe func()
}

// Option configures a Visualizer
type Option func(*Visualizer)

// WithWatcher reloads geometry whenever the model file changes
func WithWatcher(fw *watcher.FileWatcher) Option {
	return func(v *Visualizer) { v.watcher = fw }
}

// WithStage replaces scene.DefaultStage
func WithStage(stage scene.Stage) Option {
	return func(v *Visualizer) { v.stage = stage }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(v *Visualizer) { v.log = log }
}

// New creates a visualizer showing modelPath with one instance at the origin
func New(l *loader.Loader, modelPath string, opts ...Option) *Visualizer {
	v := &Visualizer{
		composer:  scene.NewComposer(),
		loader:    l,
		stage:     scene.DefaultStage,
		log:       slog.Default(),
		modelPath: modelPath,
		slots:     make(map[int]*loader.Slot),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.dragger = scene.NewDragger(v.composer)
	v.unsubscribe = v.composer.Subscribe(func(scene.Snapshot) { v.changed() })

	v.watch(modelPath)
	v.AddModel()
	return v
}

// Composer returns the instance collection
func (v *Visualizer) Composer() *scene.Composer { return v.composer }

// Dragger returns the drag state machine of the scene
func (v *Visualizer) Dragger() *scene.Dragger { return v.dragger }

// Stage returns the static scene description
func (v *Visualizer) Stage() scene.Stage { return v.stage }

// ModelPath returns the model every instance shows
func (v *Visualizer) ModelPath() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modelPath
}

// OnChange sets the function called when instances or geometry change.
// It may run on any goroutine.
func (v *Visualizer) OnChange(fn func()) {
	v.mu.Lock()
	v.onChange = fn
	v.mu.Unlock()
}

func (v *Visualizer) changed() {
	v.mu.Lock()
	fn := v.onChange
	v.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// AddModel adds an instance and starts loading its geometry
func (v *Visualizer) AddModel() scene.Instance {
	slot := v.loader.NewSlot()
	slot.OnChange(func(loader.State) { v.changed() })

	v.mu.Lock()
	path := v.modelPath
	v.mu.Unlock()

	inst := v.composer.Add()

	v.mu.Lock()
	v.slots[inst.ID] = slot
	v.mu.Unlock()

	slot.Request(path)
	return inst
}

// SetScale forwards to the composer
func (v *Visualizer) SetScale(id, axis int, value string) (scene.Instance, error) {
	return v.composer.SetScale(id, axis, value)
}

// SetModelPath switches every instance to path. Loads still in flight
// for the previous path are discarded.
func (v *Visualizer) SetModelPath(path string) {
	v.mu.Lock()
	if path == v.modelPath {
		v.mu.Unlock()
		return
	}
	v.modelPath = path
	slots := v.slotList()
	v.mu.Unlock()

	v.log.Info("switching model", "path", path)
	v.watch(path)
	for _, slot := range slots {
		slot.Request(path)
	}
}

// Reload loads the current model again for every instance
func (v *Visualizer) Reload() {
	v.mu.Lock()
	slots := v.slotList()
	v.mu.Unlock()

	for _, slot := range slots {
		slot.Reload()
	}
}

// slotList must be called with v.mu held
func (v *Visualizer) slotList() []*loader.Slot {
	slots := make([]*loader.Slot, 0, len(v.slots))
	for _, slot := range v.slots {
		slots = append(slots, slot)
	}
	return slots
}

// GeometryState returns the load state of instance id
func (v *Visualizer) GeometryState(id int) loader.State {
	v.mu.Lock()
	slot, ok := v.slots[id]
	v.mu.Unlock()
	if !ok {
		return loader.State{}
	}
	return slot.State()
}

// Frame returns the draw list for the current snapshot
func (v *Visualizer) Frame() []render.Item {
	return render.Build(v.composer.Snapshot(), v.stage, v.GeometryState)
}

// watch replaces the watched files with the ones path depends on
func (v *Visualizer) watch(path string) {
	if v.watcher == nil || loader.IsURL(path) {
		return
	}

	v.mu.Lock()
	old := v.watched
	v.watched = nil
	v.mu.Unlock()
	for _, file := range old {
		if err := v.watcher.Unwatch(file); err != nil {
			v.log.Warn("failed to stop watching", "path", file, "err", err)
		}
	}

	resolved := v.loader.Resolve(path)
	files := []string{resolved}
	if strings.EqualFold(filepath.Ext(resolved), ".scad") {
		deps, err := openscad.NewRenderer(filepath.Dir(resolved)).ResolveDependencies(resolved)
		if err != nil {
			v.log.Warn("failed to resolve OpenSCAD dependencies", "path", resolved, "err", err)
		} else {
			files = deps
		}
	}

	if err := v.watcher.Watch(files, func(string) { v.Reload() }); err != nil {
		v.log.Warn("auto-reload unavailable", "path", resolved, "err", err)
		return
	}
	v.mu.Lock()
	v.watched = files
	v.mu.Unlock()
}

// Close cancels pending loads and detaches from the composer
func (v *Visualizer) Close() {
	v.unsubscribe()

	v.mu.Lock()
	slots := v.slotList()
	v.mu.Unlock()
	for _, slot := range slots {
		slot.Close()
	}
}
