// Package loader loads STL geometry asynchronously.
//
// Every load re-fetches and re-parses its resource. Results are centered
// so the model's bounding box center sits at the origin.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/amos-org/amos/pkg/openscad"
	"github.com/amos-org/amos/pkg/stl"
)

// ErrLoadFailure matches every error produced by a failed fetch or parse
var ErrLoadFailure = errors.New("geometry load failed")

// ErrNoGeometry is wrapped by loads of resources that parse to zero triangles
var ErrNoGeometry = errors.New("model has no triangles")

// LoadError describes a failed load of Path
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoadFailure) true for every LoadError
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailure }

type resolver interface {
	Resolve(path string) string
}

// Loader fetches and parses model resources
type Loader struct {
	source Source
	scad   *openscad.Renderer
	log    *slog.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithSource replaces the default filesystem/HTTP source
func WithSource(source Source) Option {
	return func(l *Loader) { l.source = source }
}

// WithOpenSCAD enables rendering of .scad sources
func WithOpenSCAD(renderer *openscad.Renderer) Option {
	return func(l *Loader) { l.scad = renderer }
}

// WithLogger sets the logger used for load failures
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) { l.log = log }
}

// New creates a Loader. Without options it reads files relative to the
// working directory and fetches URLs over HTTP.
func New(opts ...Option) *Loader {
	l := &Loader{
		source: MultiSource{Files: FileSource{Root: "."}},
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the location path is read from
func (l *Loader) Resolve(path string) string {
	if r, ok := l.source.(resolver); ok {
		return r.Resolve(path)
	}
	return path
}

// Load starts loading path in the background
func (l *Loader) Load(ctx context.Context, path string) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{
		path:   path,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer cancel()
		task.model, task.err = l.LoadSync(ctx, path)
		close(task.done)
	}()

	return task
}

// LoadSync loads path on the calling goroutine. Cancellation is reported
// as the context error, every other failure as a *LoadError.
func (l *Loader) LoadSync(ctx context.Context, path string) (*stl.Model, error) {
	model, err := l.load(ctx, path)
	if err == nil && model.TriangleCount() == 0 {
		err = ErrNoGeometry
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		l.log.Warn("failed to load geometry", "path", path, "err", err)
		return nil, &LoadError{Path: path, Err: err}
	}

	model.Center()
	return model, nil
}

func (l *Loader) load(ctx context.Context, path string) (*stl.Model, error) {
	if strings.EqualFold(filepath.Ext(path), ".scad") {
		if l.scad == nil || IsURL(path) {
			return nil, fmt.Errorf("OpenSCAD sources are not supported here")
		}
		data, err := l.scad.Render(ctx, l.Resolve(path))
		if err != nil {
			return nil, err
		}
		return stl.ParseReader(bytes.NewReader(data))
	}

	rc, err := l.source.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return stl.ParseReader(rc)
}
