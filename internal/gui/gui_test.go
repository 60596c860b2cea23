package gui

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/amos-org/amos/internal/catalogue"
	"github.com/amos-org/amos/internal/config"
	"github.com/amos-org/amos/internal/render"
	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/internal/visualizer"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func emptyLoader(t *testing.T) *loader.Loader {
	return loader.New(loader.WithSource(loader.FileSource{Root: t.TempDir()}), loader.WithLogger(quiet()))
}

func TestSceneFromItems(t *testing.T) {
	stage := scene.DefaultStage
	items := []render.Item{
		render.ItemFor(3, geometry.NewVector3(2, 0, 4), geometry.NewVector3(1, 2, 1), loader.State{Status: loader.StatusFailed}, stage),
	}

	s := sceneFromItems(items, stage)

	require.Len(t, s.Objects, 1)
	obj := s.Objects[0]
	assert.Equal(t, 3, obj.ID)
	assert.Equal(t, geometry.NewVector3(2, 0, 4), obj.Position)
	assert.Equal(t, geometry.NewVector3(1, 2, 1), obj.Scale)
	assert.Equal(t, render.FailedColor, obj.Color)
	assert.Same(t, render.UnitCube(), obj.Model)
	assert.Equal(t, stage.ModelRotationX, obj.RotationX)

	assert.Equal(t, stage.GroundSize, s.Ground.Size)
	assert.Equal(t, stage.GroundY, s.Ground.Y)

	up := geometry.NewVector3(0, 1, 0)
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, render.Shade(stage, up, base), s.Shade(up, base))
}

func TestPreviewStageHasNoGround(t *testing.T) {
	assert.Zero(t, previewStage.GroundSize)
	assert.NotZero(t, scene.DefaultStage.GroundSize)
}

func TestScaleRowSubmit(t *testing.T) {
	test.NewTempApp(t)

	vis := visualizer.New(emptyLoader(t), visualizer.DefaultModel, visualizer.WithLogger(quiet()))
	defer vis.Close()

	row := newScaleRow(vis, 1)
	inst, ok := vis.Composer().Snapshot().Get(1)
	require.True(t, ok)
	row.show(inst, nil)
	assert.Equal(t, "1", row.entries[0].Text)

	row.submit(0, "-5")
	assert.Equal(t, "0.1", row.entries[0].Text)
	inst, _ = vis.Composer().Snapshot().Get(1)
	assert.InDelta(t, 0.1, inst.Scale.X, 1e-9)

	row.submit(0, "abc")
	assert.Equal(t, "0.1", row.entries[0].Text)

	row.submit(2, "2.5")
	inst, _ = vis.Composer().Snapshot().Get(1)
	assert.Equal(t, geometry.NewVector3(0.1, 1, 2.5), inst.Scale)
}

func TestCardTapOpensVisualizer(t *testing.T) {
	cfg := config.Default()
	cfg.Watch = false

	app := New(test.NewTempApp(t), cfg, emptyLoader(t), quiet())
	defer app.Close()

	assert.Equal(t, catalogue.PageCatalogue, app.Shell().State().Page)
	require.Len(t, app.content.Objects, 1)
	assert.Same(t, app.pages[catalogue.PageCatalogue], app.content.Objects[0])

	test.Tap(app.catalogue.cards[2])

	state := app.Shell().State()
	assert.Equal(t, catalogue.PageVisualizer, state.Page)
	assert.Equal(t, "/models/bookshelf.stl", state.SelectedModel)
	assert.Equal(t, "/models/bookshelf.stl", app.visualizer.ModelPath())
	assert.Same(t, app.pages[catalogue.PageVisualizer], app.content.Objects[0])
}

func TestToolbarNavigation(t *testing.T) {
	cfg := config.Default()
	cfg.Watch = false

	app := New(test.NewTempApp(t), cfg, emptyLoader(t), quiet())
	defer app.Close()

	app.Shell().SetActivePage(catalogue.PageAbout)
	assert.Same(t, app.pages[catalogue.PageAbout], app.content.Objects[0])
}
