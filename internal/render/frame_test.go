package render

import (
	"errors"
	"testing"

	"github.com/amos-org/amos/internal/scene"
	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/loader"
	"github.com/amos-org/amos/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChoosesGeometryOrPlaceholder(t *testing.T) {
	c := scene.NewComposer()
	ready := c.Add()
	failed := c.Add()
	pending := c.Add()
	scale := geometry.NewVector3(2, 0.5, 3)
	_, err := c.Update(failed.ID, scene.Patch{Scale: &scale})
	require.NoError(t, err)

	mesh := stl.Cube(4)
	states := map[int]loader.State{
		ready.ID:   {Status: loader.StatusReady, Model: mesh},
		failed.ID:  {Status: loader.StatusFailed, Err: &loader.LoadError{Path: "x", Err: errors.New("boom")}},
		pending.ID: {Status: loader.StatusPending},
	}

	items := Build(c.Snapshot(), scene.DefaultStage, func(id int) loader.State { return states[id] })
	require.Len(t, items, 3)

	assert.Equal(t, KindMesh, items[0].Kind)
	assert.Same(t, mesh, items[0].Model)
	assert.Equal(t, scene.DefaultStage.ModelColor, items[0].Color)

	assert.Equal(t, KindFailed, items[1].Kind)
	assert.Same(t, UnitCube(), items[1].Model)
	assert.Equal(t, failed.Position, items[1].Position)
	assert.Equal(t, scale, items[1].Scale)
	assert.Equal(t, FailedColor, items[1].Color)

	assert.Equal(t, KindPlaceholder, items[2].Kind)
	assert.Equal(t, geometry.NewVector3(4, 0, 0), items[2].Position)
}

func TestFailedPlaceholderIsUnitCubeAtInstance(t *testing.T) {
	item := ItemFor(1, geometry.NewVector3(6, 0, -2), geometry.NewVector3(1, 1, 1),
		loader.State{Status: loader.StatusFailed}, scene.DefaultStage)

	bounds := item.Bounds()
	assertNear(t, geometry.NewVector3(1, 1, 1), bounds.Size())
	assertNear(t, geometry.NewVector3(6, 0, -2), bounds.Center())
}

func TestModelsStandUpright(t *testing.T) {
	// 2 wide, 4 deep, 6 tall in Z
	model := stl.NewModel("tower")
	model.AddTriangle(geometry.NewTriangle(geometry.Vector3{},
		geometry.NewVector3(-1, -2, -3), geometry.NewVector3(1, 2, 3), geometry.NewVector3(1, -2, 3)))

	item := ItemFor(1, geometry.NewVector3(10, 0, 0), geometry.NewVector3(1, 2, 1),
		loader.State{Status: loader.StatusReady, Model: model}, scene.DefaultStage)

	assertNear(t, geometry.NewVector3(10, 3, 0), item.Transform(geometry.NewVector3(0, 0, 1.5)))
	// the Y scale stretches world Y, which holds the model's height
	assertNear(t, geometry.NewVector3(2, 12, 4), item.Bounds().Size())
}

func assertNear(t *testing.T, expected, actual geometry.Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9)
	assert.InDelta(t, expected.Z, actual.Z, 1e-9)
}

func TestBuildWithoutLookup(t *testing.T) {
	c := scene.NewComposer()
	c.Add()

	items := Build(c.Snapshot(), scene.DefaultStage, nil)
	require.Len(t, items, 1)
	assert.Equal(t, KindPlaceholder, items[0].Kind)
}

func TestShade(t *testing.T) {
	base := scene.DefaultStage.ModelColor
	towardLight := scene.DefaultStage.Directional.Position.Normalize()

	lit := Shade(scene.DefaultStage, towardLight, base)
	assert.Equal(t, base, lit)

	dark := Shade(scene.DefaultStage, towardLight.Mul(-1), base)
	assert.InDelta(t, float64(base.R)*0.5, float64(dark.R), 1)
	assert.Equal(t, base.A, dark.A)
}
