package scene

import (
	"math"
	"testing"

	"github.com/amos-org/amos/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAssignsIDsAndPositions(t *testing.T) {
	c := NewComposer()

	for i := 0; i < 3; i++ {
		c.Add()
	}

	instances := c.Snapshot().Instances()
	require.Len(t, instances, 3)
	for i, inst := range instances {
		assert.Equal(t, i+1, inst.ID)
		assert.Equal(t, geometry.NewVector3(float64(2*i), 0, 0), inst.Position)
		assert.Equal(t, geometry.NewVector3(1, 1, 1), inst.Scale)
	}
}

func TestIDsAreNeverReused(t *testing.T) {
	c := NewComposer()
	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		inst := c.Add()
		assert.False(t, seen[inst.ID], "duplicate id %d", inst.ID)
		seen[inst.ID] = true
	}
}

func TestUpdateByID(t *testing.T) {
	c := NewComposer()
	c.Add()
	second := c.Add()
	c.Add()

	pos := geometry.NewVector3(7, 1, -3)
	updated, err := c.Update(second.ID, Patch{Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, pos, updated.Position)

	snap := c.Snapshot()
	got, ok := snap.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, pos, got.Position)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), got.Scale)

	first, _ := snap.Get(1)
	assert.Equal(t, geometry.Vector3{}, first.Position)
}

func TestUpdateUnknownID(t *testing.T) {
	c := NewComposer()
	c.Add()

	_, err := c.Update(42, Patch{})
	assert.ErrorIs(t, err, ErrUnknownInstance)
}

func TestUpdateClampsPatchScale(t *testing.T) {
	c := NewComposer()
	inst := c.Add()

	scale := geometry.NewVector3(-1, math.NaN(), 3)
	updated, err := c.Update(inst.ID, Patch{Scale: &scale})
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(MinScale, MinScale, 3), updated.Scale)
}

func TestIdenticalUpdateIsIdempotent(t *testing.T) {
	c := NewComposer()
	inst := c.Add()

	published := 0
	cancel := c.Subscribe(func(Snapshot) { published++ })
	defer cancel()

	before := c.Snapshot()
	pos, scale := inst.Position, inst.Scale
	_, err := c.Update(inst.ID, Patch{Position: &pos, Scale: &scale})
	require.NoError(t, err)

	after := c.Snapshot()
	assert.Equal(t, before.Instances(), after.Instances())
	assert.Equal(t, before.Version, after.Version)
	assert.Zero(t, published)
}

func TestSnapshotsAreCopyOnWrite(t *testing.T) {
	c := NewComposer()
	inst := c.Add()
	old := c.Snapshot()

	_, err := c.SetScale(inst.ID, 1, "2.5")
	require.NoError(t, err)

	oldInst, _ := old.Get(inst.ID)
	assert.Equal(t, 1.0, oldInst.Scale.Y)
	newInst, _ := c.Snapshot().Get(inst.ID)
	assert.Equal(t, 2.5, newInst.Scale.Y)
	assert.Greater(t, c.Snapshot().Version, old.Version)

	// mutating the returned slice must not leak into the snapshot
	instances := old.Instances()
	instances[0].ID = 99
	_, ok := old.Get(inst.ID)
	assert.True(t, ok)
}

func TestSubscribe(t *testing.T) {
	c := NewComposer()

	var versions []uint64
	cancel := c.Subscribe(func(s Snapshot) { versions = append(versions, s.Version) })
	c.Add()
	c.Add()
	cancel()
	c.Add()

	assert.Equal(t, []uint64{1, 2}, versions)
}

func TestSetScale(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected float64
		err      error
	}{
		{"plain", "1.5", 1.5, nil},
		{"negative clamps", "-5", MinScale, nil},
		{"zero clamps", "0", MinScale, nil},
		{"at minimum", "0.1", 0.1, nil},
		{"whitespace", " 2 ", 2, nil},
		{"not a number", "abc", 1, ErrInvalidScale},
		{"empty", "", 1, ErrInvalidScale},
		{"nan", "NaN", 1, ErrInvalidScale},
		{"infinite", "+Inf", 1, ErrInvalidScale},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewComposer()
			inst := c.Add()

			_, err := c.SetScale(inst.ID, 0, tc.value)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}

			got, _ := c.Snapshot().Get(inst.ID)
			assert.InDelta(t, tc.expected, got.Scale.X, 1e-12)
			assert.Equal(t, 1.0, got.Scale.Y)
			assert.Equal(t, 1.0, got.Scale.Z)
		})
	}
}

func TestSetScaleScenario(t *testing.T) {
	c := NewComposer()
	c.Add()

	updated, err := c.SetScale(1, 0, "-5")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(0.1, 1, 1), updated.Scale)
}

func TestSetScaleInvalidAxisAndID(t *testing.T) {
	c := NewComposer()
	inst := c.Add()

	_, err := c.SetScale(inst.ID, 3, "2")
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = c.SetScale(inst.ID, -1, "2")
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = c.SetScale(inst.ID+1, 0, "2")
	assert.ErrorIs(t, err, ErrUnknownInstance)
}

func TestStepScale(t *testing.T) {
	c := NewComposer()
	inst := c.Add()

	updated, err := c.StepScale(inst.ID, 1, ScaleStep)
	require.NoError(t, err)
	assert.InDelta(t, 1.1, updated.Scale.Y, 1e-12)
	assert.Equal(t, 1.0, updated.Scale.X)

	for i := 0; i < 30; i++ {
		updated, err = c.StepScale(inst.ID, 0, -ScaleStep)
		require.NoError(t, err)
	}
	assert.Equal(t, MinScale, updated.Scale.X)

	updated, err = c.StepScale(inst.ID, 0, ScaleStep)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, updated.Scale.X, 1e-12)

	_, err = c.StepScale(inst.ID, 5, ScaleStep)
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = c.StepScale(inst.ID+1, 0, ScaleStep)
	assert.ErrorIs(t, err, ErrUnknownInstance)
}
