package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amos-org/amos/internal/catalogue"
	"github.com/amos-org/amos/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCube(t *testing.T, root, rel string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, stl.WriteBinary(&buf, stl.Cube(2)))
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func execute(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(root, "missing.toml"),
		"--log-level", "error",
		"--models", root,
	}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogueCommand(t *testing.T) {
	out, err := execute(t, t.TempDir(), "catalogue")
	require.NoError(t, err)

	for _, item := range catalogue.DefaultItems() {
		assert.Contains(t, out, item.Title)
		assert.Contains(t, out, item.ModelPath)
	}
}

func TestInfoCommand(t *testing.T) {
	root := t.TempDir()
	writeCube(t, root, "models/base_model.stl")

	out, err := execute(t, root, "info", "/models/base_model.stl")
	require.NoError(t, err)
	assert.Contains(t, out, "Triangles: 12")
	assert.Contains(t, out, "X: 2.000000 units")
}

func TestInfoCommandMissingFile(t *testing.T) {
	_, err := execute(t, t.TempDir(), "info", "/models/nope.stl")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	root := t.TempDir()
	writeCube(t, root, "models/base_model.stl")
	for _, item := range catalogue.DefaultItems() {
		writeCube(t, root, item.ModelPath)
	}

	out, err := execute(t, root, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   /models/bookshelf.stl")
	assert.NotContains(t, out, "FAIL")
}

func TestCheckCommandReportsFailures(t *testing.T) {
	root := t.TempDir()
	writeCube(t, root, "models/base_model.stl")
	writeCube(t, root, "models/game_case.stl")

	out, err := execute(t, root, "check", "--jobs", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 4 models failed")
	assert.Contains(t, out, "FAIL /models/bookshelf.stl")
	assert.Contains(t, out, "ok   /models/game_case.stl")
}
