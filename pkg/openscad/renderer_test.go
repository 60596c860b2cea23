package openscad

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <lib/shapes.scad>\ninclude <./params.scad>\n// use <ignored.scad>\ncube(1);\n")
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "size = 2;\n")

	deps, err := NewRenderer(dir).ResolveDependencies("main.scad")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}, deps)
}

func TestResolveDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <gone.scad>\n")

	_, err := NewRenderer(dir).ResolveDependencies("main.scad")
	assert.Error(t, err)
}

func TestRenderWithoutBinary(t *testing.T) {
	t.Setenv("PATH", "")

	_, err := NewRenderer(t.TempDir()).Render(context.Background(), "main.scad")
	assert.ErrorIs(t, err, ErrNotInstalled)
}
