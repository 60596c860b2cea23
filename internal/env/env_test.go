package env

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/amos-org/amos/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSetupAppliesOverrides(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, "models_root = \"/srv/amos\"\nlog_level = \"error\"\n")

	var logs bytes.Buffer
	e, err := Setup(path, Overrides{LogLevel: "debug", ModelsRoot: root}, &logs)
	require.NoError(t, err)

	assert.Equal(t, root, e.Config.ModelsRoot)
	assert.Equal(t, "debug", e.Config.LogLevel)
	assert.Equal(t, filepath.Join(root, "models", "x.stl"), e.Loader.Resolve("/models/x.stl"))

	e.Log.Debug("hello")
	assert.Contains(t, logs.String(), "hello")
}

func TestSetupKeepsConfigWithoutOverrides(t *testing.T) {
	path := writeConfig(t, "models_root = \"/srv/amos\"\n")

	e, err := Setup(path, Overrides{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/srv/amos", e.Config.ModelsRoot)
	assert.Equal(t, "info", e.Config.LogLevel)
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("", Overrides{LogLevel: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
