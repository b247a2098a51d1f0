package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nojs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("surface: markdown\nwidth: 40\naddr: \":9000\"\n"), 0o644))
	t.Setenv("NOJS_WIDTH", "72")
	t.Setenv("NOJS_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SurfaceMarkdown, cfg.Surface)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.MarkdownStyle)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nojs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("NOJS_WIDTH", "wide")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Surface = "canvas"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownSurface)

	cfg = Default()
	cfg.Width = 0
	assert.ErrorIs(t, cfg.Validate(), ErrBadWidth)

	cfg = Default()
	cfg.Addr = ""
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyAddr)

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}
