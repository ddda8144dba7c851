package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.Render.ClearColor)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 1280
height = 720

[render]
debug = true
clear_color = [0.1, 0.2, 0.3, 1.0]

[log]
level = "debug"
file = "app.log"

[state]
path = "angle.bin"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "two triangles", cfg.Window.Title)
	assert.True(t, cfg.Render.Debug)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Render.ClearColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "app.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, "angle.bin", cfg.State.Path)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	err := Parse([]byte("[window]\ndepth = 3\n"), NewConfig())
	assert.Error(t, err)
}

func TestParseValidates(t *testing.T) {
	assert.Error(t, Parse([]byte("[window]\nwidth = 0\n"), NewConfig()))
	assert.Error(t, Parse([]byte("[gesture]\nwheel_zoom_step = 0.5\n"), NewConfig()))
	assert.Error(t, Parse([]byte("[render]\nclear_color = [2.0, 0.0, 0.0, 1.0]\n"), NewConfig()))
}
