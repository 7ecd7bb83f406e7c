package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scene_name": "shapes", "window_width": 800}`), 0644))

	cfg := LoadFrom(path)
	assert.Equal(t, "shapes", cfg.SceneName)
	assert.Equal(t, int32(800), cfg.WindowWidth)
	assert.Equal(t, int32(720), cfg.WindowHeight, "campos ausentes mantêm o padrão")
	assert.Equal(t, "assets/textures", cfg.TextureDir)
}

func TestLoadFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scene_name": `), 0644))

	assert.Equal(t, DefaultConfig(), LoadFrom(path))
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.ScenePath = "cenas/mesa.yaml"
	cfg.WatchScene = false
	cfg.FOV = 60

	require.NoError(t, cfg.SaveTo(path))
	assert.Equal(t, cfg, LoadFrom(path))
}
