package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "pdftoppm", cfg.Raster.Pdftoppm)
	assert.Equal(t, 150, cfg.Raster.DPI)
	assert.Equal(t, "http://localhost:11434", cfg.Vision.BaseURL)
	assert.Equal(t, "llava:7b", cfg.Vision.Model)
	assert.Equal(t, 2*time.Minute, cfg.Vision.Timeout)
	assert.Equal(t, 10, cfg.Vision.MaxPages)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATA_DIR", "/srv/patterns")
	t.Setenv("RASTER_DPI", "300")
	t.Setenv("VISION_TIMEOUT", "45s")
	t.Setenv("VISION_MAX_PAGES", "3")

	cfg := LoadConfig()
	assert.Equal(t, "/srv/patterns", cfg.Storage.DataDir)
	assert.Equal(t, 300, cfg.Raster.DPI)
	assert.Equal(t, 45*time.Second, cfg.Vision.Timeout)
	assert.Equal(t, 3, cfg.Vision.MaxPages)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("RASTER_DPI", "not-a-number")
	t.Setenv("VISION_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 150, cfg.Raster.DPI)
	assert.Equal(t, 2*time.Minute, cfg.Vision.Timeout)
}

func TestValidate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Storage.DataDir = ""
	assert.Error(t, cfg.Validate())

	cfg = LoadConfig()
	cfg.Vision.BaseURL = ""
	assert.Error(t, cfg.Validate())
}
