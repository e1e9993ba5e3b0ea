package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tentwenty/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Quiz.Catalog)
	assert.Nil(t, cfg.Display.Theme)
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[quiz]
seed = 99
assets = "/opt/tentwenty"

[display]
theme = "darkly"
image-policy = "ignore"
images = false

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Quiz.Seed)
	assert.Equal(t, int64(99), *cfg.Quiz.Seed)
	assert.Equal(t, "/opt/tentwenty", *cfg.Quiz.Assets)
	assert.Equal(t, "darkly", *cfg.Display.Theme)
	assert.Equal(t, "ignore", *cfg.Display.ImagePolicy)
	assert.False(t, *cfg.Display.Images)
	assert.Nil(t, cfg.Display.ImageWidth)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nsize = 3\n"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.size")
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "tentwenty", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "tentwenty", "tentwenty.log"), DefaultLogPath())
}

func validConfig() model.Config {
	return model.Config{
		Theme:       "cosmo",
		ImagePolicy: "abort",
		ImageWidth:  36,
		ImageHeight: 15,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	cfg := validConfig()
	cfg.ImageWidth = 0
	assert.EqualError(t, Validate(cfg), "--image-width must be > 0")

	cfg = validConfig()
	cfg.ImageHeight = 500
	assert.EqualError(t, Validate(cfg), "--image-height must be <= 100")

	cfg = validConfig()
	cfg.Theme = "neon"
	assert.EqualError(t, Validate(cfg), `--theme must be one of: cosmo pulse darkly (got "neon")`)

	cfg = validConfig()
	cfg.ImagePolicy = ""
	require.NoError(t, Validate(cfg))

	cfg = validConfig()
	cfg.ImagePolicy = "retry"
	assert.ErrorContains(t, Validate(cfg), "--image-policy")
}
