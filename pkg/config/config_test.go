package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/playback"
)

// clearEnv isolates a test from the caller's PERMTRACE_* variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvInterval, EnvCountMode, EnvMaxInputLen, EnvColor} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1500*time.Millisecond, time.Duration(cfg.Playback.Interval))
	assert.Equal(t, playback.CountFactorial, cfg.Display.CountMode)
	assert.True(t, cfg.Display.Color)
	assert.Equal(t, 10, cfg.Limits.MaxInputLen)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   errors.Code
	}{
		{"valid", func(*Config) {}, ""},
		{"fast interval", func(c *Config) { c.Playback.Interval = Duration(10 * time.Millisecond) }, errors.ErrCodeInvalidConfig},
		{"bad count mode", func(c *Config) { c.Display.CountMode = "approx" }, errors.ErrCodeInvalidConfig},
		{"negative limit", func(c *Config) { c.Limits.MaxInputLen = -1 }, errors.ErrCodeInvalidConfig},
		{"no limit", func(c *Config) { c.Limits.MaxInputLen = 0 }, ""},
		{"distinct mode", func(c *Config) { c.Display.CountMode = playback.CountDistinct }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "code = %v", errors.GetCode(err))
		})
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode([]byte(`
[playback]
interval = "800ms"

[display]
count_mode = "distinct"
`))
	require.NoError(t, err)

	assert.Equal(t, 800*time.Millisecond, time.Duration(cfg.Playback.Interval))
	assert.Equal(t, playback.CountDistinct, cfg.Display.CountMode)
	assert.True(t, cfg.Display.Color, "unset keys keep their defaults")
	assert.Equal(t, DefaultMaxInputLen, cfg.Limits.MaxInputLen)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`[playback]
interval = "soon"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display]
color = false

[limits]
max_input_len = 6
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Display.Color)
	assert.Equal(t, 6, cfg.Limits.MaxInputLen)
	assert.Equal(t, DefaultInterval, time.Duration(cfg.Playback.Interval))
}

func TestLoad_UnknownKey(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\ncolour = true\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "display.colour")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvInterval, "250ms")
	t.Setenv(EnvCountMode, "distinct")
	t.Setenv(EnvMaxInputLen, "4")
	t.Setenv(EnvColor, "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Playback.Interval))
	assert.Equal(t, playback.CountDistinct, cfg.Display.CountMode)
	assert.Equal(t, 4, cfg.Limits.MaxInputLen)
	assert.False(t, cfg.Display.Color)
}

func TestLoad_EnvInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvMaxInputLen, "many")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoad_EnvConfigPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(EnvConfig, path)

	_, err := Load("")
	require.Error(t, err, "a path named by PERMTRACE_CONFIG must exist")
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	require.NoError(t, Save(path, DefaultConfig()))
	_, err = Load("")
	require.NoError(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Playback.Interval = Duration(2 * time.Second)
	cfg.Display.CountMode = playback.CountDistinct
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `interval = "2s"`)
	assert.Contains(t, string(data), `count_mode = "distinct"`)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "permtrace", "config.toml"), p)

	t.Setenv(EnvConfig, "/etc/permtrace.toml")
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/permtrace.toml", p)
}
