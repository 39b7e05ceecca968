package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(writeFile(t, `
logging:
  level: debug
  format: json
playback:
  speed: 4
metrics:
  enabled: true
  listen: ":9100"
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.InDelta(t, 4.0, cfg.Playback.Speed, 0.0001)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9100", cfg.Metrics.Listen)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("STEPVIZ_PLAYBACK_INSTANT", "true")
	t.Setenv("STEPVIZ_LOGGING_LEVEL", "warn")

	cfg, err := config.Load(writeFile(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Playback.Instant)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_FlagOverrides(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("speed", 1, "")
	require.NoError(t, fs.Parse([]string{"--speed=2.5"}))

	cfg, err := config.Load(writeFile(t, "playback:\n  speed: 8\n"),
		config.WithFlag("playback.speed", fs.Lookup("speed")))
	require.NoError(t, err)
	assert.InDelta(t, 2.5, cfg.Playback.Speed, 0.0001)

	_, err = config.Load(writeFile(t, ""), config.WithFlag("playback.speed", fs.Lookup("missing")))
	assert.Error(t, err)
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "xml"
	cfg.Playback.Speed = 0
	cfg.Metrics.Enabled = true
	cfg.Metrics.Listen = ""

	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
	assert.ErrorIs(t, err, config.ErrInvalidSpeed)
	assert.ErrorIs(t, err, config.ErrMissingListen)

	_, err = config.Load(writeFile(t, "playback:\n  speed: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalidSpeed)
}

func TestPlayback_Scale(t *testing.T) {
	assert.Equal(t, 400*time.Millisecond, config.Playback{Speed: 2}.Scale(800*time.Millisecond))
	assert.Equal(t, 800*time.Millisecond, config.Playback{Speed: 1}.Scale(800*time.Millisecond))
	assert.Zero(t, config.Playback{Speed: 1, Instant: true}.Scale(time.Second))
	assert.Zero(t, config.Playback{Speed: 1}.Scale(0))
}
