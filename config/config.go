// Package config loads stepviz settings from defaults, an optional YAML
// file, STEPVIZ_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidSpeed     = errors.New("config: playback speed must be positive")
	ErrInvalidLogLevel  = errors.New("config: unknown log level")
	ErrInvalidLogFormat = errors.New("config: unknown log format")
	ErrMissingListen    = errors.New("config: metrics enabled without listen address")
)

// Default configuration values.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultSpeed         = 1.0
	DefaultMetricsListen = "127.0.0.1:9464"

	envPrefix = "STEPVIZ"
)

// Config holds all stepviz settings.
type Config struct {
	Logging  Logging  `mapstructure:"logging"`
	Playback Playback `mapstructure:"playback"`
	Metrics  Metrics  `mapstructure:"metrics"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Playback scales step delays.
type Playback struct {
	Speed   float64 `mapstructure:"speed"`
	Instant bool    `mapstructure:"instant"`
}

// Metrics controls the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Scale converts a reference step delay into the configured one.
func (p Playback) Scale(d time.Duration) time.Duration {
	if p.Instant || d <= 0 {
		return 0
	}
	if p.Speed <= 0 {
		return d
	}

	return time.Duration(float64(d) / p.Speed)
}

// Option adjusts the viper instance before the configuration is read.
type Option func(v *viper.Viper) error

// WithFlag binds a command-line flag to a configuration key, for example
// "playback.speed". A flag only wins over file and environment once it
// has been set explicitly.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(v *viper.Viper) error {
		if flag == nil {
			return fmt.Errorf("config: no flag bound to %q", key)
		}

		return v.BindPFlag(key, flag)
	}
}

// Load reads the configuration. An empty path looks for stepviz.yaml in the
// working directory and $HOME/.config/stepviz, and a missing file is not an
// error; an explicit path must exist.
func Load(path string, opts ...Option) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stepviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/stepviz")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration Load produces with no file, flags or
// environment.
func Default() *Config {
	return &Config{
		Logging:  Logging{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Playback: Playback{Speed: DefaultSpeed},
		Metrics:  Metrics{Listen: DefaultMetricsListen},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("playback.speed", d.Playback.Speed)
	v.SetDefault("playback.instant", d.Playback.Instant)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.listen", d.Metrics.Listen)
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format))
	}
	if c.Playback.Speed <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Playback.Speed))
	}
	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		errs = append(errs, ErrMissingListen)
	}

	return errors.Join(errs...)
}
