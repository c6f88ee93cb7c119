package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	dec "github.com/realestimate/realestimate/pkg/decimal"
)

const maxScale int32 = 40

// EnvPrefix prefixes environment overrides, e.g. REALESTIMATE_LOGGING_LEVEL.
const EnvPrefix = "REALESTIMATE"

// Settings holds application settings, as opposed to scenario inputs.
type Settings struct {
	Logging   LoggingConfig   `mapstructure:"logging"`
	Output    OutputConfig    `mapstructure:"output"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Server    ServerConfig    `mapstructure:"server"`
	Precision PrecisionConfig `mapstructure:"precision"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputConfig holds report output options
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Directory string `mapstructure:"directory"`
}

// CacheConfig selects the result cache. An empty RedisAddr uses the in-memory cache.
type CacheConfig struct {
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
	Prefix    string        `mapstructure:"prefix"`
}

// ServerConfig holds HTTP server options
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// PrecisionConfig holds the arithmetic scale used by the engine.
type PrecisionConfig struct {
	Scale int32 `mapstructure:"scale"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("output.directory", "")
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.prefix", "realestimate:")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("precision.scale", 20)
}

// LoadSettings reads settings from defaults, an optional YAML file and
// REALESTIMATE_* environment variables, in increasing priority.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Validate checks settings that cannot be verified by their consumers.
func (s *Settings) Validate() error {
	if s.Precision.Scale < dec.MinScale || s.Precision.Scale > maxScale {
		return fmt.Errorf("precision.scale must be between %d and %d, got %d", dec.MinScale, maxScale, s.Precision.Scale)
	}
	if s.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl cannot be negative")
	}
	if s.Server.ReadTimeout < 0 || s.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts cannot be negative")
	}
	return nil
}
