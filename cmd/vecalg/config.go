package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/yurimorini/vectors"
)

// Config represents the command configuration
type Config struct {
	Precision int       `yaml:"precision" mapstructure:"precision"`
	Tolerance float64   `yaml:"tolerance" mapstructure:"tolerance"`
	Degrees   bool      `yaml:"degrees" mapstructure:"degrees"`
	Log       LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Precision: vectors.DefaultPrecision,
		Tolerance: vectors.DefaultTolerance,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("precision", d.Precision)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("degrees", d.Degrees)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// readConfig reads cfgFile, or config.yaml from $HOME/.vecalg and the
// working directory, then overlays VECALG_* environment variables.
// A missing config file is only an error when cfgFile is given.
func readConfig(v *viper.Viper, cfgFile string) (Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".vecalg"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("vecalg")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Tolerance < 0 {
		return Config{}, fmt.Errorf("tolerance must not be negative: %v", cfg.Tolerance)
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg LogConfig) (*vectors.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	switch strings.ToLower(cfg.Format) {
	case "text", "":
		return vectors.NewTextLogger(w, level), nil
	case "json":
		return vectors.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
}
