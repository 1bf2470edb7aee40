package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DefaultGroup is the group used when no --group flag is given.
const DefaultGroup = "MyCommands"

// Config holds user settings read from config.yaml and CMGR_* variables.
type Config struct {
	DefaultGroup string `mapstructure:"default_group"`
	Shell        string `mapstructure:"shell"`     // empty selects bash/cmd by platform
	LogLevel     string `mapstructure:"log_level"` // debug, info, warn, error
	DBPath       string `mapstructure:"db_path"`
	NoColor      bool   `mapstructure:"no_color"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		DefaultGroup: DefaultGroup,
		LogLevel:     "info",
	}
}

// Load populates v with defaults, the optional config file and the
// environment, then unmarshals the result. When file is empty the
// config.yaml inside DataDir is used if it exists.
func Load(v *viper.Viper, file string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("default_group", defaults.DefaultGroup)
	v.SetDefault("shell", defaults.Shell)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("db_path", "")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("CMGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		d, err := DataDir()
		if err != nil {
			return Config{}, err
		}
		v.AddConfigPath(d)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit --config must exist; the implicit one is optional
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if strings.TrimSpace(cfg.DefaultGroup) == "" {
		cfg.DefaultGroup = DefaultGroup
	}
	return cfg, nil
}

// ResolveDBPath returns the configured database path, falling back to DBPath.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return filepath.Clean(c.DBPath), nil
	}
	return DBPath()
}
