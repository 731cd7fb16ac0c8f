// Package config loads the classlog configuration from file and
// environment via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	DB     DBConfig     `mapstructure:"db"`
	Server ServerConfig `mapstructure:"server"`
	Report ReportConfig `mapstructure:"report"`
	Log    LogConfig    `mapstructure:"log"`
}

type DBConfig struct {
	// Path is the SQLite database file, or ":memory:".
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	// Addr is the listen address for the HTTP adapter.
	Addr string `mapstructure:"addr"`
}

type ReportConfig struct {
	// Filename is the attachment name hinted on workbook downloads.
	Filename string `mapstructure:"filename"`
}

type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// ConfigDir returns the directory holding the config file and, by default,
// the database.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "classlog")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".classlog"
	}
	return filepath.Join(home, ".classlog")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DB:     DBConfig{Path: filepath.Join(ConfigDir(), "classlog.db")},
		Server: ServerConfig{Addr: ":8080"},
		Report: ReportConfig{Filename: "class-logs.xlsx"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads config.yaml from ConfigDir (if present) and CLASSLOG_*
// environment overrides on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("db.path", defaults.DB.Path)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("report.filename", defaults.Report.Filename)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())

	v.SetEnvPrefix("CLASSLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path must not be empty")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Report.Filename == "" {
		return fmt.Errorf("report.filename must not be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
