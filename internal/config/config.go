// Package config loads runtime settings from an optional .env file, an
// optional futuregaze.yaml and FUTUREGAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "FUTUREGAZE"
	DefaultSlotKey = "futureGazeFormData"
)

type Config struct {
	DBPath       string
	SlotKey      string
	LogLevel     string
	LogFormat    string
	LogFile      string
	TransitionMS int
	Transition   time.Duration
}

// Options controls where Load looks. Zero values use the user's home
// directory and the working directory.
type Options struct {
	HomeDir    string
	EnvFile    string
	ConfigDirs []string
}

// Load reads the configuration. Missing .env and config files are not
// errors; an unreadable config file is.
func Load(opts Options) (*Config, error) {
	home := opts.HomeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			home = "."
		}
	}
	appDir := filepath.Join(home, ".futuregaze")

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigName("futuregaze")
	v.SetConfigType("yaml")
	dirs := opts.ConfigDirs
	if len(dirs) == 0 {
		dirs = []string{".", appDir}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", filepath.Join(appDir, "futuregaze.db"))
	v.SetDefault("slot_key", DefaultSlotKey)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", filepath.Join(appDir, "futuregaze.log"))
	v.SetDefault("transition_ms", 300)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		DBPath:       v.GetString("db"),
		SlotKey:      v.GetString("slot_key"),
		LogLevel:     strings.ToLower(v.GetString("log_level")),
		LogFormat:    strings.ToLower(v.GetString("log_format")),
		LogFile:      v.GetString("log_file"),
		TransitionMS: v.GetInt("transition_ms"),
	}
	cfg.Transition = time.Duration(cfg.TransitionMS) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted away.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if strings.TrimSpace(c.SlotKey) == "" {
		errs = append(errs, errors.New("slot key is required"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log format %q is not one of console, json", c.LogFormat))
	}
	if c.TransitionMS < 0 {
		errs = append(errs, fmt.Errorf("transition delay %dms is negative", c.TransitionMS))
	}
	return errors.Join(errs...)
}
