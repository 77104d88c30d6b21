package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ErrLoadConfig indicates a failure to decode the configuration.
var ErrLoadConfig = errors.New("config load failed")

// ErrValidateConfig indicates that the loaded configuration is invalid.
var ErrValidateConfig = errors.New("configuration validation failed")

// Config holds everything a single backup run needs. It is built once at
// process start and handed to the runner.
type Config struct {
	PreWait  time.Duration `mapstructure:"pre_wait"`
	PostWait time.Duration `mapstructure:"post_wait"`
	Source   DirConfig     `mapstructure:"source"`
	Backup   DirConfig     `mapstructure:"backup"`
	Database string        `mapstructure:"database"`
	Log      LogConfig     `mapstructure:"log"`
}

// DirConfig is a chain of directory names descended from the working
// directory, e.g. Dropbox then KeePass.
type DirConfig struct {
	Dirs []string `mapstructure:"dirs"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pre_wait", 5*time.Minute)
	v.SetDefault("post_wait", time.Minute)
	v.SetDefault("source.dirs", []string{"Dropbox", "KeePass"})
	v.SetDefault("backup.dirs", []string{"KeePass-backups"})
	v.SetDefault("database", "Database.kdb")
	v.SetDefault("log.level", "warn")
}

// Default returns the built-in configuration. Nothing is read from files,
// flags or the environment.
func Default() (Config, error) {
	v := viper.New()
	SetDefaults(v)

	var c Config
	if err := c.Load(v); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load decodes the settings held by v into c and validates the result.
func (c *Config) Load(v *viper.Viper) error {
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.UnmarshalExact(c, hook); err != nil {
		return fmt.Errorf("%w: unmarshal config: %v", ErrLoadConfig, err)
	}
	return c.Validate()
}

// Validate checks the waits, directory chains, database name and log level.
func (c *Config) Validate() error {
	if c.PreWait < 0 {
		return fmt.Errorf("%w: pre_wait must not be negative, got %s", ErrValidateConfig, c.PreWait)
	}
	if c.PostWait < 0 {
		return fmt.Errorf("%w: post_wait must not be negative, got %s", ErrValidateConfig, c.PostWait)
	}
	if err := validateDirs("source.dirs", c.Source.Dirs); err != nil {
		return err
	}
	if err := validateDirs("backup.dirs", c.Backup.Dirs); err != nil {
		return err
	}
	if err := validateNode("database", c.Database); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrValidateConfig, err)
	}
	return nil
}

func validateDirs(key string, dirs []string) error {
	if len(dirs) == 0 {
		return fmt.Errorf("%w: %s must name at least one directory", ErrValidateConfig, key)
	}
	for _, d := range dirs {
		if err := validateNode(key, d); err != nil {
			return err
		}
	}
	return nil
}

// validateNode accepts a single path element only.
func validateNode(key, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: %s must not be empty", ErrValidateConfig, key)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %s must not be %q", ErrValidateConfig, key, name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %s %q must not contain a path separator", ErrValidateConfig, key, name)
	}
	return nil
}
