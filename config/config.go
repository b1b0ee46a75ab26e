// Package config resolves and validates the pipecheck configuration.
//
// The two catalog roots arrive from the process environment
// (PIPECHECK_PIPELINES_DIR, PIPECHECK_INTEGRATIONS_DIR) or from an optional
// pipecheck.toml discovered by walking up from the working directory. The
// loaders themselves never touch the environment: they receive typed root
// paths from the Config struct, validated once at process start.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/obslab/pipecheck/errors"
)

// Config carries every externally supplied setting for a validation run.
type Config struct {
	// PipelinesRoot is the root directory of the pipeline-definition catalog.
	PipelinesRoot string `mapstructure:"pipelines_dir"`

	// IntegrationsRoot is the root directory of the integration catalog.
	IntegrationsRoot string `mapstructure:"integrations_dir"`
}

// Load reads the pipecheck configuration using Viper.
func Load() (*Config, error) {
	return LoadWithViper(initViper())
}

// LoadWithViper loads configuration using a provided Viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	v := viper.New()

	// Environment variables take precedence over any config file:
	// PIPECHECK_PIPELINES_DIR, PIPECHECK_INTEGRATIONS_DIR.
	v.SetEnvPrefix("PIPECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit binds so Unmarshal sees env-only keys.
	_ = v.BindEnv("pipelines_dir")
	_ = v.BindEnv("integrations_dir")

	if path := findProjectConfig(); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		// A missing or unreadable project file is not fatal here;
		// Validate() catches unusable roots either way.
		_ = v.ReadInConfig()
	}

	return v
}

// findProjectConfig searches for pipecheck.toml by walking up the directory
// tree. Returns the path to the first config file found, or empty string if
// none found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "pipecheck.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate performs the single fail-fast check: both roots must be set,
// exist, and be directories. Called once at process start, before any
// loader runs.
func (c *Config) Validate() error {
	if err := checkDir(c.PipelinesRoot, "pipelines"); err != nil {
		return err
	}
	return checkDir(c.IntegrationsRoot, "integrations")
}

func checkDir(path, which string) error {
	if path == "" {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrBadConfig, "%s root not configured", which),
			"set PIPECHECK_%s_DIR or add %s_dir to pipecheck.toml",
			strings.ToUpper(which), which)
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(errors.ErrBadConfig, "%s root %s: %v", which, path, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(errors.ErrBadConfig, "%s root %s is not a directory", which, path)
	}
	return nil
}
