// Package config resolves run settings from embedded defaults, an optional
// YAML file, ZFAKE_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zarlcorp/zfake/internal/dataset"
	"github.com/zarlcorp/zfake/internal/render"
)

//go:embed defaults.yaml
var defaults []byte

// EnvPrefix prefixes every environment override, e.g. ZFAKE_COUNT.
const EnvPrefix = "ZFAKE"

// Config holds the settings of one generation run.
type Config struct {
	Count       int    `mapstructure:"count"`
	Format      string `mapstructure:"format"`
	FieldsPath  string `mapstructure:"fields"`
	MaskPath    string `mapstructure:"mask"`
	OutDir      string `mapstructure:"out-dir"`
	Seed        uint64 `mapstructure:"seed"`
	LogLevel    string `mapstructure:"log-level"`
	MetricsFile string `mapstructure:"metrics-file"`
}

// Load reads embedded defaults, merges the YAML file at path (if any),
// applies env overrides and then every flag in flags that was set
// explicitly. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return Config{}, fmt.Errorf("read defaults: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate checks the count and normalizes the format.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count %d must be at least 1: %w", c.Count, dataset.ErrInvalidCount)
	}

	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.Format = f.String()

	if c.OutDir == "" {
		c.OutDir = "."
	}
	return nil
}

// OutputFormat returns the validated format.
func (c Config) OutputFormat() render.Format {
	return render.Format(c.Format)
}
