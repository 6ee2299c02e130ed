package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the settings a partitioning run needs, following the
// perf-analysis CLI's pkg/config viper.Unmarshal pattern: defaults set on
// a *viper.Viper, an optional config file layered on top, then environment
// variables, then command-line flags (bound by main.go after load).
type Config struct {
	Matrix      MatrixConfig `mapstructure:"matrix"`
	CacheCap    int          `mapstructure:"cache_capacity"`
	Output      OutputConfig `mapstructure:"output"`
	Log         LogConfig    `mapstructure:"log"`
	MetricsAddr string       `mapstructure:"metrics_addr"`
}

// MatrixConfig describes where the pruning matrix comes from.
type MatrixConfig struct {
	Path string `mapstructure:"path"`
}

// OutputConfig describes where and how results are written.
type OutputConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// LogConfig controls CLI logging verbosity.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// loadConfig reads configuration from configPath (if non-empty), falling
// back to ./batchpartition.yaml, and layers environment variables
// (BATCHPARTITION_*) on top, matching the teacher's Load(configPath) shape.
func loadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setConfigDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("batchpartition")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Fprintln(os.Stderr, "config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("batchpartition: failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("BATCHPARTITION")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("batchpartition: failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batchpartition: invalid config: %w", err)
	}
	return &cfg, nil
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("cache_capacity", 2)
	v.SetDefault("output.format", "json")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics_addr", "")
}

// Validate checks the loaded configuration for obvious mistakes before a
// run starts, rather than failing deep inside Partition.
func (c *Config) Validate() error {
	if c.CacheCap < 2 {
		return fmt.Errorf("cache_capacity must be at least 2, got %d", c.CacheCap)
	}
	if c.Output.Format != "json" {
		return fmt.Errorf("unsupported output format %q (only json is supported)", c.Output.Format)
	}
	return nil
}
