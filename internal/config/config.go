// Package config handles terraforge configuration loading and management.
package config

import "time"

// Config holds all tool settings.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Import  ImportConfig  `yaml:"import"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds sculpting engine settings.
type EngineConfig struct {
	NoiseSeed int64 `yaml:"noise_seed"`
}

// ImportConfig holds heightmap import settings.
type ImportConfig struct {
	ScaleZ       float64       `yaml:"scale_z"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			NoiseSeed: 1973,
		},
		Import: ImportConfig{
			ScaleZ:       1.0,
			FetchTimeout: 30 * time.Second,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
