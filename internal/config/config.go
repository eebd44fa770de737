package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tandem configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig holds ingest settings.
type InputConfig struct {
	Path     string `yaml:"path"`     // CSV file path
	Source   string `yaml:"source"`   // "file" or "stdin"
	Encoding string `yaml:"encoding"` // "", "utf-8", "utf-16", "utf-16be", "windows-1252"
	Today    string `yaml:"today"`    // YYYY-MM-DD substitute for open-ended assignments
}

// OutputConfig holds result destination settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "ndjson"
	File   string `yaml:"file"`   // optional NDJSON copy path
}

// LogConfig holds diagnostics settings.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables over built-in defaults.
func Load() Config {
	return overlayEnv(defaults())
}

// LoadFile reads configuration from a YAML file, then overlays environment
// variables: env wins over file, file wins over defaults.
func LoadFile(path string) (Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return overlayEnv(cfg), nil
}

func defaults() Config {
	return Config{
		Input:  InputConfig{Source: "file"},
		Output: OutputConfig{Format: "text"},
		Log:    LogConfig{Level: "info"},
	}
}

func overlayEnv(cfg Config) Config {
	envOverride(&cfg.Input.Path, "TANDEM_INPUT")
	envOverride(&cfg.Input.Source, "TANDEM_SOURCE")
	envOverride(&cfg.Input.Encoding, "TANDEM_ENCODING")
	envOverride(&cfg.Input.Today, "TANDEM_TODAY")
	envOverride(&cfg.Output.Format, "TANDEM_OUTPUT_FORMAT")
	envOverride(&cfg.Output.File, "TANDEM_OUTPUT_FILE")
	envOverride(&cfg.Log.Level, "TANDEM_LOG_LEVEL")
	return cfg
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
