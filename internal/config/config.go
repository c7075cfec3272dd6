package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// DisplayConfig controls how prices are rounded for display and CSV cells.
type DisplayConfig struct {
	PricePrecision int32 `yaml:"price_precision"`
}

// SweepConfig represents parameter-sweep export configuration
type SweepConfig struct {
	OutputDir      string `yaml:"output_dir"`
	FilenameFormat string `yaml:"filename_format"` // one %s, the curve name
	Workers        int    `yaml:"workers"`
}

type Config struct {
	// Server settings
	Port string

	Logging LoggingConfig `yaml:"logging"`
	Display DisplayConfig `yaml:"display"`
	Sweep   SweepConfig   `yaml:"sweep"`
}

// Load reads config.yaml from the working directory, then applies
// environment overrides.
func Load() *Config {
	return LoadFromFile("config.yaml")
}

// LoadFromFile starts from defaults, merges the YAML file when present and
// readable, then applies environment overrides. A missing file is not an
// error; the defaults are complete.
func LoadFromFile(path string) *Config {
	cfg := &Config{
		Port: "8080",
		Logging: LoggingConfig{
			LogLevel: "info",
		},
		Display: DisplayConfig{
			PricePrecision: 6,
		},
		Sweep: SweepConfig{
			OutputDir:      "curves",
			FilenameFormat: "curve_%s.csv",
			Workers:        4,
		},
	}

	if data, err := os.ReadFile(path); err == nil {
		// Best effort: a malformed file leaves the defaults in place.
		_ = yaml.Unmarshal(data, cfg)
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Logging.LogLevel = getEnv("LOG_LEVEL", cfg.Logging.LogLevel)
	cfg.Logging.LogFile = getEnv("LOG_FILE", cfg.Logging.LogFile)
	cfg.Sweep.OutputDir = getEnv("SWEEP_OUTPUT_DIR", cfg.Sweep.OutputDir)
	cfg.Sweep.Workers = getEnvInt("SWEEP_WORKERS", cfg.Sweep.Workers)

	if cfg.Sweep.Workers < 1 {
		cfg.Sweep.Workers = 1
	}
	if cfg.Display.PricePrecision < 0 {
		cfg.Display.PricePrecision = 6
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
