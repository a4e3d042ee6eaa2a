package config

import (
	"errors"
	"fmt"
	"os"
)

// Config holds all converter settings. Paths and output options come from
// the command line; log settings come from environment variables.
type Config struct {
	ModelFile string
	OutputDir string

	// Output options. Each independently toggles whether the corresponding
	// optional field appears in word artifacts; when off the field is
	// absent entirely, not null or zero-valued.
	IncludeCoords bool
	IncludeWeight bool
	IncludeWordID bool

	LogLevel  string
	LogFormat string
}

// New builds a Config for the given model file and output directory,
// applying defaults for unset environment variables.
func New(modelFile, outputDir string) (*Config, error) {
	cfg := &Config{
		ModelFile: modelFile,
		OutputDir: outputDir,
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.ModelFile == "" {
		return nil, errors.New("model file is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
