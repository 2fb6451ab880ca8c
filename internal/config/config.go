// Package config defines process configuration and how it is loaded.
//
// Precedence, low to high: defaults from New, an optional YAML file, then
// COOPERSTOWN_* environment variables. A .env file may seed the
// environment first.
package config

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// Sport selects the built-in catalog.
	Sport string `koanf:"sport" validate:"required,oneof=baseball hockey"`

	// CatalogFile is an optional YAML overlay for the sport catalog.
	CatalogFile string `koanf:"catalog_file"`

	// CorpusFile holds the inducted players the similarity matcher ranks.
	CorpusFile string `koanf:"corpus_file"`

	// WorkerCount sets the number of batch evaluation workers.
	WorkerCount int `koanf:"worker_count" validate:"min=1,max=1024"`

	// QueueSize bounds the batch job queue.
	QueueSize int `koanf:"queue_size" validate:"min=1"`

	// DedupeSize bounds how many player keys a batch remembers. 0 is unbounded.
	DedupeSize int `koanf:"dedupe_size" validate:"min=0"`

	// TopN caps the ranked board printed after a batch.
	TopN int `koanf:"top_n" validate:"min=1,max=10000"`

	// SimilarLimit is how many comparable inductees are returned.
	SimilarLimit int `koanf:"similar_limit" validate:"min=1,max=50"`

	// MetricsFile, when set, receives a Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`

	// OutputFormat selects result encoding: json or yaml.
	OutputFormat string `koanf:"output_format" validate:"oneof=json yaml"`
}

// New returns a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Sport:        "baseball",
		WorkerCount:  runtime.NumCPU(),
		QueueSize:    1024,
		DedupeSize:   50_000,
		TopN:         25,
		SimilarLimit: 3,
		OutputFormat: "json",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
