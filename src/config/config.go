package config

import "time"

// Config is the root configuration structure
type Config struct {
	Engine      EngineConfig              `yaml:"engine"`
	Source      SourceConfig              `yaml:"source"`
	Concurrency ConcurrencyConfig         `yaml:"concurrency"`
	Cache       CacheConfig               `yaml:"cache"`
	Metrics     MetricsConfig             `yaml:"metrics"`
	Languages   map[string]LanguageConfig `yaml:"languages"`
	Exclusions  ExclusionsConfig          `yaml:"exclusions"`
	Output      OutputConfig              `yaml:"output"`
	Logging     LoggingConfig             `yaml:"logging"`
}

// EngineConfig contains engine metadata and measurement switches
type EngineConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	// IncludeSynthetic measures compiler-generated methods too
	IncludeSynthetic bool `yaml:"include_synthetic"`
	// FailFast aborts the run on the first entity failure
	FailFast bool `yaml:"fail_fast"`
}

// SourceConfig says where the structural model comes from. Path wins over URL.
type SourceConfig struct {
	Path    string        `yaml:"path"`
	URL     string        `yaml:"url"`
	Project string        `yaml:"project"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

// RetryConfig contains retry settings for front-end requests
type RetryConfig struct {
	MaxAttempts   int           `yaml:"max_attempts"`
	BackoffFactor float64       `yaml:"backoff_factor"`
	InitialDelay  time.Duration `yaml:"initial_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	RetryOnStatus []int         `yaml:"retry_on_status"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	MaxParallelClasses int `yaml:"max_parallel_classes"`
}

// CacheConfig contains model caching settings
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// MetricsConfig selects metrics and configures classification and reduction
type MetricsConfig struct {
	// Enabled limits computation to the listed keys; empty means all
	Enabled    []string                   `yaml:"enabled"`
	Thresholds map[string]ThresholdConfig `yaml:"thresholds"`
	// Reductions maps a metric key to sum, max or mean
	Reductions map[string]string `yaml:"reductions"`
}

// ThresholdConfig is a (low, high) band for one metric.
// Values below Low are normal, values from Low up to High are a warning and
// values at or above High are an error. LowerIsWorse mirrors the bands.
type ThresholdConfig struct {
	Low          float64  `yaml:"low"`
	High         float64  `yaml:"high"`
	LowerIsWorse bool     `yaml:"lower_is_worse"`
	Scopes       []string `yaml:"scopes"`
}

// LanguageConfig holds per-language type classification tables
type LanguageConfig struct {
	LibraryPrefixes []string `yaml:"library_prefixes"`
	RootTypes       []string `yaml:"root_types"`
	BuiltinTypes    []string `yaml:"builtin_types"`
}

// ExclusionsConfig contains exclusion patterns
type ExclusionsConfig struct {
	ClassPatterns  []string `yaml:"class_patterns"`
	MethodPatterns []string `yaml:"method_patterns"`
	Packages       []string `yaml:"packages"`
	Languages      []string `yaml:"languages"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	Formats   []string `yaml:"formats"`
	OutputDir string   `yaml:"output_dir"`
	// MinClassification drops values below the band (normal, warning, error)
	// from the report; empty keeps every value
	MinClassification string `yaml:"min_classification"`
	HotspotsTopN      int    `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"` // console, json
	File          string `yaml:"file"`
	IncludeCaller bool   `yaml:"include_caller"`
}
