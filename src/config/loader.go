package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"quality-metrics/src/model"
)

var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Loader handles configuration loading from YAML or TOML files
type Loader struct{}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load loads configuration from a file with environment variable substitution.
// Files ending in .toml are read as TOML, everything else as YAML.
// Environment variables can be referenced using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := l.resolveConfigPath(configPath)
	if filePath == "" {
		// No config file found, use defaults
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := []byte(l.expandEnvVars(string(data)))

	if strings.EqualFold(filepath.Ext(filePath), ".toml") {
		expanded, err = tomlToYAML(expanded)
		if err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.FillReductionDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// tomlToYAML re-encodes a TOML document as YAML so both formats share the
// yaml struct tags and duration parsing.
func tomlToYAML(data []byte) ([]byte, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return yaml.Marshal(raw)
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	home := os.Getenv("HOME")
	defaults := []string{
		"config.yaml",
		"config.toml",
		"config/config.yaml",
		"config/config.toml",
		filepath.Join(home, ".quality-metrics", "config.yaml"),
		filepath.Join(home, ".quality-metrics", "config.toml"),
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// expandEnvVars expands ${VAR} and ${VAR:-default} references
func (l *Loader) expandEnvVars(input string) string {
	return envPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultVal := ""
		if len(submatches) >= 3 {
			defaultVal = submatches[2]
		}

		if val, exists := os.LookupEnv(varName); exists {
			return val
		}

		return defaultVal
	})
}

// Validate checks thresholds, reductions, enabled metric keys and the
// report classification filter
func (c *Config) Validate() error {
	for key, t := range c.Metrics.Thresholds {
		if _, ok := model.Definition(model.MetricKey(key)); !ok {
			return fmt.Errorf("%w: unknown metric %q", model.ErrInvalidThreshold, key)
		}
		if t.Low > t.High {
			return fmt.Errorf("%w: %s low %v exceeds high %v", model.ErrInvalidThreshold, key, t.Low, t.High)
		}
		for _, s := range t.Scopes {
			switch model.Scope(s) {
			case model.ScopeMethod, model.ScopeClass, model.ScopePackage, model.ScopeProject:
			default:
				return fmt.Errorf("%w: %s unknown scope %q", model.ErrInvalidThreshold, key, s)
			}
		}
	}

	for key, r := range c.Metrics.Reductions {
		switch r {
		case ReduceSum, ReduceMax, ReduceMean:
		default:
			return fmt.Errorf("reduction for %s: unknown strategy %q", key, r)
		}
	}

	for _, key := range c.Metrics.Enabled {
		if _, ok := model.Definition(model.MetricKey(key)); !ok {
			return fmt.Errorf("unknown metric %q in enabled list", key)
		}
	}

	if c.Concurrency.MaxParallelClasses < 0 {
		return fmt.Errorf("max_parallel_classes must not be negative")
	}

	switch model.Classification(c.Output.MinClassification) {
	case model.Unclassified, model.ClassificationNormal, model.ClassificationWarning, model.ClassificationError:
	default:
		return fmt.Errorf("min_classification: unknown band %q (want normal, warning or error)", c.Output.MinClassification)
	}

	return nil
}
