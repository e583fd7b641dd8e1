package config

import (
	"time"

	"quality-metrics/src/model"
)

// Reduction strategies
const (
	ReduceSum  = "sum"
	ReduceMax  = "max"
	ReduceMean = "mean"
)

var (
	methodScopes = []string{string(model.ScopeMethod), string(model.ScopeClass)}
	classScopes  = []string{string(model.ScopeClass)}
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Engine: EngineConfig{
			Name:        "quality-metrics",
			Version:     "1.0.0",
			Description: "Object-oriented metric computation engine",
		},
		Source: SourceConfig{
			URL:     "http://localhost:8181",
			Timeout: 30 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:   3,
				BackoffFactor: 1.5,
				InitialDelay:  100 * time.Millisecond,
				MaxDelay:      5 * time.Second,
				RetryOnStatus: []int{502, 503, 504},
			},
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelClasses: 8,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Metrics: MetricsConfig{
			Thresholds: map[string]ThresholdConfig{
				"CC":   {Low: 10, High: 20, Scopes: methodScopes},
				"CCM":  {Low: 15, High: 25, Scopes: methodScopes},
				"CND":  {Low: 3, High: 5, Scopes: methodScopes},
				"LND":  {Low: 2, High: 3, Scopes: methodScopes},
				"MND":  {Low: 4, High: 6, Scopes: methodScopes},
				"NOPM": {Low: 5, High: 8, Scopes: []string{string(model.ScopeMethod)}},
				"LAA":  {Low: 0.33, High: 0.5, LowerIsWorse: true, Scopes: methodScopes},
				"FDP":  {Low: 3, High: 6, Scopes: []string{string(model.ScopeMethod)}},
				"NOAV": {Low: 8, High: 15, Scopes: []string{string(model.ScopeMethod)}},
				"MPC":  {Low: 8, High: 16, Scopes: methodScopes},
				"ATFD": {Low: 3, High: 6, Scopes: classScopes},
				"CBO":  {Low: 14, High: 20, Scopes: classScopes},
				"NOPA": {Low: 3, High: 6, Scopes: classScopes},
				"NOAC": {Low: 6, High: 12, Scopes: classScopes},
				"WMC":  {Low: 31, High: 47, Scopes: classScopes},
				"DIT":  {Low: 4, High: 6, Scopes: classScopes},
				"NOC":  {Low: 10, High: 20, Scopes: classScopes},
				"RFC":  {Low: 50, High: 100, Scopes: classScopes},
				"DAC":  {Low: 4, High: 8, Scopes: classScopes},
				"LCOM": {Low: 2, High: 4, Scopes: classScopes},
				"TCC":  {Low: 0.33, High: 0.5, LowerIsWorse: true, Scopes: classScopes},
			},
			Reductions: map[string]string{},
		},
		Languages: map[string]LanguageConfig{
			string(model.LanguageKotlin): {
				LibraryPrefixes: []string{"kotlin.", "kotlinx.", "java.", "javax.", "android."},
				RootTypes:       []string{"kotlin.Any", "Any"},
				BuiltinTypes: []string{
					"Int", "Long", "Short", "Byte", "Double", "Float", "Boolean", "Char",
					"String", "Unit", "Nothing", "Any", "List", "MutableList", "Map",
					"MutableMap", "Set", "MutableSet", "Array", "Sequence", "Pair",
				},
			},
			string(model.LanguageJava): {
				LibraryPrefixes: []string{"java.", "javax.", "jdk.", "sun."},
				RootTypes:       []string{"java.lang.Object", "Object"},
				BuiltinTypes: []string{
					"int", "long", "short", "byte", "double", "float", "boolean", "char", "void",
					"String", "Integer", "Long", "Short", "Byte", "Double", "Float", "Boolean",
					"Character", "Object", "List", "Map", "Set", "Collection", "Optional",
				},
			},
		},
		Exclusions: ExclusionsConfig{
			ClassPatterns: []string{"Test$", "Mock$", "Stub$"},
		},
		Output: OutputConfig{
			Formats:      []string{"json"},
			OutputDir:    ".",
			HotspotsTopN: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
	cfg.FillReductionDefaults()
	return cfg
}

// FillReductionDefaults assigns a reduction to every metric that has none:
// counts sum, ratios average, nesting and complexity take the maximum.
func (c *Config) FillReductionDefaults() {
	if c.Metrics.Reductions == nil {
		c.Metrics.Reductions = make(map[string]string)
	}
	for _, def := range model.Definitions {
		key := string(def.Key)
		if _, ok := c.Metrics.Reductions[key]; ok {
			continue
		}
		switch def.Kind {
		case model.KindRatio:
			c.Metrics.Reductions[key] = ReduceMean
		case model.KindDepth:
			c.Metrics.Reductions[key] = ReduceMax
		default:
			c.Metrics.Reductions[key] = ReduceSum
		}
	}
}
