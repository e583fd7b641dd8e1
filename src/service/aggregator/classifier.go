package aggregator

import (
	"sort"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// Classifier assigns threshold bands to metric values
type Classifier struct {
	thresholds map[model.MetricKey]config.ThresholdConfig
}

// NewClassifier creates a classifier from configured thresholds
func NewClassifier(thresholds map[string]config.ThresholdConfig) *Classifier {
	c := &Classifier{thresholds: make(map[model.MetricKey]config.ThresholdConfig, len(thresholds))}
	for k, t := range thresholds {
		c.thresholds[model.MetricKey(k)] = t
	}
	return c
}

// Classify places a value in the band of a threshold
func Classify(value float64, t config.ThresholdConfig) model.Classification {
	if t.LowerIsWorse {
		switch {
		case value >= t.High:
			return model.ClassificationNormal
		case value >= t.Low:
			return model.ClassificationWarning
		default:
			return model.ClassificationError
		}
	}
	switch {
	case value < t.Low:
		return model.ClassificationNormal
	case value < t.High:
		return model.ClassificationWarning
	default:
		return model.ClassificationError
	}
}

// Classify returns the band of a metric value. The second result is false
// when no threshold exists for the key at all.
func (c *Classifier) Classify(v model.MetricValue) (model.Classification, bool) {
	t, ok := c.thresholds[v.Key]
	if !ok {
		return model.Unclassified, false
	}
	if len(t.Scopes) > 0 && !containsScope(t.Scopes, v.Scope) {
		return model.Unclassified, true
	}
	return Classify(v.Value, t), true
}

func containsScope(scopes []string, s model.Scope) bool {
	for _, x := range scopes {
		if model.Scope(x) == s {
			return true
		}
	}
	return false
}

// Apply classifies every value in place and returns the keys for which no
// threshold is configured. Those values stay unclassified.
func (c *Classifier) Apply(rs *model.ResultSet) []model.MetricKey {
	missing := make(map[model.MetricKey]bool)
	for _, v := range rs.Values() {
		class, ok := c.Classify(v)
		if !ok {
			missing[v.Key] = true
		}
		v.Classification = class
		rs.Put(v)
	}

	keys := make([]model.MetricKey, 0, len(missing))
	for k := range missing {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if len(keys) > 0 {
		util.Warn("No threshold configured for %v; values left unclassified", keys)
	}
	return keys
}
