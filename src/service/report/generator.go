package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// Generator generates reports in various formats
type Generator struct {
	cfg    config.OutputConfig
	engine config.EngineConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig, engine config.EngineConfig) *Generator {
	return &Generator{cfg: cfg, engine: engine}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d values)", format, len(report.Values))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "sarif":
		return g.generateSARIF(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("%w: report format %s", model.ErrUnsupportedFormat, format)
	}
}

// Extension returns the file extension for a report format
func Extension(format string) string {
	switch format {
	case "markdown":
		return "md"
	case "sarif":
		return "sarif.json"
	default:
		return format
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	// Header
	sb.WriteString("# Metrics Report\n\n")
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", report.ProjectName))
	sb.WriteString(fmt.Sprintf("**Run:** %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Values:** %d\n", report.Summary.TotalValues))
	sb.WriteString(fmt.Sprintf("- **Classes measured:** %d\n", report.Summary.ClassesMeasured))
	sb.WriteString(fmt.Sprintf("- **Methods measured:** %d\n", report.Summary.MethodsMeasured))
	sb.WriteString(fmt.Sprintf("- **Failures:** %d\n\n", len(report.Failures)))

	sb.WriteString("### Values by Classification\n\n")
	sb.WriteString("| Classification | Count |\n")
	sb.WriteString("|----------------|-------|\n")
	for _, c := range []model.Classification{model.ClassificationError, model.ClassificationWarning, model.ClassificationNormal, model.Unclassified} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", classificationLabel(c), report.Summary.ByClassification[c]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Values by Scope\n\n")
	sb.WriteString("| Scope | Count |\n")
	sb.WriteString("|-------|-------|\n")
	for _, s := range []model.Scope{model.ScopeProject, model.ScopePackage, model.ScopeClass, model.ScopeMethod} {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", s, report.Summary.ByScope[s]))
	}
	sb.WriteString("\n")

	// Hotspots
	if len(report.Summary.HotspotClasses) > 0 {
		sb.WriteString("### Hotspot Classes\n\n")
		sb.WriteString("| Class | Errors | Warnings |\n")
		sb.WriteString("|-------|--------|----------|\n")
		for _, hs := range report.Summary.HotspotClasses {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", hs.ClassName, hs.Errors, hs.Warnings))
		}
		sb.WriteString("\n")
	}

	// Findings
	findings := outOfBand(report.Values)
	if len(findings) > 0 {
		sb.WriteString(fmt.Sprintf("## Findings (%d)\n\n", len(findings)))
		sb.WriteString("| Band | Scope | Entity | Metric | Value |\n")
		sb.WriteString("|------|-------|--------|--------|-------|\n")
		for _, v := range findings {
			sb.WriteString(fmt.Sprintf("| %s | %s | `%s` | %s | %s |\n",
				classificationLabel(v.Classification), v.Scope, v.Entity, v.Key, formatValue(v.Value)))
		}
		sb.WriteString("\n")
	}

	if len(report.Failures) > 0 {
		sb.WriteString("## Failures\n\n")
		for _, f := range report.Failures {
			sb.WriteString(fmt.Sprintf("- `%s` (%s): %s\n", f.Entity, f.Invariant, f.Message))
		}
		sb.WriteString("\n")
	}

	d := report.Diagnostics
	sb.WriteString("## Diagnostics\n\n")
	sb.WriteString(fmt.Sprintf("- Unsupported constructs: %d\n", d.OpaqueConstructs))
	sb.WriteString(fmt.Sprintf("- Excluded classes: %d\n", d.ExcludedClasses))
	sb.WriteString(fmt.Sprintf("- Excluded methods: %d\n", d.ExcludedMethods))
	if len(d.Unclassified) > 0 {
		keys := make([]string, len(d.Unclassified))
		for i, k := range d.Unclassified {
			keys[i] = string(k)
		}
		sb.WriteString(fmt.Sprintf("- Metrics without thresholds: %s\n", strings.Join(keys, ", ")))
	}

	return sb.String(), nil
}

func (g *Generator) generateSARIF(report *model.AnalysisReport) (string, error) {
	findings := outOfBand(report.Values)
	sarif := map[string]any{
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"version": "2.1.0",
		"runs": []map[string]any{
			{
				"tool": map[string]any{
					"driver": map[string]any{
						"name":    g.engine.Name,
						"version": g.engine.Version,
						"rules":   g.buildSARIFRules(findings),
					},
				},
				"automationDetails": map[string]any{"id": report.RunID},
				"results":           g.buildSARIFResults(findings),
			},
		},
	}

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) buildSARIFRules(values []model.MetricValue) []map[string]any {
	ruleMap := make(map[model.MetricKey]bool)
	rules := []map[string]any{}

	for _, v := range values {
		if ruleMap[v.Key] {
			continue
		}
		ruleMap[v.Key] = true

		def, _ := model.Definition(v.Key)
		rules = append(rules, map[string]any{
			"id":   string(v.Key),
			"name": def.Name,
			"shortDescription": map[string]any{
				"text": def.Description,
			},
		})
	}

	sort.Slice(rules, func(i, j int) bool { return rules[i]["id"].(string) < rules[j]["id"].(string) })
	return rules
}

func (g *Generator) buildSARIFResults(values []model.MetricValue) []map[string]any {
	results := []map[string]any{}

	for _, v := range values {
		results = append(results, map[string]any{
			"ruleId": string(v.Key),
			"level":  string(v.Classification),
			"message": map[string]any{
				"text": fmt.Sprintf("%s of %s is %s", v.Key, v.Entity, formatValue(v.Value)),
			},
			"locations": []map[string]any{
				{
					"logicalLocations": []map[string]any{
						{
							"fullyQualifiedName": v.Entity,
							"kind":               logicalKind(v.Scope),
						},
					},
				},
			},
			"properties": map[string]any{"value": v.Value, "scope": string(v.Scope)},
		})
	}

	return results
}

// outOfBand returns warning and error values, errors first
func outOfBand(values []model.MetricValue) []model.MetricValue {
	var out []model.MetricValue
	for _, v := range values {
		if v.Classification.Rank() >= model.ClassificationWarning.Rank() {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Classification.Rank() > out[j].Classification.Rank()
	})
	return out
}

func logicalKind(s model.Scope) string {
	switch s {
	case model.ScopeMethod:
		return "member"
	case model.ScopeClass:
		return "type"
	case model.ScopePackage:
		return "namespace"
	default:
		return "module"
	}
}

func classificationLabel(c model.Classification) string {
	switch c {
	case model.ClassificationError:
		return "[ERROR]"
	case model.ClassificationWarning:
		return "[WARNING]"
	case model.ClassificationNormal:
		return "normal"
	default:
		return "unclassified"
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
