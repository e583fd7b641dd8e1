package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
)

func sampleReport() *model.AnalysisReport {
	return &model.AnalysisReport{
		RunID:       "run-1",
		ProjectName: "shop",
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Values: []model.MetricValue{
			{Scope: model.ScopeMethod, Entity: "p.A#run()", Key: model.KeyCyclomatic, Value: 12, Classification: model.ClassificationWarning},
			{Scope: model.ScopeMethod, Entity: "p.A#run()", Key: model.KeyLocality, Value: 0.3333333, Classification: model.ClassificationError},
			{Scope: model.ScopeClass, Entity: "p.A", Key: model.KeyAttributes, Value: 3},
			{Scope: model.ScopeClass, Entity: "p.A", Key: model.KeyInheritance, Value: 1, Classification: model.ClassificationNormal},
		},
		Failures: []model.EntityFailure{
			{Scope: model.ScopeClass, Entity: "p.X", Invariant: "inheritance cycle", Message: "class p.X: inheritance cycle"},
		},
		Diagnostics: model.Diagnostics{Unclassified: []model.MetricKey{model.KeyAttributes}},
	}
}

func newGenerator() *Generator {
	cfg := config.DefaultConfig()
	return NewGenerator(cfg.Output, cfg.Engine)
}

func TestGenerateJSON(t *testing.T) {
	out, err := newGenerator().Generate(sampleReport(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded model.AnalysisReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.RunID != "run-1" || len(decoded.Values) != 4 {
		t.Errorf("unexpected report %+v", decoded)
	}
}

func TestGenerateMarkdown(t *testing.T) {
	out, err := newGenerator().Generate(sampleReport(), "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"**Project:** shop",
		"## Findings (2)",
		"| [ERROR] | method | `p.A#run()` | LAA | 0.33 |",
		"| [WARNING] | method | `p.A#run()` | CC | 12 |",
		"- `p.X` (inheritance cycle)",
		"Metrics without thresholds: NOA",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected markdown to contain %q", want)
		}
	}
	if strings.Index(out, "[ERROR] | method") > strings.Index(out, "[WARNING] | method") {
		t.Error("expected errors to be listed before warnings")
	}
}

func TestGenerateSARIF(t *testing.T) {
	out, err := newGenerator().Generate(sampleReport(), "sarif")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc struct {
		Runs []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid sarif: %v", err)
	}

	run := doc.Runs[0]
	if run.Tool.Driver.Name != "quality-metrics" {
		t.Errorf("expected driver quality-metrics, got %q", run.Tool.Driver.Name)
	}
	if len(run.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(run.Results))
	}
	if run.Results[0].RuleID != "LAA" || run.Results[0].Level != "error" {
		t.Errorf("unexpected first result %+v", run.Results[0])
	}
	if len(run.Tool.Driver.Rules) != 2 || run.Tool.Driver.Rules[0].ID != "CC" {
		t.Errorf("unexpected rules %+v", run.Tool.Driver.Rules)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	if _, err := newGenerator().Generate(sampleReport(), "pdf"); !errors.Is(err, model.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
