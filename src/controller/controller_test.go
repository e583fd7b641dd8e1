package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
)

func branchyProject(ifs int) *model.Project {
	body := make([]model.Node, ifs)
	for i := range body {
		body[i] = model.If(model.Binary(model.OpOther, model.Read("n"), model.Lit()), nil)
	}
	return &model.Project{
		Name: "shop",
		Classes: []model.ClassModel{
			{Name: "p.Big", Package: "p", Fields: []model.FieldModel{{Name: "n"}}, Methods: []model.MethodModel{{Name: "decide", Body: body}}},
			{Name: "p.Small", Package: "p", Methods: []model.MethodModel{{Name: "noop"}}},
		},
	}
}

func TestAnalyzeProjectBuildsSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	report, err := NewAnalysisController(cfg).AnalyzeProject(context.Background(), branchyProject(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(report.RunID); err != nil {
		t.Errorf("expected a uuid run id, got %q", report.RunID)
	}
	if report.ProjectName != "shop" {
		t.Errorf("expected project shop, got %q", report.ProjectName)
	}
	if report.Summary.TotalValues != len(report.Values) {
		t.Errorf("expected summary to count %d values, got %d", len(report.Values), report.Summary.TotalValues)
	}
	if report.Summary.ClassesMeasured != 2 || report.Summary.MethodsMeasured != 2 {
		t.Errorf("unexpected measured counts %+v", report.Summary)
	}

	hs := report.Summary.HotspotClasses
	if len(hs) != 1 || hs[0].ClassName != "p.Big" || hs[0].Errors == 0 {
		t.Errorf("expected p.Big as only hotspot, got %+v", hs)
	}
	v, ok := findValue(report.Values, model.ScopeMethod, "p.Big#decide()", model.KeyCyclomatic)
	if !ok || v.Value != 26 || v.Classification != model.ClassificationError {
		t.Errorf("expected CC 26 classified error, got %+v", v)
	}
}

func TestAnalyzeProjectFiltersByClassification(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.MinClassification = "error"

	report, err := NewAnalysisController(cfg).AnalyzeProject(context.Background(), branchyProject(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Values) == 0 {
		t.Fatal("expected error values to survive the filter")
	}
	for _, v := range report.Values {
		if v.Classification != model.ClassificationError {
			t.Errorf("unexpected value below filter: %+v", v)
		}
	}
	if report.Summary.TotalValues <= len(report.Values) {
		t.Errorf("expected summary to cover unfiltered values, got %d", report.Summary.TotalValues)
	}
}

func TestGenerateReportsWritesFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Output.Formats = []string{"json", "markdown", "sarif"}

	report, err := NewAnalysisController(cfg).AnalyzeProject(context.Background(), branchyProject(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := NewReportController(cfg).GenerateReports(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"shop-metrics-report.json", "shop-metrics-report.md", "shop-metrics-report.sarif.json"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d paths, got %v", len(want), paths)
	}
	for i, name := range want {
		if filepath.Base(paths[i]) != name {
			t.Errorf("expected %s, got %s", name, paths[i])
		}
		if info, err := os.Stat(paths[i]); err != nil || info.Size() == 0 {
			t.Errorf("expected non-empty file %s (err=%v)", paths[i], err)
		}
	}
}

func findValue(values []model.MetricValue, scope model.Scope, entity string, key model.MetricKey) (model.MetricValue, bool) {
	for _, v := range values {
		if v.Scope == scope && v.Entity == entity && v.Key == key {
			return v, true
		}
	}
	return model.MetricValue{}, false
}

func TestAnalyzeLoadsModelFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source.Path = filepath.Join("..", "service", "source", "testdata", "shop.yaml")

	report, err := NewAnalysisController(cfg).Analyze(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.ClassesMeasured != 4 || report.Summary.MethodsMeasured != 3 {
		t.Errorf("expected 4 classes and 3 methods, got %+v", report.Summary)
	}

	tests := []struct {
		scope  model.Scope
		entity string
		key    model.MetricKey
		want   float64
	}{
		{model.ScopeMethod, "shop.Order#add(shop.Item)", model.KeyCyclomatic, 3},
		{model.ScopeMethod, "shop.Order#recompute()", model.KeyLoops, 1},
		{model.ScopeClass, "shop.Order", model.KeyInheritance, 1},
		{model.ScopeClass, "shop.Entity", model.KeyChildren, 1},
		{model.ScopeClass, "shop.Order", model.KeyForeignData, 1},
	}
	for _, tt := range tests {
		v, ok := findValue(report.Values, tt.scope, tt.entity, tt.key)
		if !ok || v.Value != tt.want {
			t.Errorf("%s %s: expected %v, got %+v (found=%v)", tt.entity, tt.key, tt.want, v, ok)
		}
	}
}
