package controller

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/service/engine"
	"quality-metrics/src/service/source"
	"quality-metrics/src/util"
)

// AnalysisController orchestrates the metric analysis process
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// Analyze loads the configured structural model and measures it
func (c *AnalysisController) Analyze(ctx context.Context) (*model.AnalysisReport, error) {
	provider := source.NewProvider(c.cfg)
	util.Debug("Model provider initialized (path: %q, url: %q, cache enabled: %v)",
		c.cfg.Source.Path, c.cfg.Source.URL, c.cfg.Cache.Enabled)

	project, err := provider.Project(ctx)
	if err != nil {
		return nil, err
	}
	return c.AnalyzeProject(ctx, project)
}

// AnalyzeProject runs the metric engine over a loaded model and builds the report
func (c *AnalysisController) AnalyzeProject(ctx context.Context, project *model.Project) (*model.AnalysisReport, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	util.Info("Starting analysis %s for project: %s", runID, project.Name)

	result, err := engine.NewEngine(c.cfg).Run(ctx, project)
	if err != nil {
		util.Error("Metric run failed: %v", err)
		return nil, err
	}

	values := result.Values.Values()
	report := &model.AnalysisReport{
		RunID:       runID,
		ProjectName: result.ProjectName,
		GeneratedAt: time.Now().UTC(),
		Summary:     c.generateSummary(result, values),
		Values:      c.applyMinClassification(values),
		Failures:    result.Failures,
		Diagnostics: result.Diagnostics,
	}

	if len(report.Values) != len(values) {
		util.Debug("Classification filter reduced values from %d to %d", len(values), len(report.Values))
	}

	util.Info("Analysis complete: %d values, %d errors, %d warnings, %d failures (took %v)",
		report.Summary.TotalValues,
		report.Summary.ByClassification[model.ClassificationError],
		report.Summary.ByClassification[model.ClassificationWarning],
		len(report.Failures), time.Since(startTime))

	return report, nil
}

func (c *AnalysisController) applyMinClassification(values []model.MetricValue) []model.MetricValue {
	minRank := model.Classification(c.cfg.Output.MinClassification).Rank()
	if minRank == 0 {
		return values
	}

	filtered := make([]model.MetricValue, 0, len(values))
	for _, v := range values {
		if v.Classification.Rank() >= minRank {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func (c *AnalysisController) generateSummary(result *engine.Result, values []model.MetricValue) model.ReportSummary {
	byClassification := make(map[model.Classification]int)
	byScope := make(map[model.Scope]int)
	byClass := make(map[string]*model.ClassHotspot)

	for _, v := range values {
		byClassification[v.Classification]++
		byScope[v.Scope]++

		if v.Scope != model.ScopeMethod && v.Scope != model.ScopeClass {
			continue
		}
		if v.Classification.Rank() < model.ClassificationWarning.Rank() {
			continue
		}
		name := model.ClassOf(v.Entity)
		hs, ok := byClass[name]
		if !ok {
			hs = &model.ClassHotspot{ClassName: name}
			byClass[name] = hs
		}
		if v.Classification == model.ClassificationError {
			hs.Errors++
		} else {
			hs.Warnings++
		}
	}

	hotspots := make([]model.ClassHotspot, 0, len(byClass))
	for _, hs := range byClass {
		hotspots = append(hotspots, *hs)
	}
	sort.Slice(hotspots, func(i, j int) bool {
		a, b := hotspots[i], hotspots[j]
		if a.Errors != b.Errors {
			return a.Errors > b.Errors
		}
		if a.Warnings != b.Warnings {
			return a.Warnings > b.Warnings
		}
		return a.ClassName < b.ClassName
	})

	if topN := c.cfg.Output.HotspotsTopN; topN >= 0 && topN < len(hotspots) {
		hotspots = hotspots[:topN]
	}

	return model.ReportSummary{
		TotalValues:      len(values),
		ClassesMeasured:  result.ClassesMeasured,
		MethodsMeasured:  result.MethodsMeasured,
		ByClassification: byClassification,
		ByScope:          byScope,
		HotspotClasses:   hotspots,
	}
}
