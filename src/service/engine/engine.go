package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"quality-metrics/src/config"
	"quality-metrics/src/model"
	"quality-metrics/src/service/aggregator"
	"quality-metrics/src/service/calculator"
	"quality-metrics/src/service/index"
	"quality-metrics/src/service/walker"
	"quality-metrics/src/util"
)

// Result is the outcome of one analysis run
type Result struct {
	ProjectName     string
	Values          *model.ResultSet
	Failures        []model.EntityFailure
	Diagnostics     model.Diagnostics
	ClassesMeasured int
	MethodsMeasured int
}

// Engine computes metrics for a structural model.
// It walks every method once, runs the registered calculators per class in
// parallel, then aggregates and classifies the collected values.
type Engine struct {
	cfg        *config.Config
	registry   *calculator.Registry
	types      util.TypeTables
	exclusions *util.ExclusionMatcher
	aggregator *aggregator.Aggregator
	classifier *aggregator.Classifier
}

// NewEngine creates an engine with all calculators enabled by the config
func NewEngine(cfg *config.Config) *Engine {
	e := &Engine{
		cfg:        cfg,
		registry:   calculator.NewRegistry(cfg.Metrics.Enabled),
		types:      util.NewTypeTables(cfg.Languages),
		exclusions: util.NewExclusionMatcher(cfg.Exclusions),
		aggregator: aggregator.NewAggregator(cfg.Metrics),
		classifier: aggregator.NewClassifier(cfg.Metrics.Thresholds),
	}

	util.Debug("Metric engine initialized with keys %v (max parallel classes: %d)",
		e.registry.Keys(), cfg.Concurrency.MaxParallelClasses)
	return e
}

// classResult is the slot one worker fills for one class
type classResult struct {
	skipped         bool
	values          []model.MetricValue
	failures        []model.EntityFailure
	opaque          int
	methods         int
	excludedMethods int
}

// Run computes, aggregates and classifies all metrics of a project.
// Entity failures are collected and do not stop sibling entities unless
// engine.fail_fast is set. The context is checked between classes.
func (e *Engine) Run(ctx context.Context, project *model.Project) (*Result, error) {
	startTime := time.Now()
	util.Info("Starting metric computation for %s", project.Name)

	idx := index.Build(project)
	if e.cfg.Engine.FailFast && len(idx.Failures()) > 0 {
		f := idx.Failures()[0]
		return nil, fmt.Errorf("model validation: %w", f.Err)
	}

	classes := idx.Classes()
	slots := make([]classResult, len(classes))

	g, gctx := errgroup.WithContext(ctx)
	limit := e.cfg.Concurrency.MaxParallelClasses
	if limit <= 0 {
		limit = -1
	}
	g.SetLimit(limit)

	for i, c := range classes {
		i, c := i, c
		if e.exclusions.MatchesClass(c.PackageName(), c.Name, string(c.Language)) {
			util.Debug("Skipping excluded class: %s", c.Name)
			slots[i].skipped = true
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = e.measureClass(idx, c)
			if e.cfg.Engine.FailFast && len(slots[i].failures) > 0 {
				return fmt.Errorf("class %s: %w", c.Name, slots[i].failures[0].Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		util.Error("Metric computation aborted: %v", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := e.collect(project, idx, slots)

	util.Info("Metric computation complete: %d values for %d classes, %d failures (took %v)",
		result.Values.Len(), result.ClassesMeasured, len(result.Failures), time.Since(startTime))
	return result, nil
}

// collect merges the per-class slots in index order, then runs the
// package and project reductions and classification.
func (e *Engine) collect(project *model.Project, idx *index.Index, slots []classResult) *Result {
	result := &Result{
		ProjectName: project.Name,
		Values:      model.NewResultSet(),
		Failures:    append([]model.EntityFailure(nil), idx.Failures()...),
	}

	for _, s := range slots {
		if s.skipped {
			result.Diagnostics.ExcludedClasses++
			continue
		}
		result.Failures = append(result.Failures, s.failures...)
		result.Diagnostics.OpaqueConstructs += s.opaque
		result.Diagnostics.ExcludedMethods += s.excludedMethods
		result.MethodsMeasured += s.methods
		if len(s.values) > 0 {
			result.ClassesMeasured++
		}

		for _, v := range s.values {
			result.Values.Put(v)
		}
	}

	projectName := project.Name
	if projectName == "" {
		projectName = "project"
		result.ProjectName = projectName
	}
	packageOf := func(class string) string {
		if c, ok := idx.Class(class); ok {
			return c.PackageName()
		}
		return ""
	}
	classValues := result.Values.Scope(model.ScopeClass)
	for _, v := range e.aggregator.ReduceClasses(projectName, classValues, packageOf) {
		result.Values.Put(v)
	}

	result.Diagnostics.Unclassified = e.classifier.Apply(result.Values)
	if result.Diagnostics.OpaqueConstructs > 0 {
		util.Warn("Encountered %d unsupported constructs; affected metrics may undercount",
			result.Diagnostics.OpaqueConstructs)
	}
	return result
}

// measureClass walks the measured methods of a class and runs every
// calculator. A class calculator error discards all values of the class.
func (e *Engine) measureClass(idx *index.Index, c *model.ClassModel) classResult {
	var res classResult
	types := e.types.For(string(c.Language))

	var methodValues []model.MetricValue
	var traces []*walker.Trace
	for _, m := range idx.Methods(c.Name) {
		if m.Synthetic && !e.cfg.Engine.IncludeSynthetic {
			continue
		}
		if e.exclusions.MatchesMethod(m.Name) {
			res.excludedMethods++
			continue
		}

		tr := walker.Walk(c, m)
		traces = append(traces, tr)
		res.opaque += tr.Opaque
		res.methods++

		mctx := &calculator.MethodContext{Class: c, Method: m, Trace: tr}
		entity := model.MethodEntity(c.Name, m)
		for _, calc := range e.registry.MethodCalculators() {
			if v, ok := calc.Method(mctx); ok {
				methodValues = append(methodValues, model.MetricValue{
					Scope: model.ScopeMethod, Entity: entity, Key: calc.Key(), Value: v,
				})
			}
		}
	}

	cctx := &calculator.ClassContext{Class: c, Index: idx, Types: types, Traces: traces}
	var classValues []model.MetricValue
	for _, calc := range e.registry.ClassCalculators() {
		v, ok, err := calc.Class(cctx)
		if err != nil {
			util.Warn("Skipping class %s: %v", c.Name, err)
			res.failures = append(res.failures, classFailure(c.Name, err))
			res.methods = 0
			return res
		}
		if ok {
			classValues = append(classValues, model.MetricValue{
				Scope: model.ScopeClass, Entity: c.Name, Key: calc.Key(), Value: v,
			})
		}
	}

	res.values = append(res.values, methodValues...)
	res.values = append(res.values, e.aggregator.ReduceMethods(c.Name, methodValues)...)
	res.values = append(res.values, classValues...)

	util.Debug("Measured class %s: %d methods, %d values", c.Name, res.methods, len(res.values))
	return res
}

func classFailure(class string, err error) model.EntityFailure {
	var merr *model.ModelError
	if errors.As(err, &merr) {
		return merr.Failure()
	}
	return model.EntityFailure{
		Scope:     model.ScopeClass,
		Entity:    class,
		Invariant: "calculation",
		Message:   err.Error(),
		Err:       err,
	}
}
