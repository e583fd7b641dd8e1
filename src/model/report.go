package model

import "time"

// AnalysisReport is the complete output of one analysis run
type AnalysisReport struct {
	RunID       string          `json:"run_id"`
	ProjectName string          `json:"project_name"`
	GeneratedAt time.Time       `json:"generated_at"`
	Summary     ReportSummary   `json:"summary"`
	Values      []MetricValue   `json:"values"`
	Failures    []EntityFailure `json:"failures,omitempty"`
	Diagnostics Diagnostics     `json:"diagnostics"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	TotalValues      int                    `json:"total_values"`
	ClassesMeasured  int                    `json:"classes_measured"`
	MethodsMeasured  int                    `json:"methods_measured"`
	ByClassification map[Classification]int `json:"by_classification"`
	ByScope          map[Scope]int          `json:"by_scope"`
	HotspotClasses   []ClassHotspot         `json:"hotspot_classes"`
}

// ClassHotspot is a class with many values outside the normal band
type ClassHotspot struct {
	ClassName string `json:"class_name"`
	Errors    int    `json:"errors"`
	Warnings  int    `json:"warnings"`
}
