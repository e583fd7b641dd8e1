package source

import "quality-metrics/src/model"

// ModelRequest asks a front-end for the structural model of a project
type ModelRequest struct {
	Project          string `json:"project"`
	IncludeBodies    bool   `json:"include_bodies"`
	IncludeSynthetic bool   `json:"include_synthetic"`
}

// ModelResponse carries the structural model produced by a front-end
type ModelResponse struct {
	Project  model.Project `json:"project"`
	Warnings []string      `json:"warnings,omitempty"`
}
