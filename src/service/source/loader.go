package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quality-metrics/src/model"
)

// LoadFile reads a structural model from a .json, .yaml or .yml file.
// A model without a name takes the file's base name.
func LoadFile(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	project, err := Decode(data, strings.TrimPrefix(ext, "."))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if project.Name == "" {
		project.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return project, nil
}

// Decode parses a structural model in the given format (json, yaml or yml)
func Decode(data []byte, format string) (*model.Project, error) {
	var project model.Project
	switch format {
	case "json":
		if err := json.Unmarshal(data, &project); err != nil {
			return nil, fmt.Errorf("parsing json model: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, fmt.Errorf("parsing yaml model: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: model format %q", model.ErrUnsupportedFormat, format)
	}
	return &project, nil
}
