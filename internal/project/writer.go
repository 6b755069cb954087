package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write saves a project to a YAML file.
func Write(p *Project, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Read loads a project from a YAML file.
func Read(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode project %s: %w", path, err)
	}

	return &p, nil
}
