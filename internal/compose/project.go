// SPDX-License-Identifier: MPL-2.0

package compose

import (
	"fmt"
	"os"
	"slices"

	"github.com/invowk/projkit/internal/argcheck"

	"gopkg.in/yaml.v3"
)

// Project is the subset of a compose file projkit inspects.
type Project struct {
	Services map[string]yaml.Node `yaml:"services"`
}

// LoadProject parses the compose file at path. Only top-level service
// names are kept; docker compose itself validates the rest.
func LoadProject(path string) (*Project, error) {
	if err := argcheck.RequireFile(path, ErrFileMissing); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compose file %s: %w", path, err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse compose file %s: %w", path, err)
	}
	return &p, nil
}

// ServiceNames returns the declared services in sorted order.
func (p *Project) ServiceNames() []string {
	names := make([]string, 0, len(p.Services))
	for name := range p.Services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HasService reports whether name is declared.
func (p *Project) HasService(name string) bool {
	_, ok := p.Services[name]
	return ok
}
