// SPDX-FileCopyrightText: © 2025 Nfrastack <code@nfrastack.com>
//
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the server parameter catalog backing the
// configuration-introspection mode and the "-C <name>" read-only query.
// Full configuration-file parsing belongs to the execution engines, not
// to this catalog.
package config

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"pgserver/pkg/logging"
)

//go:embed parameters.yaml
var parametersYAML []byte

// Parameter describes one run-time parameter of the server.
type Parameter struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Context     string `yaml:"context"`
	Default     string `yaml:"default"`
	Description string `yaml:"description"`
}

// Catalog is the loaded parameter set, ordered by name.
type Catalog struct {
	parameters []Parameter
	byName     map[string]Parameter
}

// LoadCatalog parses the embedded parameter catalog.
func LoadCatalog() (*Catalog, error) {
	var doc struct {
		Parameters []Parameter `yaml:"parameters"`
	}
	if err := yaml.Unmarshal(parametersYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse parameter catalog: %w", err)
	}
	if len(doc.Parameters) == 0 {
		return nil, fmt.Errorf("parameter catalog is empty")
	}

	byName := make(map[string]Parameter, len(doc.Parameters))
	for _, p := range doc.Parameters {
		if p.Name == "" {
			return nil, fmt.Errorf("parameter catalog entry without a name")
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q in catalog", p.Name)
		}
		byName[p.Name] = p
	}

	sorted := make([]Parameter, len(doc.Parameters))
	copy(sorted, doc.Parameters)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	logging.CatalogLogger.Debug("loaded %d parameters", len(sorted))
	return &Catalog{parameters: sorted, byName: byName}, nil
}

// Parameters returns all parameters in name order.
func (c *Catalog) Parameters() []Parameter {
	return c.parameters
}

// Lookup finds a parameter by exact name.
func (c *Catalog) Lookup(name string) (Parameter, bool) {
	p, ok := c.byName[name]
	return p, ok
}
