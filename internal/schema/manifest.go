package schema

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the column metadata handed over by schema introspection.
// Both YAML and JSON documents are accepted.
type Manifest struct {
	Models []RawModel `yaml:"models" json:"models"`
}

// LoadManifest reads and parses a manifest file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema manifest %s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses manifest bytes
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Models == nil {
		m.Models = []RawModel{}
	}
	return &m, nil
}

// Model returns the raw model with the given name
func (m *Manifest) Model(name string) (RawModel, error) {
	for _, rm := range m.Models {
		if rm.Name == name {
			return rm, nil
		}
	}
	return RawModel{}, fmt.Errorf("model %q not found in manifest (available: %s)", name, strings.Join(m.ModelNames(), ", "))
}

// ModelNames returns the sorted names of all models in the manifest
func (m *Manifest) ModelNames() []string {
	names := make([]string, 0, len(m.Models))
	for _, rm := range m.Models {
		names = append(names, rm.Name)
	}
	sort.Strings(names)
	return names
}
