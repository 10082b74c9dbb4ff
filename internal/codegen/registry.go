package codegen

import (
	"fmt"
	"sort"

	"github.com/okra-platform/crudgen/internal/schema"
)

// SpecBuilder assembles the ArtifactSpec of one kind for a model
type SpecBuilder func(c *Composer, m *schema.Model) (ArtifactSpec, error)

// Registry manages the spec builders available per artifact kind
type Registry struct {
	builders map[Kind]SpecBuilder
}

// NewRegistry creates a new, empty registry
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[Kind]SpecBuilder),
	}
}

// Register adds or replaces the builder for kind
func (r *Registry) Register(kind Kind, builder SpecBuilder) {
	r.builders[kind] = builder
}

// Get returns the builder for kind
func (r *Registry) Get(kind Kind) (SpecBuilder, error) {
	builder, exists := r.builders[kind]
	if !exists {
		return nil, fmt.Errorf("unsupported artifact kind: %s", kind)
	}
	return builder, nil
}

// Kinds returns the registered kinds in generation order; kinds outside Kinds come last
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.builders))
	seen := make(map[Kind]bool, len(r.builders))
	for _, k := range Kinds {
		if _, ok := r.builders[k]; ok {
			kinds = append(kinds, k)
			seen[k] = true
		}
	}
	var extra []Kind
	for k := range r.builders {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(kinds, extra...)
}
