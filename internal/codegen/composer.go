package codegen

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudgen/internal/codegen/stub"
	"github.com/okra-platform/crudgen/internal/schema"
)

// Composer turns a model into rendered artifacts. It renders per-column fragment stubs,
// joins them in column order, and substitutes the result into the artifact's outer stub.
type Composer struct {
	store    stub.Store
	registry *Registry
	opts     Options
	logger   zerolog.Logger
}

// NewComposer creates a composer backed by the default registry
func NewComposer(store stub.Store, opts Options, logger zerolog.Logger) *Composer {
	return &Composer{
		store:    store,
		registry: DefaultRegistry,
		opts:     opts,
		logger:   logger.With().Str("component", "composer").Logger(),
	}
}

// WithRegistry replaces the registry used to look up spec builders
func (c *Composer) WithRegistry(r *Registry) *Composer {
	c.registry = r
	return c
}

// Kinds returns the artifact kinds this composer can produce, in generation order
func (c *Composer) Kinds() []Kind {
	return c.registry.Kinds()
}

// Spec assembles the ArtifactSpec of kind for m, rendering any fragments it needs
func (c *Composer) Spec(m *schema.Model, kind Kind) (ArtifactSpec, error) {
	build, err := c.registry.Get(kind)
	if err != nil {
		return ArtifactSpec{}, &ArtifactError{Model: m.Name(), Kind: kind, Cause: err}
	}

	spec, err := build(c, m)
	if err != nil {
		return ArtifactSpec{}, &ArtifactError{Model: m.Name(), Kind: kind, Cause: err}
	}
	return spec, nil
}

// Compose renders the artifact of kind for m
func (c *Composer) Compose(m *schema.Model, kind Kind) (*Artifact, error) {
	spec, err := c.Spec(m, kind)
	if err != nil {
		return nil, err
	}

	src, err := c.store.Get(spec.TemplateID)
	if err != nil {
		return nil, &ArtifactError{Model: m.Name(), Kind: kind, Cause: err}
	}

	c.logger.Debug().
		Str("model", m.Name()).
		Str("kind", string(kind)).
		Str("template", spec.TemplateID).
		Msg("composed artifact")

	return &Artifact{
		Kind:    kind,
		Content: []byte(stub.Render(src, spec.Placeholders)),
	}, nil
}

// fragmentFunc picks the fragment stub and placeholders for one column
type fragmentFunc func(col schema.Column) (templateID string, placeholders map[string]string)

// renderFragments renders one fragment per column and joins them with newlines.
// Zero columns yield an empty string.
func (c *Composer) renderFragments(columns []schema.Column, fn fragmentFunc) (string, error) {
	sources := make(map[string]string)
	parts := make([]string, 0, len(columns))

	for _, col := range columns {
		id, placeholders := fn(col)
		src, ok := sources[id]
		if !ok {
			text, err := c.store.Get(id)
			if err != nil {
				return "", err
			}
			src = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
			sources[id] = src
		}
		parts = append(parts, stub.Render(src, placeholders))
	}

	return strings.Join(parts, "\n"), nil
}

// pageTemplate returns the stub id of a page-level artifact in the selected form variant
func (c *Composer) pageTemplate(name string) string {
	variant := "pages"
	if c.opts.UseDialogs {
		variant = "dialogs"
	}
	return "inertia-react/" + variant + "/" + name + ".tsx"
}

// scalars returns the model-level placeholders shared by every artifact
func scalars(m *schema.Model) map[string]string {
	n := m.Names()
	return map[string]string{
		"model":               n.Model,
		"modelPlural":         n.PluralCamel,
		"modelVariable":       n.Variable,
		"modelKebab":          n.Kebab,
		"routeName":           n.Route,
		"model | lower":       n.Lower,
		"modelPlural | lower": n.PluralLower,
	}
}
