// Package generate runs one model through every artifact kind and writes the results.
package generate

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudgen/internal/codegen"
	"github.com/okra-platform/crudgen/internal/codegen/typemap"
	"github.com/okra-platform/crudgen/internal/codegen/writer"
	"github.com/okra-platform/crudgen/internal/schema"
)

// Entry is the outcome for one artifact. Status is meaningful only when Err is nil.
type Entry struct {
	Kind   codegen.Kind
	Path   string
	Status writer.Status
	Err    error
}

// String formats the entry as a status line
func (e Entry) String() string {
	if e.Err != nil {
		return fmt.Sprintf("failed: %s (%v)", e.Path, e.Err)
	}
	return writer.Result{Path: e.Path, Status: e.Status}.String()
}

// Report collects the outcomes of one invocation, in generation order
type Report struct {
	Model   string
	Entries []Entry
}

// Written returns how many files were written
func (r *Report) Written() int {
	return r.count(func(e Entry) bool { return e.Err == nil && e.Status == writer.StatusWritten })
}

// Skipped returns how many existing files were left untouched
func (r *Report) Skipped() int {
	return r.count(func(e Entry) bool { return e.Err == nil && e.Status == writer.StatusSkipped })
}

// Failed returns how many artifacts could not be composed or written
func (r *Report) Failed() int {
	return r.count(func(e Entry) bool { return e.Err != nil })
}

// Err joins every artifact failure, or returns nil
func (r *Report) Err() error {
	var errs []error
	for _, e := range r.Entries {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errors.Join(errs...)
}

func (r *Report) count(match func(Entry) bool) int {
	n := 0
	for _, e := range r.Entries {
		if match(e) {
			n++
		}
	}
	return n
}

// Generator drives the composer and the writer for one model at a time
type Generator struct {
	composer *codegen.Composer
	writer   *writer.Writer
	layout   writer.Layout
	logger   zerolog.Logger
}

// NewGenerator creates a generator
func NewGenerator(composer *codegen.Composer, w *writer.Writer, layout writer.Layout, logger zerolog.Logger) *Generator {
	return &Generator{
		composer: composer,
		writer:   w,
		layout:   layout,
		logger:   logger.With().Str("component", "generator").Logger(),
	}
}

// Generate validates raw and produces every artifact kind in order. An invalid schema
// aborts before anything is written; a failing artifact is recorded in the report and
// does not stop its siblings. Files already written stay on disk.
func (g *Generator) Generate(raw schema.RawModel, policy writer.Policy) (*Report, error) {
	m, err := schema.NewModel(raw)
	if err != nil {
		return nil, err
	}

	g.warnUnmappedTypes(m)

	report := &Report{Model: m.Name()}
	for _, kind := range g.composer.Kinds() {
		report.Entries = append(report.Entries, g.generateArtifact(m, kind, policy))
	}

	g.logger.Info().
		Str("model", m.Name()).
		Int("written", report.Written()).
		Int("skipped", report.Skipped()).
		Int("failed", report.Failed()).
		Msg("generation finished")

	return report, nil
}

func (g *Generator) generateArtifact(m *schema.Model, kind codegen.Kind, policy writer.Policy) Entry {
	entry := Entry{Kind: kind}

	path, err := g.layout.Path(kind, m.Names())
	if err != nil {
		entry.Err = &codegen.ArtifactError{Model: m.Name(), Kind: kind, Cause: err}
		g.logFailure(entry)
		return entry
	}
	entry.Path = path

	artifact, err := g.composer.Compose(m, kind)
	if err != nil {
		entry.Err = err
		g.logFailure(entry)
		return entry
	}

	res, err := g.writer.Write(path, artifact.Content, policy)
	if err != nil {
		entry.Err = &codegen.ArtifactError{Model: m.Name(), Kind: kind, Cause: err}
		g.logFailure(entry)
		return entry
	}

	entry.Status = res.Status
	return entry
}

func (g *Generator) logFailure(e Entry) {
	g.logger.Error().Err(e.Err).Str("kind", string(e.Kind)).Str("path", e.Path).Msg("artifact failed")
}

// warnUnmappedTypes logs columns whose SQL type falls back to the string mapping
func (g *Generator) warnUnmappedTypes(m *schema.Model) {
	for _, col := range m.Columns() {
		if !typemap.Known(col.SQLType) {
			g.logger.Warn().
				Str("model", m.Name()).
				Str("column", col.Name).
				Str("type", col.SQLType).
				Msg("unknown column type, mapping as string")
		}
	}
}
