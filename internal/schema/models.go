package schema

import (
	"errors"

	"github.com/okra-platform/crudgen/internal/naming"
)

// RawColumn is one column as reported by schema introspection, in table order.
type RawColumn struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Nullable bool   `yaml:"nullable" json:"nullable"`
}

// RawModel is the introspection output for a single model.
type RawModel struct {
	Name    string      `yaml:"name" json:"name"`
	Columns []RawColumn `yaml:"columns" json:"columns"`
}

// Column is the canonical, normalized form of a RawColumn.
type Column struct {
	Name       string
	SQLType    string
	IsNullable bool
}

// Model is a validated model with its ordered columns and the casings derived from its name.
// Build it with NewModel; the zero value is not usable.
type Model struct {
	name    string
	columns []Column
	names   naming.Names
}

// Name returns the PascalCase singular model name
func (m *Model) Name() string {
	return m.name
}

// Columns returns a copy of the model's columns in table order
func (m *Model) Columns() []Column {
	out := make([]Column, len(m.columns))
	copy(out, m.columns)
	return out
}

// Names returns the casings derived from the model name
func (m *Model) Names() naming.Names {
	return m.names
}

// NewModel validates raw introspection output and builds a Model.
// Every derived casing is computed here once; nothing downstream re-derives them.
func NewModel(raw RawModel) (*Model, error) {
	if raw.Name == "" {
		return nil, &SchemaError{Message: "model name is empty"}
	}
	if !modelNamePattern.MatchString(raw.Name) {
		return nil, &SchemaError{Model: raw.Name, Message: "model name must be a PascalCase identifier"}
	}

	columns, err := Normalize(raw.Columns)
	if err != nil {
		var se *SchemaError
		if errors.As(err, &se) {
			se.Model = raw.Name
		}
		return nil, err
	}

	return &Model{
		name:    raw.Name,
		columns: columns,
		names:   naming.Derive(raw.Name),
	}, nil
}
