package codegen

import (
	"github.com/okra-platform/crudgen/internal/codegen/typemap"
	"github.com/okra-platform/crudgen/internal/naming"
	"github.com/okra-platform/crudgen/internal/schema"
)

const (
	typeDefTemplate     = "typescript/type.d.ts"
	columnsTemplate     = "inertia-react/components/columns.tsx"
	typeFieldFragment   = "typescript/fragments/field.d.ts"
	columnFragment      = "inertia-react/fragments/column.tsx"
	detailFieldFragment = "inertia-react/fragments/detail-field.tsx"
	formDefaultFragment = "inertia-react/fragments/form-default.tsx"
	fromModelFragment   = "inertia-react/fragments/form-from-model.tsx"
	inputFragment       = "inertia-react/fragments/input.tsx"
	textareaFragment    = "inertia-react/fragments/textarea.tsx"
)

// Every persisted entity carries these, whether or not introspection reported them.
// An introspected column of the same name takes the synthetic column's place in the type
// definition; forms never bind them.
var (
	leadingSystemColumns  = []schema.Column{{Name: "id", SQLType: "integer"}}
	trailingSystemColumns = []schema.Column{
		{Name: "created_at", SQLType: "timestamp"},
		{Name: "updated_at", SQLType: "timestamp"},
	}
)

func buildTypeDef(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	reported := make(map[string]schema.Column)
	for _, col := range m.Columns() {
		if isSystemColumn(col.Name) {
			reported[col.Name] = col
		}
	}
	withReported := func(cols []schema.Column) []schema.Column {
		out := make([]schema.Column, 0, len(cols))
		for _, col := range cols {
			if r, ok := reported[col.Name]; ok {
				col = r
			}
			out = append(out, col)
		}
		return out
	}

	columns := make([]schema.Column, 0, len(m.Columns())+3)
	columns = append(columns, withReported(leadingSystemColumns)...)
	columns = append(columns, userColumns(m)...)
	columns = append(columns, withReported(trailingSystemColumns)...)

	fields, err := c.renderFragments(columns, func(col schema.Column) (string, map[string]string) {
		return typeFieldFragment, map[string]string{
			"name": col.Name,
			"type": typemap.ToTypeExpression(col.SQLType, col.IsNullable),
		}
	})
	if err != nil {
		return ArtifactSpec{}, err
	}

	placeholders := scalars(m)
	placeholders["fields"] = fields
	return ArtifactSpec{Kind: KindTypeDef, TemplateID: typeDefTemplate, Placeholders: placeholders}, nil
}

func buildListPage(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	return ArtifactSpec{Kind: KindListPage, TemplateID: c.pageTemplate("index"), Placeholders: scalars(m)}, nil
}

func buildDetailPage(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	variable := m.Names().Variable
	fieldList, err := c.renderFragments(m.Columns(), func(col schema.Column) (string, map[string]string) {
		return detailFieldFragment, map[string]string{
			"name":          col.Name,
			"label":         naming.Label(col.Name),
			"modelVariable": variable,
		}
	})
	if err != nil {
		return ArtifactSpec{}, err
	}

	placeholders := scalars(m)
	placeholders["fieldList"] = fieldList
	return ArtifactSpec{Kind: KindDetailPage, TemplateID: c.pageTemplate("show"), Placeholders: placeholders}, nil
}

func buildListColumns(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	definitions, err := c.renderFragments(m.Columns(), func(col schema.Column) (string, map[string]string) {
		return columnFragment, map[string]string{
			"name":  col.Name,
			"label": naming.Label(col.Name),
		}
	})
	if err != nil {
		return ArtifactSpec{}, err
	}

	placeholders := scalars(m)
	placeholders["columnDefinitions"] = definitions
	return ArtifactSpec{Kind: KindListColumns, TemplateID: columnsTemplate, Placeholders: placeholders}, nil
}

func buildCreateForm(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	placeholders, err := c.formPlaceholders(m)
	if err != nil {
		return ArtifactSpec{}, err
	}
	return ArtifactSpec{Kind: KindCreateForm, TemplateID: c.pageTemplate("create"), Placeholders: placeholders}, nil
}

func buildEditForm(c *Composer, m *schema.Model) (ArtifactSpec, error) {
	placeholders, err := c.formPlaceholders(m)
	if err != nil {
		return ArtifactSpec{}, err
	}

	variable := m.Names().Variable
	fromModel, err := c.renderFragments(userColumns(m), func(col schema.Column) (string, map[string]string) {
		return fromModelFragment, map[string]string{
			"name":          col.Name,
			"modelVariable": variable,
		}
	})
	if err != nil {
		return ArtifactSpec{}, err
	}

	placeholders["formFieldsFromModel"] = fromModel
	return ArtifactSpec{Kind: KindEditForm, TemplateID: c.pageTemplate("edit"), Placeholders: placeholders}, nil
}

// formPlaceholders renders the default-value lines and input blocks shared by both forms
func (c *Composer) formPlaceholders(m *schema.Model) (map[string]string, error) {
	columns := userColumns(m)

	fields, err := c.renderFragments(columns, func(col schema.Column) (string, map[string]string) {
		return formDefaultFragment, map[string]string{
			"name":    col.Name,
			"default": typemap.DefaultValue(col.SQLType),
		}
	})
	if err != nil {
		return nil, err
	}

	inputs, err := c.renderFragments(columns, func(col schema.Column) (string, map[string]string) {
		kind := typemap.ToInputKind(col.SQLType)
		id := inputFragment
		if kind == typemap.InputLongText {
			id = textareaFragment
		}
		return id, map[string]string{
			"name":      col.Name,
			"label":     naming.Label(col.Name),
			"inputType": string(kind),
		}
	})
	if err != nil {
		return nil, err
	}

	placeholders := scalars(m)
	placeholders["formFields"] = fields
	placeholders["formInputs"] = inputs
	return placeholders, nil
}

// userColumns returns the model's columns without the system columns, in order
func userColumns(m *schema.Model) []schema.Column {
	var out []schema.Column
	for _, col := range m.Columns() {
		if !isSystemColumn(col.Name) {
			out = append(out, col)
		}
	}
	return out
}

func isSystemColumn(name string) bool {
	for _, cols := range [][]schema.Column{leadingSystemColumns, trailingSystemColumns} {
		for _, col := range cols {
			if col.Name == name {
				return true
			}
		}
	}
	return false
}
