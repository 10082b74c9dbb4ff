// Package typemap maps canonical SQL column types onto TypeScript types, default values and
// form input kinds. Every mapping is a lookup table with an explicit fallback, so an
// unrecognized vendor type degrades to a string/text column instead of failing generation.
package typemap

// DisplayKind is the primitive family a column's value belongs to
type DisplayKind string

const (
	Numeric DisplayKind = "numeric"
	Boolean DisplayKind = "boolean"
	String  DisplayKind = "string"
)

// InputKind is the form widget used for a column
type InputKind string

const (
	InputNumber   InputKind = "number"
	InputDate     InputKind = "date"
	InputDateTime InputKind = "datetime-local"
	InputTime     InputKind = "time"
	InputEmail    InputKind = "email"
	InputText     InputKind = "text"
	// InputLongText is rendered as a multi-line textarea rather than an <Input type=...>.
	InputLongText InputKind = "textarea"
)

var displayKinds = map[string]DisplayKind{
	"integer":   Numeric,
	"bigint":    Numeric,
	"smallint":  Numeric,
	"tinyint":   Numeric,
	"mediumint": Numeric,
	"decimal":   Numeric,
	"float":     Numeric,
	"double":    Numeric,
	"real":      Numeric,
	"boolean":   Boolean,
}

var defaultValues = map[DisplayKind]string{
	Numeric: "0",
	Boolean: "false",
	String:  "''",
}

var inputKinds = map[string]InputKind{
	"integer":    InputNumber,
	"bigint":     InputNumber,
	"smallint":   InputNumber,
	"tinyint":    InputNumber,
	"mediumint":  InputNumber,
	"decimal":    InputNumber,
	"float":      InputNumber,
	"double":     InputNumber,
	"real":       InputNumber,
	"date":       InputDate,
	"datetime":   InputDateTime,
	"timestamp":  InputDateTime,
	"time":       InputTime,
	"email":      InputEmail,
	"text":       InputLongText,
	"mediumtext": InputLongText,
	"longtext":   InputLongText,
}

var typeExpressions = map[string]string{
	"integer":   "number",
	"bigint":    "number",
	"smallint":  "number",
	"tinyint":   "number",
	"mediumint": "number",
	"decimal":   "number",
	"float":     "number",
	"double":    "number",
	"real":      "number",
	"boolean":   "boolean",
	"date":      "string",
	"datetime":  "string",
	"timestamp": "string",
	"time":      "string",
	"json":      "Record<string, any>",
	"jsonb":     "Record<string, any>",
	"array":     "any[]",
}

// ToDisplayKind returns the primitive family of sqlType, String when unknown
func ToDisplayKind(sqlType string) DisplayKind {
	if k, ok := displayKinds[sqlType]; ok {
		return k
	}
	return String
}

// DefaultValue returns the TypeScript literal a fresh form field starts with
func DefaultValue(sqlType string) string {
	return defaultValues[ToDisplayKind(sqlType)]
}

// ToInputKind returns the form widget for sqlType, InputText when unknown
func ToInputKind(sqlType string) InputKind {
	if k, ok := inputKinds[sqlType]; ok {
		return k
	}
	return InputText
}

// ToTypeExpression returns the TypeScript type of a column. Nullability wraps the base
// expression in a union with null; it is never a separate table entry.
func ToTypeExpression(sqlType string, nullable bool) string {
	base, ok := typeExpressions[sqlType]
	if !ok {
		base = "string"
	}
	if nullable {
		return base + " | null"
	}
	return base
}

// Known reports whether sqlType has an entry in any table. Callers use it to warn about
// columns that fall back to the string mapping.
func Known(sqlType string) bool {
	if _, ok := typeExpressions[sqlType]; ok {
		return true
	}
	if _, ok := inputKinds[sqlType]; ok {
		return true
	}
	switch sqlType {
	case "string", "varchar", "char", "uuid", "enum":
		return true
	}
	return false
}
