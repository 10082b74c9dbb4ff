package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	modelNamePattern  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	columnNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// typeAliases folds vendor spellings onto the canonical names used by the type tables.
var typeAliases = map[string]string{
	"int":                         "integer",
	"int4":                        "integer",
	"serial":                      "integer",
	"int8":                        "bigint",
	"bigserial":                   "bigint",
	"int2":                        "smallint",
	"bool":                        "boolean",
	"numeric":                     "decimal",
	"double precision":            "double",
	"float8":                      "double",
	"float4":                      "real",
	"timestamptz":                 "timestamp",
	"timestamp with time zone":    "timestamp",
	"timestamp without time zone": "timestamp",
	"time with time zone":         "time",
	"time without time zone":      "time",
	"character varying":           "varchar",
	"character":                   "char",
}

// Normalize converts raw columns into canonical Columns, 1:1 and in input order.
// Duplicate or malformed names are rejected with ErrInvalidSchema, never merged or dropped.
func Normalize(raw []RawColumn) ([]Column, error) {
	columns := make([]Column, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, rc := range raw {
		name := strings.TrimSpace(rc.Name)
		if !columnNamePattern.MatchString(name) {
			return nil, &SchemaError{
				Column:  rc.Name,
				Message: fmt.Sprintf("column %d is not a valid field identifier", i),
			}
		}
		if _, dup := seen[name]; dup {
			return nil, &SchemaError{Column: name, Message: "duplicate column name"}
		}
		seen[name] = struct{}{}

		columns = append(columns, Column{
			Name:       name,
			SQLType:    CanonicalType(rc.Type),
			IsNullable: rc.Nullable,
		})
	}

	return columns, nil
}

// CanonicalType lower-cases a raw SQL type, drops parameter lists and the unsigned/zerofill
// modifiers, and folds known vendor aliases. Unknown types pass through unchanged.
func CanonicalType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.IndexByte(t, '('); i >= 0 {
		rest := ""
		if j := strings.IndexByte(t[i:], ')'); j >= 0 {
			rest = t[i+j+1:]
		}
		t = t[:i] + rest
	}

	fields := strings.Fields(t)
	kept := fields[:0]
	for _, f := range fields {
		if f == "unsigned" || f == "zerofill" {
			continue
		}
		kept = append(kept, f)
	}
	t = strings.Join(kept, " ")

	if alias, ok := typeAliases[t]; ok {
		return alias
	}
	return t
}
