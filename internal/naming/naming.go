// Package naming derives every casing of a model name used in generated paths and code.
package naming

import (
	"strings"

	"github.com/go-openapi/inflect"
	"github.com/huandu/xstrings"
)

// Names holds the derived forms of one PascalCase singular model name.
type Names struct {
	Model       string // BlogPost
	Plural      string // BlogPosts
	PluralCamel string // blogPosts
	PluralLower string // blogposts
	Lower       string // blogpost
	Variable    string // blogPost
	Kebab       string // blog-post
	Route       string // blog_posts
}

// Derive computes all casings from a model name. It is a pure function of its input.
func Derive(model string) Names {
	// inflect rules only match lower-case words
	plural := inflect.Camelize(inflect.Pluralize(inflect.Underscore(model)))
	return Names{
		Model:       model,
		Plural:      plural,
		PluralCamel: lowerFirst(plural),
		PluralLower: strings.ToLower(plural),
		Lower:       strings.ToLower(model),
		Variable:    lowerFirst(model),
		Kebab:       xstrings.ToKebabCase(model),
		Route:       xstrings.ToSnakeCase(plural),
	}
}

// Label turns a column name into a human label: underscores become spaces and the
// first letter is upper-cased. The rest of the name is left as is.
func Label(column string) string {
	return upperFirst(strings.ReplaceAll(column, "_", " "))
}

func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
