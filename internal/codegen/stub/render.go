// Package stub renders plain-text stubs with "{{ name }}" placeholders and loads them from
// a layered set of file systems.
package stub

import (
	"sort"
	"strings"
)

// Token returns the placeholder token for name as it appears in a stub
func Token(name string) string {
	return "{{ " + name + " }}"
}

// Render replaces every exact "{{ name }}" token whose name is in placeholders with the mapped
// value. Tokens without a mapping are left verbatim, and substituted values are never
// rescanned, so a value containing a token cannot expand further.
func Render(src string, placeholders map[string]string) string {
	if len(placeholders) == 0 {
		return src
	}

	names := make([]string, 0, len(placeholders))
	for name := range placeholders {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, Token(name), placeholders[name])
	}

	return strings.NewReplacer(pairs...).Replace(src)
}
