// Package phrase renders the `{name}` placeholder templates shared by the
// strategy engine and the locale catalogs.
package phrase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Params maps placeholder names to values. Values are rendered with fmt.Sprint.
type Params map[string]any

var placeholderRe = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Render substitutes every `{name}` in tmpl with params[name].
// Placeholders without a matching param are left untouched so callers
// can detect them with Unresolved.
func Render(tmpl string, params Params) string {
	if len(params) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}

// Placeholders returns the sorted, de-duplicated placeholder names used in tmpl.
func Placeholders(tmpl string) []string {
	matches := placeholderRe.FindAllStringSubmatch(tmpl, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	sort.Strings(out)
	return out
}

// Unresolved reports whether s still contains a placeholder.
func Unresolved(s string) bool {
	return placeholderRe.MatchString(s)
}
