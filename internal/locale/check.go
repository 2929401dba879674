package locale

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/abhisek/timestable/internal/phrase"
	"github.com/abhisek/timestable/internal/strategy"
)

// Severity grades a catalog issue.
type Severity string

const (
	// SeverityError marks text that would render wrongly.
	SeverityError Severity = "error"
	// SeverityWarning marks a gap covered by the default template.
	SeverityWarning Severity = "warning"
)

// Issue is one finding of Check.
type Issue struct {
	Severity Severity `json:"severity"`
	Key      string   `json:"key"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Key, i.Message)
}

// Check compares c against the engine's default templates. Unknown keys
// and placeholders the engine never supplies are errors; missing keys and
// dropped placeholders are warnings. Issues are sorted by key.
func Check(c *Catalog) []Issue {
	defaults := strategy.DefaultTemplates()
	var issues []Issue

	for key, text := range c.Templates {
		def, ok := defaults[key]
		if !ok {
			issues = append(issues, Issue{SeverityError, key, "unknown template key"})
			continue
		}
		want := phrase.Placeholders(def)
		got := phrase.Placeholders(text)
		if extra := difference(got, want); len(extra) > 0 {
			issues = append(issues, Issue{SeverityError, key,
				"unknown placeholders " + braced(extra)})
		}
		if missing := difference(want, got); len(missing) > 0 {
			issues = append(issues, Issue{SeverityWarning, key,
				"does not use placeholders " + braced(missing)})
		}
	}
	for key := range defaults {
		if _, ok := c.Templates[key]; !ok {
			issues = append(issues, Issue{SeverityWarning, key, "missing, the default template is used"})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Key != issues[j].Key {
			return issues[i].Key < issues[j].Key
		}
		return issues[i].Severity < issues[j].Severity
	})
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	return slices.ContainsFunc(issues, func(i Issue) bool { return i.Severity == SeverityError })
}

// difference returns the elements of a not in b. Both are sorted.
func difference(a, b []string) []string {
	var out []string
	for _, s := range a {
		if _, found := slices.BinarySearch(b, s); !found {
			out = append(out, s)
		}
	}
	return out
}

func braced(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "{" + n + "}"
	}
	return strings.Join(parts, ", ")
}
