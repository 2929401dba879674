// Package card renders a strategy explanation as a framed card for the
// terminal.
package card

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestable/internal/strategy"
	"github.com/abhisek/timestable/internal/ui/theme"
)

// DefaultWidth is the card width when Options leaves it unset.
const DefaultWidth = 64

// Options controls the card header and size.
type Options struct {
	// Fact is shown in the header, e.g. "9 × 7".
	Fact string
	// Title is the localized strategy name. The canonical name is used
	// when empty.
	Title string
	// Labels for the optional sections. English defaults when empty.
	PatternLabel   string
	MnemonicLabel  string
	RealWorldLabel string
	Width          int
}

func (o Options) withDefaults(exp *strategy.Explanation) Options {
	if o.Title == "" {
		o.Title = string(exp.Strategy)
	}
	if o.PatternLabel == "" {
		o.PatternLabel = "Pattern"
	}
	if o.MnemonicLabel == "" {
		o.MnemonicLabel = "Remember"
	}
	if o.RealWorldLabel == "" {
		o.RealWorldLabel = "In real life"
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// Render lays out the header, the concept, numbered steps, the dot grid
// if any and the optional sections.
func Render(exp *strategy.Explanation, opts Options) string {
	opts = opts.withDefaults(exp)
	// Border and padding take four columns.
	inner := max(opts.Width-4, 20)
	text := lipgloss.NewStyle().Width(inner)

	header := theme.Title.Render(opts.Title) + " " + theme.Badge(strategy.Classify(exp.Strategy))
	if opts.Fact != "" {
		header = theme.Title.Render(opts.Fact) + theme.Subtitle.Render("  ·  ") + header
	}

	parts := []string{header}
	if exp.Concept != "" {
		parts = append(parts, theme.Concept.Width(inner).Render(exp.Concept))
	}
	parts = append(parts, "")

	numWidth := len(fmt.Sprint(len(exp.Steps)))
	for i, step := range exp.Steps {
		num := theme.Label.Render(fmt.Sprintf("%*d.", numWidth, i+1))
		body := text.Width(inner - numWidth - 2).Render(step)
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, num+" ", body))
	}

	if exp.Visual != "" {
		parts = append(parts, "", theme.Body.Render(strings.TrimRight(exp.Visual, "\n")))
	}

	for _, extra := range []struct{ label, value string }{
		{opts.PatternLabel, exp.Pattern},
		{opts.MnemonicLabel, exp.Mnemonic},
		{opts.RealWorldLabel, exp.RealWorld},
	} {
		if extra.value == "" {
			continue
		}
		parts = append(parts, "", text.Render(theme.Label.Render(extra.label+": ")+theme.Body.Render(extra.value)))
	}

	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
