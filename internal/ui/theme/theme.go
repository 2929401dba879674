// Package theme holds the colors and styles of the command line output.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestable/internal/strategy"
)

// Color palette, bright enough for a child's terminal but not garish.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// categoryColors gives each learning style its own badge color.
var categoryColors = map[strategy.Category]color.Color{
	strategy.CategoryVisual:      lipgloss.Color("#38BDF8"), // Sky
	strategy.CategoryPattern:     Primary,
	strategy.CategoryCounting:    Secondary,
	strategy.CategoryBreakdown:   Accent,
	strategy.CategoryKinesthetic: lipgloss.Color("#EAB308"), // Yellow
	strategy.CategoryAuditory:    lipgloss.Color("#EC4899"), // Pink
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Concept = lipgloss.NewStyle().
		Foreground(Text).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Card frames an explanation.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(0, 1)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Accent)
)

// Components
var (
	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// CategoryColor returns the badge color of a learning style.
func CategoryColor(c strategy.Category) color.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return TextDim
}

// Badge renders a learning-style label in its color.
func Badge(c strategy.Category) string {
	return lipgloss.NewStyle().
		Foreground(CategoryColor(c)).
		Bold(true).
		Render("[" + string(c) + "]")
}

// AccuracyColor grades an accuracy between 0 and 1.
func AccuracyColor(accuracy float64) color.Color {
	switch {
	case accuracy >= 0.8:
		return Success
	case accuracy >= 0.5:
		return Accent
	default:
		return Error
	}
}
