package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/timestable/internal/ui/theme"
)

// minBarWidth keeps very narrow bars readable.
const minBarWidth = 4

// AccuracyBar displays an accuracy as a horizontal bar colored by grade.
type AccuracyBar struct {
	Label    string
	Accuracy float64
	Width    int
}

// View renders the bar followed by the percentage.
func (b AccuracyBar) View() string {
	var out strings.Builder

	if b.Label != "" {
		out.WriteString(theme.Body.Render(b.Label) + "  ")
	}

	barWidth := max(b.Width-lipgloss.Width(out.String())-6, minBarWidth)
	filled := min(max(int(float64(barWidth)*b.Accuracy), 0), barWidth)

	out.WriteString(lipgloss.NewStyle().
		Background(theme.AccuracyColor(b.Accuracy)).
		Render(strings.Repeat(" ", filled)))
	out.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))
	out.WriteString(theme.Subtitle.Render(fmt.Sprintf(" %4d%%", int(b.Accuracy*100+0.5))))

	return out.String()
}
