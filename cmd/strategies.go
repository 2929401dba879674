package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/timestable/internal/strategy"
	"github.com/abhisek/timestable/internal/ui/theme"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the teaching strategies",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		sel := strategy.New(catalog)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-4s  %-22s  %-13s  %s\n", "Rank", "Name", "Style", "Shown as")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, info := range strategy.Vocabulary() {
			lipgloss.Fprintf(out, "%4d  %-22s  %s  %s\n",
				info.Rank,
				info.Name,
				pad(theme.Badge(info.Category), 13),
				sel.DisplayName(info.Name),
			)
		}
		return nil
	},
}

// pad right-pads a styled string to width visible columns.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
