package cmd

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/timestable/internal/strategy"
	"github.com/abhisek/timestable/internal/ui/components"
	"github.com/abhisek/timestable/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc, err := loadLearner(ctx, st)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		sel := strategy.New(catalog)
		out := cmd.OutOrStdout()

		rows := svc.Summaries()
		if len(rows) == 0 {
			fmt.Fprintln(out, "No answers recorded yet. Start with: timestable drill")
			return nil
		}

		lipgloss.Fprintln(out, theme.Title.Render("Accuracy by number"))
		for _, r := range rows {
			label := fmt.Sprintf("%3d", r.Number)
			if r.Struggling {
				label += theme.Warning.Render(" *")
			} else {
				label += "  "
			}
			bar := components.AccuracyBar{Label: label, Accuracy: r.Record.Accuracy(), Width: 48}
			lipgloss.Fprintf(out, "%s  %d/%d\n", bar.View(), r.Record.Correct, r.Record.Attempts)
		}
		if nums := svc.Stats().StrugglingNumbers(); len(nums) > 0 {
			lipgloss.Fprintln(out, theme.Warning.Render("* struggling: "+joinInts(nums)))
		}

		stats := svc.Stats()
		if len(stats.StyleSuccess) > 0 {
			fmt.Fprintln(out)
			lipgloss.Fprintln(out, theme.Title.Render("Learning styles that helped"))
			for _, c := range strategy.Categories() {
				if n := stats.StyleSuccess[c]; n > 0 {
					lipgloss.Fprintf(out, "  %s %d\n", pad(theme.Badge(c), 14), n)
				}
			}
		}

		counts, err := st.EventRepo().StrategyHintCounts(ctx)
		if err != nil {
			return fmt.Errorf("query hint counts: %w", err)
		}
		if len(counts) > 0 {
			fmt.Fprintln(out)
			lipgloss.Fprintln(out, theme.Title.Render("Hints"))
			fmt.Fprintf(out, "  %-30s  %6s  %7s\n", "Strategy", "Shown", "Helped")
			fmt.Fprintln(out, "  "+strings.Repeat("─", 47))
			sort.SliceStable(counts, func(i, j int) bool { return counts[i].Hints > counts[j].Hints })
			for _, c := range counts {
				fmt.Fprintf(out, "  %-30s  %6d  %7d\n",
					truncate(sel.DisplayName(strategy.Name(c.Strategy)), 30), c.Hints, c.Successes)
			}
		}
		return nil
	},
}
