package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/timestable/internal/strategy"
	"github.com/abhisek/timestable/internal/ui/card"
)

var explainCmd = &cobra.Command{
	Use:   "explain <a> <b>",
	Short: "Explain a multiplication fact",
	Long: "Explain picks the teaching strategy for a × b. --attempts rotates through the\n" +
		"suitable strategies the way repeated hint requests do; --profile adapts to the\n" +
		"stored learner statistics.",
	Example: "  timestable explain 9 7\n  timestable explain 7 8 --struggling 7 --attempts 1\n  timestable explain 6 6 --all",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid number %q", args[0])
		}
		b, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number %q", args[1])
		}
		attempts, _ := cmd.Flags().GetInt("attempts")
		struggling, _ := cmd.Flags().GetIntSlice("struggling")
		discovery, _ := cmd.Flags().GetBool("discovery")
		profile, _ := cmd.Flags().GetBool("profile")
		all, _ := cmd.Flags().GetBool("all")
		asJSON, _ := cmd.Flags().GetBool("json")

		in := strategy.Input{A: a, B: b, Attempts: attempts, DiscoveryMode: discovery}
		if profile {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			svc, err := loadLearner(cmd.Context(), s)
			if err != nil {
				return err
			}
			in = svc.SelectorInput(a, b, attempts, discovery)
		}
		if len(struggling) > 0 && in.StrugglingWith == nil {
			in.StrugglingWith = make(map[int]bool, len(struggling))
		}
		for _, n := range struggling {
			in.StrugglingWith[n] = true
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		sel := strategy.New(catalog)

		var exps []*strategy.Explanation
		if all {
			rotation, err := sel.Rotation(in)
			if err != nil {
				return err
			}
			for i := range rotation {
				step := in
				step.Attempts = i
				exp, err := sel.Select(step)
				if err != nil {
					return err
				}
				exps = append(exps, exp)
			}
		} else {
			exp, err := sel.Select(in)
			if err != nil {
				return err
			}
			exps = append(exps, exp)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if all {
				return enc.Encode(exps)
			}
			return enc.Encode(exps[0])
		}

		fact := fmt.Sprintf("%d × %d", a, b)
		for _, exp := range exps {
			lipgloss.Fprintln(out, card.Render(exp, card.Options{
				Fact:  fact,
				Title: sel.DisplayName(exp.Strategy),
			}))
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().IntP("attempts", "a", 0, "Number of hints already shown for this fact")
	explainCmd.Flags().IntSlice("struggling", nil, "Numbers the learner struggles with (e.g. 7,8)")
	explainCmd.Flags().Bool("discovery", false, "Discovery mode: never force the visual array")
	explainCmd.Flags().Bool("profile", false, "Adapt to the stored learner statistics")
	explainCmd.Flags().Bool("all", false, "Show every strategy of the hint rotation")
	explainCmd.Flags().Bool("json", false, "Print JSON instead of a card")
}
