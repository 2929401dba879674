package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/diagnosis"
	"github.com/abhisek/timestable/internal/problemgen"
	"github.com/abhisek/timestable/internal/session"
	"github.com/abhisek/timestable/internal/strategy"
	"github.com/abhisek/timestable/internal/ui/card"
	"github.com/abhisek/timestable/internal/ui/theme"
)

// diagnosisNotes explain a diagnosed wrong answer to the learner.
var diagnosisNotes = map[diagnosis.ErrorCategory]string{
	diagnosis.CategorySpeedRush:     "That was quick! Take a breath and try the next one slowly.",
	diagnosis.CategoryAddedInstead:  "That is the sum. Times means groups: %d groups of %d.",
	diagnosis.CategoryOffByOneGroup: "Close! You were one group away.",
	diagnosis.CategoryDigitSwap:     "Right digits, wrong order.",
	diagnosis.CategoryCareless:      "You usually get these. Just a slip!",
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice facts with hints on request",
	Long: "Drill asks one fact per round. Type the answer, h for a hint (ask again for\n" +
		"a different strategy) or q to stop. Progress is saved at the end.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rounds, _ := cmd.Flags().GetInt("rounds")
		if !cmd.Flags().Changed("rounds") {
			rounds = cfg.Drill.Rounds
		}
		discovery, _ := cmd.Flags().GetBool("discovery")
		discovery = discovery || cfg.Drill.Discovery

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

		gen := problemgen.NewGenerator(problemgen.Config{
			MaxFactor:    cfg.Drill.MaxFactor,
			Advanced:     cfg.Drill.Advanced,
			StruggleBias: cfg.Drill.StruggleBias,
			RecentWindow: problemgen.DefaultRecentWindow,
		}, nil)

		s, err := session.New(session.Deps{
			Selector:  sel,
			Learner:   svc,
			Generator: gen,
			Events:    st.EventRepo(),
			Logger:    logger,
		}, session.Config{Rounds: rounds, Discovery: discovery})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		runErr := runDrill(cmd, s, sel, bufio.NewScanner(cmd.InOrStdin()), out)

		if err := saveLearner(ctx, st, svc); err != nil {
			return err
		}
		printSummary(out, s.Summary(), sel)
		if errors.Is(runErr, errAborted) {
			return nil
		}
		return runErr
	},
}

func runDrill(cmd *cobra.Command, s *session.Session, sel *strategy.Selector, in *bufio.Scanner, out io.Writer) error {
	ctx := cmd.Context()
	for {
		fact, err := s.Next()
		if errors.Is(err, session.ErrFinished) {
			return nil
		}
		if err != nil {
			return err
		}
		prompt := fmt.Sprintf("Round %d/%d   %s = ? ", s.Round(), s.Rounds(), fact)

		for answered := false; !answered; {
			lipgloss.Fprint(out, theme.Title.Render(prompt))
			if !in.Scan() {
				fmt.Fprintln(out)
				if err := in.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				return errAborted
			}
			line := strings.TrimSpace(in.Text())

			switch strings.ToLower(line) {
			case "q", "quit":
				return errAborted
			case "h", "?", "hint":
				exp, err := s.Hint(ctx)
				if err != nil {
					return err
				}
				lipgloss.Fprintln(out, card.Render(exp, card.Options{
					Fact:  fact.String(),
					Title: sel.DisplayName(exp.Strategy),
				}))
				continue
			}

			fb, err := s.Answer(ctx, line)
			if errors.Is(err, problemgen.ErrNotANumber) {
				lipgloss.Fprintln(out, theme.Subtitle.Render("Type a number, h for a hint or q to stop."))
				continue
			}
			if err != nil {
				return err
			}
			answered = true
			printFeedback(out, fb)
		}
	}
}

func printFeedback(out io.Writer, fb *session.Feedback) {
	if fb.Correct {
		lipgloss.Fprintln(out, theme.Correct.Render("✓ Correct!"))
	} else {
		lipgloss.Fprintln(out, theme.Incorrect.Render(
			fmt.Sprintf("✗ Not quite. %s = %d", fb.Fact, fb.Expected)))
		if fb.Diagnosis != nil {
			if note, ok := diagnosisNotes[fb.Diagnosis.Category]; ok {
				if strings.Contains(note, "%d") {
					note = fmt.Sprintf(note, fb.Fact.A, fb.Fact.B)
				}
				lipgloss.Fprintln(out, theme.Subtitle.Render(note))
			}
		}
	}
	for _, t := range fb.Transitions {
		if t.Struggling {
			lipgloss.Fprintln(out, theme.Warning.Render(
				fmt.Sprintf("We'll practice more facts with %d.", t.Number)))
		} else {
			lipgloss.Fprintln(out, theme.Correct.Render(
				fmt.Sprintf("Great work, %d is not tricky anymore!", t.Number)))
		}
	}
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, sum *session.Summary, sel *strategy.Selector) {
	if sum.Questions == 0 {
		return
	}
	lipgloss.Fprintln(out, theme.Title.Render("Drill summary"))
	fmt.Fprintf(out, "Correct:    %d of %d (%d%%)\n", sum.Correct, sum.Questions, int(sum.Accuracy*100+0.5))
	fmt.Fprintf(out, "Hints:      %d\n", sum.HintsUsed)
	fmt.Fprintf(out, "Time:       %s\n", sum.Duration.Round(time.Second))
	if len(sum.Strategies) > 0 {
		fmt.Fprintln(out, "Strategies:")
		for _, r := range sum.Strategies {
			lipgloss.Fprintf(out, "  %-28s %s  shown %d, helped %d\n",
				sel.DisplayName(r.Strategy), theme.Badge(r.Category), r.Hints, r.Successes)
		}
	}
	if len(sum.Struggling) > 0 {
		fmt.Fprintf(out, "Keep practicing: %s\n", joinInts(sum.Struggling))
	}
	logger.Debug("drill finished", zap.String("session", sum.SessionID), zap.Int("questions", sum.Questions))
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

func init() {
	drillCmd.Flags().IntP("rounds", "r", 10, "Number of facts to ask (default from drill.rounds)")
	drillCmd.Flags().Bool("discovery", false, "Discovery mode: never force the visual array")
}
