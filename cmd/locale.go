package cmd

import (
	"errors"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/llm"
	"github.com/abhisek/timestable/internal/locale"
	"github.com/abhisek/timestable/internal/ui/theme"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Manage explanation catalogs",
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := locale.NewRegistry(cfg.Locale.Dir, logger)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-8s  %-16s  %-8s  %s\n", "Locale", "Name", "Version", "Source")
		for _, e := range reg.List() {
			marker := " "
			if e.Locale == cfg.Locale.Lang {
				marker = "*"
			}
			fmt.Fprintf(out, "%s%-7s  %-16s  %-8s  %s\n", marker, e.Locale, e.Name, e.Version, e.Source)
		}
		return nil
	},
}

var localeCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a catalog file against the built-in templates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := locale.LoadFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		issues := locale.Check(c)
		printIssues(cmd, issues)
		if locale.HasErrors(issues) {
			return fmt.Errorf("%s: catalog has errors", args[0])
		}
		fmt.Fprintf(out, "%s: %s catalog %s is usable (%d templates, %d warnings)\n",
			args[0], c.Locale, c.Version, len(c.Templates), len(issues))
		return nil
	},
}

var localeDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a new catalog with an LLM",
	Long: "Draft translates every built-in template with the configured LLM provider\n" +
		"(see TIMESTABLE_LLM_PROVIDER) and writes a catalog for review.",
	Example: "  timestable locale draft --lang fr --name Français --out ~/.config/timestable/locales/fr.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")
		name, _ := cmd.Flags().GetString("name")
		outPath, _ := cmd.Flags().GetString("out")
		if name == "" {
			name = lang
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, llmCfg, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo(), logger)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		logger.Info("drafting catalog", zap.String("lang", lang), zap.String("provider", llmCfg.Provider))

		c, issues, err := locale.Draft(cmd.Context(), provider, lang, name)
		printIssues(cmd, issues)
		if err != nil && !errors.Is(err, locale.ErrDraftRejected) {
			return err
		}
		if c == nil {
			return err
		}

		w := cmd.OutOrStdout()
		if outPath != "" {
			f, ferr := os.Create(outPath)
			if ferr != nil {
				return ferr
			}
			defer f.Close()
			w = f
		}
		if werr := c.WriteYAML(w); werr != nil {
			return werr
		}
		if outPath != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", outPath)
		}
		// A rejected draft is still written for manual fixing.
		return err
	},
}

func printIssues(cmd *cobra.Command, issues []locale.Issue) {
	out := cmd.ErrOrStderr()
	for _, i := range issues {
		style := theme.Warning
		if i.Severity == locale.SeverityError {
			style = theme.Incorrect
		}
		lipgloss.Fprintln(out, style.Render(i.String()))
	}
}

func init() {
	localeDraftCmd.Flags().String("lang", "", "Locale tag of the new catalog (e.g. fr, pt-BR)")
	localeDraftCmd.Flags().String("name", "", "Display name of the language")
	localeDraftCmd.Flags().StringP("out", "o", "", "Write the catalog to a file instead of stdout")
	_ = localeDraftCmd.MarkFlagRequired("lang")

	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeCheckCmd)
	localeCmd.AddCommand(localeDraftCmd)
}
