package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/timestable/internal/config"
	"github.com/abhisek/timestable/internal/learner"
	"github.com/abhisek/timestable/internal/locale"
	"github.com/abhisek/timestable/internal/logging"
	"github.com/abhisek/timestable/internal/store"
)

// snapshotsKept is how many learner snapshots survive a save.
const snapshotsKept = 20

var rootCmd = &cobra.Command{
	Use:   "timestable",
	Short: "Multiplication tutor that adapts how it explains",
	Long: "timestable helps children learn their times tables. Each hint picks a teaching\n" +
		"strategy for the fact at hand and adapts to what has worked for the learner.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logging.Sync(logger)
		}
	},
}

// Set up by setup before any command runs.
var (
	cfg    *config.Config
	logger *zap.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides TIMESTABLE_CONFIG)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides db.path)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(localeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		c.Log.Level = "debug"
	}
	l, err := logging.New(c.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	cfg, logger = c, l
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then db.path from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil && cfg.DB.Path != "" {
		return cfg.DB.Path, store.EnsureDir(cfg.DB.Path)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", dbPath))
	return s, nil
}

// loadCatalog returns the catalog for the configured locale.
func loadCatalog() (*locale.Catalog, error) {
	reg, err := locale.NewRegistry(cfg.Locale.Dir, logger)
	if err != nil {
		return nil, err
	}
	c, err := reg.Get(cfg.Locale.Lang)
	if err != nil {
		return nil, fmt.Errorf("locale.lang: %w", err)
	}
	return c, nil
}

func learnerConfig() learner.Config {
	return learner.Config{
		StruggleThreshold: cfg.Learner.StruggleThreshold,
		RecoveryStreak:    cfg.Learner.RecoveryStreak,
	}
}

// loadLearner restores the learner statistics from the latest snapshot.
func loadLearner(ctx context.Context, s *store.Store) (*learner.Service, error) {
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load learner snapshot: %w", err)
	}
	var data *learner.Snapshot
	if snap != nil {
		data = snap.Data.Learner
	}
	return learner.NewService(data, learnerConfig()), nil
}

// saveLearner stores a new snapshot and prunes old ones.
func saveLearner(ctx context.Context, s *store.Store, svc *learner.Service) error {
	repo := s.SnapshotRepo()
	err := repo.Save(ctx, &store.Snapshot{
		Data: store.SnapshotData{Version: 1, Learner: svc.Snapshot()},
	})
	if err != nil {
		return fmt.Errorf("save learner snapshot: %w", err)
	}
	if err := repo.Prune(ctx, snapshotsKept); err != nil {
		logger.Warn("failed to prune snapshots", zap.Error(err))
	}
	return nil
}

var errAborted = errors.New("aborted")
