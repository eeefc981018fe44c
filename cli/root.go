package cli

import (
	"context"
	"log/slog"
	"os"

	"tesla-notes/app"
	"tesla-notes/config"
	"tesla-notes/config/setup"
	"tesla-notes/database"

	"github.com/spf13/cobra"
)

// session is the state shared by every subcommand once the store is open
type session struct {
	dbPath string
	cfg    *config.Config
	logger *slog.Logger
	db     *database.DB
	app    *app.App
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	s := &session{}
	err := newRootCommand(s).ExecuteContext(ctx)
	return s.finish(err)
}

func newRootCommand(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tesla-notes",
		Short: "Memos and daily plans backed by SQLite",
		Long: `tesla-notes keeps short memos and per-day plans in a single SQLite file.

Run "tesla-notes serve" for the JSON API, or use the memo, plan and export
commands to work with the same store from the shell. Every command prints JSON.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.dbPath, "db", "", "SQLite database path (overrides DB_PATH)")

	rootCmd.AddCommand(newServeCommand(s))
	rootCmd.AddCommand(newMemoCommand(s))
	rootCmd.AddCommand(newPlanCommand(s))
	rootCmd.AddCommand(newExportCommand(s))

	return rootCmd
}

func (s *session) open(cmd *cobra.Command) error {
	s.cfg = config.Load()
	if cmd.Flags().Changed("db") {
		s.cfg.DBPath = s.dbPath
	}

	s.logger = setupLogger(s.cfg)
	slog.SetDefault(s.logger)

	db, err := setup.InitDatabase(s.cfg.DBPath, s.logger)
	if err != nil {
		s.logger.Error("failed to open database", "path", s.cfg.DBPath, "error", err)
		return err
	}

	s.db = db
	s.app = setup.InitApp(db, s.logger)
	return nil
}

// finish closes the store after a command. A close failure is logged and
// returned unless the command itself already failed.
func (s *session) finish(runErr error) error {
	closeErr := s.close()
	if closeErr == nil {
		return runErr
	}

	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Error("failed to close database", "error", closeErr)

	if runErr != nil {
		return runErr
	}
	return closeErr
}

func (s *session) close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(cfg.LogLevel),
		AddSource: cfg.Env == "development",
	}

	// stdout carries command output
	if cfg.Env == "production" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func getLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
