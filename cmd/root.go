package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/pathplanner/internal/advisor"
	"github.com/abhisek/pathplanner/internal/catalog"
	"github.com/abhisek/pathplanner/internal/llm"
	"github.com/abhisek/pathplanner/internal/progress"
	"github.com/abhisek/pathplanner/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathplanner",
		Short: "Weekly study roadmaps with progress tracking",
		Long: "PathPlanner turns a study goal into a week-by-week roadmap, " +
			"tracks which topics you have finished and cheers you on.",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides PATHPLANNER_DB env var)")
	flags.String("progress", "", "Keep progress in this JSON file instead of the database")
	flags.String("catalog", "", "Load tracks and topics from this YAML file")
	flags.String("log-level", "", "Log level: debug, info, warn, error (default warn, or PATHPLANNER_LOG_LEVEL)")
	flags.String("log-file", "", "Also write JSON logs to this rotating file (or PATHPLANNER_LOG_FILE)")

	root.AddCommand(
		newPlanCmd(),
		newProgressCmd(),
		newTracksCmd(),
		newBreakdownCmd(),
		newAskCmd(),
		newResourcesCmd(),
		newLLMCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHPLANNER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
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
	return s, nil
}

// newLogger builds a console logger on the command's stderr, teed to a
// rotating JSON file when --log-file is set.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	if raw == "" {
		raw = os.Getenv("PATHPLANNER_LOG_LEVEL")
	}
	level := zapcore.WarnLevel
	if raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level,
	)

	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("PATHPLANNER_LOG_FILE")
	}
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), file, level))
	}
	return zap.New(core), nil
}

func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// openTracker loads progress from the JSON file named by --progress, or
// from the database. A store that cannot be read is replaced by an empty
// one. An unreadable file is moved to *.bak before the first save; an
// unreadable database is never overwritten.
func openTracker(ctx context.Context, cmd *cobra.Command, db *store.Store, logger *zap.Logger) *progress.Tracker {
	var repo progress.Repo = db.ProgressRepo()
	file := ""
	if path, _ := cmd.Flags().GetString("progress"); path != "" {
		file = path
		repo = progress.NewFileRepo(path)
	}

	t, err := progress.Open(ctx, repo)
	if err == nil {
		return t
	}
	logger.Warn("progress unreadable, starting empty", zap.Error(err))
	if file != "" {
		return progress.NewTracker(&backupOnSave{FileRepo: progress.NewFileRepo(file), logger: logger}, nil)
	}
	return progress.NewTracker(refuseSave{Repo: repo, cause: err}, nil)
}

// backupOnSave moves the unreadable file aside before its first save.
type backupOnSave struct {
	*progress.FileRepo
	logger   *zap.Logger
	backedUp bool
}

func (r *backupOnSave) Save(ctx context.Context, s progress.Store) error {
	if !r.backedUp {
		bak, err := r.Backup()
		if err != nil {
			return err
		}
		if bak != "" {
			r.logger.Warn("unreadable progress file kept as backup", zap.String("path", bak))
		}
		r.backedUp = true
	}
	return r.FileRepo.Save(ctx, s)
}

// refuseSave keeps a store that failed to load from being replaced.
type refuseSave struct {
	progress.Repo
	cause error
}

func (r refuseSave) Save(context.Context, progress.Store) error {
	return fmt.Errorf("progress store could not be read, not overwriting it: %w", r.cause)
}

func newAdvisor(ctx context.Context, db *store.Store, logger *zap.Logger) (*advisor.Service, error) {
	provider, err := llm.NewProviderFromEnv(ctx, db.EventRepo(), logger)
	if err != nil {
		return nil, fmt.Errorf("set up llm provider: %w", err)
	}
	return advisor.NewService(provider, advisor.DefaultConfig(), logger), nil
}

// plainOutput reports whether output should carry no ANSI styling.
func plainOutput(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return true
	}
	info, err := f.Stat()
	return err != nil || info.Mode()&os.ModeCharDevice == 0
}
