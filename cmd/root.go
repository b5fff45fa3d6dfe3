package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mockround/internal/config"
	"github.com/abhisek/mockround/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mockround",
	Short: "Adaptive mock technical interviews in the terminal",
	Long: "mockround runs a timed technical interview that adapts question difficulty to the\n" +
		"candidate's answers, scores every response and ends with a readiness report.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file")
	pf.String("db", "", "Path to SQLite database file (overrides MOCKROUND_DB env var)")
	pf.String("env-file", "", "Path to a .env file (default .env if present)")
	pf.String("log-file", "", "Write logs to this file instead of stderr")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	addSessionFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings layers defaults, the config file, the .env file and
// MOCKROUND_* variables. Command flags are applied by the caller.
func loadSettings(cmd *cobra.Command) (config.File, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnv(envFile); err != nil {
		return config.File{}, err
	}

	f := config.DefaultFile()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.File{}, err
		}
		f = loaded
	}
	if err := f.ApplyEnv(); err != nil {
		return config.File{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		f.DB = p
	}
	return f, nil
}

// newLogger builds the text logger. When quiet is set and no log file is
// given, logs are discarded so they cannot tear the TUI.
func newLogger(cmd *cobra.Command, quiet bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
	}
	if quiet {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
}

// openStore resolves the archive path from settings and opens it.
func openStore(f config.File) (*store.Store, error) {
	dbPath, err := store.ResolveDBPath(f.DB)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
