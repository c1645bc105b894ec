package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fwr/quizgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizgen",
	Short: "LLM quiz content generation pipeline",
	Long: "Quizgen generates validated multiple-choice question pools for the\n" +
		"skills-assessment platform: a generator model drafts each career/level\n" +
		"pool, a critic model repairs failures, and validated pools are\n" +
		"deduplicated, selected and exported in the production quiz schema.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(cmd)
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZGEN_DB env var)")
	rootCmd.PersistentFlags().String("data-dir", "", "Output directory for pools and exports (overrides QUIZGEN_DATA_DIR)")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file to load before running")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkpointCmd)
	rootCmd.AddCommand(sectorsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadEnvFile loads the --env-file if given, otherwise a .env in the
// working directory when present.
func loadEnvFile(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
	}
	return nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDataDir returns the output directory using --data-dir, then
// QUIZGEN_DATA_DIR, then ./data.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("data-dir")
	if dir == "" {
		dir = os.Getenv("QUIZGEN_DATA_DIR")
	}
	if dir == "" {
		dir = "data"
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving data dir: %w", err)
	}
	return abs, os.MkdirAll(abs, 0o755)
}
