package cmd

import (
	"fmt"

	"github.com/abhisek/mcqgen/internal/config"
	"github.com/abhisek/mcqgen/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcqgen",
	Short: "AI multiple-choice quiz generator",
	Long: "mcqgen generates multiple-choice quizzes on any subject with OpenAI, Claude, Gemini or xAI.\n" +
		"Run it without a subcommand to take a quiz in the terminal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default: ./mcqgen.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides MCQGEN_DB env var)")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", "auto", "Log format (json, pretty, auto)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the configuration for cmd, letting its flags override
// the environment and the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{
		ConfigFile: file,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openStore opens the audit database from --db / MCQGEN_DB, falling back to
// the default XDG path.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	} else {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
