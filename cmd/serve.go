package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/logger"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		registry, err := llm.NewRegistry(ctx, cfg.LLM, st.EventRepo(), log)
		if err != nil {
			return fmt.Errorf("build LLM providers: %w", err)
		}

		qcfg := quizgen.DefaultConfig()
		if cfg.LLM.Timeout > 0 {
			qcfg.Timeout = cfg.LLM.Timeout
		}

		srv := server.New(server.Options{
			Addr:           cfg.Addr(),
			GinMode:        cfg.GinMode,
			AllowedOrigins: cfg.AllowedOrigins,
		}, quizgen.New(registry, qcfg, log), log)

		configured := make([]string, 0, len(llm.AllProviders()))
		for _, p := range cfg.LLM.Configured() {
			configured = append(configured, string(p))
		}
		log.Info().
			Str("addr", cfg.Addr()).
			Strs("providers", configured).
			Msg("Starting quiz API")

		if err := srv.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Server stopped")
			return err
		}
		log.Info().Msg("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 3000, "Port to listen on (overrides PORT env var)")
	serveCmd.Flags().Duration("timeout", 0, "Per-request LLM timeout (default: 60s)")
}
