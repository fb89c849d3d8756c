package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/mcqgen/internal/app"
	"github.com/abhisek/mcqgen/internal/client"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/logger"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/abhisek/mcqgen/internal/screens/play"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("server", "", "Quiz API base URL (default: http://localhost:3000)")
	cmd.Flags().Bool("local", false, "Call LLM providers directly instead of a running server")
	cmd.Flags().Duration("timeout", 0, "Per-request LLM timeout in local mode (default: 60s)")
}

// runPlay launches the terminal client against a server or, with --local,
// an in-process generation service.
func runPlay(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	local, _ := cmd.Flags().GetBool("local")
	if !local {
		c := client.New(cfg.ServerURL, nil)

		hctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := c.Health(hctx); err != nil {
			if errors.Is(err, client.ErrServiceUnavailable) {
				return fmt.Errorf("no quiz server at %s (start one with `mcqgen serve` or pass --local): %w",
					c.BaseURL(), err)
			}
			return fmt.Errorf("check quiz server: %w", err)
		}

		return app.Run(ctx, c, app.Options{Options: play.Options{Context: ctx}})
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	// Log lines would corrupt the alternate screen.
	log := logger.Discard()

	registry, err := llm.NewRegistry(ctx, cfg.LLM, st.EventRepo(), log)
	if err != nil {
		return fmt.Errorf("build LLM providers: %w", err)
	}

	configured := cfg.LLM.Configured()
	if len(configured) == 0 {
		fmt.Fprintln(os.Stderr, "No LLM provider API key found. Set OPENAI_API_KEY, ANTHROPIC_API_KEY, GEMINI_API_KEY or XAI_API_KEY.")
	}

	qcfg := quizgen.DefaultConfig()
	if cfg.LLM.Timeout > 0 {
		qcfg.Timeout = cfg.LLM.Timeout
	}
	gen := quizgen.New(registry, qcfg, log)

	return app.Run(ctx, gen, app.Options{Options: play.Options{
		Configured: configured,
		Context:    ctx,
	}})
}
