package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/mcqgen/internal/client"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/logger"
	"github.com/abhisek/mcqgen/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz and print it as JSON",
	Example: `  mcqgen generate --subject "History of Rome" --count 3 --provider claude
  mcqgen generate -s "Go channels" --remote`,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		providerTag, _ := cmd.Flags().GetString("provider")
		remote, _ := cmd.Flags().GetBool("remote")

		provider, err := llm.ParseProviderName(providerTag)
		if err != nil {
			return err
		}
		req := quizgen.GenerationRequest{Subject: subject, Count: count, Provider: provider}
		if err := req.Validate(); err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var gen quizgen.Generator
		if remote {
			gen = client.New(cfg.ServerURL, nil)
		} else {
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
			gen = quizgen.New(registry, qcfg, log)
		}

		questions, err := gen.Generate(ctx, req)
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(quizgen.Quiz{Questions: questions})
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringP("subject", "s", "", "Quiz subject (required)")
	f.IntP("count", "n", 5, "Number of questions")
	f.StringP("provider", "P", string(llm.ProviderOpenAI), "LLM provider (openai, claude, gemini, xai)")
	f.Bool("remote", false, "Send the request to the quiz server instead of calling the provider directly")
	f.String("server", "", "Quiz API base URL used with --remote")
	f.Duration("timeout", 0, "Per-request LLM timeout (default: 60s)")
	_ = generateCmd.MarkFlagRequired("subject")
}
