package cmd

import (
	"fmt"

	"github.com/psinha/quizforge/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the AI provider configuration and usage",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model are configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No AI provider configured.")
				fmt.Println("Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY,")
				fmt.Println("or use the QUIZFORGE_LLM_* variables for full control.")
				return nil
			}
			cfg = discovered
			fmt.Println("Provider discovered from standard key variables.")
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:    %s\n", cfg.Gemini.Model)
		case "openai":
			fmt.Printf("Model:    %s\n", cfg.OpenAI.Model)
		case "anthropic":
			fmt.Printf("Model:    %s\n", cfg.Anthropic.Model)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sum, err := st.EventRepo().Summary(cmd.Context())
		if err != nil {
			return err
		}
		if sum.Requests == 0 {
			fmt.Println("No AI usage recorded yet.")
			return nil
		}

		fmt.Printf("Requests:      %d (%d failed)\n", sum.Requests, sum.Failures)
		fmt.Printf("Input tokens:  %d\n", sum.InputTokens)
		fmt.Printf("Output tokens: %d\n", sum.OutputTokens)
		fmt.Printf("Total tokens:  %d\n", sum.InputTokens+sum.OutputTokens)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
