package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/psinha/quizforge/internal/bank"
	"github.com/psinha/quizforge/internal/extract"
	"github.com/psinha/quizforge/internal/llm"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract questions from a document into a new bank",
	Long: "Reads a plain-text or markdown document, sends it to the configured " +
		"AI provider in chunks and saves the extracted questions as a question bank.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		name, _ := cmd.Flags().GetString("name")
		budget, _ := cmd.Flags().GetInt("chunk-size")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		text := string(raw)
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("document %s is empty", args[0])
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		// Credential check happens here, before any chunk is sent.
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure AI provider: %w", err)
		}

		ctx = llm.WithPurpose(ctx, "extraction")
		ex := extract.New(provider, extract.Options{
			ChunkBudget: budget,
			Concurrency: concurrency,
		})

		fmt.Printf("Extracting questions from %s with %s...\n", args[0], provider.ModelID())
		questions, err := ex.Run(ctx, text)
		if err != nil {
			return fmt.Errorf("extract questions: %w", err)
		}
		if len(questions) == 0 {
			fmt.Println("No questions found in the document.")
			return nil
		}

		if name == "" {
			base := filepath.Base(args[0])
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}

		b, err := bank.NewService(st.BankRepo()).Create(ctx, name, questions)
		if err != nil {
			return err
		}

		fmt.Printf("Saved %d questions to bank %q (%s)\n", len(questions), b.Name, b.ID)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringP("name", "n", "", "Name for the new bank (defaults to the file name)")
	extractCmd.Flags().Int("chunk-size", 0, "Maximum characters per extraction chunk")
	extractCmd.Flags().Int("concurrency", 0, "Number of chunks processed in parallel")
}
