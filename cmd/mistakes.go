package cmd

import (
	"fmt"
	"strings"

	"github.com/psinha/quizforge/internal/mistakes"
	"github.com/psinha/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "Inspect the mistake tracker",
}

var mistakesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		tracker, err := mistakesServiceFor(st).Load(cmd.Context())
		if err != nil {
			return err
		}
		records := tracker.Records()
		if len(records) == 0 {
			fmt.Println("No tracked mistakes. Nice work.")
			return nil
		}

		fmt.Printf("%d question(s) in review. %d correct answers in a row graduate a question.\n\n",
			len(records), mistakes.MasteryThreshold)
		fmt.Printf("%-50s  %-16s  %6s  %s\n", "Question", "Bank", "Streak", "Last reviewed")
		fmt.Println(strings.Repeat("─", 96))
		for _, r := range records {
			fmt.Printf("%-50s  %-16s  %3d/%-2d  %s\n",
				truncate(r.Question.Text, 50),
				truncate(r.BankName, 16),
				r.ConsecutiveCorrect, mistakes.MasteryThreshold,
				r.LastReviewedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Println("\nReview them with: quizforge play --mistakes")
		return nil
	},
}

var mistakesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := mistakesServiceFor(st).Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Mistake tracker cleared.")
		return nil
	},
}

func mistakesServiceFor(st *store.Store) *mistakes.Service {
	return mistakes.NewService(st.MistakeRepo())
}

func init() {
	mistakesCmd.AddCommand(mistakesListCmd)
	mistakesCmd.AddCommand(mistakesClearCmd)
}
