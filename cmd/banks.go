package cmd

import (
	"fmt"
	"strings"

	"github.com/psinha/quizforge/internal/bank"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Manage question banks",
}

var banksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List question banks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		banks, err := bank.NewService(st.BankRepo()).List(cmd.Context())
		if err != nil {
			return err
		}
		if len(banks) == 0 {
			fmt.Println("No question banks yet. Run `quizforge extract <file>` to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-30s  %9s  %s\n", "ID", "Name", "Questions", "Created")
		fmt.Println(strings.Repeat("─", 96))
		for _, b := range banks {
			fmt.Printf("%-36s  %-30s  %9d  %s\n",
				b.ID, truncate(b.Name, 30), len(b.Questions),
				b.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var banksShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a bank's questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		b, err := bank.NewService(st.BankRepo()).Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s — %d questions\n\n", b.Name, len(b.Questions))
		for i, q := range b.Questions {
			fmt.Printf("%2d. [%s] %s\n", i+1, q.Type, q.Text)
			for j, opt := range q.Options {
				marker := "  "
				for _, c := range q.CorrectIndices {
					if c == j {
						marker = "✓ "
					}
				}
				fmt.Printf("      %s%s\n", marker, opt)
			}
		}
		return nil
	},
}

var banksRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a question bank",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := bank.NewService(st.BankRepo()).Rename(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("Renamed.")
		return nil
	},
}

var banksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a question bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := bank.NewService(st.BankRepo()).Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted. Saved sessions keep their own question snapshots.")
		return nil
	},
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func init() {
	banksCmd.AddCommand(banksListCmd)
	banksCmd.AddCommand(banksShowCmd)
	banksCmd.AddCommand(banksRenameCmd)
	banksCmd.AddCommand(banksDeleteCmd)
}
