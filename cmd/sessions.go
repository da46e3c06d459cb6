package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage saved exam sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No saved sessions.")
			return nil
		}

		fmt.Printf("%-36s  %-24s  %8s  %8s  %s\n", "ID", "Name", "Answered", "Status", "Updated")
		fmt.Println(strings.Repeat("─", 96))
		for _, s := range sessions {
			fmt.Printf("%-36s  %-24s  %3d/%-4d  %8s  %s\n",
				s.ID, truncate(s.Name, 24),
				len(s.Answers), len(s.Questions),
				s.Status, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Println("\nResume one with: quizforge play --resume <id>")
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved session",
	Long: "Deletes a saved session without scoring it. Its answered questions " +
		"still count as reviewed for the mistake tracker.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session, err := st.SessionRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("no saved session with ID %s", args[0])
		}

		// Discarding closes the session: feed its answers to the tracker.
		if err := mistakesServiceFor(st).ApplySession(ctx, session, session.Name); err != nil {
			return fmt.Errorf("update mistake records: %w", err)
		}
		if err := st.SessionRepo().Delete(ctx, session.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}
