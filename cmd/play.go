package cmd

import (
	"fmt"
	"math/rand"

	"github.com/psinha/quizforge/internal/bank"
	"github.com/psinha/quizforge/internal/exam"
	"github.com/psinha/quizforge/internal/mistakes"
	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [bank-id]",
	Short: "Start or resume an exam session",
	Long: "Starts an exam over a question bank, over the tracked mistakes " +
		"(--mistakes), or resumes a saved session (--resume). The session " +
		"takes its own snapshot of the questions, so later bank edits never " +
		"change a running or saved exam.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		session, resumed, err := buildSession(cmd, args, st)
		if err != nil {
			return err
		}
		if session == nil {
			return nil
		}

		outcome, err := exam.Run(session)
		if err != nil {
			return err
		}

		mistakeSvc := mistakes.NewService(st.MistakeRepo())
		switch outcome {
		case exam.OutcomeSaved:
			if err := st.SessionRepo().Save(ctx, session); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Printf("Session saved. Resume with: quizforge play --resume %s\n", session.ID)
			return nil

		case exam.OutcomeFinished, exam.OutcomeDiscarded:
			// Answered questions count as reviewed either way.
			if err := mistakeSvc.ApplySession(ctx, session, session.Name); err != nil {
				return fmt.Errorf("update mistake records: %w", err)
			}
			if resumed {
				if err := st.SessionRepo().Delete(ctx, session.ID); err != nil {
					return fmt.Errorf("remove saved session: %w", err)
				}
			}
		}

		if outcome == exam.OutcomeFinished {
			correct, answered := session.Score()
			fmt.Printf("Finished %q: %d/%d correct (%d answered)\n",
				session.Name, correct, len(session.Questions), answered)
		}
		return nil
	},
}

// buildSession assembles the session to run from the flags: resume a saved
// one, review tracked mistakes, or snapshot a bank.
func buildSession(cmd *cobra.Command, args []string, st *store.Store) (*quiz.Session, bool, error) {
	ctx := cmd.Context()

	if id, _ := cmd.Flags().GetString("resume"); id != "" {
		session, err := st.SessionRepo().Get(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("load session: %w", err)
		}
		if session == nil {
			return nil, false, fmt.Errorf("no saved session with ID %s", id)
		}
		return session, true, nil
	}

	cfg := sessionConfig(cmd)

	if useMistakes, _ := cmd.Flags().GetBool("mistakes"); useMistakes {
		tracker, err := mistakes.NewService(st.MistakeRepo()).Load(ctx)
		if err != nil {
			return nil, false, err
		}
		questions := tracker.Questions()
		if len(questions) == 0 {
			fmt.Println("No tracked mistakes. Nothing to review.")
			return nil, false, nil
		}
		return newSession(cmd, "Mistake review", questions, cfg), false, nil
	}

	if len(args) == 0 {
		return nil, false, fmt.Errorf("pass a bank ID, or use --mistakes or --resume")
	}

	b, err := bank.NewService(st.BankRepo()).Get(ctx, args[0])
	if err != nil {
		return nil, false, err
	}
	if len(b.Questions) == 0 {
		fmt.Printf("Bank %q has no questions.\n", b.Name)
		return nil, false, nil
	}

	// Copy so the session snapshot never aliases the stored bank.
	questions := make([]quiz.Question, len(b.Questions))
	copy(questions, b.Questions)
	return newSession(cmd, b.Name, questions, cfg), false, nil
}

func newSession(cmd *cobra.Command, name string, questions []quiz.Question, cfg quiz.Config) *quiz.Session {
	if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	if count, _ := cmd.Flags().GetInt("count"); count > 0 && count < len(questions) {
		questions = questions[:count]
	}
	return quiz.NewSession(name, questions, cfg)
}

func sessionConfig(cmd *cobra.Command) quiz.Config {
	minutes, _ := cmd.Flags().GetInt("timer")
	instant, _ := cmd.Flags().GetBool("instant")
	autoSubmit, _ := cmd.Flags().GetBool("auto-submit")

	cfg := quiz.Config{
		InstantFeedback: instant,
		AutoSubmit:      autoSubmit,
	}
	if minutes > 0 {
		cfg.TimerEnabled = true
		cfg.TimeLimitSecs = minutes * 60
	} else if minutes == 0 {
		// Untimed sessions still track elapsed time.
		cfg.TimerEnabled = true
	}
	return cfg
}

func init() {
	playCmd.Flags().Bool("mistakes", false, "Review tracked mistakes instead of a bank")
	playCmd.Flags().String("resume", "", "Resume the saved session with this ID")
	playCmd.Flags().Int("timer", 0, "Time limit in minutes (0 = unlimited)")
	playCmd.Flags().Bool("instant", false, "Show correctness and explanation after each answer")
	playCmd.Flags().Bool("auto-submit", false, "Submit automatically when the timer runs out")
	playCmd.Flags().Bool("shuffle", false, "Shuffle question order")
	playCmd.Flags().Int("count", 0, "Limit the session to the first N questions")
}
