package exam

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var content string
	switch m.phase {
	case phaseSummary:
		content = m.summaryView()
	case phaseQuitConfirm:
		content = m.dialogView("Leave this session?",
			"[s] save for later   [d] discard   [c] keep going")
	case phaseFinishConfirm:
		unanswered := len(m.session.Questions) - len(m.session.Answers)
		content = m.dialogView(
			fmt.Sprintf("%d question(s) still unanswered. Submit anyway?", unanswered),
			"[y] submit   [n] back")
	case phaseJump:
		content = m.questionView() + "\n" +
			theme.Body.Render("Go to question: ") + m.jump.View()
	default:
		content = m.questionView()
	}

	v.SetContent(content)
	return v
}

func (m *Model) headerView() string {
	pos := fmt.Sprintf("Question %d of %d", m.session.Cursor+1, len(m.session.Questions))
	header := theme.Title.Render(m.session.Name) + "  " + theme.Subtitle.Render(pos)

	if m.session.Config.TimerEnabled {
		var clock string
		if m.session.Config.TimeLimitSecs > 0 {
			style := theme.Timer
			if m.session.RemainingSecs <= 60 {
				style = theme.TimerLow
			}
			clock = style.Render("⏱ " + formatClock(m.session.RemainingSecs))
			if m.session.Expired() {
				clock = theme.TimerLow.Render("⏱ time's up")
			}
		} else {
			clock = theme.Timer.Render("⏱ " + formatClock(m.session.ElapsedSecs))
		}
		header += "  " + clock
	}
	return header
}

func (m *Model) questionView() string {
	q := m.session.Current()
	if q == nil {
		return theme.Subtitle.Render("This session has no questions.")
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Text))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(typeLabel(q.Type)))
	b.WriteString("\n\n")

	reveal := m.session.Config.InstantFeedback || m.session.Status == quiz.StatusFinished
	b.WriteString(m.options.View(reveal))

	if m.phase == phaseFeedback {
		b.WriteString("\n")
		if m.session.IsCorrect(q.ID) {
			b.WriteString(theme.Correct.Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render("Incorrect."))
		}
		if q.Explanation != "" {
			b.WriteString("\n" + theme.Body.Render(q.Explanation))
		}
		b.WriteString("\n\n" + theme.Hint.Render("enter: next question"))
	} else {
		hints := "↑↓ move  enter confirm"
		if q.Type == quiz.MultipleChoice {
			hints = "↑↓ move  space toggle  enter confirm"
		}
		b.WriteString("\n" + theme.Footer.Render(hints+"  n/p navigate  g goto  f finish  q quit"))
	}
	return b.String()
}

func (m *Model) dialogView(title, choices string) string {
	body := theme.Body.Bold(true).Render(title) + "\n\n" + theme.Hint.Render(choices)
	return theme.Card.Render(body)
}

func (m *Model) summaryView() string {
	correct, answered := m.session.Score()
	total := len(m.session.Questions)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Score: %d / %d correct (%d answered)", correct, total, answered)))
	b.WriteString("\n\n")

	for i := range m.session.Questions {
		q := m.session.Questions[i]
		mark := theme.Subtitle.Render("–")
		if m.session.Answered(q.ID) {
			if m.session.IsCorrect(q.ID) {
				mark = theme.Correct.Render("✓")
			} else {
				mark = theme.Incorrect.Render("✗")
			}
		}
		line := fmt.Sprintf("%s %2d. %s", mark, i+1, truncateText(q.Text, 70))
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("q: exit"))
	return b.String()
}

func typeLabel(t quiz.QuestionType) string {
	switch t {
	case quiz.MultipleChoice:
		return "(multiple choice)"
	case quiz.TrueFalse:
		return "(true / false)"
	default:
		return "(single choice)"
	}
}

func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func truncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
