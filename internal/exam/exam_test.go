package exam

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/psinha/quizforge/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func examQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Text: "one", Type: quiz.SingleChoice, Options: []string{"a", "b"}, CorrectIndices: []int{0}},
		{ID: "q2", Text: "two", Type: quiz.SingleChoice, Options: []string{"a", "b"}, CorrectIndices: []int{1}},
	}
}

func TestConfirmAdvancesAndFinishes(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{})
	m := New(s)

	// Answer q1 with option a.
	m.Update(enterKey())
	if !s.Answered("q1") {
		t.Fatal("enter did not confirm the answer")
	}
	if s.Cursor != 1 {
		t.Fatalf("cursor = %d, want advance to 1", s.Cursor)
	}

	// Answer q2 with option b; everything answered finishes the session.
	m.Update(keyPress('j'))
	m.Update(enterKey())
	if s.Status != quiz.StatusFinished {
		t.Errorf("status = %q, want finished once all answered", s.Status)
	}
	if m.Outcome() != OutcomeFinished {
		t.Errorf("outcome = %v, want finished", m.Outcome())
	}

	correct, _ := s.Score()
	if correct != 2 {
		t.Errorf("correct = %d, want 2", correct)
	}
}

func TestNavigationKeepsAnswersLocked(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{})
	m := New(s)

	m.Update(enterKey())      // answer q1
	m.Update(keyPress('p'))   // back to q1
	m.Update(keyPress('j'))   // try to change selection
	m.Update(enterKey())      // try to re-confirm
	if got := s.Answers["q1"]; len(got) != 1 || got[0] != 0 {
		t.Errorf("locked answer changed: %v", got)
	}
}

func TestQuitDialogSave(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{})
	m := New(s)

	m.Update(keyPress('q'))
	if m.phase != phaseQuitConfirm {
		t.Fatalf("phase = %v, want quit confirm", m.phase)
	}
	m.Update(keyPress('s'))
	if m.Outcome() != OutcomeSaved {
		t.Errorf("outcome = %v, want saved", m.Outcome())
	}
	if s.Status != quiz.StatusActive {
		t.Error("saved session should stay active for resumption")
	}
}

func TestQuitDialogCancelReturns(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{})
	m := New(s)

	m.Update(keyPress('q'))
	m.Update(keyPress('c'))
	if m.phase != phaseQuestion {
		t.Errorf("phase = %v, want back at the question", m.phase)
	}
}

func TestTimerTickAutoSubmits(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{TimerEnabled: true, TimeLimitSecs: 1, AutoSubmit: true})
	m := New(s)

	m.Update(timerTickMsg(time.Now()))
	if s.Status != quiz.StatusFinished {
		t.Errorf("status = %q, want auto-submitted", s.Status)
	}
	if m.phase != phaseSummary {
		t.Errorf("phase = %v, want summary", m.phase)
	}
}

func TestInstantFeedbackPhase(t *testing.T) {
	s := quiz.NewSession("exam", examQuestions(), quiz.Config{InstantFeedback: true})
	m := New(s)

	m.Update(enterKey())
	if m.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback after confirm", m.phase)
	}
	m.Update(enterKey())
	if m.phase != phaseQuestion || s.Cursor != 1 {
		t.Errorf("feedback dismissal did not advance: phase=%v cursor=%d", m.phase, s.Cursor)
	}
}
