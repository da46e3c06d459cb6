package quiz

import (
	"encoding/json"
	"testing"
)

func testQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "one", Type: SingleChoice, Options: []string{"a", "b"}, CorrectIndices: []int{0}},
		{ID: "q2", Text: "two", Type: MultipleChoice, Options: []string{"a", "b", "c"}, CorrectIndices: []int{0, 2}},
		{ID: "q3", Text: "three", Type: TrueFalse, Options: []string{"true", "false"}, CorrectIndices: []int{1}},
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{TimerEnabled: true, TimeLimitSecs: 300})

	if s.ID == "" {
		t.Error("session has no ID")
	}
	if s.Status != StatusActive {
		t.Errorf("status = %q, want active", s.Status)
	}
	if s.RemainingSecs != 300 {
		t.Errorf("remaining = %d, want 300", s.RemainingSecs)
	}
	if s.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor)
	}
}

func TestConfirmLocksAnswer(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})

	if err := s.Confirm("q1", []int{1}); err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if err := s.Confirm("q1", []int{0}); err != ErrAlreadyAnswered {
		t.Fatalf("second confirm err = %v, want ErrAlreadyAnswered", err)
	}
	// Original answer stands.
	if got := s.Answers["q1"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("answer = %v, want [1]", got)
	}
}

func TestConfirmUnknownQuestion(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})
	if err := s.Confirm("nope", []int{0}); err != ErrUnknownQuestion {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
	if len(s.Answers) != 0 {
		t.Error("answer map gained an entry for an unknown question")
	}
}

func TestConfirmOnFinishedSession(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})
	s.Finish()
	if err := s.Confirm("q1", []int{0}); err != ErrNotActive {
		t.Errorf("err = %v, want ErrNotActive", err)
	}
}

func TestConfirmNormalizesSelection(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})
	if err := s.Confirm("q2", []int{2, 0, 2}); err != nil {
		t.Fatal(err)
	}
	got := s.Answers["q2"]
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("answer = %v, want [0 2]", got)
	}
	if !s.IsCorrect("q2") {
		t.Error("normalized multi-answer not scored correct")
	}
}

func TestNavigation(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})

	if s.Prev() {
		t.Error("Prev succeeded at the first question")
	}
	if !s.Next() || s.Cursor != 1 {
		t.Errorf("Next: cursor = %d, want 1", s.Cursor)
	}
	if !s.Jump(2) || s.Cursor != 2 {
		t.Errorf("Jump: cursor = %d, want 2", s.Cursor)
	}
	if s.Next() {
		t.Error("Next succeeded at the last question")
	}
	if s.Jump(5) || s.Jump(-1) {
		t.Error("Jump accepted an out-of-range index")
	}
}

func TestTickCountdownHaltsAtZero(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{TimerEnabled: true, TimeLimitSecs: 2})

	s.Tick()
	s.Tick()
	if s.RemainingSecs != 0 {
		t.Fatalf("remaining = %d, want 0", s.RemainingSecs)
	}
	if !s.Expired() {
		t.Error("session not expired at zero")
	}
	if s.Status != StatusActive {
		t.Error("session finished without auto-submit")
	}

	// Further ticks never run the clock negative and answering still works.
	s.Tick()
	if s.RemainingSecs != 0 {
		t.Errorf("remaining = %d after extra tick, want 0", s.RemainingSecs)
	}
	if err := s.Confirm("q1", []int{0}); err != nil {
		t.Errorf("confirm after expiry: %v", err)
	}
}

func TestTickAutoSubmit(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{TimerEnabled: true, TimeLimitSecs: 1, AutoSubmit: true})

	s.Tick()
	if s.Status != StatusFinished {
		t.Errorf("status = %q, want finished after auto-submit", s.Status)
	}
}

func TestTickUnlimitedTracksElapsed(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{TimerEnabled: true})

	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.ElapsedSecs != 5 {
		t.Errorf("elapsed = %d, want 5", s.ElapsedSecs)
	}
	if s.Expired() {
		t.Error("unlimited session reported expired")
	}
}

func TestTickIgnoredWhenTimerDisabled(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})
	s.Tick()
	if s.ElapsedSecs != 0 {
		t.Errorf("elapsed = %d with timer disabled, want 0", s.ElapsedSecs)
	}
}

func TestScore(t *testing.T) {
	s := NewSession("test", testQuestions(), Config{})
	if err := s.Confirm("q1", []int{0}); err != nil { // correct
		t.Fatal(err)
	}
	if err := s.Confirm("q2", []int{1}); err != nil { // wrong
		t.Fatal(err)
	}

	correct, answered := s.Score()
	if correct != 1 || answered != 2 {
		t.Errorf("score = %d/%d, want 1/2", correct, answered)
	}
	if s.AllAnswered() {
		t.Error("AllAnswered true with one question open")
	}
	if s.IsCorrect("q3") {
		t.Error("unanswered question scored correct")
	}
}

func TestSessionRoundTripsThroughJSON(t *testing.T) {
	s := NewSession("resume me", testQuestions(), Config{TimerEnabled: true, TimeLimitSecs: 600, InstantFeedback: true})
	if err := s.Confirm("q1", []int{0}); err != nil {
		t.Fatal(err)
	}
	s.Next()
	s.Tick()

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back Session
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}

	if back.Cursor != s.Cursor || back.RemainingSecs != s.RemainingSecs || back.Status != s.Status {
		t.Error("restored session lost position, clock or status")
	}
	if !back.Answered("q1") {
		t.Error("restored session lost the confirmed answer")
	}
	if err := back.Confirm("q1", []int{1}); err != ErrAlreadyAnswered {
		t.Error("restored session allowed re-answering a locked question")
	}
}
