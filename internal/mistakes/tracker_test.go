package mistakes

import (
	"testing"

	"github.com/psinha/quizforge/internal/quiz"
)

func q(id string) quiz.Question {
	return quiz.Question{
		ID:             id,
		Text:           "question " + id,
		Type:           quiz.SingleChoice,
		Options:        []string{"a", "b"},
		CorrectIndices: []int{0},
		Explanation:    "e",
	}
}

func TestWrongAnswerEntersTracker(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record(q("1"), false, "bank")

	if !tr.Tracked("1") {
		t.Fatal("question not tracked after wrong answer")
	}
	if got := tr.Streak("1"); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
	if !tr.Dirty() {
		t.Error("tracker not dirty after change")
	}
}

func TestCorrectAnswerOnUntrackedIsNoop(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record(q("1"), true, "bank")

	if tr.Len() != 0 {
		t.Errorf("len = %d, want 0", tr.Len())
	}
	if tr.Dirty() {
		t.Error("tracker dirty after no-op")
	}
}

func TestGraduationAfterMastery(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record(q("1"), false, "bank")

	for i := 0; i < MasteryThreshold-1; i++ {
		tr.Record(q("1"), true, "bank")
		if !tr.Tracked("1") {
			t.Fatalf("graduated after %d correct, want %d", i+1, MasteryThreshold)
		}
	}

	tr.Record(q("1"), true, "bank")
	if tr.Tracked("1") {
		t.Error("question still tracked after reaching mastery")
	}
}

func TestWrongAnswerResetsStreak(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record(q("1"), false, "bank")
	tr.Record(q("1"), true, "bank")
	tr.Record(q("1"), true, "bank")
	tr.Record(q("1"), false, "bank")

	if got := tr.Streak("1"); got != 0 {
		t.Errorf("streak after reset = %d, want 0", got)
	}

	// Mastery now needs the full run again.
	tr.Record(q("1"), true, "bank")
	tr.Record(q("1"), true, "bank")
	if !tr.Tracked("1") {
		t.Fatal("graduated early after reset")
	}
	tr.Record(q("1"), true, "bank")
	if tr.Tracked("1") {
		t.Error("not graduated after full run post-reset")
	}
}

func TestLoadedRecordsContinueStreak(t *testing.T) {
	tr := NewTracker([]Record{{Question: q("1"), ConsecutiveCorrect: MasteryThreshold - 1}})
	tr.Record(q("1"), true, "bank")

	if tr.Tracked("1") {
		t.Error("persisted streak did not count toward mastery")
	}
}

func TestApplySessionSkipsUnanswered(t *testing.T) {
	questions := []quiz.Question{q("1"), q("2"), q("3")}
	s := quiz.NewSession("s", questions, quiz.Config{})
	if err := s.Confirm("1", []int{1}); err != nil { // wrong
		t.Fatal(err)
	}
	if err := s.Confirm("2", []int{0}); err != nil { // correct
		t.Fatal(err)
	}
	// "3" left unanswered.
	s.Finish()

	tr := NewTracker(nil)
	tr.ApplySession(s, "bank")

	if !tr.Tracked("1") {
		t.Error("wrong answer not tracked")
	}
	if tr.Tracked("2") {
		t.Error("correct untracked answer entered tracker")
	}
	if tr.Tracked("3") {
		t.Error("unanswered question entered tracker")
	}
}

func TestApplySessionAdvancesTrackedQuestions(t *testing.T) {
	questions := []quiz.Question{q("1")}
	tr := NewTracker([]Record{{Question: q("1"), ConsecutiveCorrect: 1}})

	s := quiz.NewSession("review", questions, quiz.Config{})
	if err := s.Confirm("1", []int{0}); err != nil {
		t.Fatal(err)
	}
	s.Finish()
	tr.ApplySession(s, "bank")

	if got := tr.Streak("1"); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestRecordsOrderAndQuestions(t *testing.T) {
	tr := NewTracker(nil)
	tr.Record(q("1"), false, "bank")
	tr.Record(q("2"), false, "bank")

	recs := tr.Records()
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	qs := tr.Questions()
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	for _, qq := range qs {
		if err := qq.Validate(); err != nil {
			t.Errorf("question %s invalid: %v", qq.ID, err)
		}
	}
}
