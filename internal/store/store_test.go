package store

import (
	"context"
	"testing"
	"time"

	"github.com/psinha/quizforge/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Text: "one", Type: quiz.SingleChoice, Options: []string{"a", "b"}, CorrectIndices: []int{0}, Explanation: "e"},
		{ID: "q2", Text: "two", Type: quiz.MultipleChoice, Options: []string{"a", "b", "c"}, CorrectIndices: []int{0, 2}},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestBankRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.BankRepo()
	ctx := context.Background()

	if got, err := repo.Get(ctx, "missing"); err != nil || got != nil {
		t.Fatalf("get missing = (%v, %v), want (nil, nil)", got, err)
	}

	b := &BankData{
		ID:        "bank-1",
		Name:      "biology",
		CreatedAt: time.Now(),
		Questions: sampleQuestions(),
	}
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "bank-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "biology" || len(got.Questions) != 2 {
		t.Fatalf("get returned %+v", got)
	}
	if got.Questions[1].CorrectIndices[1] != 2 {
		t.Error("question JSON did not round-trip")
	}

	if err := repo.Rename(ctx, "bank-1", "cell biology"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ = repo.Get(ctx, "bank-1")
	if got.Name != "cell biology" {
		t.Errorf("name after rename = %q", got.Name)
	}

	banks, err := repo.List(ctx)
	if err != nil || len(banks) != 1 {
		t.Fatalf("list = (%d, %v), want 1 bank", len(banks), err)
	}

	if err := repo.Delete(ctx, "bank-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.Get(ctx, "bank-1"); got != nil {
		t.Error("bank still present after delete")
	}
}

func TestSessionRepoUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	session := quiz.NewSession("midterm", sampleQuestions(), quiz.Config{TimerEnabled: true, TimeLimitSecs: 600})
	if err := session.Confirm("q1", []int{0}); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Second save with progress is an update, not a duplicate.
	session.Next()
	session.Tick()
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("sessions = %d, want 1 after upsert", len(all))
	}

	got, err := repo.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Cursor != 1 || !got.Answered("q1") {
		t.Errorf("restored session lost progress: cursor=%d answers=%v", got.Cursor, got.Answers)
	}
	if got.Config.TimeLimitSecs != 600 {
		t.Errorf("config did not round-trip: %+v", got.Config)
	}

	if err := repo.Delete(ctx, session.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := repo.Get(ctx, session.ID); got != nil {
		t.Error("session still present after delete")
	}
}

func TestMistakeRepoReplaceAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.MistakeRepo()
	ctx := context.Background()

	qs := sampleQuestions()
	records := []MistakeData{
		{QuestionID: "q1", Question: qs[0], ConsecutiveCorrect: 1, LastReviewedAt: time.Now(), BankName: "biology"},
		{QuestionID: "q2", Question: qs[1], LastReviewedAt: time.Now().Add(-time.Hour), BankName: "biology"},
	}
	if err := repo.ReplaceAll(ctx, records); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[0].QuestionID != "q1" {
		t.Errorf("records not ordered by last review: first is %s", got[0].QuestionID)
	}

	// Wholesale replacement drops records absent from the new set.
	if err := repo.ReplaceAll(ctx, records[:1]); err != nil {
		t.Fatalf("replace smaller set: %v", err)
	}
	got, _ = repo.List(ctx)
	if len(got) != 1 || got[0].QuestionID != "q1" {
		t.Fatalf("records after shrink = %+v", got)
	}

	if err := repo.ReplaceAll(ctx, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got, _ := repo.List(ctx); len(got) != 0 {
		t.Error("records remain after clearing")
	}
}

func TestEventRepoSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary (empty): %v", err)
	}
	if sum.Requests != 0 {
		t.Fatalf("requests = %d on empty log", sum.Requests)
	}

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "extraction", InputTokens: 100, OutputTokens: 40, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "extraction", InputTokens: 50, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	sum, err = repo.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Requests != 2 || sum.Failures != 1 {
		t.Errorf("summary = %+v, want 2 requests, 1 failure", sum)
	}
	if sum.InputTokens != 150 || sum.OutputTokens != 40 {
		t.Errorf("token totals = %d/%d, want 150/40", sum.InputTokens, sum.OutputTokens)
	}
}
