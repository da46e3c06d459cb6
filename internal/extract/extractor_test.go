package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/psinha/quizforge/internal/llm"
	"github.com/psinha/quizforge/internal/quiz"
)

func chunkJSON(texts ...string) json.RawMessage {
	var qs []map[string]any
	for _, txt := range texts {
		qs = append(qs, map[string]any{
			"text":           txt,
			"type":           "single",
			"options":        []string{"a", "b"},
			"correctIndices": []int{0},
			"explanation":    "because",
		})
	}
	out, _ := json.Marshal(map[string]any{"questions": qs})
	return out
}

func TestRunSingleChunk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: chunkJSON("q1", "q2")})
	ex := New(mock, Options{})

	qs, err := ex.Run(context.Background(), "some short document")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d missing ID", i)
		}
		if err := q.Validate(); err != nil {
			t.Errorf("question %d invalid: %v", i, err)
		}
	}
	if qs[0].ID == qs[1].ID {
		t.Error("question IDs not unique")
	}
}

func TestRunMergesChunksInOrder(t *testing.T) {
	// Three chunks, serial so the FIFO mock maps responses to chunks 1:1.
	text := strings.Repeat("alpha\n", 30) + strings.Repeat("beta\n", 30) + strings.Repeat("gamma\n", 30)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: chunkJSON("from chunk one")},
		llm.MockResponse{Content: chunkJSON("from chunk two")},
		llm.MockResponse{Content: chunkJSON("from chunk three")},
	)
	ex := New(mock, Options{ChunkBudget: 200, Concurrency: 1})

	qs, err := ex.Run(context.Background(), text)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("questions = %d, want 3", len(qs))
	}
	want := []string{"from chunk one", "from chunk two", "from chunk three"}
	for i, q := range qs {
		if q.Text != want[i] {
			t.Errorf("question %d text = %q, want %q", i, q.Text, want[i])
		}
	}
}

func TestRunSkipsFailedChunk(t *testing.T) {
	text := strings.Repeat("alpha\n", 30) + strings.Repeat("beta\n", 30)
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: chunkJSON("survivor")},
	)
	ex := New(mock, Options{ChunkBudget: 200, Concurrency: 1})

	qs, err := ex.Run(context.Background(), text)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 1 || qs[0].Text != "survivor" {
		t.Fatalf("questions = %v, want the one surviving question", qs)
	}
}

func TestRunRepairsTruncatedResponse(t *testing.T) {
	truncated := `{"questions":[{"text":"kept","type":"single","options":["a","b"],"correctIndices":[0],"explanation":"e"},{"text":"cut off mid`
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrMaxTokensExceeded{Content: json.RawMessage(truncated)},
	})
	ex := New(mock, Options{})

	qs, err := ex.Run(context.Background(), "document")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1 recovered from truncation", len(qs))
	}
	if qs[0].Text != "kept" {
		t.Errorf("recovered question text = %q, want %q", qs[0].Text, "kept")
	}
}

func TestRunRepairsFencedResponse(t *testing.T) {
	fenced := "```json\n" + string(chunkJSON("fenced")) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(fenced), Err: fmt.Errorf("not valid JSON")},
	})
	ex := New(mock, Options{})

	qs, err := ex.Run(context.Background(), "document")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 1 || qs[0].Text != "fenced" {
		t.Fatalf("questions = %v, want the fenced question recovered", qs)
	}
}

func TestRunEmptyDocument(t *testing.T) {
	mock := llm.NewMockProvider()
	ex := New(mock, Options{})

	qs, err := ex.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("questions = %d, want 0", len(qs))
	}
	if mock.CallCount() != 0 {
		t.Errorf("calls = %d, want 0 for empty input", mock.CallCount())
	}
}

func TestRunDropsInvalidQuestions(t *testing.T) {
	content, _ := json.Marshal(map[string]any{"questions": []map[string]any{
		{"text": "good", "type": "single", "options": []string{"a", "b"}, "correctIndices": []int{1}, "explanation": "e"},
		{"text": "", "type": "single", "options": []string{"a", "b"}, "correctIndices": []int{0}, "explanation": "e"},
		{"text": "one option", "type": "single", "options": []string{"a"}, "correctIndices": []int{0}, "explanation": "e"},
	}})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	ex := New(mock, Options{})

	qs, err := ex.Run(context.Background(), "document")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(qs) != 1 || qs[0].Text != "good" {
		t.Fatalf("questions = %v, want only the valid one", qs)
	}
	if qs[0].Type != quiz.SingleChoice {
		t.Errorf("type = %q, want single", qs[0].Type)
	}
}
