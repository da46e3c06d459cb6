package store

import (
	"context"
	"time"

	"github.com/psinha/quizforge/internal/quiz"
)

// BankData is the persisted form of a question bank.
type BankData struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Questions []quiz.Question
}

// BankRepo manages the question bank namespace.
type BankRepo interface {
	// Save stores a new bank.
	Save(ctx context.Context, b *BankData) error

	// Get returns the bank with the given ID, or nil when absent.
	Get(ctx context.Context, id string) (*BankData, error)

	// List returns all banks, newest first.
	List(ctx context.Context) ([]*BankData, error)

	// Rename updates the display name.
	Rename(ctx context.Context, id, name string) error

	// Delete removes the bank.
	Delete(ctx context.Context, id string) error
}

// SessionRepo manages saved exam sessions. Save is an upsert keyed by the
// session ID so a resumed session overwrites its earlier snapshot.
type SessionRepo interface {
	Save(ctx context.Context, s *quiz.Session) error
	Get(ctx context.Context, id string) (*quiz.Session, error)
	List(ctx context.Context) ([]*quiz.Session, error)
	Delete(ctx context.Context, id string) error
}

// MistakeData is the persisted form of one mistake record.
type MistakeData struct {
	QuestionID         string
	Question           quiz.Question
	ConsecutiveCorrect int
	LastReviewedAt     time.Time
	BankName           string
}

// MistakeRepo manages the mistake record namespace. The tracker owns the
// full record set in memory and writes it back wholesale after a session,
// mirroring the single-writer model of the application.
type MistakeRepo interface {
	List(ctx context.Context) ([]MistakeData, error)
	ReplaceAll(ctx context.Context, records []MistakeData) error
}

// LLMRequestEventData captures one model call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestSummary aggregates the audit log for display.
type LLMRequestSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the model request log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Summary aggregates all logged requests.
	Summary(ctx context.Context) (*LLMRequestSummary, error)
}
