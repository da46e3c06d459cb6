package mistakes

import (
	"context"
	"fmt"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/store"
)

// Service loads the tracker from persistence and writes it back after a
// closed session has been applied.
type Service struct {
	repo store.MistakeRepo
}

// NewService returns a mistake Service over the given repository.
func NewService(repo store.MistakeRepo) *Service {
	return &Service{repo: repo}
}

// Load builds a Tracker from the persisted record set.
func (s *Service) Load(ctx context.Context) (*Tracker, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mistake records: %w", err)
	}
	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{
			Question:           row.Question,
			ConsecutiveCorrect: row.ConsecutiveCorrect,
			LastReviewedAt:     row.LastReviewedAt,
			BankName:           row.BankName,
		}
	}
	return NewTracker(records), nil
}

// ApplySession feeds a closed session into the tracker and persists the
// result. Sessions saved for later resumption must not pass through here;
// only finished or discarded ones count as reviewed.
func (s *Service) ApplySession(ctx context.Context, session *quiz.Session, bankName string) error {
	t, err := s.Load(ctx)
	if err != nil {
		return err
	}
	t.ApplySession(session, bankName)
	if !t.Dirty() {
		return nil
	}
	return s.persist(ctx, t)
}

// Clear removes every tracked record.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("clear mistake records: %w", err)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, t *Tracker) error {
	recs := t.Records()
	rows := make([]store.MistakeData, len(recs))
	for i, r := range recs {
		rows[i] = store.MistakeData{
			QuestionID:         r.Question.ID,
			Question:           r.Question,
			ConsecutiveCorrect: r.ConsecutiveCorrect,
			LastReviewedAt:     r.LastReviewedAt,
			BankName:           r.BankName,
		}
	}
	if err := s.repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("persist mistake records: %w", err)
	}
	return nil
}
