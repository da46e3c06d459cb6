package store

import (
	"context"
	"fmt"

	"github.com/psinha/quizforge/ent"
	"github.com/psinha/quizforge/ent/quizsession"
	"github.com/psinha/quizforge/internal/quiz"
)

// sessionRepo implements SessionRepo on the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, s *quiz.Session) error {
	n, err := r.client.QuizSession.Update().
		Where(quizsession.SessionIDEQ(s.ID)).
		SetName(s.Name).
		SetStatus(string(s.Status)).
		SetCursor(s.Cursor).
		SetRemainingSecs(s.RemainingSecs).
		SetElapsedSecs(s.ElapsedSecs).
		SetUpdatedAt(s.UpdatedAt).
		SetQuestions(s.Questions).
		SetAnswers(s.Answers).
		SetConfig(s.Config).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.QuizSession.Create().
		SetSessionID(s.ID).
		SetName(s.Name).
		SetStatus(string(s.Status)).
		SetCursor(s.Cursor).
		SetRemainingSecs(s.RemainingSecs).
		SetElapsedSecs(s.ElapsedSecs).
		SetStartedAt(s.StartedAt).
		SetUpdatedAt(s.UpdatedAt).
		SetQuestions(s.Questions).
		SetAnswers(s.Answers).
		SetConfig(s.Config).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*quiz.Session, error) {
	row, err := r.client.QuizSession.Query().
		Where(quizsession.SessionIDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*quiz.Session, error) {
	rows, err := r.client.QuizSession.Query().
		Order(ent.Desc(quizsession.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*quiz.Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromEnt(row)
	}
	return out, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.QuizSession.Delete().
		Where(quizsession.SessionIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionFromEnt(row *ent.QuizSession) *quiz.Session {
	s := &quiz.Session{
		ID:            row.SessionID,
		Name:          row.Name,
		Questions:     row.Questions,
		Cursor:        row.Cursor,
		Answers:       row.Answers,
		Status:        quiz.Status(row.Status),
		StartedAt:     row.StartedAt,
		RemainingSecs: row.RemainingSecs,
		ElapsedSecs:   row.ElapsedSecs,
		UpdatedAt:     row.UpdatedAt,
		Config:        row.Config,
	}
	if s.Answers == nil {
		s.Answers = make(map[string][]int)
	}
	return s
}
