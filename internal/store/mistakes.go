package store

import (
	"context"
	"fmt"

	"github.com/psinha/quizforge/ent"
	"github.com/psinha/quizforge/ent/mistakerecord"
)

// mistakeRepo implements MistakeRepo on the ent client.
type mistakeRepo struct {
	client *ent.Client
}

func (r *mistakeRepo) List(ctx context.Context) ([]MistakeData, error) {
	rows, err := r.client.MistakeRecord.Query().
		Order(ent.Desc(mistakerecord.FieldLastReviewedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mistake records: %w", err)
	}
	out := make([]MistakeData, len(rows))
	for i, row := range rows {
		out[i] = MistakeData{
			QuestionID:         row.QuestionID,
			Question:           row.Question,
			ConsecutiveCorrect: row.ConsecutiveCorrect,
			LastReviewedAt:     row.LastReviewedAt,
			BankName:           row.BankName,
		}
	}
	return out, nil
}

// ReplaceAll swaps the stored record set for the given one in a single
// transaction. Graduated questions simply stop appearing in the new set.
func (r *mistakeRepo) ReplaceAll(ctx context.Context, records []MistakeData) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.MistakeRecord.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear mistake records: %w", err)
	}

	builders := make([]*ent.MistakeRecordCreate, len(records))
	for i, rec := range records {
		builders[i] = tx.MistakeRecord.Create().
			SetQuestionID(rec.QuestionID).
			SetQuestion(rec.Question).
			SetConsecutiveCorrect(rec.ConsecutiveCorrect).
			SetLastReviewedAt(rec.LastReviewedAt).
			SetBankName(rec.BankName)
	}
	if _, err := tx.MistakeRecord.CreateBulk(builders...).Save(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("write mistake records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mistake records: %w", err)
	}
	return nil
}
