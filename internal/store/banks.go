package store

import (
	"context"
	"fmt"

	"github.com/psinha/quizforge/ent"
	"github.com/psinha/quizforge/ent/questionbank"
)

// bankRepo implements BankRepo on the ent client.
type bankRepo struct {
	client *ent.Client
}

func (r *bankRepo) Save(ctx context.Context, b *BankData) error {
	_, err := r.client.QuestionBank.Create().
		SetBankID(b.ID).
		SetName(b.Name).
		SetCreatedAt(b.CreatedAt).
		SetQuestions(b.Questions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save bank: %w", err)
	}
	return nil
}

func (r *bankRepo) Get(ctx context.Context, id string) (*BankData, error) {
	qb, err := r.client.QuestionBank.Query().
		Where(questionbank.BankIDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query bank: %w", err)
	}
	return bankFromEnt(qb), nil
}

func (r *bankRepo) List(ctx context.Context) ([]*BankData, error) {
	rows, err := r.client.QuestionBank.Query().
		Order(ent.Desc(questionbank.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	out := make([]*BankData, len(rows))
	for i, qb := range rows {
		out[i] = bankFromEnt(qb)
	}
	return out, nil
}

func (r *bankRepo) Rename(ctx context.Context, id, name string) error {
	n, err := r.client.QuestionBank.Update().
		Where(questionbank.BankIDEQ(id)).
		SetName(name).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("rename bank: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bank %s not found", id)
	}
	return nil
}

func (r *bankRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.QuestionBank.Delete().
		Where(questionbank.BankIDEQ(id)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	return nil
}

func bankFromEnt(qb *ent.QuestionBank) *BankData {
	return &BankData{
		ID:        qb.BankID,
		Name:      qb.Name,
		CreatedAt: qb.CreatedAt,
		Questions: qb.Questions,
	}
}
