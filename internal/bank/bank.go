// Package bank manages named question banks: persistent, immutable
// snapshots of extracted questions that exam sessions are started from.
package bank

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/psinha/quizforge/internal/quiz"
	"github.com/psinha/quizforge/internal/store"
)

// ErrNotFound is returned when no bank matches the given ID.
var ErrNotFound = errors.New("question bank not found")

// ErrEmptyName is returned when creating or renaming a bank with a blank name.
var ErrEmptyName = errors.New("bank name must not be empty")

// Bank is one named question collection.
type Bank struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Questions []quiz.Question
}

// Service mediates bank operations over the persistence layer.
type Service struct {
	repo store.BankRepo
}

// NewService returns a bank Service over the given repository.
func NewService(repo store.BankRepo) *Service {
	return &Service{repo: repo}
}

// Create stores a new bank holding the given questions and returns it.
func (s *Service) Create(ctx context.Context, name string, questions []quiz.Question) (*Bank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	b := &Bank{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		Questions: questions,
	}
	if err := s.repo.Save(ctx, toData(b)); err != nil {
		return nil, fmt.Errorf("save bank: %w", err)
	}
	return b, nil
}

// Get returns the bank with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*Bank, error) {
	data, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	if data == nil {
		return nil, ErrNotFound
	}
	return fromData(data), nil
}

// List returns all banks, newest first.
func (s *Service) List(ctx context.Context) ([]*Bank, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	banks := make([]*Bank, len(rows))
	for i, row := range rows {
		banks[i] = fromData(row)
	}
	return banks, nil
}

// Rename changes a bank's display name.
func (s *Service) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Rename(ctx, id, name); err != nil {
		return fmt.Errorf("rename bank: %w", err)
	}
	return nil
}

// Delete removes a bank. Sessions already started from it keep their own
// question snapshot and are unaffected.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	return nil
}

func toData(b *Bank) *store.BankData {
	return &store.BankData{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		Questions: b.Questions,
	}
}

func fromData(d *store.BankData) *Bank {
	return &Bank{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		Questions: d.Questions,
	}
}
